package keycodec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// wordCount is the element count at which an array literal is tried as
// 64-bit words before falling back to bytes.
const wordCount = 4

// Key is the canonical byte form of a parsed key string, along with advisory
// notes about plausible wider interpretations of the same bytes.
type Key struct {
	Bytes []byte
	Notes []string
}

// FormatError reports a key string that matches no recognized grammar or
// contains out-of-range tokens.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid key %q: %s", e.Input, e.Reason)
}

// Parse converts a textual key into canonical bytes. Bracketed input is
// parsed as an array literal, anything else as a hex string; see the package
// documentation for the grammars and the 4-element tie-break.
func Parse(input string) (*Key, error) {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return parseArray(input, s[1:len(s)-1])
	}
	return parseHex(input, s)
}

// parseArray handles the bracketed forms. A 4-element list is tried as four
// u64 words first; everything else is parsed element-wise as u8.
func parseArray(input, inner string) (*Key, error) {
	if strings.TrimSpace(inner) == "" {
		return &Key{Bytes: []byte{}}, nil
	}
	elems := strings.Split(inner, ",")

	k := &Key{}
	if len(elems) == wordCount {
		if words, ok := parseWords(elems); ok {
			k.Bytes = make([]byte, 0, wordCount*8)
			for _, w := range words {
				k.Bytes = binary.LittleEndian.AppendUint64(k.Bytes, w)
			}
			k.Notes = append(k.Notes, "parsed input as [u64; 4]")
			k.noteWidth()
			return k, nil
		}
	}
	if len(elems) == 32 {
		k.Notes = append(k.Notes, "parsed input as [u8; 32]")
	}

	k.Bytes = make([]byte, 0, len(elems))
	for _, e := range elems {
		tok := strings.TrimSpace(e)
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return nil, &FormatError{Input: input, Reason: fmt.Sprintf("array element %q is not a u8", tok)}
		}
		k.Bytes = append(k.Bytes, byte(v))
	}
	k.noteWidth()
	return k, nil
}

// parseWords parses every element as a u64, tolerating a literal "_u64"
// suffix on each token. ok is false as soon as one element does not parse.
func parseWords(elems []string) ([]uint64, bool) {
	words := make([]uint64, 0, len(elems))
	for _, e := range elems {
		tok := strings.TrimSuffix(strings.TrimSpace(e), "_u64")
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, false
		}
		words = append(words, v)
	}
	return words, true
}

// parseHex handles the hex form, stripping an optional "0x" prefix.
func parseHex(input, s string) (*Key, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, &FormatError{Input: input, Reason: err.Error()}
	}
	k := &Key{Bytes: b}
	k.noteWidth()
	return k, nil
}

// noteWidth records the 64-bit word readings a finished key admits. Purely
// informational: the canonical bytes are already final.
func (k *Key) noteWidth() {
	switch {
	case len(k.Bytes) == 32:
		k.Notes = append(k.Notes, "32-byte key (compatible with [u8; 32] or [u64; 4])")
	case len(k.Bytes) > 0 && len(k.Bytes)%8 == 0:
		k.Notes = append(k.Notes, fmt.Sprintf("%d-byte key (%d u64 values)", len(k.Bytes), len(k.Bytes)/8))
	}
}
