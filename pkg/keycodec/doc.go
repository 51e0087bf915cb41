// Package keycodec parses operator-supplied key strings into the canonical
// byte form submitted to a store lookup.
//
// # Grammars
//
// Three textual forms are recognized:
//
//	hex string        "0A1B2C" or "0x0A1B2C"
//	byte array        "[10, 27, 44]"  (each element a u8)
//	word array        "[1, 2, 3, 4]" or "[1_u64, 2_u64, 3_u64, 4_u64]"
//	                  (exactly four u64 elements, encoded little-endian)
//
// A bracketed input is parsed as an array; anything else is parsed as hex.
// Exactly one grammar must match or Parse fails with *FormatError.
//
// # The 4-element tie-break
//
// A 4-element array is ambiguous: it could be four bytes or four 64-bit
// words. This store's dominant key shape is a 256-bit value split into four
// u64 limbs, so a 4-element array is preferentially read as four words of
// eight bytes each (yielding a 32-byte key) and falls back to four
// individual bytes only when some element does not parse as u64. Downstream
// tooling depends on this exact order; do not reverse it.
//
// # Advisory notes
//
// Parse attaches informational notes to the returned Key when the input
// admits a wider reading (a 32-element byte array, or a decoded key whose
// length is 32 bytes or a positive multiple of 8). Notes never affect the
// canonical bytes.
package keycodec
