package decode

import (
	"fmt"
	"strings"
	"time"
)

// String renders the report in the line-per-candidate form the check command
// prints. Candidates ruled out by length are omitted; a failed structured
// decode and invalid UTF-8 are reported in place rather than dropped.
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Value (bytes): %v\n", r.Raw)
	fmt.Fprintf(&b, "Value (hex): %s\n", r.Hex)

	if r.Merkle != nil {
		fmt.Fprintf(&b, "Value (as merkle record):\n")
		fmt.Fprintf(&b, "  parent:    %x\n", r.Merkle.Parent)
		fmt.Fprintf(&b, "  left:      %x\n", r.Merkle.Left)
		fmt.Fprintf(&b, "  right:     %x\n", r.Merkle.Right)
		fmt.Fprintf(&b, "  data hash: %x\n", r.Merkle.DataHash)
	} else if r.MerkleErr != nil {
		fmt.Fprintf(&b, "Value could not be decoded as a merkle record: %v\n", r.MerkleErr)
	}

	if r.DataHash != nil {
		fmt.Fprintf(&b, "Value (as data hash record):\n")
		fmt.Fprintf(&b, "  content hash:   %x\n", r.DataHash.ContentHash)
		fmt.Fprintf(&b, "  payload length: %d\n", r.DataHash.PayloadLen)
		fmt.Fprintf(&b, "  payload offset: %d\n", r.DataHash.PayloadOffset)
	} else if r.DataHashErr != nil {
		fmt.Fprintf(&b, "Value could not be decoded as a data hash record: %v\n", r.DataHashErr)
	}

	if r.U32 != nil {
		fmt.Fprintf(&b, "Value (as u32, little-endian): %d\n", *r.U32)
	}
	if r.U64 != nil {
		fmt.Fprintf(&b, "Value (as u64, little-endian): %d\n", *r.U64)
	}
	if r.U256 != nil {
		fmt.Fprintf(&b, "Value (as u256, four little-endian words): %s\n", r.U256.Dec())
	}
	if r.KSUID != nil {
		fmt.Fprintf(&b, "Value (as ksuid): %s (created %s)\n",
			r.KSUID.String(), r.KSUID.Time().UTC().Format(time.RFC3339))
	}

	if r.TextValid {
		fmt.Fprintf(&b, "Value (as UTF-8): %s\n", r.Text)
	} else {
		b.WriteString("Value is not valid UTF-8\n")
	}

	return b.String()
}
