package storyboard

import "github.com/spf13/cast"

// Raw form field names accepted by BuildCase.
const (
	FieldAuctionID  = "auctionId"
	FieldNFTID      = "nftId"
	FieldReserve    = "reserve"
	FieldCollateral = "collateral"
	FieldCommit     = "commit"
	FieldReveal     = "reveal"
	FieldFinalize   = "finalize"
	FieldBidders    = "bidders"
	FieldNotes      = "notes"
)

// Field is a raw form value that is either present or absent.
type Field struct {
	value   string
	present bool
}

// Absent is the missing-field marker.
var Absent = Field{}

// Present wraps a submitted value.
func Present(v string) Field {
	return Field{value: v, present: true}
}

// Value returns the raw string and whether the field was submitted.
func (f Field) Value() (string, bool) {
	return f.value, f.present
}

// RawInput maps field names to raw values.
type RawInput map[string]Field

func (r RawInput) get(name string) Field {
	if r == nil {
		return Absent
	}
	return r[name]
}

// RawFromStrings builds a RawInput where every key present in m is submitted.
func RawFromStrings(m map[string]string) RawInput {
	raw := make(RawInput, len(m))
	for k, v := range m {
		raw[k] = Present(v)
	}
	return raw
}

// RawFromAny builds a RawInput from decoded JSON-like values. Nil values are absent.
func RawFromAny(m map[string]any) RawInput {
	raw := make(RawInput, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			continue
		}
		raw[k] = Present(s)
	}
	return raw
}

func merge(base, over RawInput) RawInput {
	out := make(RawInput, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
