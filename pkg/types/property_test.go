package types

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNodeIDProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("bytes round trip", prop.ForAll(
		func(hi, lo uint64) bool {
			id := NodeIDFromHalves(hi, lo)
			return NodeIDFromBytes(id.Bytes()) == id
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("text round trip", prop.ForAll(
		func(hi, lo uint64) bool {
			id := NodeIDFromHalves(hi, lo)
			back, err := ParseNodeID(id.String())
			return err == nil && back == id
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("zero only when both halves are zero", prop.ForAll(
		func(hi, lo uint64) bool {
			return NodeIDFromHalves(hi, lo).IsZero() == (hi == 0 && lo == 0)
		},
		gen.UInt64Range(0, 2), gen.UInt64Range(0, 2),
	))

	properties.TestingRun(t)
}

func TestEnumProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("valid roles parse back from their names", prop.ForAll(
		func(v uint8) bool {
			r := Role(v)
			if !r.Valid() {
				return int(v) >= EnumCount[Role]()
			}
			back, err := ParseRole(r.String())
			return err == nil && back == r
		},
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
