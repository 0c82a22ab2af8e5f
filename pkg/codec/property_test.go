package codec

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/joshuapare/axkit/pkg/types"
)

func TestCodecProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("opt_double round trip keeps presence and bits", prop.ForAll(
		func(f float64, present bool) bool {
			in := Opt[float64]{HasValue: present}
			if present {
				in.Value = f
			}
			out, err := OptF64Layout.Decode(OptF64Layout.Encode(in))
			return err == nil && out.HasValue == present &&
				math.Float64bits(out.Value) == math.Float64bits(in.Value)
		},
		gen.Float64(), gen.Bool(),
	))

	properties.Property("opt_node_id round trip", prop.ForAll(
		func(hi, lo uint64) bool {
			id := types.NodeIDFromHalves(hi, lo)
			out, err := OptNodeIDLayout.Decode(OptNodeIDLayout.Encode(OptID(id)))
			return err == nil && IDOrZero(out) == id
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("opt_rect round trip", prop.ForAll(
		func(x0, y0, x1, y1 float64) bool {
			r := types.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
			out, err := OptRectLayout.Decode(OptRectLayout.Encode(Some(r)))
			return err == nil && out.HasValue && out.Value == r
		},
		gen.Float64Range(-1e6, 1e6), gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6), gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("every enum byte decodes iff defined", prop.ForAll(
		func(v uint8) bool {
			_, err := OptEnum[types.Role]("role").Decode([]byte{1, v})
			return (err == nil) == types.Role(v).Valid()
		},
		gen.UInt8(),
	))

	properties.Property("coords round trip", prop.ForAll(
		func(v []float32) bool {
			out, err := DecodeF32s(AppendF32s(nil, v), len(v))
			if err != nil || len(out) != len(v) {
				return false
			}
			for i := range v {
				if math.Float32bits(out[i]) != math.Float32bits(v[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float32()),
	))

	properties.Property("text selection round trip", prop.ForAll(
		func(a, f uint64, ai, fi uint64) bool {
			sel := types.TextSelection{
				Anchor: types.TextPosition{Node: types.NewNodeID(a), CharacterIndex: ai},
				Focus:  types.TextPosition{Node: types.NewNodeID(f), CharacterIndex: fi},
			}
			out, err := OptTextSelectionLayout.Decode(OptTextSelectionLayout.Encode(Some(sel)))
			return err == nil && out.Value == sel
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}
