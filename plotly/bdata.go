package plotly

import(
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
)

// plotly can pack a numeric array as {"bdata": <base64>, "dtype": <tag>},
// where the decoded bytes are consecutive little-endian elements. The dtype
// tags and widths here must match plotly's encoding scheme exactly; a
// mismatch decodes to silently-wrong numbers, not an error.

type DType string

const(
	Int8    DType = "i1"
	Uint8   DType = "u1"
	Int16   DType = "i2"
	Uint16  DType = "u2"
	Int32   DType = "i4"
	Uint32  DType = "u4"
	Float32 DType = "f4"
	Float64 DType = "f8"

	// Unrecognized tags decode as FallbackDType, rather than erroring.
	FallbackDType = Float64
)

func (dt DType)Width() int {
	switch dt {
	case Int8, Uint8:            return 1
	case Int16, Uint16:          return 2
	case Int32, Uint32, Float32: return 4
	case Float64:                return 8
	}
	return FallbackDType.Width()
}

// {{{ DecodeBData

// DecodeBData unpacks a base64'd binary buffer into a plain Array. Integer
// tags yield Int elements, float tags yield Float. Trailing bytes that don't
// fill a whole element are dropped. The only error is malformed base64, which
// means the input never came out of plotly in the first place.
func DecodeBData(bdata string, dtype DType) (Array, error) {
	raw,err := base64.StdEncoding.DecodeString(bdata)
	if err != nil { return nil, fmt.Errorf("bdata base64: %v", err) }

	width := dtype.Width()
	count := len(raw) / width

	out := make(Array, 0, count)
	for i:=0; i<count; i++ {
		b := raw[i*width : (i+1)*width]
		switch dtype {
		case Int8:    out = append(out, Int(int8(b[0])))
		case Uint8:   out = append(out, Int(b[0]))
		case Int16:   out = append(out, Int(int16(binary.LittleEndian.Uint16(b))))
		case Uint16:  out = append(out, Int(binary.LittleEndian.Uint16(b)))
		case Int32:   out = append(out, Int(int32(binary.LittleEndian.Uint32(b))))
		case Uint32:  out = append(out, Int(binary.LittleEndian.Uint32(b)))
		case Float32: out = append(out, floatNode(float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))))
		default:      out = append(out, floatNode(math.Float64frombits(binary.LittleEndian.Uint64(b))))
		}
	}

	return out, nil
}

// }}}
// {{{ EncodeBData

// EncodeBData is the inverse of DecodeBData, packing numeric nodes with the
// same element layout plotly uses. Values get converted (and truncated) to
// the element type; non-numeric nodes are an error.
func EncodeBData(vals Array, dtype DType) (string, error) {
	width := dtype.Width()
	raw := make([]byte, 0, len(vals)*width)

	for i,v := range vals {
		var f float64
		switch t := v.(type) {
		case Int:   f = float64(t)
		case Float: f = float64(t)
		default:
			return "", fmt.Errorf("element %d is %T, not numeric", i, v)
		}

		switch dtype {
		case Int8:    raw = append(raw, byte(int8(f)))
		case Uint8:   raw = append(raw, byte(uint8(f)))
		case Int16:   raw = binary.LittleEndian.AppendUint16(raw, uint16(int16(f)))
		case Uint16:  raw = binary.LittleEndian.AppendUint16(raw, uint16(f))
		case Int32:   raw = binary.LittleEndian.AppendUint32(raw, uint32(int32(f)))
		case Uint32:  raw = binary.LittleEndian.AppendUint32(raw, uint32(f))
		case Float32: raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(float32(f)))
		default:      raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(f))
		}
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
