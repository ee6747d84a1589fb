package plotly

import(
	"encoding/json"
)

// {{{ Clean

// Clean rewrites a figure tree into values a JSON serializer (and the
// browser-side runtime) can take as-is: encoded buffers become plain arrays,
// and NaN/Inf floats become nulls. Everything else keeps its shape, keys and
// order. Clean of already-clean input is a no-op.
func Clean(n Node) (Node, error) {
	switch t := n.(type) {
	case Object:
		if bdata,dtype,ok := encodedBuffer(t); ok {
			return DecodeBData(bdata, dtype)
		}
		out := make(Object, 0, len(t))
		for _,m := range t {
			v,err := Clean(m.Value)
			if err != nil { return nil, err }
			out = append(out, Member{m.Key, v})
		}
		return out, nil

	case Array:
		out := make(Array, 0, len(t))
		for _,el := range t {
			v,err := Clean(el)
			if err != nil { return nil, err }
			out = append(out, v)
		}
		return out, nil

	case Float:
		return floatNode(float64(t)), nil

	case nil:
		return Null{}, nil
	}

	return n, nil
}

// }}}
// {{{ encodedBuffer

// An object counts as an encoded buffer iff it carries string values under
// both "bdata" and "dtype". Any other members (e.g. "shape") are ignored.
func encodedBuffer(o Object) (string, DType, bool) {
	bv,ok := o.Get("bdata")
	if !ok { return "", "", false }
	dv,ok := o.Get("dtype")
	if !ok { return "", "", false }

	bs,bok := bv.(String)
	ds,dok := dv.(String)
	if !bok || !dok { return "", "", false }

	return string(bs), DType(ds), true
}

// }}}
// {{{ RenderJSON

// RenderJSON cleans a tree and serializes it. The output is safe to embed
// verbatim in an HTML <script> region (encoding/json escapes <, > and &).
func RenderJSON(n Node) (string, error) {
	clean,err := Clean(n)
	if err != nil { return "", err }

	b,err := json.Marshal(clean)
	if err != nil { return "", err }

	return string(b), nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
