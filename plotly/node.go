// Package plotly builds plotly.js figure descriptions as plain trees of
// values, and re-encodes them as the JSON consumed by the browser-side
// plotly runtime. No HTTP imports.
package plotly

import(
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// A figure is a tree of Nodes. The variant set is closed: anything plotly
// hands us (or anything we build) gets mapped onto one of these seven types
// at the boundary, so the recursive walks don't need open-ended type checks.
type Node interface {
	json.Marshaler
	isNode()
}

type Member struct {
	Key   string
	Value Node
}

type Object []Member    // ordered; serializes in insertion order
type Array  []Node
type String string
type Int    int64
type Float  float64
type Bool   bool
type Null   struct{}

func (Object)isNode() {}
func (Array)isNode()  {}
func (String)isNode() {}
func (Int)isNode()    {}
func (Float)isNode()  {}
func (Bool)isNode()   {}
func (Null)isNode()   {}

// {{{ o.Get, o.Set

func (o Object)Get(key string) (Node, bool) {
	for _,m := range o {
		if m.Key == key { return m.Value, true }
	}
	return nil, false
}

// Set replaces the value for key, or appends a new member.
func (o Object)Set(key string, v Node) Object {
	for i,m := range o {
		if m.Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{key, v})
}

// }}}
// {{{ MarshalJSON

func (o Object)MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i,m := range o {
		if i > 0 { buf.WriteByte(',') }
		k,err := json.Marshal(m.Key)
		if err != nil { return nil, err }
		buf.Write(k)
		buf.WriteByte(':')
		v,err := json.Marshal(m.Value)
		if err != nil { return nil, err }
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a Array)MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('[')
	for i,v := range a {
		if i > 0 { buf.WriteByte(',') }
		b,err := json.Marshal(v)
		if err != nil { return nil, err }
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (s String)MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }
func (n Int)MarshalJSON() ([]byte, error)    { return json.Marshal(int64(n)) }
func (f Float)MarshalJSON() ([]byte, error)  { return json.Marshal(float64(f)) }
func (b Bool)MarshalJSON() ([]byte, error)   { return json.Marshal(bool(b)) }
func (Null)MarshalJSON() ([]byte, error)     { return []byte("null"), nil }

// }}}

// {{{ FromValue

// FromValue maps an arbitrary Go value onto the Node variant set. This is the
// ingestion boundary: wide numeric types collapse to Int/Float, NaN and the
// infinities become Null, and map keys get sorted so output is deterministic.
func FromValue(v interface{}) Node {
	switch t := v.(type) {
	case nil:       return Null{}
	case Node:      return t
	case string:    return String(t)
	case bool:      return Bool(t)
	case int:       return Int(t)
	case int8:      return Int(t)
	case int16:     return Int(t)
	case int32:     return Int(t)
	case int64:     return Int(t)
	case uint:      return Int(t)
	case uint8:     return Int(t)
	case uint16:    return Int(t)
	case uint32:    return Int(t)
	case uint64:    return Int(t)
	case float32:   return floatNode(float64(t))
	case float64:   return floatNode(t)
	case time.Time: return String(t.Format("2006-01-02"))

	case json.Number:
		if i,err := t.Int64(); err == nil { return Int(i) }
		if f,err := t.Float64(); err == nil { return floatNode(f) }
		return String(t.String())

	case []interface{}:
		out := make(Array, 0, len(t))
		for _,el := range t { out = append(out, FromValue(el)) }
		return out

	case []string:
		out := make(Array, 0, len(t))
		for _,el := range t { out = append(out, String(el)) }
		return out

	case []int:
		out := make(Array, 0, len(t))
		for _,el := range t { out = append(out, Int(el)) }
		return out

	case []float64:
		out := make(Array, 0, len(t))
		for _,el := range t { out = append(out, floatNode(el)) }
		return out

	case map[string]interface{}:
		keys := []string{}
		for k,_ := range t { keys = append(keys, k) }
		sort.Strings(keys)
		out := make(Object, 0, len(keys))
		for _,k := range keys { out = append(out, Member{k, FromValue(t[k])}) }
		return out
	}

	return String(fmt.Sprintf("%v", v))
}

func floatNode(f float64) Node {
	if math.IsNaN(f) || math.IsInf(f, 0) { return Null{} }
	return Float(f)
}

// }}}
// {{{ UnmarshalNode

// UnmarshalNode parses JSON into a Node tree, preserving object key order
// (encoding/json's map types don't).
func UnmarshalNode(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *json.Decoder) (Node, error) {
	tok,err := dec.Token()
	if err != nil { return nil, err }

	switch t := tok.(type) {
	case json.Delim:
		if t == '{' {
			obj := Object{}
			for dec.More() {
				keyTok,err := dec.Token()
				if err != nil { return nil, err }
				key,ok := keyTok.(string)
				if !ok { return nil, fmt.Errorf("object key was %v, not a string", keyTok) }
				val,err := decodeValue(dec)
				if err != nil { return nil, err }
				obj = append(obj, Member{key, val})
			}
			if _,err := dec.Token(); err != nil { return nil, err } // consume '}'
			return obj, nil
		}
		arr := Array{}
		for dec.More() {
			val,err := decodeValue(dec)
			if err != nil { return nil, err }
			arr = append(arr, val)
		}
		if _,err := dec.Token(); err != nil { return nil, err } // consume ']'
		return arr, nil

	case string:      return String(t), nil
	case bool:        return Bool(t), nil
	case json.Number: return FromValue(t), nil
	case nil:         return Null{}, nil
	}

	return nil, fmt.Errorf("unhandled JSON token %v", tok)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
