package plotly

// go test -v github.com/skypies/faadash/plotly

import(
	"encoding/base64"
	"math"
	"reflect"
	"testing"
)

type BDataTest struct {
	Raw      []byte
	DType    DType
	Expected Array
}

var bdataTests = []BDataTest{
	{[]byte{0x01, 0x00, 0x02, 0x00},       Int16,   Array{Int(1), Int(2)}},
	{[]byte{0xff},                          Int8,    Array{Int(-1)}},
	{[]byte{0xff},                          Uint8,   Array{Int(255)}},
	{[]byte{0xfe, 0xff},                    Int16,   Array{Int(-2)}},
	{[]byte{0xfe, 0xff},                    Uint16,  Array{Int(65534)}},
	{[]byte{0xff, 0xff, 0xff, 0xff},        Int32,   Array{Int(-1)}},
	{[]byte{0xff, 0xff, 0xff, 0xff},        Uint32,  Array{Int(4294967295)}},
	{[]byte{0x00, 0x00, 0x80, 0x3f},        Float32, Array{Float(1)}},
	{[]byte{0,0,0,0,0,0,0xf0,0x3f},         Float64, Array{Float(1)}},

	// Unknown tag: falls back to 8-byte float, so 4 bytes decode to nothing
	{[]byte{0xde, 0xad, 0xbe, 0xef},        DType("zz"), Array{}},

	// Trailing bytes that don't fill an element get dropped
	{[]byte{0x01, 0x00, 0x02, 0x00, 0x03}, Int16,   Array{Int(1), Int(2)}},
	{[]byte{},                              Int16,   Array{}},
}

func TestDecodeBData(t *testing.T) {
	for _,test := range bdataTests {
		got,err := DecodeBData(base64.StdEncoding.EncodeToString(test.Raw), test.DType)
		if err != nil {
			t.Errorf("%v/%s: unexpected err %v", test.Raw, test.DType, err)
			continue
		}
		if !reflect.DeepEqual(got, test.Expected) {
			t.Errorf("%v/%s: expected %v, got %v", test.Raw, test.DType, test.Expected, got)
		}
	}
}

func TestDecodeBDataLengths(t *testing.T) {
	// len(output) == floor(len(bytes) / width), for every tag incl. unknown
	dtypes := []DType{Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32, Float64, DType("??")}

	for _,dtype := range dtypes {
		for byteLen := 0; byteLen <= 17; byteLen++ {
			raw := make([]byte, byteLen)
			got,err := DecodeBData(base64.StdEncoding.EncodeToString(raw), dtype)
			if err != nil {
				t.Fatalf("%s/%d bytes: %v", dtype, byteLen, err)
			}
			if expected := byteLen / dtype.Width(); len(got) != expected {
				t.Errorf("%s/%d bytes: expected %d elements, got %d", dtype, byteLen, expected, len(got))
			}
		}
	}
}

func TestDecodeBDataBadBase64(t *testing.T) {
	if _,err := DecodeBData("this is not base64 !!!", Int16); err == nil {
		t.Errorf("expected error for malformed base64")
	}
}

func TestBDataRoundTrip(t *testing.T) {
	tests := []struct{
		DType DType
		Vals  Array
	}{
		{Int8,    Array{Int(-128), Int(0), Int(127)}},
		{Uint8,   Array{Int(0), Int(128), Int(255)}},
		{Int16,   Array{Int(-32768), Int(1), Int(32767)}},
		{Uint16,  Array{Int(0), Int(40000), Int(65535)}},
		{Int32,   Array{Int(-2147483648), Int(12345), Int(2147483647)}},
		{Uint32,  Array{Int(0), Int(3000000000)}},
		{Float32, Array{Float(0.5), Float(-2), Float(1024)}},
		{Float64, Array{Float(math.Pi), Float(-0.001), Float(1e18)}},
	}

	for _,test := range tests {
		bdata,err := EncodeBData(test.Vals, test.DType)
		if err != nil { t.Fatalf("%s: encode: %v", test.DType, err) }

		got,err := DecodeBData(bdata, test.DType)
		if err != nil { t.Fatalf("%s: decode: %v", test.DType, err) }

		if !reflect.DeepEqual(got, test.Vals) {
			t.Errorf("%s: round trip: expected %v, got %v", test.DType, test.Vals, got)
		}
	}
}

func TestDTypeWidth(t *testing.T) {
	widths := map[DType]int{
		Int8:1, Uint8:1, Int16:2, Uint16:2, Int32:4, Uint32:4, Float32:4, Float64:8,
		DType("zz"):8, DType(""):8,
	}
	for dtype,expected := range widths {
		if got := dtype.Width(); got != expected {
			t.Errorf("%q: expected width %d, got %d", dtype, expected, got)
		}
	}
}
