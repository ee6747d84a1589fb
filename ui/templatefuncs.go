package ui

import(
	"errors"
	"fmt"
	"html/template"
)

func TemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": templateAdd,
		"commas": templateCommas,               // 1234567 -> "1,234,567"
		"fixed1": templateFixed1,
		"fixed2": templateFixed2,
		"signed1": templateSigned1,             // always carries a sign, for trend deltas
		"dict": templateDict,                   // {{template "foo" dict "Key" "Val" "OtherArgs" . }}
	}
}

func templateAdd(a int, b int) int { return a + b }
func templateFixed1(x float64) string { return fmt.Sprintf("%.1f", x) }
func templateFixed2(x float64) string { return fmt.Sprintf("%.2f", x) }
func templateSigned1(x float64) string { return fmt.Sprintf("%+.1f", x) }

func templateCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 0 { str = str[1:] }

	out := ""
	for i,r := range str {
		if i > 0 && (len(str)-i)%3 == 0 { out += "," }
		out += string(r)
	}

	if n < 0 { out = "-"+out }
	return out
}

// Args are treated as a sequence of keys and vals, and built into a map. Used to let you
// specify parameters for a sub-template.
func templateDict(values ...interface{}) (map[string]interface{}, error) {
	if len(values)%2 != 0 { return nil, errors.New("invalid dict call")	}
	dict := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i+=2 {
		key, ok := values[i].(string)
		if !ok { return nil, errors.New("dict keys must be strings") }
		dict[key] = values[i+1]
	}
	return dict, nil
}
