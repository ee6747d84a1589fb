package plotly

// Helpers for assembling the handful of figure shapes the dashboards use.
// This isn't a plotly binding; charts that need something unusual just build
// Objects directly.

// {{{ Figure{}

type Figure struct {
	Data   Array
	Layout Object
}

func NewFigure(title string) *Figure {
	return &Figure{
		Data: Array{},
		Layout: DarkLayout(title),
	}
}

func (f *Figure)AddTrace(trace Object) *Figure {
	f.Data = append(f.Data, trace)
	return f
}

func (f *Figure)SetLayout(key string, v Node) *Figure {
	f.Layout = f.Layout.Set(key, v)
	return f
}

func (f *Figure)Node() Object {
	return Object{
		{"data", f.Data},
		{"layout", f.Layout},
	}
}

// JSON runs the figure through Clean and serializes it, ready to hand to
// Plotly.newPlot in the browser.
func (f *Figure)JSON() (string, error) {
	return RenderJSON(f.Node())
}

// }}}
// {{{ DarkLayout

// The shared dark theme; bgcolor alpha is zero so the page's card styling
// shows through.
func DarkLayout(title string) Object {
	return Object{
		{"title", Object{{"text", String(title)}}},
		{"paper_bgcolor", String("rgba(30, 58, 95, 0)")},
		{"plot_bgcolor", String("rgba(30, 58, 95, 0)")},
		{"font", Object{{"color", String("#eee")}, {"size", Int(12)}}},
		{"margin", Object{{"t", Int(60)}, {"b", Int(80)}, {"l", Int(100)}, {"r", Int(40)}}},
		{"height", Int(400)},
	}
}

// }}}
// {{{ Strings, Ints, Floats

func Strings(in []string) Array {
	out := make(Array, 0, len(in))
	for _,s := range in { out = append(out, String(s)) }
	return out
}

func Ints(in []int) Array {
	out := make(Array, 0, len(in))
	for _,n := range in { out = append(out, Int(n)) }
	return out
}

func Floats(in []float64) Array {
	out := make(Array, 0, len(in))
	for _,f := range in { out = append(out, floatNode(f)) }
	return out
}

// }}}
// {{{ Bar, HBar, LineTrace, PieTrace

func Bar(x, y Array) Object {
	return Object{
		{"type", String("bar")},
		{"x", x},
		{"y", y},
	}
}

// HBar is a horizontal bar trace; note x is the counts, y the labels.
func HBar(x, y Array) Object {
	return Object{
		{"type", String("bar")},
		{"orientation", String("h")},
		{"x", x},
		{"y", y},
	}
}

func LineTrace(name string, x, y Array) Object {
	return Object{
		{"type", String("scatter")},
		{"mode", String("lines+markers")},
		{"name", String(name)},
		{"x", x},
		{"y", y},
	}
}

func PieTrace(labels, values Array) Object {
	return Object{
		{"type", String("pie")},
		{"labels", labels},
		{"values", values},
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
