package mapmachine

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestSVGSinkPath(t *testing.T) {
	sink := NewSVGSink(100, 100)
	sink.Path([]PathCommand{
		MoveTo(orb.Point{1, 2}),
		LineTo(orb.Point{3, 4}),
		CurveTo(orb.Point{5, 6}, orb.Point{7, 8}, orb.Point{9, 10}),
		ClosePath(),
	}, Style{Stroke: "#000000", StrokeWidth: 2, Dash: []float64{3, 3}})

	var out strings.Builder
	if err := sink.WriteTo(&out); err != nil {
		t.Fatalf("SVG must be written: %v", err)
	}
	document := out.String()

	for _, needle := range []string{
		"<svg",
		"M 1.000000,2.000000",
		"L 3.000000,4.000000",
		"C 5.000000,6.000000 7.000000,8.000000 9.000000,10.000000",
		"Z",
		"stroke=\"#000000\"",
		"stroke-dasharray=\"3,3\"",
		"fill=\"none\"",
	} {
		if !strings.Contains(document, needle) {
			t.Errorf("Document must contain %q:\n%s", needle, document)
		}
	}
}

func TestSVGSinkCircle(t *testing.T) {
	sink := NewSVGSink(100, 100)
	sink.Circle(orb.Point{5, 5}, 3, Style{Fill: "#ff8888"})

	var out strings.Builder
	if err := sink.WriteTo(&out); err != nil {
		t.Fatal(err)
	}
	document := out.String()
	if !strings.Contains(document, "<circle cx=\"5.000000\" cy=\"5.000000\" r=\"3.000000\"") {
		t.Errorf("Document must contain the circle:\n%s", document)
	}
	if !strings.Contains(document, "fill=\"#ff8888\"") {
		t.Errorf("Document must contain the circle fill:\n%s", document)
	}
}

func TestSVGSinkBlurFilter(t *testing.T) {
	sink := NewSVGSink(100, 100)
	sink.Path([]PathCommand{
		MoveTo(orb.Point{0, 0}),
		LineTo(orb.Point{1, 1}),
	}, Style{Stroke: "#666666", StrokeWidth: 1, Blur: 2})

	var out strings.Builder
	if err := sink.WriteTo(&out); err != nil {
		t.Fatal(err)
	}
	document := out.String()
	if !strings.Contains(document, "feGaussianBlur") {
		t.Errorf("Document must define the blur filter:\n%s", document)
	}
	if !strings.Contains(document, "filter=\"url(#blur1)\"") {
		t.Errorf("Blurred path must reference the filter:\n%s", document)
	}
}

func TestSVGSinkTextPath(t *testing.T) {
	sink := NewSVGSink(100, 100)
	sink.TextPath([]PathCommand{
		MoveTo(orb.Point{0, 0}),
		LineTo(orb.Point{10, 0}),
	}, "Main & High <Street>", "Roboto", 10)

	var out strings.Builder
	if err := sink.WriteTo(&out); err != nil {
		t.Fatal(err)
	}
	document := out.String()
	if !strings.Contains(document, "textPath") {
		t.Errorf("Document must contain a text path:\n%s", document)
	}
	if !strings.Contains(document, "Main &amp; High &lt;Street&gt;") {
		t.Errorf("Text content must be escaped:\n%s", document)
	}
}

func TestSVGSinkOpacity(t *testing.T) {
	sink := NewSVGSink(100, 100)
	sink.Circle(orb.Point{0, 0}, 1, Style{Fill: "#ff0000", Opacity: 0.4})

	var out strings.Builder
	if err := sink.WriteTo(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "opacity=\"0.4\"") {
		t.Errorf("Document must contain the opacity attribute:\n%s", out.String())
	}
}
