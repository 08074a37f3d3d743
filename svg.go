package mapmachine

import (
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// SVGSink renders the drawing primitive stream into an SVG document.
// The view box is centered at the drawing plane origin
type SVGSink struct {
	width  float64
	height float64
	defs   []string
	body   []string
	idSeq  int
}

// NewSVGSink creates an SVG sink with given document size
func NewSVGSink(width, height float64) *SVGSink {
	return &SVGSink{width: width, height: height}
}

// Path implements Sink
func (svg *SVGSink) Path(commands []PathCommand, style Style) {
	if len(commands) == 0 {
		return
	}
	svg.body = append(svg.body, fmt.Sprintf("<path d=\"%s\"%s/>", pathData(commands), svg.styleAttributes(style)))
}

// Circle implements Sink
func (svg *SVGSink) Circle(center orb.Point, radius float64, style Style) {
	svg.body = append(svg.body, fmt.Sprintf(
		"<circle cx=\"%f\" cy=\"%f\" r=\"%f\"%s/>",
		center[0], center[1], radius, svg.styleAttributes(style),
	))
}

// TextPath implements TextPathSink: text is laid out along an invisible path
func (svg *SVGSink) TextPath(commands []PathCommand, text string, fontFamily string, fontSize float64) {
	if len(commands) == 0 || text == "" {
		return
	}
	pathID := svg.nextID("caption")
	svg.defs = append(svg.defs, fmt.Sprintf("<path id=\"%s\" d=\"%s\" fill=\"none\"/>", pathID, pathData(commands)))
	svg.body = append(svg.body, fmt.Sprintf(
		"<text font-family=\"%s\" font-size=\"%f\"><textPath href=\"#%s\">%s</textPath></text>",
		fontFamily, fontSize, pathID, escapeText(text),
	))
}

// WriteTo writes the complete SVG document
func (svg *SVGSink) WriteTo(w io.Writer) error {
	var doc strings.Builder
	doc.WriteString(fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%f\" height=\"%f\" viewBox=\"%f %f %f %f\">\n",
		svg.width, svg.height, -svg.width/2, -svg.height/2, svg.width, svg.height,
	))
	if len(svg.defs) > 0 {
		doc.WriteString("<defs>\n")
		for _, def := range svg.defs {
			doc.WriteString(def)
			doc.WriteString("\n")
		}
		doc.WriteString("</defs>\n")
	}
	for _, element := range svg.body {
		doc.WriteString(element)
		doc.WriteString("\n")
	}
	doc.WriteString("</svg>\n")

	if _, err := io.WriteString(w, doc.String()); err != nil {
		return errors.Wrap(err, "Can't write SVG document")
	}
	return nil
}

func (svg *SVGSink) styleAttributes(style Style) string {
	var attrs strings.Builder
	if style.Fill == "" {
		attrs.WriteString(" fill=\"none\"")
	} else {
		attrs.WriteString(fmt.Sprintf(" fill=\"%s\"", style.Fill))
	}
	if style.Stroke != "" {
		attrs.WriteString(fmt.Sprintf(" stroke=\"%s\" stroke-width=\"%f\"", style.Stroke, style.StrokeWidth))
		if style.LineCap != "" {
			attrs.WriteString(fmt.Sprintf(" stroke-linecap=\"%s\"", style.LineCap))
		}
		if style.LineJoin != "" {
			attrs.WriteString(fmt.Sprintf(" stroke-linejoin=\"%s\"", style.LineJoin))
		}
		if len(style.Dash) > 0 {
			parts := make([]string, len(style.Dash))
			for i := range style.Dash {
				parts[i] = fmt.Sprintf("%g", style.Dash[i])
			}
			attrs.WriteString(fmt.Sprintf(" stroke-dasharray=\"%s\"", strings.Join(parts, ",")))
		}
	}
	if style.Opacity > 0 && style.Opacity < 1 {
		attrs.WriteString(fmt.Sprintf(" opacity=\"%g\"", style.Opacity))
	}
	if style.Blur > 0 {
		filterID := svg.nextID("blur")
		svg.defs = append(svg.defs, fmt.Sprintf(
			"<filter id=\"%s\"><feGaussianBlur in=\"SourceGraphic\" stdDeviation=\"%g\"/></filter>",
			filterID, style.Blur,
		))
		attrs.WriteString(fmt.Sprintf(" filter=\"url(#%s)\"", filterID))
	}
	return attrs.String()
}

func (svg *SVGSink) nextID(prefix string) string {
	svg.idSeq++
	return fmt.Sprintf("%s%d", prefix, svg.idSeq)
}

func pathData(commands []PathCommand) string {
	parts := make([]string, 0, len(commands))
	for _, command := range commands {
		switch command.Kind {
		case PATH_MOVE_TO:
			parts = append(parts, fmt.Sprintf("M %f,%f", command.Point[0], command.Point[1]))
		case PATH_LINE_TO:
			parts = append(parts, fmt.Sprintf("L %f,%f", command.Point[0], command.Point[1]))
		case PATH_CURVE_TO:
			parts = append(parts, fmt.Sprintf(
				"C %f,%f %f,%f %f,%f",
				command.Control1[0], command.Control1[1],
				command.Control2[0], command.Control2[1],
				command.Point[0], command.Point[1],
			))
		case PATH_CLOSE:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

func escapeText(text string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(text)
}
