package mapmachine

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RoadMatcher drawing style resolved for a road outside of this package.
// DefaultWidth is used when the road carries no usable width or lanes tags.
// Priority orders borders and fills of roads sharing one layer
type RoadMatcher struct {
	Color        colorful.Color
	BorderColor  colorful.Color
	DefaultWidth float64
	Priority     int
}

// NewRoadMatcher builds a matcher from hex color strings
func NewRoadMatcher(color, borderColor string, defaultWidth float64, priority int) (RoadMatcher, error) {
	fill, err := colorful.Hex(color)
	if err != nil {
		return RoadMatcher{}, errors.Wrap(err, "Can't parse fill color")
	}
	border, err := colorful.Hex(borderColor)
	if err != nil {
		return RoadMatcher{}, errors.Wrap(err, "Can't parse border color")
	}
	return RoadMatcher{
		Color:        fill,
		BorderColor:  border,
		DefaultWidth: defaultWidth,
		Priority:     priority,
	}, nil
}
