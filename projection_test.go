package mapmachine

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestFlatProjectorOrigin(t *testing.T) {
	projector := NewFlatProjector(orb.Point{37.6417, 55.7518}, 1000)
	projected := projector.Project(projector.Origin)
	if projected != (orb.Point{0, 0}) {
		t.Errorf("Origin must project to (0, 0), but got %v", projected)
	}
}

func TestFlatProjectorAxes(t *testing.T) {
	projector := NewFlatProjector(orb.Point{37, 55}, 1000)
	north := projector.Project(orb.Point{37, 56})
	if north[1] >= 0 {
		t.Errorf("Point north of the origin must have negative y, but got %v", north)
	}
	east := projector.Project(orb.Point{38, 55})
	if east[0] <= 0 {
		t.Errorf("Point east of the origin must have positive x, but got %v", east)
	}
}

func TestFlatProjectorScale(t *testing.T) {
	projector := NewFlatProjector(orb.Point{37, 55}, 1000)
	scale := projector.ScaleAt(orb.Point{37, 55})
	if Round(scale, 0.0005) != 1 {
		t.Errorf("1000 units per km must give 1 unit per meter, but got %f", scale)
	}
}
