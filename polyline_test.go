package mapmachine

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestPolylineShortenFirst(t *testing.T) {
	line := NewPolyline([]orb.Point{{0, 0}, {10, 0}, {20, 0}})
	line.Shorten(0, 4)
	correct := orb.Point{4, 0}
	if line.Points[0] != correct {
		t.Errorf("Shortened start must be %v, but got %v", correct, line.Points[0])
	}
}

func TestPolylineShortenLast(t *testing.T) {
	line := NewPolyline([]orb.Point{{0, 0}, {10, 0}, {20, 0}})
	line.Shorten(2, 4)
	correct := orb.Point{16, 0}
	if line.Points[2] != correct {
		t.Errorf("Shortened end must be %v, but got %v", correct, line.Points[2])
	}
}

func TestPolylinePathCommands(t *testing.T) {
	line := NewPolyline([]orb.Point{{0, 0}, {10, 0}, {10, 10}})
	commands := line.PathCommands()
	if len(commands) != 3 {
		t.Fatalf("Path must have 3 commands, but got %d", len(commands))
	}
	if commands[0].Kind != PATH_MOVE_TO {
		t.Errorf("First command must be moveto, but got %v", commands[0].Kind)
	}
	for i := 1; i < len(commands); i++ {
		if commands[i].Kind != PATH_LINE_TO {
			t.Errorf("Command %d must be lineto, but got %v", i, commands[i].Kind)
		}
	}
}

func TestPolylineOffsetPathCommands(t *testing.T) {
	line := NewPolyline([]orb.Point{{0, 0}, {10, 0}})
	commands := line.OffsetPathCommands(2)
	if len(commands) != 2 {
		t.Fatalf("Offset path must have 2 commands, but got %d", len(commands))
	}
	correct := orb.Point{0, 2}
	if Round(commands[0].Point[0], 0.0005) != correct[0] || Round(commands[0].Point[1], 0.0005) != correct[1] {
		t.Errorf("Offset path start must be %v, but got %v", correct, commands[0].Point)
	}
}
