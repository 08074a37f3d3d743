package mapmachine

// Standard lane width in meters, used when a lane has no explicit width
const defaultLaneWidth = 3.7

// LaneDirection travel direction of a single lane
type LaneDirection uint16

const (
	LANE_DIRECTION_UNKNOWN = LaneDirection(iota + 1)
	LANE_DIRECTION_FORWARD
	LANE_DIRECTION_BACKWARD
)

func (iotaIdx LaneDirection) String() string {
	return [...]string{"unknown", "forward", "backward"}[iotaIdx-1]
}

// Lane single lane of a road
type Lane struct {
	Width       float64 // Width in meters, 0 when not specified
	Direction   LaneDirection
	MinSpeed    float64 // Minimal speed on the lane, 0 when not specified
	Turn        string  // "none", "merge_to_left", "slight_left", "slight_right"
	Change      string  // "not_left", "not_right"
	Destination string  // Lane destination
}

// SetForward marks lane as forward or backward
func (lane *Lane) SetForward(isForward bool) {
	if isForward {
		lane.Direction = LANE_DIRECTION_FORWARD
		return
	}
	lane.Direction = LANE_DIRECTION_BACKWARD
}

// EffectiveWidth returns lane width in drawing units
func (lane *Lane) EffectiveWidth(scale float64) float64 {
	if lane.Width <= 0 {
		return defaultLaneWidth * scale
	}
	return lane.Width * scale
}
