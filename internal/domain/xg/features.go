package xg

import "math"

// Pitch geometry in StatsBomb coordinates.
const (
	GoalX         = 120.0
	GoalY         = 40.0
	LeftPostY     = 36.34
	RightPostY    = 43.66
	NumFeatures   = 8
	headerBodyTag = "Head"
	openPlayTag   = "Open Play"
)

// FeatureNames lists the features in vector order.
var FeatureNames = []string{
	"distance",
	"angle",
	"distance_sq",
	"is_header",
	"is_penalty",
	"is_open_play",
	"is_first_time",
	"under_pressure",
}

type Features [NumFeatures]float64

// BuildFeatures computes the feature vector of a shot. It reports false when
// the shot has no location.
func BuildFeatures(s Shot) (Features, bool) {
	if !s.HasLocation() {
		return Features{}, false
	}
	x, y := *s.X, *s.Y

	distance := math.Hypot(GoalX-x, GoalY-y)
	return Features{
		distance,
		goalAngle(x, y),
		distance * distance,
		indicator(s.BodyPart == headerBodyTag),
		indicator(s.IsPenalty()),
		indicator(s.ShotType == openPlayTag),
		indicator(s.IsFirstTime),
		indicator(s.UnderPressure),
	}, true
}

// goalAngle is the angle subtended by the goal mouth at (x, y), taken as
// atan2(|cross|, dot) of the vectors to both posts.
func goalAngle(x, y float64) float64 {
	ax, ay := GoalX-x, LeftPostY-y
	bx, by := GoalX-x, RightPostY-y
	cross := ax*by - ay*bx
	dot := ax*bx + ay*by
	return math.Atan2(math.Abs(cross), dot)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
