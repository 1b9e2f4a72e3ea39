// Package signs holds the closed-vocabulary sign repository: authored
// hand-pose keyframes for every supported token plus the interpolation
// primitive shared with the animation engine.
package signs

// LandmarkCount is the number of hand joints per pose, MediaPipe indexing.
const LandmarkCount = 21

// Landmark indices. Each finger runs base-to-tip.
const (
	Wrist = 0

	ThumbCMC = 1
	ThumbMCP = 2
	ThumbIP  = 3
	ThumbTip = 4

	IndexMCP = 5
	IndexPIP = 6
	IndexDIP = 7
	IndexTip = 8

	MiddleMCP = 9
	MiddlePIP = 10
	MiddleDIP = 11
	MiddleTip = 12

	RingMCP = 13
	RingPIP = 14
	RingDIP = 15
	RingTip = 16

	PinkyMCP = 17
	PinkyPIP = 18
	PinkyDIP = 19
	PinkyTip = 20
)

// Landmark is one normalized hand-joint coordinate. X and Y live on the
// 0..1 image plane, Z is a unitless depth offset.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandPose is an ordered sequence of 21 landmarks. The order is fixed;
// only coordinates are ever mutated.
type HandPose []Landmark

// Clone returns a deep copy of the pose.
func (p HandPose) Clone() HandPose {
	out := make(HandPose, len(p))
	copy(out, p)
	return out
}

// MirrorX returns the pose reflected across the vertical center line,
// used to derive a left hand from an authored right hand.
func (p HandPose) MirrorX() HandPose {
	out := make(HandPose, len(p))
	for i, lm := range p {
		out[i] = Landmark{X: 1 - lm.X, Y: lm.Y, Z: lm.Z}
	}
	return out
}

// InterpolatePose linearly interpolates between two poses landmark by
// landmark. When the poses differ in length the shorter length wins;
// this never happens with authored data but stays defined regardless.
func InterpolatePose(start, end HandPose, t float64) HandPose {
	n := len(start)
	if len(end) < n {
		n = len(end)
	}
	out := make(HandPose, n)
	for i := 0; i < n; i++ {
		out[i] = Landmark{
			X: start[i].X + (end[i].X-start[i].X)*t,
			Y: start[i].Y + (end[i].Y-start[i].Y)*t,
			Z: start[i].Z + (end[i].Z-start[i].Z)*t,
		}
	}
	return out
}
