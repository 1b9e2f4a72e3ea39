package animation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/normanking/signavatar/internal/signs"
)

// motionFunc deforms a sign's keyframe-interpolated base pose at eased
// progress t in [0,1]. A nil left pose means the left hand stays out of
// frame.
type motionFunc func(def *signs.Definition, t float64) (right, left signs.HandPose)

// motionTable maps every catalog motion tag to its kinematic rule.
// Unknown tags fall back to motionStatic.
var motionTable = map[signs.MotionType]motionFunc{
	"static":          motionStatic,
	"wave":            motionWave,
	"circular":        motionCircular,
	"outward":         motionOutward,
	"downward":        motionDownward,
	"rising":          motionRising,
	"opening":         motionOpening,
	"closing":         motionClosing,
	"wiggling":        motionWiggling,
	"tapping":         motionTapping,
	"brushing":        motionBrushing,
	"rocking":         motionRocking,
	"alternating":     motionAlternating,
	"swimming":        motionSwimming,
	"flapping":        motionFlapping,
	"squeezing":       motionSqueezing,
	"patting":         motionPatting,
	"pointing_out":    motionPointing,
	"pointing_side":   motionPointing,
	"pointing_down":   motionPointing,
	"opening_closing": motionOpenClose,
	"across":          motionAcross,
	"sliding":         motionSliding,
	"passing":         motionPassing,
	"expanding":       motionExpanding,
	"touching":        motionTouching,
	"twisting":        motionTwisting,
	"questioning":     motionQuestioning,
	"cradling":        motionCradling,
	"resting":         motionResting,
	"box_shape":       motionBox,
}

func motionFor(m signs.MotionType) motionFunc {
	if fn, ok := motionTable[m]; ok {
		return fn
	}
	return motionStatic
}

// shift returns a copy of p translated by (dx, dy, dz).
func shift(p signs.HandPose, dx, dy, dz float64) signs.HandPose {
	out := p.Clone()
	for i := range out {
		out[i].X += dx
		out[i].Y += dy
		out[i].Z += dz
	}
	return out
}

// basePose returns the keyframe-interpolated right hand at eased
// progress t. Single-keyframe signs hold their authored pose; the
// motion deformation is layered on top of this base either way.
func basePose(def *signs.Definition, t float64) signs.HandPose {
	if def.Animated() {
		return signs.InterpolatePose(def.FirstPose(), def.LastPose(), t)
	}
	return def.FirstPose().Clone()
}

func motionStatic(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	right := basePose(def, t)
	if def.TwoHands {
		return right, right.Clone()
	}
	return right, nil
}

// Side-to-side oscillation, two full cycles per sign.
func motionWave(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	offset := math.Sin(t*math.Pi*4) * 0.05
	return shift(basePose(def, t), offset, 0, 0), nil
}

func motionCircular(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	angle := t * math.Pi * 2
	const radius = 0.03
	return shift(basePose(def, t), math.Cos(angle)*radius, math.Sin(angle)*radius, 0), nil
}

// Outward with a single keyframe drifts down and toward the viewer; an
// authored end keyframe already carries the travel in the base
// interpolation.
func motionOutward(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	base := basePose(def, t)
	if def.Animated() {
		return base, nil
	}
	return shift(base, 0, t*0.1, -t*0.05), nil
}

func motionDownward(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	return shift(basePose(def, t), 0, t*0.15, 0), nil
}

func motionRising(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	base := basePose(def, t)
	if def.Animated() {
		return base, nil
	}
	return shift(base, 0, -t*0.15, 0), nil
}

func motionOpening(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	rotation := t * 0.1
	return shift(basePose(def, t), rotation, 0, -rotation*0.5), nil
}

// Closing pulls every landmark toward the vertical centerline.
func motionClosing(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	amount := t * 0.05
	out := basePose(def, t)
	for i := range out {
		out[i].X += (0.5 - out[i].X) * amount
		out[i].Z += amount
	}
	return out, nil
}

// Each landmark wiggles on its own phase so fingers move independently.
func motionWiggling(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	out := basePose(def, t)
	for i := range out {
		out[i].X += math.Sin(t*math.Pi*6+float64(i)*0.5) * 0.02
	}
	return out, nil
}

func motionTapping(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	tap := math.Abs(math.Sin(t*math.Pi*4)) * 0.03
	right := shift(basePose(def, t), 0, tap, -tap)
	if def.TwoHands {
		return right, right.Clone()
	}
	return right, nil
}

func motionBrushing(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	brush := math.Sin(t*math.Pi*2) * 0.08
	return shift(basePose(def, t), brush, 0, 0), nil
}

func motionRocking(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	rock := math.Sin(t*math.Pi*4) * 0.04
	right := shift(basePose(def, t), 0, rock, rock*0.5)
	if def.TwoHands {
		return right, right.Clone()
	}
	return right, nil
}

// Hands move in counterphase, the left mirrored across the centerline.
func motionAlternating(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	alt := math.Sin(t*math.Pi*4) * 0.05
	base := basePose(def, t)
	right := shift(base, 0, alt, 0)
	left := shift(base.MirrorX(), 0, -alt, 0)
	return right, left
}

func motionSwimming(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	swim := math.Sin(t*math.Pi*6) * 0.05
	return shift(basePose(def, t), t*0.1, swim, 0), nil
}

// Flapping bends only the finger landmarks; wrist and thumb stay put.
func motionFlapping(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	flap := math.Abs(math.Sin(t*math.Pi*6)) * 0.04
	out := basePose(def, t)
	for i := signs.IndexMCP; i < len(out); i++ {
		out[i].Y -= flap
	}
	return out, nil
}

func motionSqueezing(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	squeeze := math.Sin(t*math.Pi*4) * 0.02
	return shift(basePose(def, t), 0, 0, squeeze), nil
}

func motionPatting(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	pat := math.Abs(math.Sin(t*math.Pi*4)) * 0.05
	right := shift(basePose(def, t), 0, pat, 0)
	if def.TwoHands {
		return right, right.Clone()
	}
	return right, nil
}

func motionPointing(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	return shift(basePose(def, t), 0, 0, -t*0.05), nil
}

// Thumb and index tips separate and meet like a beak.
func motionOpenClose(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	gap := math.Abs(math.Sin(t*math.Pi*4)) * 0.03
	out := basePose(def, t)
	out[signs.ThumbTip].Y += gap
	out[signs.IndexTip].Y -= gap
	return out, nil
}

func motionAcross(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	return shift(basePose(def, t), t*0.15, 0, 0), nil
}

func motionSliding(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	slide := math.Sin(t*math.Pi*2) * 0.08
	right := shift(basePose(def, t), 0, slide, 0)
	if def.TwoHands {
		return right, right.Clone()
	}
	return right, nil
}

func motionPassing(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	amt := t * 0.15
	base := basePose(def, t)
	return shift(base, amt, 0, 0), shift(base.MirrorX(), -amt, 0, 0)
}

func motionExpanding(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	amt := t * 0.12
	base := basePose(def, t)
	return shift(base, amt, 0, 0), shift(base.MirrorX(), -amt, 0, 0)
}

// Touching rises toward the contact point and backs off, one arc.
func motionTouching(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	touch := math.Sin(t*math.Pi) * 0.05
	return shift(basePose(def, t), 0, 0, touch), nil
}

// Twisting rotates the pose around its centroid in the image plane.
func motionTwisting(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	twist := math.Sin(t*math.Pi*2) * 0.04
	base := basePose(def, t)

	var cx, cy float64
	for _, lm := range base {
		cx += lm.X
		cy += lm.Y
	}
	cx /= float64(len(base))
	cy /= float64(len(base))

	rot := mgl64.Rotate2D(twist)
	out := base.Clone()
	for i := range out {
		v := rot.Mul2x1(mgl64.Vec2{out[i].X - cx, out[i].Y - cy})
		out[i].X = cx + v.X()
		out[i].Y = cy + v.Y()
	}
	return out, nil
}

func motionQuestioning(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	q := math.Sin(t*math.Pi*2) * 0.05
	return shift(basePose(def, t), q, -q*0.5, 0), nil
}

func motionCradling(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	cradle := math.Sin(t*math.Pi*2) * 0.04
	base := basePose(def, t)
	return shift(base, 0, cradle, 0), shift(base.MirrorX(), 0, -cradle, 0)
}

func motionResting(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	right := basePose(def, t)
	if def.TwoHands {
		return right, right.Clone()
	}
	return right, nil
}

// Box traces four straight segments: right, down, left, up.
func motionBox(def *signs.Definition, t float64) (signs.HandPose, signs.HandPose) {
	segments := [4][2]float64{{0, 0.1}, {0.1, 0}, {0, -0.1}, {-0.1, 0}}
	seg := int(t*4) % 4
	segT := math.Mod(t*4, 1)

	ox := segments[seg][0] * segT
	oy := segments[seg][1] * segT

	base := basePose(def, t)
	return shift(base, ox, oy, 0), shift(base.MirrorX(), -ox, oy, 0)
}
