package signs

// SignType informs the default animation duration for a sign.
type SignType string

const (
	TypeLetter   SignType = "letter"
	TypeNumber   SignType = "number"
	TypeWord     SignType = "word"
	TypePhrase   SignType = "phrase"
	TypeAnimated SignType = "animated"
)

// MotionType selects the kinematic deformation applied on top of
// keyframe interpolation. The closed set lives in the animation package;
// the repository only carries the tag.
type MotionType string

const MotionStatic MotionType = "static"

// Keyframe is one authored hand pose pair. Left is nil for one-handed
// signs.
type Keyframe struct {
	Right HandPose `json:"right_hand"`
	Left  HandPose `json:"left_hand,omitempty"`
}

// Definition is one immutable entry of the sign catalog. A definition
// has one keyframe (static pose) or two (start and end pose).
type Definition struct {
	Token            string     `json:"token"`
	Type             SignType   `json:"sign_type"`
	Keyframes        []Keyframe `json:"keyframes"`
	MotionType       MotionType `json:"motion_type"`
	FacialExpression string     `json:"facial_expression"`
	BodyRegion       string     `json:"body_region"`
	TwoHands         bool       `json:"two_hands"`
}

// FirstPose returns the right hand of the first keyframe.
func (d *Definition) FirstPose() HandPose {
	return d.Keyframes[0].Right
}

// LastPose returns the right hand of the final keyframe.
func (d *Definition) LastPose() HandPose {
	return d.Keyframes[len(d.Keyframes)-1].Right
}

// Animated reports whether the definition interpolates between two
// keyframes.
func (d *Definition) Animated() bool {
	return len(d.Keyframes) >= 2
}

// staticSign builds a one-keyframe definition. Two-handed signs reuse
// the right-hand pose for the left hand, matching the authored data.
func staticSign(token string, t SignType, pose HandPose, opts ...signOption) *Definition {
	d := &Definition{
		Token:            token,
		Type:             t,
		MotionType:       MotionStatic,
		FacialExpression: "neutral",
		BodyRegion:       "neutral",
	}
	for _, opt := range opts {
		opt(d)
	}
	kf := Keyframe{Right: pose}
	if d.TwoHands {
		kf.Left = pose
	}
	d.Keyframes = []Keyframe{kf}
	return d
}

// animatedSign builds a two-keyframe definition interpolating from
// start to end.
func animatedSign(token string, start, end HandPose, opts ...signOption) *Definition {
	d := &Definition{
		Token:            token,
		Type:             TypeAnimated,
		MotionType:       MotionStatic,
		FacialExpression: "neutral",
		BodyRegion:       "neutral",
	}
	for _, opt := range opts {
		opt(d)
	}
	start2, end2 := Keyframe{Right: start}, Keyframe{Right: end}
	if d.TwoHands {
		start2.Left = start
		end2.Left = end
	}
	d.Keyframes = []Keyframe{start2, end2}
	return d
}

type signOption func(*Definition)

func withMotion(m MotionType) signOption {
	return func(d *Definition) { d.MotionType = m }
}

func withFacial(expr string) signOption {
	return func(d *Definition) { d.FacialExpression = expr }
}

func withRegion(region string) signOption {
	return func(d *Definition) { d.BodyRegion = region }
}

func twoHanded() signOption {
	return func(d *Definition) { d.TwoHands = true }
}
