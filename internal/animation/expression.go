package animation

import "math"

// FacialExpression describes the face channels rendered alongside the
// hands. Mouth and Eyes are named shapes resolved by the renderer.
type FacialExpression struct {
	Eyebrows float64 `json:"eyebrows"`
	Mouth    string  `json:"mouth"`
	Eyes     string  `json:"eyes"`
}

// BodyPosture describes torso and head orientation for a frame.
// Angles are normalized offsets, not degrees.
type BodyPosture struct {
	ShoulderRotation float64 `json:"shoulder_rotation"`
	TorsoTilt        float64 `json:"torso_tilt"`
	HeadTilt         float64 `json:"head_tilt"`
}

var facialExpressions = map[string]FacialExpression{
	"neutral":  {Eyebrows: 0, Mouth: "closed", Eyes: "open"},
	"smile":    {Eyebrows: 0.1, Mouth: "smile", Eyes: "open"},
	"sad":      {Eyebrows: -0.2, Mouth: "frown", Eyes: "droopy"},
	"question": {Eyebrows: 0.3, Mouth: "open_slight", Eyes: "wide"},
	"calm":     {Eyebrows: 0, Mouth: "closed", Eyes: "relaxed"},
	"frown":    {Eyebrows: -0.3, Mouth: "frown", Eyes: "narrow"},
	"intense":  {Eyebrows: 0.2, Mouth: "open", Eyes: "wide"},
}

var bodyPostures = map[string]BodyPosture{
	"neutral":  {},
	"head":     {HeadTilt: 0.1},
	"chest":    {TorsoTilt: 0.05},
	"face":     {HeadTilt: 0.15},
	"forehead": {HeadTilt: 0.2},
	"chin":     {HeadTilt: -0.1},
	"ears":     {ShoulderRotation: 0.1},
	"temple":   {ShoulderRotation: 0.05, HeadTilt: 0.1},
	"nose":     {HeadTilt: 0.05},
	"mouth":    {},
	"lips":     {},
	"cheek":    {ShoulderRotation: 0.05, HeadTilt: 0.05},
	"eyes":     {HeadTilt: 0.1},
	"ear":      {ShoulderRotation: 0.1, HeadTilt: 0.05},
	"thigh":    {TorsoTilt: 0.1, HeadTilt: -0.1},
}

// ExpressionFor resolves a facial expression name, defaulting to
// neutral for unknown names.
func ExpressionFor(name string) FacialExpression {
	if e, ok := facialExpressions[name]; ok {
		return e
	}
	return facialExpressions["neutral"]
}

// PostureFor resolves a body region to its posture, defaulting to
// neutral.
func PostureFor(region string) BodyPosture {
	if p, ok := bodyPostures[region]; ok {
		return p
	}
	return bodyPostures["neutral"]
}

// posed returns the posture with a small sinusoidal shoulder sway so
// the avatar never looks frozen mid-sign.
func posed(p BodyPosture, progress float64) BodyPosture {
	p.ShoulderRotation += math.Sin(progress*2*math.Pi) * 0.02
	return p
}
