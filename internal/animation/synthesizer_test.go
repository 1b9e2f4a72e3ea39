package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normanking/signavatar/internal/signs"
)

func newTestSynthesizer() (*Synthesizer, *signs.Repository) {
	repo := signs.NewRepository()
	return NewSynthesizer(repo, DefaultConfig()), repo
}

func TestEaseInOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-9)

	// Clamped outside [0,1].
	assert.Equal(t, 0.0, EaseInOutCubic(-1))
	assert.Equal(t, 1.0, EaseInOutCubic(2))

	// Monotonic non-decreasing.
	prev := 0.0
	for i := 0; i <= 100; i++ {
		v := EaseInOutCubic(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestEaseOutElastic_Endpoints(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutElastic(0))
	assert.Equal(t, 1.0, EaseOutElastic(1))
}

func TestSynthesizer_Duration(t *testing.T) {
	synth, repo := newTestSynthesizer()

	tests := []struct {
		token string
		want  int
	}{
		{"A", 800},           // letter 800, static -200, clamped up to 800
		{"7", 800},           // number 1000, static -200
		{"Good night", 2000}, // phrase, closing motion has no adjustment
		{"Hello", 2100},      // animated 1800, wave +300
		{"Thank you", 1800},  // animated, outward
		{"Happy", 1800},      // word 1500, circular +300
		{"Mother", 1300},     // word static
		{"Dog", 1500},        // word, patting
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			def := repo.Get(tt.token)
			assert.Equal(t, tt.want, synth.Duration(def), "duration for %s", tt.token)
		})
	}
}

func TestSynthesizer_DurationClamped(t *testing.T) {
	synth, repo := newTestSynthesizer()
	for _, token := range repo.Tokens() {
		d := synth.Duration(repo.Get(token))
		assert.GreaterOrEqual(t, d, 800, "duration lower bound for %s", token)
		assert.LessOrEqual(t, d, 2500, "duration upper bound for %s", token)
	}
}

func TestSynthesizer_Generate_SingleSign(t *testing.T) {
	synth, _ := newTestSynthesizer()

	seq := synth.Generate([]string{"A"})
	require.Len(t, seq.Schedule, 1)

	entry := seq.Schedule[0]
	assert.Equal(t, "A", entry.Sign)
	assert.Equal(t, 0, entry.StartTime)
	assert.Equal(t, 800, entry.Duration)
	assert.Equal(t, entry.Duration, seq.TotalDuration)

	// 800ms at 30fps is 24 frames; no transition after the last sign.
	assert.Equal(t, 24, entry.FrameCount)
	assert.Len(t, seq.Frames, 24)

	for _, f := range seq.Frames {
		assert.Equal(t, "A", f.Sign)
		assert.Len(t, f.RightHand, signs.LandmarkCount)
	}
}

func TestSynthesizer_Generate_TransitionsBetweenSigns(t *testing.T) {
	synth, _ := newTestSynthesizer()

	seq := synth.Generate([]string{"A", "B"})
	require.Len(t, seq.Schedule, 2)

	// Transition occupies the timeline between the two signs.
	assert.Equal(t, seq.Schedule[0].EndTime+300, seq.Schedule[1].StartTime)
	assert.Equal(t, seq.Schedule[1].EndTime, seq.TotalDuration)

	var transitions int
	for _, f := range seq.Frames {
		if f.Sign == "transition" {
			transitions++
			assert.Equal(t, "transition", f.MotionType)
			assert.Equal(t, FacialExpression{Mouth: "closed", Eyes: "open"}, f.Facial)
			assert.Equal(t, BodyPosture{}, f.Body)
			assert.Nil(t, f.LeftHand)
		}
	}
	// 300ms at 30fps.
	assert.Equal(t, 9, transitions)
}

func TestSynthesizer_Generate_Empty(t *testing.T) {
	synth, _ := newTestSynthesizer()

	seq := synth.Generate(nil)
	assert.Zero(t, seq.TotalDuration)
	assert.Empty(t, seq.Frames)
	assert.Empty(t, seq.Schedule)
}

func TestSynthesizer_Generate_UnknownTokenRendersFallback(t *testing.T) {
	synth, _ := newTestSynthesizer()

	seq := synth.Generate([]string{"definitely-not-a-sign"})
	require.NotEmpty(t, seq.Frames)
	for _, f := range seq.Frames {
		assert.Len(t, f.RightHand, signs.LandmarkCount)
	}
}

func TestMotionTable_CoversCatalog(t *testing.T) {
	repo := signs.NewRepository()
	for _, token := range repo.Tokens() {
		def := repo.Get(token)
		_, ok := motionTable[def.MotionType]
		assert.True(t, ok, "no motion function for %s (tag %s)", token, def.MotionType)
	}
}

func TestMotion_TwoHandedOutputs(t *testing.T) {
	repo := signs.NewRepository()

	// Mirrored-pair motions always produce a left hand.
	for _, token := range []string{"Parent", "Grey", "Loud", "Bedroom", "Daughter"} {
		def := repo.Get(token)
		right, left := motionFor(def.MotionType)(def, 0.3)
		assert.Len(t, right, signs.LandmarkCount, token)
		assert.NotNil(t, left, token)
	}

	// One-handed wave keeps the left hand out of frame.
	hello := repo.Get("Hello")
	_, left := motionWave(hello, 0.3)
	assert.Nil(t, left)
}

func TestMotion_PassingMirrorsLeft(t *testing.T) {
	repo := signs.NewRepository()
	def := repo.Get("Grey")

	right, left := motionPassing(def, 0.5)
	base := def.FirstPose()
	amt := 0.5 * 0.15

	assert.InDelta(t, base[0].X+amt, right[0].X, 1e-9)
	assert.InDelta(t, 1-base[0].X-amt, left[0].X, 1e-9)
	assert.Equal(t, base[0].Y, left[0].Y)
}

func TestMotion_WaveReturnsToInterpolatedBase(t *testing.T) {
	repo := signs.NewRepository()
	def := repo.Get("Hello")
	start := def.FirstPose()
	end := def.LastPose()

	// sin(4πt) is zero at t=0, 0.5 and 1, leaving only the keyframe
	// interpolation.
	for _, tt := range []float64{0, 0.5, 1} {
		right, _ := motionWave(def, tt)
		want := start[0].X + (end[0].X-start[0].X)*tt
		assert.InDelta(t, want, right[0].X, 1e-9, "t=%v", tt)
	}
}

func TestMotion_LayersOverKeyframeInterpolation(t *testing.T) {
	synth, repo := newTestSynthesizer()
	def := repo.Get("Hello")
	require.True(t, def.Animated())

	seq := synth.Generate([]string{"Hello"})
	require.NotEmpty(t, seq.Frames)

	// The last frame sits at eased progress 1 with a zero wave offset,
	// so the hand must have reached the second keyframe.
	last := seq.Frames[len(seq.Frames)-1]
	assert.InDelta(t, def.LastPose()[0].X, last.RightHand[0].X, 1e-9)
	assert.NotEqual(t, def.FirstPose()[0].X, last.RightHand[0].X)
}

func TestMotion_StaticDoesNotMutateCatalog(t *testing.T) {
	repo := signs.NewRepository()
	def := repo.Get("Mother")
	before := def.FirstPose()[0]

	right, _ := motionStatic(def, 0.7)
	right[0].X = 99

	assert.Equal(t, before, def.FirstPose()[0], "catalog pose mutated")
}

func TestFrameTimestampsMonotonic(t *testing.T) {
	synth, _ := newTestSynthesizer()

	seq := synth.Generate([]string{"Hello", "Today", "A"})
	prev := math.Inf(-1)
	for i, f := range seq.Frames {
		assert.GreaterOrEqual(t, f.Timestamp, prev, "frame %d timestamp regressed", i)
		prev = f.Timestamp
	}
}

func TestPostureFor_UnknownRegionIsNeutral(t *testing.T) {
	assert.Equal(t, BodyPosture{}, PostureFor("elbow"))
	assert.Equal(t, BodyPosture{HeadTilt: 0.2}, PostureFor("forehead"))
}

func TestExpressionFor_UnknownIsNeutral(t *testing.T) {
	assert.Equal(t, "closed", ExpressionFor("confused").Mouth)
	assert.Equal(t, 0.3, ExpressionFor("question").Eyebrows)
}
