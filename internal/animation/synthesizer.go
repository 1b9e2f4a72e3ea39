// Package animation expands discrete sign keyframes into a timed,
// eased sequence of interpolated poses with per-motion kinematic rules
// and neutral transitions between consecutive signs.
package animation

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/normanking/signavatar/internal/signs"
)

// Config controls timing of synthesized sequences. All durations are
// in milliseconds.
type Config struct {
	FPS                int `mapstructure:"fps"`
	DefaultDuration    int `mapstructure:"default_sign_duration"`
	TransitionDuration int `mapstructure:"transition_duration"`
	MinDuration        int `mapstructure:"min_sign_duration"`
	MaxDuration        int `mapstructure:"max_sign_duration"`
}

// DefaultConfig returns the standard 30fps timing profile.
func DefaultConfig() Config {
	return Config{
		FPS:                30,
		DefaultDuration:    1500,
		TransitionDuration: 300,
		MinDuration:        800,
		MaxDuration:        2500,
	}
}

// Frame is one rendered instant of the animation.
type Frame struct {
	FrameNumber int              `json:"frame_number"`
	TotalFrames int              `json:"total_frames"`
	Timestamp   float64          `json:"timestamp"`
	Progress    float64          `json:"progress"`
	Sign        string           `json:"sign"`
	RightHand   signs.HandPose   `json:"right_hand"`
	LeftHand    signs.HandPose   `json:"left_hand,omitempty"`
	Facial      FacialExpression `json:"facial_expression"`
	Body        BodyPosture      `json:"body_posture"`
	MotionType  string           `json:"motion_type"`
	TwoHands    bool             `json:"two_hands"`
}

// ScheduleEntry records where one sign sits on the sequence timeline.
type ScheduleEntry struct {
	Sign       string `json:"sign"`
	StartTime  int    `json:"start_time"`
	EndTime    int    `json:"end_time"`
	Duration   int    `json:"duration"`
	FrameStart int    `json:"frame_start"`
	FrameCount int    `json:"frame_count"`
}

// Sequence is a complete synthesized animation.
type Sequence struct {
	Signs         []string        `json:"signs"`
	TotalDuration int             `json:"total_duration"`
	Frames        []Frame         `json:"frames"`
	Schedule      []ScheduleEntry `json:"schedule"`
}

// Synthesizer turns ordered sign tokens into frame sequences using the
// sign repository's keyframes.
type Synthesizer struct {
	repo   *signs.Repository
	cfg    Config
	logger zerolog.Logger
}

// NewSynthesizer builds a synthesizer over the given repository.
func NewSynthesizer(repo *signs.Repository, cfg Config) *Synthesizer {
	if cfg.FPS <= 0 {
		cfg = DefaultConfig()
	}
	return &Synthesizer{
		repo:   repo,
		cfg:    cfg,
		logger: log.With().Str("component", "animation").Logger(),
	}
}

// Duration computes the display time for a sign from its type and
// motion, clamped to the configured bounds.
func (s *Synthesizer) Duration(def *signs.Definition) int {
	d := s.cfg.DefaultDuration

	switch def.Type {
	case signs.TypeLetter:
		d = 800
	case signs.TypeNumber:
		d = 1000
	case signs.TypePhrase:
		d = 2000
	case signs.TypeAnimated:
		d = 1800
	}

	switch def.MotionType {
	case "circular", "wave", "alternating":
		d += 300
	case "static":
		d -= 200
	}

	if d < s.cfg.MinDuration {
		d = s.cfg.MinDuration
	}
	if d > s.cfg.MaxDuration {
		d = s.cfg.MaxDuration
	}
	return d
}

// Generate synthesizes the full sequence for an ordered token list.
// Unknown tokens render the repository fallback sign.
func (s *Synthesizer) Generate(tokens []string) *Sequence {
	seq := &Sequence{
		Signs:    append([]string{}, tokens...),
		Frames:   []Frame{},
		Schedule: []ScheduleEntry{},
	}

	currentTime := 0
	for i, token := range tokens {
		def := s.repo.Get(token)
		duration := s.Duration(def)

		frames := s.signFrames(token, def, duration, currentTime)
		seq.Schedule = append(seq.Schedule, ScheduleEntry{
			Sign:       token,
			StartTime:  currentTime,
			EndTime:    currentTime + duration,
			Duration:   duration,
			FrameStart: len(seq.Frames),
			FrameCount: len(frames),
		})
		seq.Frames = append(seq.Frames, frames...)
		currentTime += duration

		if i < len(tokens)-1 {
			next := s.repo.Get(tokens[i+1])
			seq.Frames = append(seq.Frames, s.transitionFrames(def, next, currentTime)...)
			currentTime += s.cfg.TransitionDuration
		}
	}

	seq.TotalDuration = currentTime

	s.logger.Debug().
		Strs("signs", tokens).
		Int("frames", len(seq.Frames)).
		Int("duration_ms", seq.TotalDuration).
		Msg("sequence generated")

	return seq
}

func (s *Synthesizer) frameCount(durationMs, min int) int {
	n := int(math.Round(float64(durationMs) / 1000 * float64(s.cfg.FPS)))
	if n < min {
		n = min
	}
	return n
}

func (s *Synthesizer) signFrames(token string, def *signs.Definition, duration, startTime int) []Frame {
	total := s.frameCount(duration, 5)
	motion := motionFor(def.MotionType)
	facial := ExpressionFor(def.FacialExpression)
	posture := PostureFor(def.BodyRegion)

	frames := make([]Frame, 0, total)
	for n := 0; n < total; n++ {
		progress := float64(n) / math.Max(float64(total-1), 1)
		eased := EaseInOutCubic(progress)

		right, left := motion(def, eased)

		frames = append(frames, Frame{
			FrameNumber: n,
			TotalFrames: total,
			Timestamp:   float64(startTime) + float64(n)*1000/float64(s.cfg.FPS),
			Progress:    eased,
			Sign:        token,
			RightHand:   right,
			LeftHand:    left,
			Facial:      facial,
			Body:        posed(posture, eased),
			MotionType:  string(def.MotionType),
			TwoHands:    def.TwoHands,
		})
	}
	return frames
}

// transitionFrames bridge the end pose of one sign to the start pose of
// the next with a neutral face and posture.
func (s *Synthesizer) transitionFrames(from, to *signs.Definition, startTime int) []Frame {
	total := s.frameCount(s.cfg.TransitionDuration, 3)

	fromHand := from.LastPose()
	toHand := to.FirstPose()

	frames := make([]Frame, 0, total)
	for n := 0; n < total; n++ {
		progress := float64(n) / math.Max(float64(total-1), 1)
		eased := EaseInOutCubic(progress)

		frames = append(frames, Frame{
			FrameNumber: n,
			TotalFrames: total,
			Timestamp:   float64(startTime) + float64(n)*1000/float64(s.cfg.FPS),
			Progress:    eased,
			Sign:        "transition",
			RightHand:   signs.InterpolatePose(fromHand, toHand, eased),
			Facial:      ExpressionFor("neutral"),
			Body:        PostureFor("neutral"),
			MotionType:  "transition",
		})
	}
	return frames
}
