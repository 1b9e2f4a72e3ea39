// Package pipeline wires the text normalizer, sign repository and
// motion synthesizer into the end-to-end text-to-animation flow.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/normanking/signavatar/internal/animation"
	"github.com/normanking/signavatar/internal/bus"
	"github.com/normanking/signavatar/internal/nlp"
	"github.com/normanking/signavatar/internal/signs"
)

// Translation is the complete result of one text-to-animation run.
type Translation struct {
	Text      string              `json:"text"`
	NLP       *nlp.Result         `json:"nlp"`
	Animation *animation.Sequence `json:"animation"`
}

// Pipeline owns the three processing stages and the event bus.
type Pipeline struct {
	repo       *signs.Repository
	normalizer *nlp.Normalizer
	synth      *animation.Synthesizer
	events     *bus.EventBus
	logger     zerolog.Logger
}

// New assembles a pipeline over a fresh repository. The bus may be nil
// when no component cares about lifecycle events.
func New(animCfg animation.Config, nlpCfg nlp.Config, events *bus.EventBus) *Pipeline {
	repo := signs.NewRepository()
	p := &Pipeline{
		repo:       repo,
		normalizer: nlp.NewNormalizer(repo, nlpCfg),
		synth:      animation.NewSynthesizer(repo, animCfg),
		events:     events,
		logger:     log.With().Str("component", "pipeline").Logger(),
	}
	p.checkVocabulary()
	return p
}

// Repository exposes the sign catalog for API handlers.
func (p *Pipeline) Repository() *signs.Repository {
	return p.repo
}

// checkVocabulary warns about normalizer mappings whose sign token is
// missing from the repository. Those tokens still translate, they just
// render the fallback pose.
func (p *Pipeline) checkVocabulary() {
	seen := map[string]struct{}{}
	for _, sign := range nlp.WordSigns {
		seen[sign] = struct{}{}
	}
	for _, sign := range nlp.Phrases {
		seen[sign] = struct{}{}
	}
	for sign := range seen {
		if !p.repo.Contains(sign) {
			p.logger.Warn().
				Str("sign", sign).
				Msg("vocabulary maps to a sign missing from the repository")
		}
	}
}

// Translate runs the full pipeline on raw text. Empty or unrecognized
// input is not an error; it yields an empty sequence with zero
// duration.
func (p *Pipeline) Translate(ctx context.Context, text string) (*Translation, error) {
	select {
	case <-ctx.Done():
		p.publish(bus.EventTypeTranslationFailed, map[string]any{"reason": ctx.Err().Error()})
		return nil, ctx.Err()
	default:
	}

	p.publish(bus.EventTypeTranslationStarted, map[string]any{"text": text})

	res := p.normalizer.Normalize(text)
	p.publish(bus.EventTypeTextNormalized, map[string]any{
		"text":  text,
		"signs": res.Signs,
	})

	seq := p.synth.Generate(res.Signs)

	p.logger.Info().
		Str("text", text).
		Int("signs", len(res.Signs)).
		Int("frames", len(seq.Frames)).
		Int("duration_ms", seq.TotalDuration).
		Msg("translation complete")

	p.publish(bus.EventTypeTranslationCompleted, map[string]any{
		"signs":       res.Signs,
		"duration_ms": seq.TotalDuration,
	})

	return &Translation{Text: text, NLP: res, Animation: seq}, nil
}

func (p *Pipeline) publish(t bus.EventType, data map[string]any) {
	if p.events == nil {
		return
	}
	p.events.Publish(bus.Event{Type: t, Data: data})
}
