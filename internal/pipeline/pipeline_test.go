package pipeline

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normanking/signavatar/internal/animation"
	"github.com/normanking/signavatar/internal/bus"
	"github.com/normanking/signavatar/internal/nlp"
)

func TestPipeline_Translate(t *testing.T) {
	p := New(animation.DefaultConfig(), nlp.DefaultConfig(), nil)

	res, err := p.Translate(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello"}, res.NLP.Signs)
	assert.NotEmpty(t, res.Animation.Frames)
	assert.Equal(t, res.Animation.TotalDuration, res.Animation.Schedule[0].EndTime)
}

func TestPipeline_Translate_EmptyTextYieldsEmptyAnimation(t *testing.T) {
	p := New(animation.DefaultConfig(), nlp.DefaultConfig(), nil)

	for _, text := range []string{"", "   "} {
		res, err := p.Translate(context.Background(), text)
		require.NoError(t, err, "text %q", text)
		assert.Empty(t, res.NLP.Signs)
		assert.Empty(t, res.Animation.Frames)
		assert.Zero(t, res.Animation.TotalDuration)
	}
}

func TestPipeline_Translate_CancelledContext(t *testing.T) {
	p := New(animation.DefaultConfig(), nlp.DefaultConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Translate(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_Translate_UnmappableTextYieldsEmptySequence(t *testing.T) {
	p := New(animation.DefaultConfig(), nlp.DefaultConfig(), nil)

	// Single stopword with no sign mapping: nothing to animate, but
	// not an error either.
	res, err := p.Translate(context.Background(), "the")
	require.NoError(t, err)
	assert.Empty(t, res.NLP.Signs)
	assert.Zero(t, res.Animation.TotalDuration)
}

func TestPipeline_PublishesLifecycleEvents(t *testing.T) {
	events := bus.NewEventBus()

	var mu sync.Mutex
	got := map[bus.EventType]int{}
	done := make(chan struct{}, 2)

	events.Subscribe(bus.EventTypeTranslationStarted, func(e bus.Event) {
		mu.Lock()
		got[e.Type]++
		mu.Unlock()
		done <- struct{}{}
	})
	events.Subscribe(bus.EventTypeTranslationCompleted, func(e bus.Event) {
		mu.Lock()
		got[e.Type]++
		mu.Unlock()
		done <- struct{}{}
	})

	p := New(animation.DefaultConfig(), nlp.DefaultConfig(), events)
	_, err := p.Translate(context.Background(), "hello")
	require.NoError(t, err)

	<-done
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, got[bus.EventTypeTranslationStarted])
	assert.Equal(t, 1, got[bus.EventTypeTranslationCompleted])
}
