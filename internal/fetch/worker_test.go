package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/headlines/internal/model"
	"github.com/ytget/headlines/internal/news"
)

type fakeSource struct {
	headlines []news.Headline
	err       error
	release   chan struct{}
	calls     atomic.Int32
	gotKey    atomic.Value
}

func (f *fakeSource) TopHeadlines(ctx context.Context, apiKey string) ([]news.Headline, error) {
	f.calls.Add(1)
	f.gotKey.Store(apiKey)
	if f.release != nil {
		<-f.release
	}
	return f.headlines, f.err
}

func strPtr(s string) *string { return &s }

func collect(t *testing.T, ch <-chan model.Message) []model.Message {
	t.Helper()
	var msgs []model.Message
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return msgs
			}
			msgs = append(msgs, msg)
		case <-timeout:
			t.Fatal("timed out waiting for channel to close")
			return msgs
		}
	}
}

func TestSpawn_StreamsArticlesInOrder(t *testing.T) {
	src := &fakeSource{headlines: []news.Headline{
		news.NewHeadline("A", "urlA", strPtr("descA")),
		news.NewHeadline("B", "urlB", strPtr("descB")),
		news.NewHeadline("C", "urlC", nil),
	}}
	w := NewWorker(src, 4, zerolog.Nop())

	ch, err := w.Spawn(context.Background(), "abc123")
	require.NoError(t, err)

	msgs := collect(t, ch)
	require.Len(t, msgs, 4)

	expected := []model.Article{
		{Title: "A", Description: "descA", URL: "urlA"},
		{Title: "B", Description: "descB", URL: "urlB"},
		{Title: "C", Description: model.MissingDescription, URL: "urlC"},
	}
	for i, want := range expected {
		assert.Equal(t, model.MessageData, msgs[i].Kind)
		assert.Equal(t, want, msgs[i].Article)
	}
	assert.Equal(t, model.MessageDone, msgs[3].Kind)
	assert.Equal(t, 3, msgs[3].Count)

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, "abc123", src.gotKey.Load())
}

func TestSpawn_EmptyResult(t *testing.T) {
	w := NewWorker(&fakeSource{}, 1, zerolog.Nop())

	ch, err := w.Spawn(context.Background(), "abc123")
	require.NoError(t, err)

	msgs := collect(t, ch)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.MessageDone, msgs[0].Kind)
	assert.Zero(t, msgs[0].Count)
}

func TestSpawn_FailureSendsFailedMessage(t *testing.T) {
	boom := errors.New("boom")
	w := NewWorker(&fakeSource{err: boom}, 4, zerolog.Nop())

	ch, err := w.Spawn(context.Background(), "abc123")
	require.NoError(t, err)

	msgs := collect(t, ch)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.MessageFailed, msgs[0].Kind)
	assert.ErrorIs(t, msgs[0].Err, boom)
}

func TestSpawn_EmptyKey(t *testing.T) {
	src := &fakeSource{}
	w := NewWorker(src, 4, zerolog.Nop())

	for _, key := range []string{"", "   "} {
		ch, err := w.Spawn(context.Background(), key)
		assert.ErrorIs(t, err, ErrEmptyAPIKey)
		assert.Nil(t, ch)
	}
	assert.Zero(t, src.calls.Load())
}

func TestSpawn_RejectsConcurrentFetch(t *testing.T) {
	src := &fakeSource{release: make(chan struct{})}
	w := NewWorker(src, 4, zerolog.Nop())

	ch, err := w.Spawn(context.Background(), "abc123")
	require.NoError(t, err)

	_, err = w.Spawn(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrFetchInFlight)

	close(src.release)
	collect(t, ch)

	// inFlight is cleared by a deferred call after close, so poll briefly
	require.Eventually(t, func() bool { return !w.inFlight.Load() }, time.Second, 5*time.Millisecond)

	ch, err = w.Spawn(context.Background(), "abc123")
	require.NoError(t, err)
	collect(t, ch)
}

func TestSpawn_CancelledConsumerDoesNotBlock(t *testing.T) {
	headlines := make([]news.Headline, 10)
	for i := range headlines {
		headlines[i] = news.NewHeadline("T", "U", nil)
	}
	// A buffer of one forces the worker to wait on the consumer.
	w := NewWorker(&fakeSource{headlines: headlines}, 1, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := w.Spawn(ctx, "abc123")
	require.NoError(t, err)
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(50 * time.Millisecond)
		for range ch {
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not close its channel after cancellation")
	}
	require.Eventually(t, func() bool { return !w.inFlight.Load() }, time.Second, 5*time.Millisecond)
}

func TestNewWorker_DefaultBuffer(t *testing.T) {
	w := NewWorker(&fakeSource{}, 0, zerolog.Nop())
	assert.Equal(t, DefaultBuffer, w.buffer)
}
