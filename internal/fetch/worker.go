package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/headlines/internal/model"
	"github.com/ytget/headlines/internal/news"
)

var (
	// ErrEmptyAPIKey is returned by Spawn when no key is configured
	ErrEmptyAPIKey = errors.New("fetch: api key is empty")

	// ErrFetchInFlight is returned by Spawn while a previous fetch is still running
	ErrFetchInFlight = errors.New("fetch: a fetch is already in flight")
)

// DefaultBuffer is used when NewWorker gets a non-positive buffer size
const DefaultBuffer = 21

// Worker fetches headlines on a background goroutine
type Worker struct {
	source   Source
	buffer   int
	log      zerolog.Logger
	inFlight atomic.Bool
}

// NewWorker creates a worker. buffer should be at least the page size plus
// one so a full page and its terminal message never block the sender.
func NewWorker(source Source, buffer int, log zerolog.Logger) *Worker {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Worker{
		source: source,
		buffer: buffer,
		log:    log,
	}
}

// Spawn starts one fetch. The returned channel receives every article as a
// MessageData in API order, then exactly one MessageDone or MessageFailed,
// and is then closed. Cancelling ctx only stops pending sends; the request
// itself runs to completion.
func (w *Worker) Spawn(ctx context.Context, apiKey string) (<-chan model.Message, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrEmptyAPIKey
	}
	if !w.inFlight.CompareAndSwap(false, true) {
		return nil, ErrFetchInFlight
	}

	out := make(chan model.Message, w.buffer)
	log := w.log.With().Str("fetch_id", uuid.NewString()).Logger()
	log.Info().Msg("fetch started")

	go w.run(ctx, apiKey, out, log)
	return out, nil
}

// run performs the request and publishes its outcome
func (w *Worker) run(ctx context.Context, apiKey string, out chan<- model.Message, log zerolog.Logger) {
	defer w.inFlight.Store(false)
	defer close(out)

	headlines, err := w.source.TopHeadlines(context.WithoutCancel(ctx), apiKey)
	if err != nil {
		log.Error().Err(err).Msg("fetch failed")
		send(ctx, out, model.FailedMessage(fmt.Errorf("fetching headlines: %w", err)), log)
		return
	}

	for i, h := range headlines {
		if !send(ctx, out, model.DataMessage(toArticle(h)), log) {
			log.Warn().Int("delivered", i).Int("total", len(headlines)).Msg("consumer gone, stopping fetch")
			return
		}
	}

	if send(ctx, out, model.DoneMessage(len(headlines)), log) {
		log.Info().Int("articles", len(headlines)).Msg("fetch completed")
	}
}

// send delivers msg unless ctx is cancelled first. A dropped message is
// logged and reported as false.
func send(ctx context.Context, out chan<- model.Message, msg model.Message, log zerolog.Logger) bool {
	select {
	case out <- msg:
		return true
	case <-ctx.Done():
		log.Debug().Str("kind", msg.Kind.String()).Err(ctx.Err()).Msg("message dropped")
		return false
	}
}

func toArticle(h news.Headline) model.Article {
	desc, ok := h.Description()
	return model.NewArticle(h.Title(), h.URL(), desc, ok)
}

var _ Spawner = (*Worker)(nil)
