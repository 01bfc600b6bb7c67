package appstate

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/model"
)

// ErrFetchInterrupted is recorded when the fetch channel closes without a terminal message
var ErrFetchInterrupted = errors.New("fetch ended without a result")

// View selects which screen the renderer shows
type View int

const (
	// ViewKeyEntry asks for the newsapi.org key
	ViewKeyEntry View = iota
	// ViewMain shows the top bar and the article list
	ViewMain
)

// SettingsStore persists settings under an application name
type SettingsStore interface {
	Store(appName string, s config.Settings) error
}

// Spawner starts the background fetch
type Spawner interface {
	Spawn(ctx context.Context, apiKey string) (<-chan model.Message, error)
}

// State is owned by the UI goroutine and is not safe for concurrent use
type State struct {
	appName string
	store   SettingsStore
	spawner Spawner
	log     zerolog.Logger

	settings          config.Settings
	articles          []model.Article
	apiKeyInitialized bool
	dataIsSet         bool
	inbox             <-chan model.Message
	status            model.FetchStatus
	lastErr           error
}

// New creates the session state. A non-empty stored key skips key entry.
func New(appName string, settings config.Settings, store SettingsStore, spawner Spawner, log zerolog.Logger) *State {
	return &State{
		appName:           appName,
		store:             store,
		spawner:           spawner,
		log:               log,
		settings:          settings,
		apiKeyInitialized: settings.APIKey != "",
		status:            model.FetchStatusNotStarted,
	}
}

// View returns the screen to render
func (s *State) View() View {
	if s.apiKeyInitialized {
		return ViewMain
	}
	return ViewKeyEntry
}

// CommitAPIKey stores and persists key. A blank key is ignored and reported
// as false. A persistence error is logged; the key is still used for this
// session.
func (s *State) CommitAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		s.log.Debug().Msg("ignoring empty api key")
		return false
	}

	s.settings.APIKey = key
	if err := s.store.Store(s.appName, s.settings); err != nil {
		s.log.Error().Err(err).Msg("failed to save settings")
	} else {
		s.log.Info().Msg("api key saved")
	}
	s.apiKeyInitialized = true
	return true
}

// ToggleTheme flips dark mode for this session only and returns the new value
func (s *State) ToggleTheme() bool {
	s.settings.DarkMode = !s.settings.DarkMode
	return s.settings.DarkMode
}

// PostRender runs once per frame. It spawns the fetch the first time a key
// is available and moves every message already queued into the state
// without blocking. It reports whether more frames are needed to finish
// draining.
func (s *State) PostRender(ctx context.Context) bool {
	if s.apiKeyInitialized && !s.dataIsSet && s.settings.APIKey != "" {
		s.spawn(ctx)
	}
	s.drain()
	return s.NeedsFrames()
}

func (s *State) spawn(ctx context.Context) {
	s.dataIsSet = true

	inbox, err := s.spawner.Spawn(ctx, s.settings.APIKey)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to start fetch")
		s.status = model.FetchStatusFailed
		s.lastErr = err
		return
	}
	s.inbox = inbox
	s.status = model.FetchStatusFetching
}

func (s *State) drain() {
	for s.inbox != nil {
		select {
		case msg, ok := <-s.inbox:
			if !ok {
				s.finish(model.FetchStatusFailed, ErrFetchInterrupted)
				return
			}
			s.apply(msg)
		default:
			return
		}
	}
}

func (s *State) apply(msg model.Message) {
	switch msg.Kind {
	case model.MessageData:
		s.articles = append(s.articles, msg.Article)
	case model.MessageDone:
		s.log.Debug().Int("articles", len(s.articles)).Msg("headlines received")
		s.finish(model.FetchStatusDone, nil)
	case model.MessageFailed:
		s.finish(model.FetchStatusFailed, msg.Err)
	}
}

func (s *State) finish(status model.FetchStatus, err error) {
	s.inbox = nil
	s.status = status
	s.lastErr = err
}

// NeedsFrames reports whether a spawn or a drain is still pending
func (s *State) NeedsFrames() bool {
	return s.inbox != nil || (s.apiKeyInitialized && !s.dataIsSet)
}

// Settings returns the current settings
func (s *State) Settings() config.Settings { return s.settings }

// Articles returns a copy of the received articles
func (s *State) Articles() []model.Article {
	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// ArticleCount returns how many articles have been received
func (s *State) ArticleCount() int { return len(s.articles) }

// Article returns the i-th received article
func (s *State) Article(i int) model.Article { return s.articles[i] }

// Status returns the fetch status
func (s *State) Status() model.FetchStatus { return s.status }

// Err returns the error that failed the fetch, if any
func (s *State) Err() error { return s.lastErr }

// DataIsSet reports whether the fetch has been spawned
func (s *State) DataIsSet() bool { return s.dataIsSet }

// APIKeyInitialized reports whether a key has been entered or loaded
func (s *State) APIKeyInitialized() bool { return s.apiKeyInitialized }
