package ui

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/headlines/internal/appstate"
	"github.com/ytget/headlines/internal/model"
)

// Options tune the root UI
type Options struct {
	FrameInterval time.Duration
	FontPath      string
}

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App
	state  *appstate.State
	opts   Options
	log    zerolog.Logger

	ctx  context.Context
	font fyne.Resource

	keyDialog   *KeyDialog
	topBar      *TopBar
	articleList *fyne.Container
	scroll      *container.Scroll
	statusLabel *widget.Label
	mainContent fyne.CanvasObject

	currentView  appstate.View
	rendered     int
	lastDark     bool
	themeApplied bool

	loopRunning atomic.Bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, state *appstate.State, opts Options, log zerolog.Logger) *RootUI {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	ui := &RootUI{
		window: window,
		app:    app,
		state:  state,
		opts:   opts,
		log:    log,
		ctx:    context.Background(),
	}

	font, err := LoadFontResource(opts.FontPath)
	if err != nil {
		log.Warn().Err(err).Msg("using default font")
	}
	ui.font = font

	ui.keyDialog = NewKeyDialog(ui.onCommitKey)
	return ui
}

// Start applies the theme, shows the current view and starts the frame
// loop when there is work pending. The loop stops when ctx is done.
func (ui *RootUI) Start(ctx context.Context) {
	ui.ctx = ctx
	ui.applyTheme()
	ui.showView()
	ui.startFrameLoop()
}

// showView puts the screen the state asks for into the window
func (ui *RootUI) showView() {
	ui.currentView = ui.state.View()
	if ui.currentView == appstate.ViewKeyEntry {
		ui.window.SetContent(ui.keyDialog.Content())
		ui.window.Canvas().Focus(ui.keyDialog.Entry())
		return
	}

	if ui.mainContent == nil {
		ui.mainContent = ui.createMainContent()
	}
	ui.window.SetContent(ui.mainContent)
	ui.syncArticles()
	ui.syncStatus()
}

func (ui *RootUI) createMainContent() fyne.CanvasObject {
	ui.topBar = NewTopBar(ui.state.Settings().DarkMode, ui.onClose, ui.onToggleTheme)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusLabel.Hide()

	ui.articleList = container.NewVBox()
	ui.scroll = container.NewVScroll(ui.articleList)

	top := container.NewVBox(ui.topBar.Content(), widget.NewSeparator(), ui.statusLabel)
	return container.NewBorder(top, ui.createFooter(), nil, nil, ui.scroll)
}

func (ui *RootUI) createFooter() fyne.CanvasObject {
	newsAPI, _ := url.Parse(NewsAPIURL)
	fyneSite, _ := url.Parse(FyneURL)

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(
			widget.NewLabel(APISourceLabel),
			widget.NewHyperlink(NewsAPIHost, newsAPI),
			layout.NewSpacer(),
			widget.NewHyperlink(MadeWithText, fyneSite),
		),
	)
}

// frame runs one post-render step on the UI goroutine and reports whether
// another frame is needed
func (ui *RootUI) frame() bool {
	more := ui.state.PostRender(ui.ctx)
	if ui.currentView == appstate.ViewMain {
		ui.syncArticles()
		ui.syncStatus()
	}
	return more
}

// syncArticles appends cards for articles received since the last frame
func (ui *RootUI) syncArticles() {
	count := ui.state.ArticleCount()
	if count == ui.rendered {
		return
	}
	for i := ui.rendered; i < count; i++ {
		ui.articleList.Add(NewArticleCard(ui.state.Article(i)))
	}
	ui.rendered = count
}

func (ui *RootUI) syncStatus() {
	text := statusText(ui.state)
	if text == ui.statusLabel.Text {
		return
	}

	ui.statusLabel.SetText(text)
	if text == "" {
		ui.statusLabel.Hide()
	} else {
		ui.statusLabel.Show()
	}
}

// statusText returns the status line for the fetch, empty when there is
// nothing to report
func statusText(s *appstate.State) string {
	switch s.Status() {
	case model.FetchStatusFetching:
		return FetchingText
	case model.FetchStatusFailed:
		return fmt.Sprintf(FetchFailedFormat, s.Err())
	case model.FetchStatusDone:
		if s.ArticleCount() == 0 {
			return NoHeadlinesText
		}
	}
	return ""
}

// startFrameLoop ticks frames until the state has no pending work
func (ui *RootUI) startFrameLoop() {
	if !ui.state.NeedsFrames() {
		return
	}
	if !ui.loopRunning.CompareAndSwap(false, true) {
		return
	}
	go ui.runFrameLoop(ui.ctx)
}

func (ui *RootUI) runFrameLoop(ctx context.Context) {
	ticker := time.NewTicker(ui.opts.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ui.loopRunning.Store(false)
			return
		case <-ticker.C:
			more := true
			fyne.DoAndWait(func() {
				more = ui.frame()
				if !more {
					ui.loopRunning.Store(false)
				}
			})
			if !more {
				ui.log.Debug().Msg("frame loop idle")
				return
			}
		}
	}
}

func (ui *RootUI) onCommitKey(key string) bool {
	if !ui.state.CommitAPIKey(key) {
		return false
	}
	ui.showView()
	ui.startFrameLoop()
	return true
}

func (ui *RootUI) onToggleTheme() bool {
	dark := ui.state.ToggleTheme()
	ui.applyTheme()
	return dark
}

// applyTheme installs the theme when dark mode changed since the last call
func (ui *RootUI) applyTheme() {
	dark := ui.state.Settings().DarkMode
	if ui.themeApplied && dark == ui.lastDark {
		return
	}
	ui.themeApplied = true
	ui.lastDark = dark
	ui.app.Settings().SetTheme(NewHeadlinesTheme(dark, ui.font))
}

func (ui *RootUI) onClose() {
	ui.log.Info().Msg("closing")
	ui.app.Quit()
}
