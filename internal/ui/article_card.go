package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/headlines/internal/model"
)

// ArticleCard renders one article: title, description, a trailing
// "read more" link and a separator.
type ArticleCard struct {
	widget.BaseWidget

	article model.Article

	titleLabel *widget.Label
	descLabel  *widget.Label
	link       *widget.Hyperlink
	content    *fyne.Container
}

// NewArticleCard creates a card for article
func NewArticleCard(article model.Article) *ArticleCard {
	ac := &ArticleCard{article: article}
	ac.ExtendBaseWidget(ac)
	ac.createUI()
	return ac
}

func (ac *ArticleCard) createUI() {
	ac.titleLabel = widget.NewLabelWithStyle(IconBullet+" "+ac.article.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ac.titleLabel.Wrapping = fyne.TextWrapWord

	ac.descLabel = widget.NewLabel(ac.article.Description)
	ac.descLabel.Wrapping = fyne.TextWrapWord

	// An unparsable URL leaves the link inert rather than dropping the card
	u, err := url.Parse(ac.article.URL)
	if err != nil {
		u = nil
	}
	ac.link = widget.NewHyperlink(ReadMoreText, u)
	ac.link.Alignment = fyne.TextAlignTrailing

	ac.content = container.NewVBox(
		ac.titleLabel,
		ac.descLabel,
		container.NewHBox(layout.NewSpacer(), ac.link),
		widget.NewSeparator(),
	)
}

// Article returns the rendered article
func (ac *ArticleCard) Article() model.Article {
	return ac.article
}

// CreateRenderer implements fyne.Widget
func (ac *ArticleCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ac.content)
}
