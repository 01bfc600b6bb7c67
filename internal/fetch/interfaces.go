package fetch

import (
	"context"

	"github.com/ytget/headlines/internal/model"
	"github.com/ytget/headlines/internal/news"
)

// Source is the news collaborator a Worker fetches from
type Source interface {
	TopHeadlines(ctx context.Context, apiKey string) ([]news.Headline, error)
}

// Spawner starts a fetch and returns the channel its messages arrive on
type Spawner interface {
	Spawn(ctx context.Context, apiKey string) (<-chan model.Message, error)
}
