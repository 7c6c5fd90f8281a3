// Package dataset holds the read-only article dataset served by finner.
package dataset

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/finnews/finner/internal"
	"github.com/finnews/finner/pkg/models"
)

var log = internal.GetLogger()

var (
	_ models.ArticleStore = &Store{}
	_ models.ArticleStore = &Unavailable{}
)

// Store is an in-memory ArticleStore. It is never written after NewStore
// returns, so concurrent readers need no locking.
type Store struct {
	articles []models.Article
	byID     map[int]int
}

// NewStore indexes articles by id. Order is preserved for listing.
func NewStore(articles []models.Article) *Store {
	byID := make(map[int]int, len(articles))
	for i, a := range articles {
		if _, ok := byID[a.ID]; !ok {
			byID[a.ID] = i
		}
	}
	return &Store{articles: articles, byID: byID}
}

func (s *Store) ListArticles(_ context.Context) ([]models.ArticleSummary, error) {
	summaries := make([]models.ArticleSummary, 0, len(s.articles))
	if len(s.articles) == 0 {
		return summaries, nil
	}
	if err := copier.Copy(&summaries, &s.articles); err != nil {
		return nil, fmt.Errorf("failed to copy article summaries: %w", err)
	}
	return summaries, nil
}

func (s *Store) GetArticle(_ context.Context, id int) (*models.Article, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("article %d", id))
	}
	article := s.articles[i]
	return &article, nil
}

func (s *Store) Len() int {
	return len(s.articles)
}

// Unavailable stands in for a dataset that failed to load. Every lookup
// fails with an error wrapping models.ErrDatasetUnavailable.
type Unavailable struct {
	err error
}

func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{err: &models.UnavailableError{Sentinel: models.ErrDatasetUnavailable, Cause: cause}}
}

func (u *Unavailable) StartupError() error {
	return u.err
}

func (u *Unavailable) ListArticles(_ context.Context) ([]models.ArticleSummary, error) {
	return nil, u.err
}

func (u *Unavailable) GetArticle(_ context.Context, _ int) (*models.Article, error) {
	return nil, u.err
}

func (u *Unavailable) Len() int {
	return 0
}

// Open loads the dataset at path. Load failures are logged and yield an
// Unavailable store so the server can still start.
func Open(path string) models.ArticleStore {
	articles, err := LoadFile(path)
	if err != nil {
		log.Warnf("Dataset %s not loaded: %v", path, err)
		return NewUnavailable(err)
	}
	log.Infof("Dataset loaded: %d articles", len(articles))
	return NewStore(articles)
}
