package models

import "context"

// Article is a single row of the financial news dataset.
type Article struct {
	ID    int    `json:"article_id" yaml:"article_id"`
	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
	Body  string `json:"article_text" yaml:"article_text"`
}

// ArticleSummary is the listing view of an Article, without its body.
type ArticleSummary struct {
	ID    int    `json:"article_id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// ArticleStore is the read-only dataset of articles loaded at startup.
type ArticleStore interface {
	// ListArticles returns summaries of all articles in dataset order.
	ListArticles(ctx context.Context) ([]ArticleSummary, error)
	// GetArticle returns the article with the given id, or an error wrapping
	// ErrNotFound.
	GetArticle(ctx context.Context, id int) (*Article, error)
	// Len returns the number of articles. An unavailable store has none.
	Len() int
}
