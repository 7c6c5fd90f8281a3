package extractors

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/finnews/finner/pkg/models"
)

var (
	_ models.EntityExtractor = &Unavailable{}
	_ models.EntityExtractor = &LimitedExtractor{}
)

// Unavailable stands in for an NLP backend that failed to initialize. Every
// call fails with an error wrapping models.ErrBackendUnavailable.
type Unavailable struct {
	err error
}

func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{err: &models.UnavailableError{Sentinel: models.ErrBackendUnavailable, Cause: cause}}
}

func (u *Unavailable) StartupError() error {
	return u.err
}

func (u *Unavailable) Extract(_ context.Context, _ string) ([]models.Span, error) {
	return nil, u.err
}

// LimitedExtractor caps the number of concurrent calls into the wrapped
// extractor. Waiting callers give up when their context is done.
type LimitedExtractor struct {
	next models.EntityExtractor
	sem  *semaphore.Weighted
}

func NewLimitedExtractor(next models.EntityExtractor, maxConcurrent int64) *LimitedExtractor {
	return &LimitedExtractor{
		next: next,
		sem:  semaphore.NewWeighted(maxConcurrent),
	}
}

func (l *LimitedExtractor) Extract(ctx context.Context, text string) ([]models.Span, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, NewExtractorError("timed out waiting for NLP backend", err)
	}
	defer l.sem.Release(1)

	return l.next.Extract(ctx, text)
}
