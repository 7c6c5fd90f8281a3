package extractors

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finnews/finner/pkg/models"
)

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("server available", func(t *testing.T) {
		srv := fakeNLPServer(t, nil)
		defer srv.Close()

		extractor := Initialize(ctx, testConfig(srv.URL))
		_, ok := extractor.(*NLPClient)
		require.True(t, ok)

		spans, err := extractor.Extract(ctx, sampleText)
		require.NoError(t, err)
		assert.Len(t, spans, 4)
	})

	t.Run("limited concurrency", func(t *testing.T) {
		srv := fakeNLPServer(t, nil)
		defer srv.Close()

		cfg := testConfig(srv.URL)
		cfg.NLP.MaxConcurrentRequests = 1
		_, ok := Initialize(ctx, cfg).(*LimitedExtractor)
		assert.True(t, ok)
	})

	t.Run("server unreachable", func(t *testing.T) {
		srv := httptest.NewServer(nil)
		url := srv.URL
		srv.Close()

		cfg := testConfig(url)
		cfg.NLP.StartupRetries = 1
		extractor := Initialize(ctx, cfg)
		_, ok := extractor.(*Unavailable)
		require.True(t, ok)

		_, err := extractor.Extract(ctx, sampleText)
		assert.ErrorIs(t, err, models.ErrBackendUnavailable)
	})

	t.Run("server url not set", func(t *testing.T) {
		extractor := Initialize(ctx, testConfig(""))
		_, err := extractor.Extract(ctx, sampleText)
		assert.ErrorIs(t, err, models.ErrBackendUnavailable)
		assert.Contains(t, err.Error(), ErrNLPServerURLNotSet)
	})
}

type blockingExtractor struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingExtractor) Extract(ctx context.Context, _ string) ([]models.Span, error) {
	b.started <- struct{}{}
	<-b.release
	return []models.Span{}, nil
}

func TestLimitedExtractor(t *testing.T) {
	inner := &blockingExtractor{started: make(chan struct{}, 1), release: make(chan struct{})}
	limited := NewLimitedExtractor(inner, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := limited.Extract(context.Background(), "first")
		assert.NoError(t, err)
	}()
	<-inner.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := limited.Extract(ctx, "second")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(inner.release)
	wg.Wait()

	_, err = limited.Extract(context.Background(), "third")
	assert.NoError(t, err)
}
