package extractors

import (
	"context"
	"errors"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/finnews/finner/config"
	"github.com/finnews/finner/pkg/models"
)

const ErrNLPServerURLNotSet = "nlp.server_url must be set"

const (
	probeDelay    = 500 * time.Millisecond
	probeMaxDelay = 5 * time.Second
)

// Initialize builds the entity extractor for the configured NLP server. If
// the server cannot be reached, an Unavailable extractor is returned so the
// rest of the service still starts.
func Initialize(ctx context.Context, cfg *config.Config) models.EntityExtractor {
	log.Info("Initializing entity extractor")

	if cfg.NLP.ServerURL == "" {
		log.Warn(ErrNLPServerURLNotSet)
		return NewUnavailable(errors.New(ErrNLPServerURLNotSet))
	}

	client := NewNLPClient(cfg)

	retries := cfg.NLP.StartupRetries
	if retries < 0 {
		retries = 0
	}
	probePolicy := retrypolicy.Builder[any]().
		WithBackoff(probeDelay, probeMaxDelay).
		WithMaxRetries(retries).
		Build()

	_, err := failsafe.Get(func() (any, error) {
		return nil, client.Ping(ctx)
	}, probePolicy)
	if err != nil {
		log.Errorf("NLP server %s not available, entity routes disabled: %v", cfg.NLP.ServerURL, err)
		return NewUnavailable(err)
	}
	log.Infof("NLP server available at %s", cfg.NLP.ServerURL)

	if cfg.NLP.MaxConcurrentRequests > 0 {
		log.Infof("Limiting NLP server to %d concurrent requests", cfg.NLP.MaxConcurrentRequests)
		return NewLimitedExtractor(client, cfg.NLP.MaxConcurrentRequests)
	}

	return client
}
