package extractors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/httptrace/otelhttptrace"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/finnews/finner/config"
	"github.com/finnews/finner/internal"
	"github.com/finnews/finner/pkg/models"
)

const (
	entitiesPath = "/entities"
	healthzPath  = "/healthz"

	defaultLanguage = "en"
	maxErrorBody    = 512
)

// Force compiler to validate that NLPClient implements the EntityExtractor interface.
var _ models.EntityExtractor = &NLPClient{}

// NLPClient extracts entities by calling a spaCy NLP server.
type NLPClient struct {
	serverURL  string
	language   string
	httpClient *retryablehttp.Client
}

func NewNLPClient(cfg *config.Config) *NLPClient {
	language := cfg.NLP.Language
	if language == "" {
		language = defaultLanguage
	}
	return &NLPClient{
		serverURL:  strings.TrimRight(cfg.NLP.ServerURL, "/"),
		language:   language,
		httpClient: NewRetryableHTTPClient(cfg.NLP.RetryMax, cfg.NLP.Timeout),
	}
}

// Extract sends text to the NLP server and returns one span per entity
// match, ordered by start offset.
func (c *NLPClient) Extract(ctx context.Context, text string) ([]models.Span, error) {
	recordID := uuid.NewString()
	requestBody := models.EntityRequest{
		Texts: []models.EntityRequestRecord{
			{UUID: recordID, Text: text, Language: c.language},
		},
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, NewExtractorError("failed to marshal entity request", err)
	}

	req, err := retryablehttp.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.serverURL+entitiesPath,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, NewExtractorError("failed to create entity request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", config.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewExtractorError("entities call failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, NewExtractorError(
			fmt.Sprintf("entities call returned status %d", resp.StatusCode),
			errors.New(strings.TrimSpace(string(body))),
		)
	}

	var response models.EntityResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, NewExtractorError("failed to decode entity response", err)
	}

	record, ok := findRecord(response, recordID)
	if !ok {
		return nil, NewExtractorError("entity response has no record for request", nil)
	}

	return spansFromEntities(record.Entities), nil
}

// Ping checks the NLP server health endpoint once, without retries.
func (c *NLPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+healthzPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", config.UserAgent())
	resp, err := c.httpClient.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("NLP server health check returned status %d", resp.StatusCode)
	}
	return nil
}

func findRecord(response models.EntityResponse, recordID string) (models.EntityResponseRecord, bool) {
	for _, r := range response.Texts {
		if r.UUID == recordID {
			return r, true
		}
	}
	// a single unlabelled record is the answer to our single request
	if len(response.Texts) == 1 && response.Texts[0].UUID == "" {
		return response.Texts[0], true
	}
	return models.EntityResponseRecord{}, false
}

// spansFromEntities flattens the server's per-entity matches back into
// document order.
func spansFromEntities(entities []models.Entity) []models.Span {
	spans := make([]models.Span, 0, len(entities))
	for _, entity := range entities {
		for _, match := range entity.Matches {
			text := match.Text
			if text == "" {
				text = entity.Name
			}
			spans = append(spans, models.Span{
				Text:  text,
				Label: entity.Label,
				Start: match.Start,
				End:   match.End,
			})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return spans
}

// NewRetryableHTTPClient returns a new retryable HTTP client with the given retryMax and timeout.
// Each attempt goes through an OpenTelemetry transport.
func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *retryablehttp.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.HTTPClient.Transport = otelhttp.NewTransport(
		retryableHTTPClient.HTTPClient.Transport,
		otelhttp.WithClientTrace(func(ctx context.Context) *httptrace.ClientTrace {
			return otelhttptrace.NewClientTrace(ctx)
		}),
	)
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryPolicy

	return retryableHTTPClient
}

// retryPolicy is a retryablehttp.CheckRetry function. It is used to determine
// whether a request should be retried or not.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// do not retry on context.Canceled or context.DeadlineExceeded
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// 4xx means the request itself was rejected; resending it won't help
	if resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
