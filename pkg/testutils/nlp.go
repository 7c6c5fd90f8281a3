package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/finnews/finner/pkg/models"
)

// NewNLPServer starts a fake spaCy NLP server that labels every occurrence
// of the given phrases. Like the real server it groups matches by entity
// name and reports character offsets.
func NewNLPServer(t *testing.T, terms map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/entities", func(w http.ResponseWriter, r *http.Request) {
		var req models.EntityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		resp := models.EntityResponse{Texts: make([]models.EntityResponseRecord, len(req.Texts))}
		for i, record := range req.Texts {
			resp.Texts[i] = models.EntityResponseRecord{
				UUID:     record.UUID,
				Entities: findEntities(record.Text, terms),
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func findEntities(text string, terms map[string]string) []models.Entity {
	runes := []rune(text)
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names)

	entities := []models.Entity{}
	for _, name := range names {
		var matches []models.EntityMatch
		for start := range runes {
			if strings.HasPrefix(string(runes[start:]), name) {
				end := start + len([]rune(name))
				matches = append(matches, models.EntityMatch{Start: start, End: end, Text: name})
			}
		}
		if len(matches) > 0 {
			entities = append(entities, models.Entity{Name: name, Label: terms[name], Matches: matches})
		}
	}
	return entities
}
