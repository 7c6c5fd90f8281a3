package models

import "context"

// Span is one entity mention produced by the extractor. Start and End are
// character offsets into the source text.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// FormattedEntity is a Span with the human-readable name of its label.
type FormattedEntity struct {
	Text        string `json:"text"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
}

// EntityAnalysis is the client-facing result of one extraction pass.
type EntityAnalysis struct {
	Entities      []FormattedEntity `json:"entities"`
	EntitySummary map[string]int    `json:"entity_summary"`
	TotalEntities int               `json:"total_entities"`
}

// EntityExtractor turns raw text into entity spans in document order.
type EntityExtractor interface {
	Extract(ctx context.Context, text string) ([]Span, error)
}

// NLP server wire types

type EntityMatch struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type Entity struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Matches []EntityMatch `json:"matches"`
}

type EntityRequestRecord struct {
	UUID     string `json:"uuid"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

type EntityResponseRecord struct {
	UUID     string   `json:"uuid"`
	Entities []Entity `json:"entities"`
}

type EntityRequest struct {
	Texts []EntityRequestRecord `json:"texts"`
}

type EntityResponse struct {
	Texts []EntityResponseRecord `json:"texts"`
}
