package models

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

type ArticleListResponse struct {
	Articles []ArticleSummary `json:"articles"`
}

// ArticleEntitiesResponse is returned by GET /article/{id}.
type ArticleEntitiesResponse struct {
	ArticleID int    `json:"article_id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	EntityAnalysis
}

// SampleResponse is returned by GET /test-api.
type SampleResponse struct {
	Message    string `json:"message"`
	SampleText string `json:"sample_text"`
	EntityAnalysis
}

// APIError is the body of every error response.
type APIError struct {
	Error string `json:"error"`
}

// SampleText is the fixed input analyzed by GET /test-api.
const SampleText = "Apple Inc. (AAPL) reported $89.5 billion in revenue. CEO Tim Cook announced the results."
