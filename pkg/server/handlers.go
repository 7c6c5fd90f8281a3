package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/finnews/finner/internal"
	"github.com/finnews/finner/pkg/models"
	"github.com/finnews/finner/pkg/ner"
)

var log = internal.GetLogger()

var validate = validator.New()

const sampleMessage = "Sample API Response"

// extractEntities runs text through the extractor and formats the result.
// The call is bounded by server.extract_timeout when it is set.
func extractEntities(
	ctx context.Context,
	appState *models.AppState,
	text string,
) (models.EntityAnalysis, error) {
	if timeout := appState.Config.Server.ExtractTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	spans, err := appState.Extractor.Extract(ctx, text)
	if err != nil {
		return models.EntityAnalysis{}, err
	}
	return ner.Format(spans), nil
}

// AnalyzeHandler godoc
//
//	@Summary		Extracts named entities from text
//	@Description	run text through the NLP backend and return grouped entities
//	@Tags			entities
//	@Accept			json
//	@Produce		json
//	@Param			analyzeRequest	body		models.AnalyzeRequest	true	"Text to analyze"
//	@Success		200				{object}	models.EntityAnalysis
//	@Failure		400				{object}	models.APIError	"Bad Request"
//	@Failure		415				{object}	models.APIError	"Unsupported Media Type"
//	@Failure		500				{object}	models.APIError	"Internal Server Error"
//	@Router			/analyze [post]
func AnalyzeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := models.StartupError(appState.Extractor); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := requireJSON(r); err != nil {
			renderError(w, err, http.StatusUnsupportedMediaType)
			return
		}

		var request models.AnalyzeRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, fmt.Errorf("%w: invalid JSON body: %s", models.ErrBadRequest, err), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			renderError(w, fmt.Errorf("no text provided: %w", models.ErrBadRequest), http.StatusBadRequest)
			return
		}

		log.Debugf("Analyzing text: %s", request.Text)
		log.Infof("Analyzing text of length %d", len(request.Text))

		analysis, err := extractEntities(r.Context(), appState, request.Text)
		if err != nil {
			renderError(w, err, statusForError(err))
			return
		}

		if err := encodeJSON(w, analysis); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// GetArticleListHandler godoc
//
//	@Summary		Lists the articles in the dataset
//	@Description	return id, title and date of every article in dataset order
//	@Tags			articles
//	@Produce		json
//	@Success		200	{object}	models.ArticleListResponse
//	@Failure		500	{object}	models.APIError	"Internal Server Error"
//	@Router			/articles [get]
func GetArticleListHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := appState.Articles.ListArticles(r.Context())
		if err != nil {
			renderError(w, err, statusForError(err))
			return
		}

		if err := encodeJSON(w, models.ArticleListResponse{Articles: articles}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// GetArticleHandler godoc
//
//	@Summary		Returns an article with its entities
//	@Description	look up an article by id and run its text through the NLP backend
//	@Tags			articles
//	@Produce		json
//	@Param			articleID	path		integer	true	"Article ID"
//	@Success		200			{object}	models.ArticleEntitiesResponse
//	@Failure		404			{object}	models.APIError	"Not Found"
//	@Failure		500			{object}	models.APIError	"Internal Server Error"
//	@Router			/article/{articleID} [get]
func GetArticleHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := models.StartupError(appState.Extractor); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		articleID, err := strconv.Atoi(chi.URLParam(r, "articleID"))
		if err != nil {
			// the route only matches digits, so this is an id too large to exist
			renderError(w, models.NewNotFoundError("article"), http.StatusNotFound)
			return
		}

		article, err := appState.Articles.GetArticle(r.Context(), articleID)
		if err != nil {
			renderError(w, err, statusForError(err))
			return
		}

		analysis, err := extractEntities(r.Context(), appState, article.Body)
		if err != nil {
			renderError(w, err, statusForError(err))
			return
		}

		response := models.ArticleEntitiesResponse{
			ArticleID:      article.ID,
			Title:          article.Title,
			Date:           article.Date,
			Text:           article.Body,
			EntityAnalysis: analysis,
		}
		if err := encodeJSON(w, response); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// SampleHandler godoc
//
//	@Summary		Analyzes a fixed sample text
//	@Description	smoke test for the NLP pipeline
//	@Tags			entities
//	@Produce		json
//	@Success		200	{object}	models.SampleResponse
//	@Failure		500	{object}	models.APIError	"Internal Server Error"
//	@Router			/test-api [get]
func SampleHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, err := extractEntities(r.Context(), appState, models.SampleText)
		if err != nil {
			renderError(w, err, statusForError(err))
			return
		}

		response := models.SampleResponse{
			Message:        sampleMessage,
			SampleText:     models.SampleText,
			EntityAnalysis: analysis,
		}
		if err := encodeJSON(w, response); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
