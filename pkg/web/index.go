package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"sync"

	"github.com/finnews/finner/config"
	"github.com/finnews/finner/pkg/models"
)

const indexTemplate = "templates/index.html"

// IndexPage is the data rendered into the landing page.
type IndexPage struct {
	Title            string
	Version          string
	NLPAvailable     bool
	NLPError         string
	DatasetAvailable bool
	DatasetError     string
	ArticleCount     int
	SampleText       string
	ExampleRequest   template.HTML
}

var (
	exampleOnce    sync.Once
	exampleRequest template.HTML
)

// highlightedExample renders the sample /analyze body once. If highlighting
// fails the page shows the raw JSON instead.
func highlightedExample() template.HTML {
	exampleOnce.Do(func() {
		body, _ := json.MarshalIndent(models.AnalyzeRequest{Text: models.SampleText}, "", "  ")
		highlighted, err := CodeHighlight(string(body), "json")
		if err != nil {
			log.Errorf("Failed to highlight example request: %s", err)
			highlighted = "<pre>" + template.HTMLEscapeString(string(body)) + "</pre>"
		}
		exampleRequest = template.HTML(highlighted) //nolint:gosec // chroma escapes its input
	})
	return exampleRequest
}

func NewIndexPage(appState *models.AppState) *IndexPage {
	page := &IndexPage{
		Title:          "Financial News NER",
		Version:        config.VersionString,
		NLPAvailable:   true,
		SampleText:     models.SampleText,
		ExampleRequest: highlightedExample(),
	}
	if err := models.StartupError(appState.Extractor); err != nil {
		page.NLPAvailable = false
		page.NLPError = err.Error()
	}
	switch err := models.StartupError(appState.Articles); {
	case appState.Articles == nil:
		page.DatasetError = models.ErrDatasetUnavailable.Error()
	case err != nil:
		page.DatasetError = err.Error()
	default:
		page.DatasetAvailable = true
		page.ArticleCount = appState.Articles.Len()
	}
	return page
}

// IndexHandler renders the landing page.
func IndexHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tmpl, err := template.New("index.html").Funcs(templateFuncs()).ParseFS(
			TemplatesFS,
			indexTemplate,
		)
		if err != nil {
			log.Errorf("Failed to parse template: %s", err)
			http.Error(w, "Failed to parse template", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		err = tmpl.ExecuteTemplate(w, "index.html", NewIndexPage(appState))
		if err != nil {
			log.Errorf("Failed to execute template: %s", err)
			http.Error(w, "Failed to execute template", http.StatusInternalServerError)
			return
		}
	}
}
