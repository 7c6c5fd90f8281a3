package server

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/finnews/finner/pkg/models"
	"github.com/finnews/finner/pkg/web"
)

const (
	ReadHeaderTimeout = 5 * time.Second
	RouterName        = "finner"
)

var (
	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	cfg := appState.Config.Server
	router := setupRouter(appState)
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

// @title		Financial News NER API
// @version	0.x
// @BasePath	/
// @schemes	http https
func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(otelchi.Middleware(
		RouterName,
		otelchi.WithChiRoutes(router),
		otelchi.WithRequestMethodInSpanName(true),
	))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderError(w, errRouteNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		renderError(w, errMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	// Landing page and its assets
	router.Get("/", web.IndexHandler(appState))
	router.Handle("/static/*", web.StaticHandler())

	// JSON API
	router.Post("/analyze", AnalyzeHandler(appState))
	router.Get("/articles", GetArticleListHandler(appState))
	router.Get("/article/{articleID:[0-9]+}", GetArticleHandler(appState))
	router.Get("/test-api", SampleHandler(appState))

	return router
}
