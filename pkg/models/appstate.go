package models

import (
	"github.com/finnews/finner/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Extractor EntityExtractor
	Articles  ArticleStore
	Config    *config.Config
}
