package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finnews/finner/pkg/models"
)

// Column names required in a CSV dataset.
const (
	ColumnID    = "article_id"
	ColumnTitle = "title"
	ColumnDate  = "date"
	ColumnText  = "article_text"
)

var requiredColumns = []string{ColumnID, ColumnTitle, ColumnDate, ColumnText}

var ErrMalformed = errors.New("malformed dataset")

// LoadFile reads a dataset file. The format is chosen by extension: .csv,
// .yaml/.yml or .json.
func LoadFile(path string) ([]models.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var articles []models.Article
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		articles, err = ParseCSV(f)
	case ".yaml", ".yml":
		articles, err = parseYAML(f)
	case ".json":
		articles, err = parseJSON(f)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrMalformed, ext)
	}
	if err != nil {
		return nil, err
	}

	if err := checkUniqueIDs(articles); err != nil {
		return nil, err
	}

	return articles, nil
}

// ParseCSV reads articles from CSV with a header row. Columns may appear in
// any order and columns other than the required ones are ignored.
func ParseCSV(r io.Reader) ([]models.Article, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrMalformed, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformed, name)
		}
	}

	var articles []models.Article
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		line, _ := reader.FieldPos(0)
		rawID := strings.TrimSpace(record[columns[ColumnID]])
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid %s %q", ErrMalformed, line, ColumnID, rawID)
		}

		articles = append(articles, models.Article{
			ID:    id,
			Title: record[columns[ColumnTitle]],
			Date:  record[columns[ColumnDate]],
			Body:  record[columns[ColumnText]],
		})
	}

	return articles, nil
}

func parseYAML(r io.Reader) ([]models.Article, error) {
	var articles []models.Article
	if err := yaml.NewDecoder(r).Decode(&articles); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return articles, nil
}

func parseJSON(r io.Reader) ([]models.Article, error) {
	var articles []models.Article
	if err := json.NewDecoder(r).Decode(&articles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return articles, nil
}

func checkUniqueIDs(articles []models.Article) error {
	seen := make(map[int]struct{}, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.ID]; ok {
			return fmt.Errorf("%w: duplicate %s %d", ErrMalformed, ColumnID, a.ID)
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}
