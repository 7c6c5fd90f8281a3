package dataset

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finnews/finner/pkg/models"
	"github.com/finnews/finner/pkg/testutils"
)

func writeCSV(t *testing.T, header []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articles.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(header))
	require.NoError(t, w.WriteAll(rows))
	return path
}

func articleRows(articles []models.Article) [][]string {
	rows := make([][]string, len(articles))
	for i, a := range articles {
		rows[i] = []string{strconv.Itoa(a.ID), a.Title, a.Date, a.Body}
	}
	return rows
}

func TestLoadCSV(t *testing.T) {
	ctx := context.Background()
	articles := testutils.FakeArticles(12)
	path := writeCSV(t, requiredColumns, articleRows(articles))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, articles, loaded)

	store := NewStore(loaded)
	assert.Equal(t, 12, store.Len())

	summaries, err := store.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, len(articles))
	for i, s := range summaries {
		assert.Equal(t, models.ArticleSummary{
			ID:    articles[i].ID,
			Title: articles[i].Title,
			Date:  articles[i].Date,
		}, s)
	}

	article, err := store.GetArticle(ctx, articles[3].ID)
	require.NoError(t, err)
	assert.Equal(t, articles[3], *article)
}

func TestGetArticleNotFound(t *testing.T) {
	store := NewStore(testutils.FakeArticles(3))

	article, err := store.GetArticle(context.Background(), 999999)
	assert.Nil(t, article)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestParseCSVColumnOrderAndExtras(t *testing.T) {
	input := "source,article_text,date,article_id,title\n" +
		"wire,\"Shares of Nvidia rose 4%.\nAnalysts cheered.\",2024-03-01, 7 ,Nvidia rallies\n"

	articles, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.Article{{
		ID:    7,
		Title: "Nvidia rallies",
		Date:  "2024-03-01",
		Body:  "Shares of Nvidia rose 4%.\nAnalysts cheered.",
	}}, articles)
}

func TestParseCSVByteOrderMark(t *testing.T) {
	input := "\ufeffarticle_id,title,date,article_text\n1,t,d,body\n"

	articles, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, 1, articles[0].ID)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{
			name:   "missing column",
			header: []string{"article_id", "title", "date"},
			rows:   [][]string{{"1", "t", "d"}},
		},
		{
			name:   "non integer id",
			header: requiredColumns,
			rows:   [][]string{{"one", "t", "d", "body"}},
		},
		{
			name:   "duplicate id",
			header: requiredColumns,
			rows:   [][]string{{"1", "a", "d", "body"}, {"1", "b", "d", "body"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeCSV(t, tt.header, tt.rows))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}

	t.Run("field count mismatch", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("article_id,title,date,article_text\n1,t,d\n"))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "articles.parquet")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestLoadYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "articles.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- article_id: 1
  title: Fed holds rates
  date: "2024-01-31"
  article_text: The Federal Reserve held rates steady on Wednesday.
- article_id: 2
  title: Oil slips
  date: "2024-02-01"
  article_text: Brent crude fell 2% to $81 a barrel.
`), 0o600))

	jsonPath := filepath.Join(dir, "articles.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[
  {"article_id": 1, "title": "Fed holds rates", "date": "2024-01-31", "article_text": "The Federal Reserve held rates steady on Wednesday."},
  {"article_id": 2, "title": "Oil slips", "date": "2024-02-01", "article_text": "Brent crude fell 2% to $81 a barrel."}
]`), 0o600))

	fromYAML, err := LoadFile(yamlPath)
	require.NoError(t, err)
	fromJSON, err := LoadFile(jsonPath)
	require.NoError(t, err)

	require.Len(t, fromYAML, 2)
	assert.Equal(t, fromYAML, fromJSON)
	assert.Equal(t, "Oil slips", fromYAML[1].Title)
}

func TestOpenUnavailable(t *testing.T) {
	ctx := context.Background()
	store := Open(filepath.Join(t.TempDir(), "missing.csv"))

	_, ok := store.(*Unavailable)
	require.True(t, ok)
	assert.Zero(t, store.Len())

	_, err := store.ListArticles(ctx)
	assert.ErrorIs(t, err, models.ErrDatasetUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = store.GetArticle(ctx, 1)
	assert.ErrorIs(t, err, models.ErrDatasetUnavailable)
}

func TestOpenStore(t *testing.T) {
	articles := testutils.FakeArticles(4)
	store := Open(writeCSV(t, requiredColumns, articleRows(articles)))

	_, ok := store.(*Store)
	require.True(t, ok)
	assert.Equal(t, 4, store.Len())
}

func TestListArticlesEmpty(t *testing.T) {
	summaries, err := NewStore(nil).ListArticles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
