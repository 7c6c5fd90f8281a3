package testutils

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/finnews/finner/pkg/models"
)

// FinanceTerms maps phrases to the label the fake NLP server gives them.
var FinanceTerms = map[string]string{
	"Apple Inc.":    "ORG",
	"AAPL":          "ORG",
	"Tesla":         "ORG",
	"$89.5 billion": "MONEY",
	"$2 billion":    "MONEY",
	"Tim Cook":      "PERSON",
	"Elon Musk":     "PERSON",
	"Tuesday":       "DATE",
}

// FakeArticles generates n articles from a fixed seed. Ids descend so tests
// can tell file order from id order.
func FakeArticles(n int) []models.Article {
	faker := gofakeit.New(42)
	articles := make([]models.Article, n)
	for i := range articles {
		articles[i] = models.Article{
			ID:    (n - i) * 10,
			Title: faker.Company() + " " + faker.Sentence(5),
			Date:  faker.Date().Format("2006-01-02"),
			Body:  faker.Paragraph(2, 3, 12, "\n"),
		}
	}
	return articles
}
