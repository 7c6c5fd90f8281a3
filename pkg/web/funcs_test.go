package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComma(t *testing.T) {
	assert.Equal(t, "0", comma(0))
	assert.Equal(t, "999", comma(999))
	assert.Equal(t, "12,345", comma(12345))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "article", plural(1, "article", "articles"))
	assert.Equal(t, "articles", plural(0, "article", "articles"))
	assert.Equal(t, "articles", plural(2, "article", "articles"))
}
