package web

import (
	"html/template"
	"strings"

	"github.com/dustin/go-humanize"
)

func comma(n int) string {
	return humanize.Comma(int64(n))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"ToLower": strings.ToLower,
		"Comma":   comma,
		"Plural":  plural,
	}
}
