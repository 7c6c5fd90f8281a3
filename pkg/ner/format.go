// Package ner shapes raw extractor spans into the grouped, de-duplicated
// form served by the API.
package ner

import (
	"github.com/finnews/finner/pkg/models"
)

// labelGroup holds the distinct entity texts seen under one label, in
// first-seen order.
type labelGroup struct {
	label string
	texts []string
	seen  map[string]struct{}
}

// groupByLabel maps each label to its distinct texts. Labels and texts keep
// the order in which they first appear in spans.
func groupByLabel(spans []models.Span) []*labelGroup {
	var groups []*labelGroup
	index := make(map[string]*labelGroup)

	for _, span := range spans {
		group, ok := index[span.Label]
		if !ok {
			group = &labelGroup{label: span.Label, seen: make(map[string]struct{})}
			index[span.Label] = group
			groups = append(groups, group)
		}
		if _, dup := group.seen[span.Text]; dup {
			continue
		}
		group.seen[span.Text] = struct{}{}
		group.texts = append(group.texts, span.Text)
	}

	return groups
}

// firstMatch returns the first span carrying exactly text and label.
func firstMatch(spans []models.Span, text, label string) (models.Span, bool) {
	for _, span := range spans {
		if span.Text == text && span.Label == label {
			return span, true
		}
	}
	return models.Span{}, false
}

// Format groups spans by label, drops repeated (text, label) pairs and
// attaches label descriptions. Each distinct pair carries the offsets of its
// first occurrence in spans; later occurrences are not reported.
func Format(spans []models.Span) models.EntityAnalysis {
	analysis := models.EntityAnalysis{
		Entities:      []models.FormattedEntity{},
		EntitySummary: map[string]int{},
	}

	for _, group := range groupByLabel(spans) {
		for _, text := range group.texts {
			span, ok := firstMatch(spans, text, group.label)
			if !ok {
				continue
			}
			analysis.Entities = append(analysis.Entities, models.FormattedEntity{
				Text:        text,
				Label:       group.label,
				Description: Describe(group.label),
				Start:       span.Start,
				End:         span.End,
			})
		}
		analysis.EntitySummary[group.label] = len(group.texts)
	}
	analysis.TotalEntities = len(analysis.Entities)

	return analysis
}
