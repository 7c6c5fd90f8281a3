package ner

var labelDescriptions = map[string]string{
	"PERSON":      "Person",
	"ORG":         "Organization",
	"GPE":         "Geopolitical Entity",
	"LOC":         "Location",
	"MONEY":       "Monetary Value",
	"DATE":        "Date",
	"TIME":        "Time",
	"PERCENT":     "Percentage",
	"CARDINAL":    "Cardinal Number",
	"ORDINAL":     "Ordinal Number",
	"PRODUCT":     "Product",
	"EVENT":       "Event",
	"LAW":         "Law",
	"LANGUAGE":    "Language",
	"WORK_OF_ART": "Work of Art",
	"FAC":         "Facility",
	"NORP":        "Nationalities or Religious/Political Groups",
	"QUANTITY":    "Quantity",
}

// Describe returns the human-readable name of an entity label. Unknown
// labels are returned unchanged.
func Describe(label string) string {
	if description, ok := labelDescriptions[label]; ok {
		return description
	}
	return label
}
