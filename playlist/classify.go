package playlist

import "strings"

// categoryRule pairs a category label with the lowercase keywords that
// select it. Rules are checked in slice order and the first match wins;
// the order is load-bearing because keyword sets overlap ("max" appears
// in entertainment names too), so do not reorder.
type categoryRule struct {
	label    string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Sports", []string{"sports", "ten 1", "ten 2", "ten 3", "ten 4", "ten 5", "six"}},
	{"Movies", []string{"max", "pix", "wah", "movie"}},
	{"Kids", []string{"yay", "kids", "cartoon"}},
	{"Regional", []string{"marathi", "aath", "bengali", "tamil", "telugu", "kannada"}},
	{"Entertainment", []string{"set", "sab", "pal", "sony tv", "entertainment"}},
	{"News", []string{"news", "aaj tak", "india tv", "ndtv"}},
	{"Music", []string{"music", "mtv", "vh1", "9xm"}},
}

// DefaultCategory is used when no rule matches.
const DefaultCategory = "Entertainment"

// Classify maps a channel display name to a category label.
func Classify(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return DefaultCategory
}
