package renderer

import "github.com/kaspa-community/projector"

// FactsMarkdown renders the portfolio facts block to a markdown string.
func FactsMarkdown(f *projector.Facts) string {
	partials := map[string]string{
		"facts_btc": "facts_btc.md",
	}
	return renderTemplate("facts", "facts.md", partials, f)
}
