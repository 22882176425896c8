// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from user-entered content and LLM
// output before it is rendered.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Strip removes all markup, leaving plain text. Post messages and generated
// recipe text go through this before rendering.
func Strip(html string) string {
	return strict.Sanitize(html)
}
