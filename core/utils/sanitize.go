package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy allows the inline markup operators use in titles (<i>, <sub>, ...)
// and strips scripts, handlers and unsafe links.
var textPolicy = bluemonday.UGCPolicy()

// SanitizeText cleans operator-supplied text that the public site inserts as HTML.
// Plain text without markup comes back unchanged; text containing markup is
// re-serialized by the policy, so entities in it come back escaped.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.ContainsAny(s, "<>") {
		return s
	}
	return textPolicy.Sanitize(s)
}
