package core

import (
	"regexp"
	"strings"
)

const maxCategoryLen = 50

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeCategory canonicalizes a user-entered custom category label:
// trim, lower-case, "&" becomes " and ", runs of non-alphanumerics
// collapse to single underscores, edge underscores are stripped and the
// result is capped at 50 characters. Idempotent: normalizing an already
// normalized string returns it unchanged.
//
//	NormalizeCategory("Dining & Out!!") == "dining_and_out"
//
// An empty result means the input had no usable characters; callers
// must reject the draft rather than submit a blank category.
func NormalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlnumRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > maxCategoryLen {
		// Truncation can land on an underscore; strip it so the
		// function stays idempotent.
		s = strings.TrimRight(s[:maxCategoryLen], "_")
	}
	return s
}
