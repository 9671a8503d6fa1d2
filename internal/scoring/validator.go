package scoring

import (
	"regexp"
	"strings"
)

// PlatformTag is the hashtag every tracked post must carry in addition to the
// campaign's own tag.
const PlatformTag = "#hiveai"

var projectTagPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,29}$`)

// NormalizeTag strips a leading '#' and surrounding whitespace.
func NormalizeTag(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "#")
}

// ValidProjectTag reports whether tag is an acceptable campaign project tag.
func ValidProjectTag(tag string) bool {
	return projectTagPattern.MatchString(NormalizeTag(tag))
}

// IsValidPost reports whether text carries both the platform tag and
// #<projectTag>, compared case-insensitively.
func IsValidPost(text, projectTag string) bool {
	tag := NormalizeTag(projectTag)
	if tag == "" {
		return false
	}
	lower := strings.ToLower(text)
	return strings.Contains(lower, PlatformTag) && strings.Contains(lower, "#"+strings.ToLower(tag))
}
