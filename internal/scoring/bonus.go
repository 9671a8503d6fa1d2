package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// BonusTable is the deterministic content-bonus lookup applied by the full
// calculator. Each signal contributes a fixed amount.
type BonusTable struct {
	ExtraHashtag     float64 // per hashtag beyond the two required ones
	MaxExtraHashtags int
	Mention          float64 // per @mention
	MaxMentions      int
	Cashtag          float64 // text carries $<projectTag>
	Media            float64 // attached picture or video link
	Thread           float64 // thread marker such as "1/" or 🧵
	LongForm         float64 // text at least LongFormRunes long
	LongFormRunes    int
}

// Content bonus defaults.
const (
	ExtraHashtagBonus = 2.0
	MaxExtraHashtags  = 3
	MentionBonus      = 1.0
	MaxMentions       = 3
	CashtagBonus      = 3.0
	MediaBonus        = 5.0
	ThreadBonus       = 5.0
	LongFormBonus     = 3.0
	LongFormRunes     = 200
)

// DefaultBonusTable returns the bonus table built from the package constants.
func DefaultBonusTable() BonusTable {
	return BonusTable{
		ExtraHashtag:     ExtraHashtagBonus,
		MaxExtraHashtags: MaxExtraHashtags,
		Mention:          MentionBonus,
		MaxMentions:      MaxMentions,
		Cashtag:          CashtagBonus,
		Media:            MediaBonus,
		Thread:           ThreadBonus,
		LongForm:         LongFormBonus,
		LongFormRunes:    LongFormRunes,
	}
}

var (
	hashtagPattern     = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	mentionPattern     = regexp.MustCompile(`@[A-Za-z0-9_]{1,15}`)
	threadIndexPattern = regexp.MustCompile(`(^|\s)1/\d*(\s|$)`)
	mediaMarkers       = []string{"pic.twitter.com/", "pic.x.com/", "/photo/", "/video/"}
)

// ContentBonus returns the bonus earned by text for the given project tag.
func (b BonusTable) ContentBonus(text, projectTag string) float64 {
	lower := strings.ToLower(text)
	tag := strings.ToLower(NormalizeTag(projectTag))

	var bonus float64

	seen := make(map[string]struct{})
	for _, h := range hashtagPattern.FindAllString(lower, -1) {
		if h == PlatformTag || h == "#"+tag {
			continue
		}
		seen[h] = struct{}{}
	}
	bonus += b.ExtraHashtag * float64(min(len(seen), b.MaxExtraHashtags))

	mentions := make(map[string]struct{})
	for _, m := range mentionPattern.FindAllString(lower, -1) {
		mentions[m] = struct{}{}
	}
	bonus += b.Mention * float64(min(len(mentions), b.MaxMentions))

	if tag != "" && strings.Contains(lower, "$"+tag) {
		bonus += b.Cashtag
	}

	for _, marker := range mediaMarkers {
		if strings.Contains(lower, marker) {
			bonus += b.Media
			break
		}
	}

	if strings.Contains(text, "🧵") || threadIndexPattern.MatchString(lower) || strings.Contains(lower, "thread") {
		bonus += b.Thread
	}

	if b.LongFormRunes > 0 && utf8.RuneCountInString(text) >= b.LongFormRunes {
		bonus += b.LongForm
	}

	return bonus
}
