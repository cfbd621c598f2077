package trendbot

import (
	"strings"

	"github.com/samber/lo"
)

// blockedKeywords are matched as lowercase substrings, so "god" also
// rejects "godfather". That is intended.
var blockedKeywords = []string{
	"politics", "election", "government", "minister",
	"bjp", "congress", "parliament", "president",
	"religion", "god", "hindu", "islam", "christian",
	"temple", "mosque", "church", "israel", "palestine",
}

// Blocklist is an immutable set of lowercase keywords.
type Blocklist struct {
	keywords []string
}

// DefaultBlocklist returns the built-in sensitive keyword set.
func DefaultBlocklist() *Blocklist {
	return NewBlocklist(blockedKeywords...)
}

// NewBlocklist builds a blocklist from keywords. Keywords are lowercased,
// empty entries and duplicates are dropped.
func NewBlocklist(keywords ...string) *Blocklist {
	kws := lo.Uniq(lo.FilterMap(keywords, func(k string, _ int) (string, bool) {
		k = strings.ToLower(strings.TrimSpace(k))
		return k, k != ""
	}))
	return &Blocklist{keywords: kws}
}

// Keywords returns a copy of the keyword set.
func (b *Blocklist) Keywords() []string {
	return append([]string(nil), b.keywords...)
}

// Match returns the first keyword found in text, if any.
func (b *Blocklist) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	return lo.Find(b.keywords, func(k string) bool {
		return strings.Contains(lower, k)
	})
}

// IsSafe reports whether text contains none of the keywords, case-insensitively.
func (b *Blocklist) IsSafe(text string) bool {
	_, blocked := b.Match(text)
	return !blocked
}
