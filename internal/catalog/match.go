package catalog

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minScore is the lowest fuzzy similarity Find reports.
const minScore = 0.75

// Confidence says how a match was found.
type Confidence string

const (
	ConfidenceExact  Confidence = "exact"  // folded titles are equal
	ConfidencePrefix Confidence = "prefix" // title starts with the query's words
	ConfidenceFuzzy  Confidence = "fuzzy"  // Jaro-Winkler at or above minScore
)

// Match is a catalog entry scored against a query.
type Match struct {
	Entry
	Score      float64
	Confidence Confidence
}

// FoldTitle reduces a title to space-separated lower-case words: marks are
// stripped, "&" reads as "and", apostrophes vanish and other punctuation
// separates words. A leading article is dropped when more words follow.
func FoldTitle(title string) string {
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), cases.Fold())
	s, _, err := transform.String(fold, title)
	if err != nil {
		s = strings.ToLower(title)
	}
	s = strings.NewReplacer("&", " and ", "'", "", "’", "").Replace(s)

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) > 1 {
		switch words[0] {
		case "the", "a", "an":
			words = words[1:]
		}
	}
	return strings.Join(words, " ")
}

// Find looks query up across every catalog entry and returns matches best
// first, keeping catalog order among equal scores. A limit of 0 returns all.
func (c *Catalog) Find(query string, limit int) []Match {
	q := FoldTitle(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for _, e := range c.Entries() {
		score, conf := similarity(q, FoldTitle(e.Title))
		if score < minScore {
			continue
		}
		matches = append(matches, Match{Entry: e, Score: score, Confidence: conf})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func similarity(query, title string) (float64, Confidence) {
	switch {
	case query == title:
		return 1, ConfidenceExact
	case strings.HasPrefix(title, query+" "):
		return 0.95, ConfidencePrefix
	}
	return float64(edlib.JaroWinklerSimilarity(query, title)), ConfidenceFuzzy
}
