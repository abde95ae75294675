// Package emoji holds the immutable emoji catalog and its
// diacritic-insensitive search.
package emoji

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Emoji is one selectable symbol with its merged, normalized search text.
type Emoji struct {
	Symbol string
	Search string
}

// Category is an ordered list of emojis under a display name.
type Category struct {
	Name     string
	Emojis   []Emoji
	synonyms []string // normalized
}

// Catalog is the fixed category set, built once at startup.
type Catalog struct {
	Categories []Category
	aliases    []string // every normalized alias, for suggestions
}

// NewCatalog builds the catalog by merging the base alias table with the
// category groups and normalizing every search string.
func NewCatalog() *Catalog {
	c := &Catalog{}
	seenAlias := make(map[string]bool)

	for _, g := range groups {
		cat := Category{Name: g.name}
		for _, syn := range g.synonyms {
			cat.synonyms = append(cat.synonyms, Normalize(syn))
		}
		for _, it := range g.items {
			parts := make([]string, 0, 2+len(it.aliases)+len(g.aliases))
			parts = append(parts, it.symbol)
			parts = append(parts, baseAliases[it.symbol]...)
			parts = append(parts, g.aliases...)
			parts = append(parts, it.aliases...)

			for _, a := range parts[1:] {
				for _, word := range strings.Fields(Normalize(a)) {
					if !seenAlias[word] {
						seenAlias[word] = true
						c.aliases = append(c.aliases, word)
					}
				}
			}

			cat.Emojis = append(cat.Emojis, Emoji{
				Symbol: it.symbol,
				Search: Normalize(strings.Join(parts, " ")),
			})
		}
		c.Categories = append(c.Categories, cat)
	}
	return c
}

// Search returns every emoji whose merged search text contains the
// normalized query, across all categories, de-duplicated by symbol, in
// catalog order. When nothing matches textually, an exact match against a
// category synonym returns that whole category. An empty query returns nil.
func (c *Catalog) Search(query string) []Emoji {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	var out []Emoji
	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		for _, e := range cat.Emojis {
			if seen[e.Symbol] || !strings.Contains(e.Search, q) {
				continue
			}
			seen[e.Symbol] = true
			out = append(out, e)
		}
	}
	if out != nil {
		return out
	}

	for _, cat := range c.Categories {
		for _, syn := range cat.synonyms {
			if syn == q {
				return append([]Emoji(nil), cat.Emojis...)
			}
		}
	}
	return nil
}

// Suggest returns the catalog alias closest to the query (edit distance at
// most 2), for a "did you mean" hint when Search comes back empty. Returns
// the empty string when nothing is close enough.
func (c *Catalog) Suggest(query string) string {
	q := Normalize(query)
	if q == "" {
		return ""
	}
	best, bestDist := "", 3
	for _, a := range c.aliases {
		if d := levenshtein.ComputeDistance(q, a); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
