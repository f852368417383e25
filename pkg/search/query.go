package search

import (
	"math"
	"sort"
	"strings"
)

// BM25 parameters.
const (
	bm25K1 = 1.2
	bm25B  = 0.75
)

const snippetLen = 150

// Options controls a search call.
type Options struct {
	// Limit caps the number of returned results.
	Limit int
	// Prefix expands the last query token to every indexed term it
	// prefixes, for search-as-you-type.
	Prefix bool
	// Threshold drops results scoring below it.
	Threshold float64
}

// DefaultOptions returns the usual query settings: ten results,
// prefix matching on.
func DefaultOptions() Options {
	return Options{Limit: 10, Prefix: true}
}

// Result is one scored hit.
type Result struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Score   float64  `json:"score"`
	Matches []string `json:"matches"`
	Snippet string   `json:"snippet"`
}

// Search scores every document containing a query term with BM25 and
// returns hits in descending score order.
func (idx *Index) Search(query string, opts Options) []Result {
	if query == "" || idx.IsEmpty() {
		return nil
	}
	tokens := TokenizeQuery(query)
	if len(tokens) == 0 {
		return nil
	}

	type hit struct {
		score   float64
		matches []string
	}
	hits := make(map[int]*hit)

	for i, token := range tokens {
		last := i == len(tokens)-1
		for _, term := range idx.matchingTerms(token, last && opts.Prefix) {
			postings := idx.Postings[term]
			idf := idx.idf(idx.DF[term])

			for _, p := range postings {
				doc := idx.Documents[p.DocIdx]
				docLen := float64(len(doc.Body))
				tf := float64(p.TF)

				score := idf *
					(tf * (bm25K1 + 1) /
						(tf + bm25K1*(1-bm25B+bm25B*docLen/idx.AvgDocLen))) *
					p.Field.Boost()

				h := hits[p.DocIdx]
				if h == nil {
					h = &hit{}
					hits[p.DocIdx] = h
				}
				h.score += score
				if !contains(h.matches, term) {
					h.matches = append(h.matches, term)
				}
			}
		}
	}

	results := make([]Result, 0, len(hits))
	for docIdx, h := range hits {
		if h.score < opts.Threshold {
			continue
		}
		doc := idx.Documents[docIdx]
		results = append(results, Result{
			ID:      doc.ID,
			Title:   doc.Title,
			URL:     doc.URL,
			Score:   h.score,
			Matches: h.matches,
			Snippet: snippet(doc.Body, h.matches, snippetLen),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

// idf computes the BM25 inverse document frequency for a term's
// document count.
func (idx *Index) idf(df int) float64 {
	n := float64(idx.DocCount)
	d := float64(df)
	if d == 0 {
		d = 1
	}
	return math.Log1p((n - d + 0.5) / (d + 0.5))
}

// matchingTerms returns the indexed terms a query token selects:
// the token itself, or every term it prefixes when expanding.
func (idx *Index) matchingTerms(token string, prefix bool) []string {
	if prefix && len(token) >= 2 {
		var terms []string
		for term := range idx.Postings {
			if strings.HasPrefix(term, token) {
				terms = append(terms, term)
			}
		}
		sort.Strings(terms)
		return terms
	}
	if _, ok := idx.Postings[token]; ok {
		return []string{token}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// snippet cuts a window of at most maxLen runes around the first
// matched term, extended backwards to a word boundary and fenced with
// ellipses when trimmed.
func snippet(body string, matches []string, maxLen int) string {
	if body == "" {
		return ""
	}

	lower := strings.ToLower(body)
	matchPos := -1
	for _, term := range matches {
		if pos := strings.Index(lower, term); pos >= 0 {
			if matchPos < 0 || pos < matchPos {
				matchPos = pos
			}
		}
	}
	if matchPos < 0 {
		matchPos = 0
	}

	runes := []rune(body)
	matchRune := len([]rune(body[:matchPos]))

	start := matchRune - maxLen/3
	if start < 0 {
		start = 0
	}
	for start > 0 && !isSpace(runes[start]) {
		start--
	}
	if start > 0 {
		start++
	}

	end := start + maxLen
	if end > len(runes) {
		end = len(runes)
	}

	out := string(runes[start:end])
	if start > 0 {
		out = "..." + out
	}
	if end < len(runes) {
		out += "..."
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
