package match

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// TopN is how many ranked documents the facilities flow surfaces.
const TopN = 5

// englishStopWords is the filter applied before term weighting. A compact
// list is enough here: the corpus is short facility descriptions.
var englishStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "have": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "that": true, "the": true, "to": true, "was": true, "were": true,
	"will": true, "with": true, "you": true, "your": true,
}

// Ranked is a document index with its cosine similarity to the query.
type Ranked struct {
	Index int
	Score float64
}

// Vectorizer builds a TF-IDF vector space over a document corpus and ranks
// documents by cosine similarity to a query. Weighting follows the usual
// smooth-idf convention: idf = ln((1+n)/(1+df)) + 1, vectors L2-normalized.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
	docs  [][]float64
}

// NewVectorizer fits a vectorizer over the given documents.
func NewVectorizer(documents []string) *Vectorizer {
	v := &Vectorizer{vocab: make(map[string]int)}

	tokenized := make([][]string, len(documents))
	docFreq := make(map[string]int)
	for i, doc := range documents {
		tokens := tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = len(v.vocab)
			}
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
		}
	}

	n := float64(len(documents))
	v.idf = make([]float64, len(v.vocab))
	for tok, idx := range v.vocab {
		v.idf[idx] = math.Log((1+n)/(1+float64(docFreq[tok]))) + 1
	}

	v.docs = make([][]float64, len(documents))
	for i, tokens := range tokenized {
		v.docs[i] = v.vectorize(tokens)
	}
	return v
}

// Rank scores every document against the query and returns the topN by
// similarity. Ties keep original document order (stable sort).
func (v *Vectorizer) Rank(query string, topN int) []Ranked {
	queryVec := v.vectorize(tokenize(query))

	ranked := make([]Ranked, len(v.docs))
	for i, doc := range v.docs {
		ranked[i] = Ranked{Index: i, Score: dot(queryVec, doc)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

// vectorize builds the L2-normalized TF-IDF vector for a token list. Tokens
// outside the fitted vocabulary are ignored.
func (v *Vectorizer) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range tokens {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// dot is the cosine similarity of two already-normalized vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if !englishStopWords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
