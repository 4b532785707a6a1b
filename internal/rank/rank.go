// Package rank orders a corpus of texts by relevance to a query.
//
// Texts are embedded as L2-normalised TF-IDF vectors over the corpus
// vocabulary; relevance is the cosine similarity between the query vector
// and each corpus vector.
package rank

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// Match is one ranked corpus entry.
type Match struct {
	// Index is the position of the text in the input corpus.
	Index int

	// Score is the cosine similarity to the query, in [0, 1].
	Score float64
}

// Top returns the n most query-relevant corpus entries in descending score
// order. Ties keep corpus order. n <= 0 or n beyond the corpus size returns
// the whole corpus ranked.
func Top(query string, corpus []string, n int) []Match {
	if len(corpus) == 0 {
		return nil
	}

	vocab, idf := buildVocabulary(corpus)
	queryVec := vectorize(query, vocab, idf)

	matches := make([]Match, len(corpus))
	for i, text := range corpus {
		matches[i] = Match{Index: i, Score: floats.Dot(queryVec, vectorize(text, vocab, idf))}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if n > 0 && n < len(matches) {
		matches = matches[:n]
	}
	return matches
}

// buildVocabulary assigns an index to every term in the corpus and computes
// smoothed inverse document frequencies, so terms appearing everywhere
// contribute little to similarity.
func buildVocabulary(corpus []string) (map[string]int, []float64) {
	vocab := make(map[string]int)
	df := []int{}

	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, term := range tokenize(text) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			idx, ok := vocab[term]
			if !ok {
				idx = len(df)
				vocab[term] = idx
				df = append(df, 0)
			}
			df[idx]++
		}
	}

	total := float64(len(corpus))
	idf := make([]float64, len(df))
	for i, count := range df {
		idf[i] = math.Log((1+total)/(1+float64(count))) + 1
	}
	return vocab, idf
}

// vectorize embeds text as a unit-length TF-IDF vector over the vocabulary.
// Terms outside the vocabulary are ignored.
func vectorize(text string, vocab map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(idf))
	terms := tokenize(text)
	if len(terms) == 0 {
		return vec
	}

	for _, term := range terms {
		if idx, ok := vocab[term]; ok {
			vec[idx] += idf[idx]
		}
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// tokenize lowercases text and splits it on anything that is neither a
// letter nor a digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
