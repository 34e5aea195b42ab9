// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import "github.com/pdiddy/styloguard/pkg/types"

// NounChunks finds base noun phrases in one sentence's tokens. A chunk is a
// run of determiners, numerals, adjectives, nouns and proper nouns that ends
// at its last noun, or a lone pronoun. Span offsets are shifted by base.
func NounChunks(tokens []types.Token, base int) []types.Span {
	var out []types.Span
	i := 0
	for i < len(tokens) {
		if tokens[i].POS == types.POSPron {
			out = append(out, types.Span{Start: base + i, End: base + i + 1})
			i++
			continue
		}
		if !inNominal(tokens[i].POS) {
			i++
			continue
		}
		start, lastNoun := i, -1
		for i < len(tokens) && inNominal(tokens[i].POS) {
			if isNoun(tokens[i].POS) {
				lastNoun = i
			}
			i++
		}
		if lastNoun >= 0 {
			out = append(out, types.Span{Start: base + start, End: base + lastNoun + 1})
			i = lastNoun + 1
		}
	}
	return out
}

func inNominal(pos types.POS) bool {
	switch pos {
	case types.POSDet, types.POSNum, types.POSAdj, types.POSNoun, types.POSPropn:
		return true
	}
	return false
}

func isNoun(pos types.POS) bool {
	return pos == types.POSNoun || pos == types.POSPropn
}
