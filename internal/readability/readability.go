// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readability implements the lexical primitives used by the
// stylometric feature extractor: an English syllable counter and the
// Flesch Reading Ease and Gunning Fog formulas.
package readability

import (
	"math"
	"strings"
)

const vowels = "aeiouy"

// CountSyllables estimates the number of syllables in word. Each maximal
// run of vowels (a, e, i, o, u, y) counts once; a trailing "e" is treated
// as silent when more than one syllable was found. The result is never
// less than 1.
func CountSyllables(word string) int {
	w := strings.ToLower(word)
	n := 0
	prevVowel := false
	for _, c := range w {
		isVowel := strings.ContainsRune(vowels, c)
		if isVowel && !prevVowel {
			n++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(w, "e") && n > 1 {
		n--
	}
	if n < 1 {
		return 1
	}
	return n
}

// IsComplex reports whether an alphabetic word has more than two syllables.
func IsComplex(word string) bool {
	return CountSyllables(word) > 2
}

// FleschReadingEase returns 206.835 - 1.015*(words/sentences) -
// 84.6*(syllables/words), clamped at 0 and rounded to 2 decimals.
// It returns 0 when there are no sentences or no words.
func FleschReadingEase(sentences, words, syllables int) float64 {
	if sentences == 0 || words == 0 {
		return 0
	}
	wps := float64(words) / float64(sentences)
	spw := float64(syllables) / float64(words)
	score := 206.835 - 1.015*wps - 84.6*spw
	return Round(math.Max(score, 0), 2)
}

// GunningFog returns 0.4*((words/sentences) + 100*(complex/words)),
// rounded to 2 decimals. It returns 0 when there are no words or no
// sentences.
func GunningFog(words, sentences, complexWords int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	wps := float64(words) / float64(sentences)
	pct := 100 * float64(complexWords) / float64(words)
	return Round(0.4*(wps+pct), 2)
}

// Round rounds v to the given number of decimal places. Ties go to the
// even digit, so 0.625 rounds to 0.62 and 0.375 to 0.38.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
