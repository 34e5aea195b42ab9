// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"fmt"
	"strings"

	"github.com/pdiddy/styloguard/pkg/types"
)

type bigram struct{ first, second string }

// RepeatedBigrams pairs consecutive alphabetic stop words across the whole
// document, ignoring sentence boundaries, and returns every pair seen at
// least twice formatted as "w1 w2: n". Pairs are listed in first-seen order.
func RepeatedBigrams(tokens []types.Token) []string {
	var stream []string
	for _, t := range tokens {
		if t.IsAlpha && t.IsStop {
			stream = append(stream, strings.ToLower(t.Text))
		}
	}

	counts := make(map[bigram]int)
	var order []bigram
	for i := 0; i+1 < len(stream); i++ {
		b := bigram{stream[i], stream[i+1]}
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
	}

	var out []string
	for _, b := range order {
		if n := counts[b]; n >= 2 {
			out = append(out, fmt.Sprintf("%s %s: %d", b.first, b.second, n))
		}
	}
	return out
}
