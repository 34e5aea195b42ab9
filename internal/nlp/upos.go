// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"strings"

	"github.com/pdiddy/styloguard/pkg/types"
)

// auxLemmas are verb lemmas tagged AUX rather than VERB.
var auxLemmas = map[string]bool{
	"be": true, "have": true, "do": true, "will": true, "shall": true,
	"may": true, "might": true, "can": true, "could": true, "would": true,
	"should": true, "must": true,
}

var pennToUniversal = map[string]types.POS{
	"NN":    types.POSNoun,
	"NNS":   types.POSNoun,
	"NNP":   types.POSPropn,
	"NNPS":  types.POSPropn,
	"JJ":    types.POSAdj,
	"JJR":   types.POSAdj,
	"JJS":   types.POSAdj,
	"RB":    types.POSAdv,
	"RBR":   types.POSAdv,
	"RBS":   types.POSAdv,
	"WRB":   types.POSAdv,
	"PRP":   types.POSPron,
	"PRP$":  types.POSPron,
	"WP":    types.POSPron,
	"WP$":   types.POSPron,
	"DT":    types.POSDet,
	"PDT":   types.POSDet,
	"WDT":   types.POSDet,
	"IN":    types.POSAdp,
	"RP":    types.POSAdp,
	"TO":    types.POSPart,
	"POS":   types.POSPart,
	"CC":    types.POSCConj,
	"CD":    types.POSNum,
	"UH":    types.POSIntj,
	"MD":    types.POSAux,
	"SYM":   types.POSSym,
	"$":     types.POSSym,
	"#":     types.POSSym,
	".":     types.POSPunct,
	",":     types.POSPunct,
	":":     types.POSPunct,
	"(":     types.POSPunct,
	")":     types.POSPunct,
	"``":    types.POSPunct,
	"''":    types.POSPunct,
	"-LRB-": types.POSPunct,
	"-RRB-": types.POSPunct,
	"HYPH":  types.POSPunct,
	"NFP":   types.POSPunct,
}

// Universal maps a Penn Treebank tag to a coarse universal tag. Verb forms
// whose lemma is an auxiliary map to AUX.
func Universal(penn, lemma string) types.POS {
	if strings.HasPrefix(penn, "VB") {
		if auxLemmas[lemma] {
			return types.POSAux
		}
		return types.POSVerb
	}
	if pos, ok := pennToUniversal[penn]; ok {
		return pos
	}
	return types.POSX
}
