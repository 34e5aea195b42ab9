// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embedding

// Band is an informational reading of a similarity score. It is never used
// to make a decision.
type Band string

const (
	BandSameAuthor      Band = "suggestive of same authorship"
	BandDifferentAuthor Band = "suggestive of different authorship or genre shift"
)

// SameAuthorThreshold is the lowest score read as BandSameAuthor.
const SameAuthorThreshold = 0.9

// BandFor returns the display band of score.
func BandFor(score float64) Band {
	if score >= SameAuthorThreshold {
		return BandSameAuthor
	}
	return BandDifferentAuthor
}
