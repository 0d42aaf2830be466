package storyboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rpggio/storyboard/internal/domain/catalog"
)

// DeriveTimeline returns the four presentation stages for c.
// The variant's declared phases are not consulted; every case gets the same
// Commit, Reveal, Finalize, Reference sequence.
func DeriveTimeline(v catalog.Variant, c Case) []Stage {
	return []Stage{
		{
			Label:  StageCommit,
			Detail: fmt.Sprintf("%dm window · lock ≥ %s ETH collateral per bid", c.Commit, FormatAmount(MinCollateral(c))),
		},
		{
			Label:  StageReveal,
			Detail: fmt.Sprintf("%dm window · validate salt + bid and rank for second price", c.Reveal),
		},
		{
			Label:  StageFinalize,
			Detail: fmt.Sprintf("%dm buffer · settle with winner paying second price", c.Finalize),
		},
		{
			Label:  StageReference,
			Detail: fmt.Sprintf("Check %s for the matching Foundry walkthrough", ReferencePath(v.TestPath)),
		},
	}
}

// MinCollateral is the deposit required per bid at the reserve price,
// rounded half away from zero to two decimals.
func MinCollateral(c Case) float64 {
	return round2(c.Reserve * (c.Collateral / 100))
}

// FormatAmount renders an ETH amount with exactly two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', 2, 64)
}

// ReferencePath rewrites a leading "../" to "./" for display.
func ReferencePath(p string) string {
	if rest, ok := strings.CutPrefix(p, "../"); ok {
		return "./" + rest
	}
	return p
}

// DisplayNotes returns the case notes, or the variant's sample note when empty.
func DisplayNotes(v catalog.Variant, c Case) string {
	if c.Notes != "" {
		return c.Notes
	}
	return v.SampleNote
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
