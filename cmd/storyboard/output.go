package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBoard(w io.Writer, b storyboard.Board) {
	c := b.Case
	fmt.Fprintf(w, "Storyboard %s · %s\n", c.ID, b.VariantName)
	fmt.Fprintf(w, "NFT %s · reserve %s ETH · collateral %s%% · %d bidders\n",
		c.NFTID, formatInput(c.Reserve), formatInput(c.Collateral), c.Bidders)
	fmt.Fprintf(w, "Tags: %s\n", strings.Join(b.Tags, ", "))
	if b.Notes != "" {
		fmt.Fprintf(w, "Notes: %s\n", b.Notes)
	}
	for _, s := range b.Stages {
		fmt.Fprintf(w, "  %-9s %s\n", s.Label, s.Detail)
	}
}

// formatInput renders a form value as entered, without padding decimals.
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printVariantList(w io.Writer, variants []catalog.Variant, activeID string) {
	for _, v := range variants {
		marker := " "
		if v.ID == activeID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-20s %s\n", marker, v.ID, v.Name)
	}
}

func printVariant(w io.Writer, v catalog.Variant) {
	fmt.Fprintf(w, "%s (%s)\n%s\n%s\n", v.Name, v.ID, v.Summary, v.Signature)
	fmt.Fprintf(w, "Focus: %s\n", strings.Join(v.Focus, ", "))
	for i, p := range v.Phases {
		fmt.Fprintf(w, "%d. %s (%s): %s\n", i+1, p.Title, p.Duration, p.Description)
		for _, item := range p.Checklist {
			fmt.Fprintf(w, "   - %s\n", item)
		}
	}
	fmt.Fprintf(w, "Contract: %s\nTests: %s\nDeep dive: %s\n", v.CodePath, storyboard.ReferencePath(v.TestPath), v.Blog)
}
