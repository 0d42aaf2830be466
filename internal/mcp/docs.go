package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/storyboard/internal/domain/catalog"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `storyboard walks through sealed-bid (Vickrey) auction variants and builds case storyboards for them.

Core concepts:
- Variant: a catalog entry (overcollateralized, sneaky, aztec by default) with focus tags, phases and reference links.
- Selection: the variant currently shown in detail. Unknown ids fall back to the first variant.
- Case: a storyboard with reserve (ETH), collateral (% of bid), commit/reveal/finalize windows (minutes) and bidders.
- Timeline: four derived stages (Commit, Reveal, Finalize, Reference). Commit shows the minimum collateral per bid.

Inputs are never rejected: missing or non-numeric values become 0, empty nftId becomes #4921.
Cases live only as long as the MCP session.

Workflow:
1) list_variants, then select_variant / get_variant to explore.
2) build_case (or preview_case first) with form values; seed_case for a random sample.
3) list_cases / derive_timeline to review; recent_activity for the session log.

Docs:
- storyboard://docs/index
- storyboard://docs/timeline
- storyboard://catalog
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "storyboard://docs/index",
		Name:        "docs_index",
		Title:       "storyboard docs index",
		Description: "What the server does and which tool to call when.",
		Content: `# storyboard: Docs Index

## Tools

- ` + "`list_variants`" + ` / ` + "`get_variant`" + `: browse the catalog.
- ` + "`select_variant`" + ` / ` + "`get_selection`" + `: track the variant in focus. ` + "`build_case`" + ` uses it when ` + "`auctionId`" + ` is omitted.
- ` + "`build_case`" + `: coerce form values into a case, store it first in the list.
- ` + "`preview_case`" + `: same as build_case without storing.
- ` + "`seed_case`" + `: random variant with sample values (reserve 2.5 ETH, 30m commit, 25m reveal, 15m finalize, 4 bidders).
- ` + "`list_cases`" + ` / ` + "`derive_timeline`" + `: review storyboards.
- ` + "`recent_activity`" + `: what happened in this session.

## Highlights

- **Sealed-bid focus** (Vickrey lineage): every variant uses commit-and-reveal mechanics, so guardrails can be contrasted side by side.
- **Foundry ready** (forge test): tests in ./test mirror each contract; use them as scripts when walking through a live chain demo.
- **Sandbox safe** (Zero RPC): funds stay abstract and no RPC keys are needed; storyboard without deploying.
- **Case builder** (Storyboard): generate auction runbooks with timelines, expected deposits and reference links in one call.

## Limits

- Nothing persists past the session.
- Amounts are illustrative; no on-chain value is computed.
`,
	},
	{
		URI:         "storyboard://docs/timeline",
		Name:        "docs_timeline",
		Title:       "How timelines are derived",
		Description: "The four stages every storyboard shows and how their values are computed.",
		Content: `# Timeline derivation

Every case gets exactly four stages, whatever phases its variant declares:

1. **Commit**: ` + "`<commit>m window · lock ≥ <min> ETH collateral per bid`" + `, where
   ` + "`min = reserve × collateral / 100`" + ` rounded half away from zero to two decimals.
2. **Reveal**: ` + "`<reveal>m window · validate salt + bid and rank for second price`" + `.
3. **Finalize**: ` + "`<finalize>m buffer · settle with winner paying second price`" + `.
4. **Reference**: the variant's Foundry test path, with a leading ` + "`../`" + ` shown as ` + "`./`" + `.

Example: reserve 2.5, collateral 150 gives a 3.75 ETH minimum.
`,
	},
}

func registerDocResources(server *sdkmcp.Server, store *catalog.Store) {
	for _, doc := range docResources {
		addMarkdownResource(server, doc)
	}

	addMarkdownResource(server, docResource{
		URI:         "storyboard://catalog",
		Name:        "catalog",
		Title:       "Auction variant catalog",
		Description: "Every variant with its phases, checklists and links.",
		Content:     renderCatalog(store),
	})
}

func addMarkdownResource(server *sdkmcp.Server, doc docResource) {
	server.AddResource(&sdkmcp.Resource{
		URI:         doc.URI,
		Name:        doc.Name,
		Title:       doc.Title,
		Description: doc.Description,
		MIMEType:    "text/markdown",
		Size:        int64(len(doc.Content)),
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := doc.URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     doc.Content,
			}},
		}, nil
	})
}

func renderCatalog(store *catalog.Store) string {
	var b strings.Builder
	b.WriteString("# Auction variants\n")
	for _, v := range store.List() {
		fmt.Fprintf(&b, "\n## %s (`%s`)\n\n%s\n\n_%s_\n\n", v.Name, v.ID, v.Summary, v.Signature)
		fmt.Fprintf(&b, "Focus: %s\n\n", strings.Join(v.Focus, ", "))
		for i, p := range v.Phases {
			fmt.Fprintf(&b, "%d. **%s** (%s): %s\n", i+1, p.Title, p.Duration, p.Description)
			for _, item := range p.Checklist {
				fmt.Fprintf(&b, "   - %s\n", item)
			}
		}
		fmt.Fprintf(&b, "\nContract: %s\nTests: %s\nDeep dive: %s\n", v.CodePath, v.TestPath, v.Blog)
	}
	return b.String()
}
