package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var errNoWorkspace = errors.New("no workspace bound to request")

type toolset struct {
	cases    CaseService
	activity ActivityService
	store    *catalog.Store
	logger   *slog.Logger
}

func (t *toolset) register(server *sdkmcp.Server) {
	t.registerCatalogTools(server)
	t.registerCaseTools(server)
	t.registerActivityTools(server)
}

// enter locks the request's workspace; callers must invoke the returned release.
func (t *toolset) enter(ctx context.Context) (*Workspace, func(), error) {
	ws := getWorkspace(ctx)
	if ws == nil {
		return nil, nil, errNoWorkspace
	}
	ws.Lock()
	return ws, ws.Unlock, nil
}

func (t *toolset) registerCatalogTools(server *sdkmcp.Server) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_variants",
		Description: "List the auction variants in catalog order with overview snapshots",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, listVariantsOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, listVariantsOutput{}, err
		}
		defer release()

		return nil, listVariantsOutput{
			ActiveID:  ws.Selection.ActiveID(),
			Variants:  t.store.List(),
			Snapshots: t.store.Snapshots(4),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_variant",
		Description: "Get one auction variant with its phases, checklists and reference links; unknown ids return the first variant",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input variantIDInput) (*sdkmcp.CallToolResult, variantOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, variantOutput{}, err
		}
		defer release()

		v, ok := t.store.Resolve(input.ID)
		return nil, variantOutput{
			Variant:  v,
			Active:   v.ID == ws.Selection.ActiveID(),
			FellBack: !ok,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_variant",
		Description: "Make a variant active for detail display; unknown ids select the first variant",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input variantIDInput) (*sdkmcp.CallToolResult, selectVariantOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, selectVariantOutput{}, err
		}
		defer release()

		v := ws.Selection.Select(input.ID)
		t.logActivity(ctx, ws, &activity.ActivityEntry{
			VariantID:    v.ID,
			ActivityType: activity.TypeVariantSelected,
			Summary:      fmt.Sprintf("Selected %s", v.Name),
		})
		return nil, selectVariantOutput{Variant: v, FellBack: v.ID != input.ID}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_selection",
		Description: "Get the active variant",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, variantOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, variantOutput{}, err
		}
		defer release()

		return nil, variantOutput{Variant: ws.Selection.Active(), Active: true}, nil
	})
}

func (t *toolset) registerCaseTools(server *sdkmcp.Server) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "build_case",
		Description: "Generate a storyboard case from form values and add it to the front of the session's cases",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input caseInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, boardOutput{}, err
		}
		defer release()

		c, err := t.cases.Submit(ctx, ws.ID, input.raw(ws.Selection.ActiveID()))
		if err != nil {
			return nil, boardOutput{}, toolError(err)
		}
		return nil, toBoardOutput(t.cases.Storyboard(c), true), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "preview_case",
		Description: "Show the storyboard build_case would produce without storing it",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input caseInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, boardOutput{}, err
		}
		defer release()

		c, err := t.cases.Preview(ctx, ws.ID, input.raw(ws.Selection.ActiveID()))
		if err != nil {
			return nil, boardOutput{}, toolError(err)
		}
		return nil, toBoardOutput(t.cases.Storyboard(c), false), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "seed_case",
		Description: "Generate a sample storyboard for a random variant",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, boardOutput{}, err
		}
		defer release()

		c, err := t.cases.Seed(ctx, ws.ID)
		if err != nil {
			return nil, boardOutput{}, toolError(err)
		}
		return nil, toBoardOutput(t.cases.Storyboard(c), true), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_cases",
		Description: "List the session's storyboards, most recent first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, listCasesOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, listCasesOutput{}, err
		}
		defer release()

		cases, err := t.cases.List(ctx, ws.ID)
		if err != nil {
			return nil, listCasesOutput{}, toolError(err)
		}
		out := listCasesOutput{Count: len(cases), Cases: make([]boardOutput, 0, len(cases))}
		for _, c := range cases {
			out.Cases = append(out.Cases, toBoardOutput(t.cases.Storyboard(c), true))
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "derive_timeline",
		Description: "Derive the Commit, Reveal, Finalize and Reference timeline for a stored case",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input caseIDInput) (*sdkmcp.CallToolResult, boardOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, boardOutput{}, err
		}
		defer release()

		c, err := t.cases.Find(ctx, ws.ID, input.CaseID)
		if err != nil {
			return nil, boardOutput{}, toolError(err)
		}
		return nil, toBoardOutput(t.cases.Storyboard(c), true), nil
	})
}

func (t *toolset) registerActivityTools(server *sdkmcp.Server) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_activity",
		Description: "List the session's recent storyboard activity, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, input recentActivityInput) (*sdkmcp.CallToolResult, recentActivityOutput, error) {
		ws, release, err := t.enter(ctx)
		if err != nil {
			return nil, recentActivityOutput{}, err
		}
		defer release()

		out := recentActivityOutput{Entries: []activityEntryOutput{}}
		if t.activity == nil {
			return nil, out, nil
		}

		opts := activity.ListActivityOptions{Limit: input.Limit}
		if input.Type != "" {
			kind := activity.ActivityType(input.Type)
			opts.ActivityType = &kind
		}
		entries, err := t.activity.GetRecentActivity(ctx, ws.ID, opts)
		if err != nil {
			return nil, recentActivityOutput{}, toolError(err)
		}
		for _, e := range entries {
			out.Entries = append(out.Entries, toActivityOutput(e))
		}
		return nil, out, nil
	})
}

func (t *toolset) logActivity(ctx context.Context, ws *Workspace, entry *activity.ActivityEntry) {
	if t.activity == nil {
		return
	}
	if err := t.activity.LogActivity(ctx, ws.ID, entry); err != nil {
		t.logger.Warn("failed to log activity", "workspace_id", ws.ID, "type", entry.ActivityType, "error", err)
	}
}

var _ CaseService = (*storyboard.Service)(nil)
var _ ActivityService = (*activity.Service)(nil)
