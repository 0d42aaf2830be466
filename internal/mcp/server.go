package mcp

import (
	"context"
	"log/slog"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients during initialization.
const Version = "0.1.0"

// CaseService defines storyboard operations needed by MCP.
type CaseService interface {
	Submit(ctx context.Context, workspaceID string, raw storyboard.RawInput) (storyboard.Case, error)
	Seed(ctx context.Context, workspaceID string) (storyboard.Case, error)
	Preview(ctx context.Context, workspaceID string, raw storyboard.RawInput) (storyboard.Case, error)
	Find(ctx context.Context, workspaceID, caseID string) (storyboard.Case, error)
	List(ctx context.Context, workspaceID string) ([]storyboard.Case, error)
	Discard(ctx context.Context, workspaceID string) error
	Storyboard(c storyboard.Case) storyboard.Board
	Catalog() *catalog.Store
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	LogActivity(ctx context.Context, workspaceID string, entry *activity.ActivityEntry) error
	GetRecentActivity(ctx context.Context, workspaceID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
	Discard(ctx context.Context, workspaceID string) error
}

// Services contains all domain services needed by MCP.
type Services struct {
	Cases    CaseService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server, _ := newServer(cfg)
	return server
}

func newServer(cfg Config) (*sdkmcp.Server, *Workspaces) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	store := cfg.Services.Cases.Catalog()
	workspaces := NewWorkspaces(store, logger)

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "storyboard",
		Version: Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
		InitializedHandler: func(_ context.Context, req *sdkmcp.InitializedRequest) {
			session := req.Session
			go func() {
				_ = session.Wait()
				teardown(workspaces, cfg.Services, logger, session.ID())
			}()
		},
	})

	registerDocResources(server, store)

	server.AddReceivingMiddleware(workspaceMiddleware(workspaces), trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	t := &toolset{
		cases:    cfg.Services.Cases,
		activity: cfg.Services.Activity,
		store:    store,
		logger:   logger,
	}
	t.register(server)

	return server, workspaces
}

// teardown forgets the session's workspace and deletes its cases and activity.
func teardown(workspaces *Workspaces, services Services, logger *slog.Logger, sessionID string) {
	ws := workspaces.Forget(sessionID)
	if ws == nil {
		return
	}

	ws.Lock()
	defer ws.Unlock()

	ctx := context.Background()
	if err := services.Cases.Discard(ctx, ws.ID); err != nil {
		logger.Warn("failed to discard cases", "workspace_id", ws.ID, "error", err)
	}
	if services.Activity != nil {
		if err := services.Activity.Discard(ctx, ws.ID); err != nil {
			logger.Warn("failed to discard activity", "workspace_id", ws.ID, "error", err)
		}
	}
	logger.Debug("workspace closed", "workspace_id", ws.ID, "session_id", sessionID)
}
