package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const workspaceKey contextKey = iota

// getWorkspace extracts the workspace from context.
func getWorkspace(ctx context.Context) *Workspace {
	ws, _ := ctx.Value(workspaceKey).(*Workspace)
	return ws
}

func withWorkspace(ctx context.Context, ws *Workspace) context.Context {
	return context.WithValue(ctx, workspaceKey, ws)
}

// workspaceMiddleware resolves the caller's workspace from its MCP session.
func workspaceMiddleware(workspaces *Workspaces) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method != "tools/call" && method != "resources/read" {
				return next(ctx, method, req)
			}
			ws := workspaces.ForSession(safeSessionID(req))
			return next(withWorkspace(ctx, ws), method, req)
		}
	}
}
