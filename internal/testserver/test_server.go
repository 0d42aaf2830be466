// Package testserver runs the storyboard MCP server over HTTP for tests.
package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rpggio/storyboard/internal/domain/activity"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/rpggio/storyboard/internal/mcp"
	"github.com/rpggio/storyboard/internal/sqlite"
	"github.com/rpggio/storyboard/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
}

// New starts a server backed by an in-memory SQLite database and the builtin catalog.
func New(t *testing.T) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	store, err := catalog.NewStore(catalog.Builtin())
	require.NoError(t, err)

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)
	caseSvc := storyboard.NewService(storyboard.NewFactory(store), sqlite.NewCaseRepository(db), activitySvc, nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Cases:    caseSvc,
			Activity: activitySvc,
		},
	})

	ts := &TestServer{
		Server: httptest.NewServer(transport.NewRouter(server, nil)),
		DB:     db,
	}

	t.Cleanup(func() {
		ts.Server.Close()
		_ = db.Close()
	})

	return ts
}

// Connect opens a new MCP session against the server.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}
