package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpggio/storyboard/internal/config"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/rpggio/storyboard/internal/domain/storyboard"
	"github.com/rpggio/storyboard/internal/sqlite"
	"github.com/rpggio/storyboard/internal/transport"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORYBOARD_CONFIG_PATH",
		"STORYBOARD_TRANSPORT",
		"STORYBOARD_DB_PATH",
		"STORYBOARD_LOG_LEVEL",
		"STORYBOARD_LOG_PATH",
		"STORYBOARD_CATALOG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)
	return run(t, args...)
}

// run executes the root command against the current environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVariants_List(t *testing.T) {
	out, err := execute(t, "variants")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "* overcollateralized"))
	require.True(t, strings.HasPrefix(lines[1], "  sneaky"))
	require.Contains(t, lines[2], "Aztec Connect Vickrey auction")
}

func TestVariants_ShowFallsBack(t *testing.T) {
	out, err := execute(t, "variants", "sneaky", "--json")
	require.NoError(t, err)
	var v catalog.Variant
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "sneaky", v.ID)

	out, err = execute(t, "variants", "dutch")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Overcollateralized Vickrey auction (overcollateralized)"))
	require.Contains(t, out, "Tests: ./test/OverCollateralizedAuction.t.sol")
}

func TestCase_CoercesFlags(t *testing.T) {
	out, err := execute(t, "case",
		"--auction", "sneaky",
		"--nft=",
		"--reserve", "2",
		"--collateral", "abc",
		"--commit", "10",
		"--reveal=",
		"--finalize", "5",
		"--bidders", "3",
		"--json",
	)
	require.NoError(t, err)

	var b storyboard.Board
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	c := b.Case
	require.Equal(t, "01", c.ID)
	require.Equal(t, "sneaky", c.AuctionID)
	require.Equal(t, "#4921", c.NFTID)
	require.Equal(t, 2.0, c.Reserve)
	require.Zero(t, c.Collateral)
	require.Equal(t, 10, c.Commit)
	require.Zero(t, c.Reveal)
	require.Equal(t, 5, c.Finalize)
	require.Equal(t, 3, c.Bidders)
	require.Equal(t, "0.00", b.MinCollateral)
}

func TestCase_TextOutput(t *testing.T) {
	out, err := execute(t, "case", "--reserve", "2.5", "--collateral", "150", "--commit", "30")
	require.NoError(t, err)
	require.Contains(t, out, "Storyboard 01 · Overcollateralized Vickrey auction")
	require.Contains(t, out, "NFT #4921 · reserve 2.5 ETH · collateral 150% · 0 bidders")
	require.Contains(t, out, "30m window · lock ≥ 3.75 ETH collateral per bid")
	require.Contains(t, out, "Check ./test/OverCollateralizedAuction.t.sol for the matching Foundry walkthrough")
}

func TestSeed_MostRecentFirst(t *testing.T) {
	out, err := execute(t, "seed", "-n", "3", "--rand-seed", "7", "--json")
	require.NoError(t, err)

	var boards []storyboard.Board
	require.NoError(t, json.Unmarshal([]byte(out), &boards))
	require.Len(t, boards, 3)
	for i, want := range []string{"03", "02", "01"} {
		require.Equal(t, want, boards[i].Case.ID)
		require.Equal(t, "#721-demo", boards[i].Case.NFTID)
		require.Equal(t, 2.5, boards[i].Case.Reserve)
		require.Len(t, boards[i].Stages, 4)
	}
}

func TestSeed_TextSummary(t *testing.T) {
	out, err := execute(t, "seed", "-n", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Storyboard 02")
	require.True(t, strings.HasSuffix(out, "2 storyboards seeded\n"))
}

func TestSeed_RejectsZeroCount(t *testing.T) {
	_, err := execute(t, "seed", "-n", "0")
	require.ErrorContains(t, err, "count must be at least 1")
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
variants:
  - id: english
    name: English auction
    focus: [Open outcry]
    test_path: ../test/English.t.sol
    sample_note: Watch the bids climb.
    phases:
      - title: Bid
        duration: minutes
        description: Bidders raise in public.
`), 0o644))

	out, err := execute(t, "--catalog", path, "case", "--auction", "sneaky")
	require.NoError(t, err)
	require.Contains(t, out, "Storyboard 01 · English auction")
	require.Contains(t, out, "Notes: Watch the bids climb.")

	_, err = execute(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "variants")
	require.ErrorContains(t, err, "failed to load catalog")
}

func TestServe_RejectsUnknownTransport(t *testing.T) {
	_, err := execute(t, "serve", "--transport", "carrier-pigeon")
	require.ErrorContains(t, err, "invalid transport mode")
}

func TestOfflineCommands_IgnoreTransport(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORYBOARD_TRANSPORT", "carrier-pigeon")

	out, err := run(t, "variants")
	require.NoError(t, err)
	require.Contains(t, out, "* overcollateralized")

	_, err = run(t, "case", "--auction", "aztec")
	require.NoError(t, err)

	_, err = run(t, "seed")
	require.NoError(t, err)

	_, err = run(t, "serve")
	require.ErrorContains(t, err, "invalid transport mode")
}

func TestHTTPHandler_Health(t *testing.T) {
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	store, err := catalog.NewStore(catalog.Builtin())
	require.NoError(t, err)
	server := newMCPServer(config.Default(), db, store, slog.New(slog.DiscardHandler))

	srv := httptest.NewServer(transport.NewRouter(server, nil))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestLogFileWriter_KeepsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "storyboard.log")
	w, err := newLogFileWriter(path, 100, 40)
	require.NoError(t, err)

	line := []byte(strings.Repeat("a", 59) + "\n")
	_, err = w.Write(line)
	require.NoError(t, err)
	_, err = w.Write([]byte(strings.Repeat("b", 59) + "\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("b", 39)+"\n", string(data))
}

func TestEnsureDBDir(t *testing.T) {
	require.NoError(t, ensureDBDir(":memory:"))

	dir := filepath.Join(t.TempDir(), "nested", "db")
	require.NoError(t, ensureDBDir(filepath.Join(dir, "storyboard.db")))
	require.DirExists(t, dir)
}
