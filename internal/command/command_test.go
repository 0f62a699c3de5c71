// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/staranto/datactx/internal/config"
	"github.com/staranto/datactx/internal/filters"
)

// runApp runs the CLI with args against testdata/datactx.yaml and returns
// what it printed.
func runApp(t *testing.T, args ...string) (*cli.Command, string, error) {
	t.Helper()

	cfgPath, err := filepath.Abs(filepath.Join("testdata", "datactx.yaml"))
	require.NoError(t, err)
	t.Setenv("DATACTX_CFG", cfgPath)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = os.Stdout })

	full := append([]string{"datactx"}, args...)
	app, err := InitApp(context.Background(), full)
	require.NoError(t, err)

	err = app.Run(context.Background(), full)
	return app, buf.String(), err
}

func TestFilterCommand(t *testing.T) {
	_, out, err := runApp(t, "filter", "--output", "json", "--attrs", "name", "--filter", "team=core", "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"alice"},{"name":"carol"}]`, out)
}

func TestFilterCommandMembership(t *testing.T) {
	_, out, err := runApp(t, "filter", "-o", "json", "-a", "id", "-f", "id@1|2", "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, out)
}

func TestFilterCommandNoMatch(t *testing.T) {
	_, out, err := runApp(t, "filter", "-o", "json", "-f", "team=nobody", "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestFilterCommandBadFilter(t *testing.T) {
	_, _, err := runApp(t, "filter", "-o", "json", "-f", "team", "users")
	require.Error(t, err)
	assert.ErrorIs(t, err, filters.ErrInvalidCondition)
}

func TestFindCommandUsesConfiguredOutput(t *testing.T) {
	// find.output is json in the config file.
	_, out, err := runApp(t, "find", "-a", "name", "-f", "team=core,active=true", "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"alice"}]`, out)
}

func TestFindCommandNoMatch(t *testing.T) {
	_, out, err := runApp(t, "find", "-f", "name=nobody", "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestGetCommandDirectPath(t *testing.T) {
	app, out, err := runApp(t, "get", "-o", "json", "-a", "name", "--sort=-id", "testdata/users.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"carol"},{"name":"bob"},{"name":"alice"}]`, out)

	// The cached collection keeps load order.
	st := GetMeta(app.Command("get")).Store
	records, ok := st.Records("testdata/users.json")
	require.True(t, ok)
	assert.Equal(t, "alice", records[0]["name"])
}

func TestGetCommandMissingArgument(t *testing.T) {
	_, _, err := runApp(t, "get", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset argument is required")
}

func TestGetCommandMissingFile(t *testing.T) {
	_, _, err := runApp(t, "get", "-o", "json", "ghosts")
	assert.Error(t, err)
}

func TestKeysCommand(t *testing.T) {
	_, out, err := runApp(t, "keys", "-o", "json", "--count")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"dataset":"ghosts","source":"nope.json","records":"error"},
		{"dataset":"users","source":"users.json","records":"3"}
	]`, out)
}

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("json"))
	assert.NoError(t, OutputValidator("text"))
	assert.Error(t, OutputValidator("raw"))
	assert.Error(t, JammedFlagValidator("--oops"))
	assert.NoError(t, JammedFlagValidator("a=1"))
}

func TestResolveDataset(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "datactx.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`datasets:
  users: data/users.json
  pinned: /srv/users.json
  remote: s3://bucket/users.json
`), 0o600))
	t.Setenv("DATACTX_CFG", cfgPath)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	// Results must not depend on the working directory.
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		wantKey string
		wantSrc string
	}{
		{name: "users", wantKey: "users", wantSrc: filepath.Join(dir, "data", "users.json")},
		{name: "pinned", wantKey: "pinned", wantSrc: "/srv/users.json"},
		{name: "remote", wantKey: "remote", wantSrc: "s3://bucket/users.json"},
		{name: "s3://bucket/x.json", wantKey: "s3://bucket/x.json", wantSrc: "s3://bucket/x.json"},
		{name: "local/x.json", wantKey: "local/x.json", wantSrc: "local/x.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, src := ResolveDataset(tt.name)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantSrc, src)
		})
	}
}

func TestKeysCommandFromOtherDirectory(t *testing.T) {
	cfgPath, err := filepath.Abs(filepath.Join("testdata", "datactx.yaml"))
	require.NoError(t, err)
	t.Setenv("DATACTX_CFG", cfgPath)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = os.Stdout })

	t.Chdir(t.TempDir())

	args := []string{"datactx", "keys", "-o", "json", "--count"}
	app, err := InitApp(context.Background(), args)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), args))

	assert.JSONEq(t, `[
		{"dataset":"ghosts","source":"nope.json","records":"error"},
		{"dataset":"users","source":"users.json","records":"3"}
	]`, buf.String())
}
