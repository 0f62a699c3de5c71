// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points DATACTX_CFG at a testdata file and clears the global
// Config so the next access reloads it.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("DATACTX_CFG", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "us-east-1", cfg.Data["region"])
				assert.Equal(t, "my-bucket", cfg.Data["bucket"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				datasets, ok := cfg.Data["datasets"].(map[string]interface{})
				assert.True(t, ok, "datasets should be a map")
				assert.Equal(t, "./users.json", datasets["users"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, 1, cfg.Data["version"])
				assert.Equal(t, true, cfg.Data["enabled"])
				assert.Equal(t, 30.5, cfg.Data["timeout"])
				assert.Len(t, cfg.Data["tags"], 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("DATACTX_CFG", "/nonexistent/path/datactx.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_IsDirectory(t *testing.T) {
	t.Setenv("DATACTX_CFG", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "simple string value", testFile: "simple.yaml", key: "region", want: "us-east-1"},
		{name: "nested string value", testFile: "nested.yaml", key: "colors.title", want: "#ff0000"},
		{name: "missing key with default", testFile: "simple.yaml", key: "missing", defaultValue: []string{"dflt"}, want: "dflt"},
		{name: "missing key without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-string value", testFile: "mixed-types.yaml", key: "version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int value", testFile: "mixed-types.yaml", key: "version", want: 1},
		{name: "float value converted to int", testFile: "mixed-types.yaml", key: "timeout", want: 30},
		{name: "top level int", testFile: "nested.yaml", key: "padding", want: 2},
		{name: "missing key with default", testFile: "simple.yaml", key: "missing", defaultValue: []int{60}, want: 60},
		{name: "missing key without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-int value", testFile: "simple.yaml", key: "region", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringMap(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	got, err := GetStringMap("datasets")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"users": "./users.json",
		"teams": "s3://bucket/teams.yaml",
	}, got)
	assert.Equal(t, []string{"teams", "users"}, SortedKeys(got))

	_, err = GetStringMap("padding")
	assert.Error(t, err)

	got, err = GetStringMap("missing")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestNamespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	Config.Namespace = "find"
	val, err := GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "json", val)

	// Falls back to the bare key.
	pad, err := GetInt("padding")
	assert.NoError(t, err)
	assert.Equal(t, 2, pad)

	Config.Namespace = "filter"
	_, err = GetString("output")
	assert.Error(t, err)
}

func TestLazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	val, err := GetString("region")
	assert.NoError(t, err)
	assert.Equal(t, "us-east-1", val)
	assert.NotEmpty(t, Config.Source, "Config should be loaded")
}
