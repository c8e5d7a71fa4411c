package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/bstmap/configuration"
	"github.com/iotaledger/bstmap/replay"
)

const testScript = "set 1 a\nset 2 b\nset 3 c\nset 10 d\nkeys\n"

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func runWithStdin(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	err := run(context.Background(), append(args, "--logger.outputPaths", filepath.Join(t.TempDir(), "log.txt")), strings.NewReader(stdin), &stdout)

	return stdout.String(), err
}

func TestRun_ScriptFromStdin(t *testing.T) {
	output, err := runWithStdin(t, testScript)
	require.NoError(t, err)

	require.Equal(t, "<none>\n<none>\n<none>\n<none>\n1 10 2 3\n", output)
}

func TestRun_ConfigFile(t *testing.T) {
	logFilePath := filepath.Join(t.TempDir(), "bstmap.log")
	configFilePath := writeFile(t, "config.yaml", strings.Join([]string{
		"map:",
		"  comparator: numeric",
		"  depthWarning: 2",
		"logger:",
		"  level: debug",
		"  encoding: json",
		"  outputPaths:",
		"    - " + logFilePath,
	}, "\n"))
	scriptFilePath := writeFile(t, "script.txt", testScript)

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--config", configFilePath, "--script", scriptFilePath}, strings.NewReader(""), &stdout))
	require.Equal(t, "<none>\n<none>\n<none>\n<none>\n1 2 3 10\n", stdout.String())

	logs, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	require.Contains(t, string(logs), "executing set 10 d")
	require.Contains(t, string(logs), "the tree is degenerating")
}

func TestRun_Flags(t *testing.T) {
	output, err := runWithStdin(t, testScript+"dump\n", "--map.comparator", replay.ComparatorModeNumeric, "--map.traversal", "preorder")
	require.NoError(t, err)

	require.Equal(t, "<none>\n<none>\n<none>\n<none>\n1 2 3 10\n1: a\n  <>\n  2: b\n    <>\n    3: c\n      <>\n      10: d\n", output)
}

func TestRun_EnvironmentVariables(t *testing.T) {
	t.Setenv("BSTMAP_MAP_COMPARATOR", replay.ComparatorModeNumeric)

	output, err := runWithStdin(t, testScript)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(output, "1 2 3 10\n"))

	// explicitly set flags take precedence over environment variables
	output, err = runWithStdin(t, testScript, "--map.comparator", replay.ComparatorModeLexical)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(output, "1 10 2 3\n"))
}

func TestRun_ScriptFromConfigFile(t *testing.T) {
	scriptFilePath := writeFile(t, "script.txt", testScript)
	configFilePath := writeFile(t, "config.json", `{"script": "`+filepath.ToSlash(scriptFilePath)+`", "map": {"comparator": "numeric"}}`)

	output, err := runWithStdin(t, "", "--config", configFilePath)
	require.NoError(t, err)
	require.Equal(t, "<none>\n<none>\n<none>\n<none>\n1 2 3 10\n", output)
}

func TestRun_StoreConfig(t *testing.T) {
	storedConfigPath := filepath.Join(t.TempDir(), "effective.toml")

	_, err := runWithStdin(t, testScript, "--storeConfig", storedConfigPath, "--map.comparator", replay.ComparatorModeNumeric, "--map.depthWarning", "32")
	require.NoError(t, err)

	stored := configuration.New()
	require.NoError(t, stored.LoadFile(storedConfigPath))
	require.Equal(t, replay.ComparatorModeNumeric, stored.String("map.comparator"))
	require.Equal(t, "inorder", stored.String("map.traversal"))
	require.Equal(t, 32, stored.Int("map.depthWarning"))
}

func TestRun_Errors(t *testing.T) {
	_, err := runWithStdin(t, testScript, "--map.comparator", "reverse")
	require.ErrorIs(t, err, replay.ErrUnknownComparatorMode)

	_, err = runWithStdin(t, testScript, "--map.traversal", "postorder")
	require.ErrorIs(t, err, replay.ErrUnknownTraversalOrder)

	_, err = runWithStdin(t, "set a 1\nexplode\n")
	require.ErrorIs(t, err, replay.ErrInvalidCommand)

	_, err = runWithStdin(t, "", "--script", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = runWithStdin(t, "", "--config", writeFile(t, "config.ini", "[map]"))
	require.Error(t, err)
}
