package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/subsave/internal/testutil"
)

// runCLI executes the root command with args and returns stdout, stderr
// and the command error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "subsave", cmd.Use)
	assert.Contains(t, cmd.Long, "human-auditable")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"create", "get", "update", "list"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	fileFlag := cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)
	assert.Equal(t, "subscriptions.csv", fileFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestCreateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	createCmd, _, err := cmd.Find([]string{"create"})
	require.NoError(t, err)

	for _, name := range []string{"customer", "asin", "frequency"} {
		flag := createCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, []string{"true"}, flag.Annotations["cobra_annotation_bash_completion_one_required_flag"], name)
	}
}

func TestInvalidFormat(t *testing.T) {
	path := testutil.NewSubscriptionsFile(t)

	_, _, err := runCLI(t, "list", "--file", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestConfigFile_SuppliesFileAndFormat(t *testing.T) {
	path := testutil.NewSubscriptionsFile(t)
	cfgPath := filepath.Join(t.TempDir(), "subsave.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: "+path+"\nformat: json\n"), 0o644))

	out, _, err := runCLI(t, "get", testutil.SeededID, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, testutil.SeededCustomerID)
}

func TestConfigFile_FlagsOverride(t *testing.T) {
	path := testutil.NewSubscriptionsFile(t)
	cfgPath := filepath.Join(t.TempDir(), "subsave.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: /does/not/exist.csv\nformat: json\n"), 0o644))

	out, _, err := runCLI(t, "get", testutil.SeededID, "--config", cfgPath, "--file", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "asin=B00006IEJB")
}

func TestConfigFile_Invalid(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "subsave.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("unknown_key: 1\n"), 0o644))

	_, _, err := runCLI(t, "list", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestVerbose_EnablesDebugLogs(t *testing.T) {
	path := testutil.NewSubscriptionsFile(t)

	_, errOut, err := runCLI(t, "list", "--file", path, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "subscriptions loaded")
}

func TestDefaultLevel_HidesDebugLogs(t *testing.T) {
	path := testutil.NewSubscriptionsFile(t)

	_, errOut, err := runCLI(t, "list", "--file", path)
	require.NoError(t, err)
	assert.NotContains(t, errOut, "subscriptions loaded")
}

func TestEnv_OverridesConfigFile(t *testing.T) {
	path := testutil.NewSubscriptionsFile(t)
	cfgPath := filepath.Join(t.TempDir(), "subsave.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: /nonexistent/subscriptions.csv\nformat: text\n"), 0o644))
	t.Setenv("SUBSAVE_FILE", path)
	t.Setenv("SUBSAVE_FORMAT", "json")

	out, _, err := runCLI(t, "get", testutil.SeededID, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
}

func TestFlags_OverrideEnv(t *testing.T) {
	path := testutil.NewSubscriptionsFile(t)
	t.Setenv("SUBSAVE_FILE", "/nonexistent/subscriptions.csv")

	_, _, err := runCLI(t, "get", testutil.SeededID, "--file", path)
	require.NoError(t, err)
}
