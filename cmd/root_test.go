package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/chamander/harry/enumeration"
	"github.com/chamander/harry/internal/catalog"
)

func testConfig() Config {
	return Config{Format: []string{"newline"}, Shell: "sh"}
}

func run(t *testing.T, cfg Config, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(cfg, catalog.Default())
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"count", []string{"count", "roll-call"}, "4\n"},
		{"span", []string{"span", "hex-digit"}, "[0, f]\n"},
		{"cases", []string{"cases", "shell", "--format", "comma"}, "auto,sh,powershell,cmd\n"},
		{"cases_strides", []string{"cases", "roll-call", "--strides", "1-2"}, "Nur\nGavan\n"},
		{"cases_none", []string{"cases", "roll-call", "--strides", "9-"}, "\n"},
		{"advance_default", []string{"advance", "hex-digit", "9"}, "a\n"},
		{"advance_back", []string{"advance", "floor", "third", "--by=-3"}, "ground\n"},
		{"distance", []string{"distance", "floor", "third", "ground"}, "-3\n"},
		{"export", []string{"export", "roll-call", "--strides", "0"}, "ROLL_CALL='Brian'\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, testConfig(), tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	_, _, err := run(t, testConfig(), "count", "weekday")
	require.ErrorIs(t, err, catalog.ErrUnknownEnumeration)

	_, _, err = run(t, testConfig(), "distance", "roll-call", "Brian", "Bob")
	require.ErrorIs(t, err, catalog.ErrUnknownCase)

	_, _, err = run(t, testConfig(), "advance", "roll-call", "Gavan", "--by", "2")
	require.ErrorIs(t, err, enumeration.ErrOutOfBounds)

	_, _, err = run(t, testConfig(), "cases", "roll-call", "--strides", "x")
	require.ErrorContains(t, err, `invalid argument "x" for "--strides" flag`)

	_, _, err = run(t, testConfig(), "cases", "roll-call", "--format", "xml")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestFormatDefaultFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Format = []string{"json"}
	out, _, err := run(t, cfg, "cases", "roll-call")
	require.NoError(t, err)
	require.Equal(t, "[\"Brian\",\"Nur\",\"Gavan\",\"Daniel\"]\n", out)

	// export keeps its own default.
	out, _, err = run(t, cfg, "export", "roll-call")
	require.NoError(t, err)
	require.Equal(t, "ROLL_CALL='Brian Nur Gavan Daniel'\n", out)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, testConfig(), "count", "roll-call")
	require.NoError(t, err)
	require.Empty(t, stderr)

	_, stderr, err = run(t, testConfig(), "count", "roll-call", "--debug")
	require.NoError(t, err)
	require.Contains(t, stderr, "msg=command.start")
	require.Contains(t, stderr, "msg=enumeration.resolved name=roll-call count=4")

	cfg := testConfig()
	cfg.Debug = true
	_, stderr, err = run(t, cfg, "advance", "roll-call", "Daniel")
	require.Error(t, err)
	require.Contains(t, stderr, "msg=advance.absent")
}

func TestCompletion(t *testing.T) {
	a := &app{cfg: testConfig(), catalog: catalog.Default(), log: newLogger(nil, false)}
	cmd := &cobra.Command{}

	got, directive := a.completeEnumeration(cmd, nil, "h")
	require.Equal(t, []cobra.Completion{"hex-digit"}, got)
	require.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	got, _ = a.completeEnumeration(cmd, []string{"roll-call"}, "")
	require.Equal(t, []cobra.Completion{"Brian", "Nur", "Gavan", "Daniel"}, got)

	got, _ = a.completeEnumeration(cmd, []string{"weekday"}, "")
	require.Empty(t, got)
}

func TestExecute(t *testing.T) {
	t.Setenv("HARRY_SHELL", "nushell")
	require.Equal(t, 1, Execute())
}

func TestNewLogger_UTC(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, true).Debug("hello")
	line := buf.String()
	require.True(t, strings.HasPrefix(line, "time="), line)
	require.Contains(t, strings.Fields(line)[0], "Z")
}

func TestFlagCompletion(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want []string
	}{
		{"format", []string{"__complete", "cases", "roll-call", "--format", ""}, []string{"comma", "newline", "space", "json", "yaml"}},
		{"format_prefix", []string{"__complete", "export", "roll-call", "--format", "s"}, []string{"space"}},
		{"shell", []string{"__complete", "export", "roll-call", "--shell", "p"}, []string{"powershell"}},
		{"case_names", []string{"__complete", "advance", "floor", "s"}, []string{"second"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, testConfig(), tc.args...)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Equal(t, append(tc.want, ":4"), lines)
		})
	}
}
