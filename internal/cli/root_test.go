package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/ggpo4all/ggpoinit/internal/cmake"
	"github.com/ggpo4all/ggpoinit/internal/console"
	"github.com/ggpo4all/ggpoinit/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Parses args and runs the root command in a temporary working directory,
// returning everything written to the console.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	switch runtime.GOOS {
	case "windows", "darwin", "linux":
	default:
		t.Skipf("host %s is not a supported platform", runtime.GOOS)
	}

	var buf bytes.Buffer
	var root RootCmd

	parser, err := kong.New(&root, options(context.Background(), console.NewPrinter(&buf), []string{paths.ProjectConfigFile})...)
	require.NoError(t, err)

	kongCtx, err := parser.Parse(args)
	require.NoError(t, err)
	require.NoError(t, kongCtx.Run())

	return buf.String()
}

func TestExecuteDryRunMultiConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "--both", "-G", "vs2022", "--dry-run")

	assert.Contains(t, out, "cmake -S . -B build -G \"Visual Studio 17 2022\"\n")
	assert.Contains(t, out, "cmake --build build --config Debug\n")
	assert.Contains(t, out, "cmake --build build --config Release\n")
	assert.Contains(t, out, "done!")
	assert.DirExists(t, "build")
}

func TestExecuteMissingBuildType(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "-G", "ninja", "-n")

	assert.Contains(t, out, "No valid build type input detected")
	assert.Contains(t, out, "execution of full build process was unsuccessful")
	assert.NotContains(t, out, "cmake")
	assert.NoDirExists(t, "build")
}

func TestExecuteMissingGenerator(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GGPOINIT_GENERATOR", "")

	out := execute(t, "--release", "-n")

	assert.Contains(t, out, "No generator selected")
	assert.Contains(t, out, "execution of full build process was unsuccessful")
}

func TestExecuteInvalidGenerator(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "--debug", "-G", "borland", "-n")

	assert.Contains(t, out, "Invalid Generator Selected")
	assert.Contains(t, out, "execution of full build process was unsuccessful")
	assert.NoDirExists(t, "build")
}

func TestExecuteBothSingleConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "--both", "-G", "unix", "-n")

	assert.Contains(t, out, "YOU CANNOT USE BOTH")
	assert.NotContains(t, out, "cmake -S")
	assert.Contains(t, out, "execution of full build process was unsuccessful")
}

func TestExecuteBuildTypePriority(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "--both", "--release", "--debug", "-G", "ninja", "-n")
	assert.Contains(t, out, "-DCMAKE_BUILD_TYPE=Debug")

	out = execute(t, "--both", "--release", "-G", "ninja", "-n")
	assert.Contains(t, out, "-DCMAKE_BUILD_TYPE=Release")
}

func TestExecuteGeneratorCaseInsensitive(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "--release", "-G", "Ninja-MC", "-n")

	assert.Contains(t, out, "-G \"Ninja Multi-Config\"")
	assert.Contains(t, out, "cmake --build build --config Release\n")
}

func TestExecuteCMakeOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t,
		"--debug", "-G", "unix", "-n",
		"--cmake", "/opt/cmake/bin/cmake",
		"-S", "src", "-B", "out",
		"--cmake-args=-DGGPO_TESTS=ON '-DGGPO_NAME=a b'",
	)

	assert.Contains(t, out, "/opt/cmake/bin/cmake -S src -B out -G \"Unix Makefiles\" -DCMAKE_BUILD_TYPE=Debug -DGGPO_TESTS=ON \"-DGGPO_NAME=a b\"\n")
	assert.Contains(t, out, "/opt/cmake/bin/cmake --build out\n")
}

func TestExecuteInvalidCMakeArgs(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "--debug", "-G", "unix", "-n", "--cmake-args=-DX='unterminated")

	assert.Contains(t, out, "Invalid --cmake-args")
	assert.Contains(t, out, "execution of full build process was unsuccessful")
}

func TestExecuteInvalidEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	out := execute(t, "--debug", "-G", "unix", "-n", "-e", "NOEQUALS")

	assert.Contains(t, out, "Invalid --env")
	assert.NotContains(t, out, "cmake -S")
}

func TestExecuteProjectConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(paths.ProjectConfigFile, []byte(`{"generator": "xcode", "both": true}`), 0644))

	out := execute(t, "-n")

	assert.Contains(t, out, "-G Xcode")
	assert.Contains(t, out, "--config Debug")
	assert.Contains(t, out, "--config Release")

	out = execute(t, "-n", "-G", "ninja", "--debug")
	assert.Contains(t, out, "-G Ninja -DCMAKE_BUILD_TYPE=Debug", "command line overrides the config file")
}

func TestExecuteCommandLineBuildTypeOverridesConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(paths.ProjectConfigFile, []byte(`{"generator": "ninja", "debug": true}`), 0644))

	out := execute(t, "-n", "--release")

	assert.Contains(t, out, "cmake -S . -B build -G Ninja -DCMAKE_BUILD_TYPE=Release\n")
	assert.NotContains(t, out, "Debug")

	out = execute(t, "-n")
	assert.Contains(t, out, "-DCMAKE_BUILD_TYPE=Debug", "config applies without build type flags")
}

func TestRunMalformedConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(paths.ProjectConfigFile, []byte(`{"generator": `), 0644))

	var buf bytes.Buffer
	err := run(context.Background(), console.NewPrinter(&buf), []string{paths.ProjectConfigFile}, []string{"--debug", "-n"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), paths.ProjectConfigFile)
	assert.NotContains(t, buf.String(), "cmake")
}

func TestRunParseError(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	err := run(context.Background(), console.NewPrinter(&buf), nil, []string{"--no-such-flag"})

	var parseErr *kong.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, buf.String(), "Usage:")
}

func TestGeneratorHelp(t *testing.T) {
	var buf bytes.Buffer
	var root RootCmd

	parser, err := kong.New(&root, options(context.Background(), console.NewPrinter(&buf), nil)...)
	require.NoError(t, err)

	kongCtx, err := kong.Trace(parser, nil)
	require.NoError(t, err)
	require.NoError(t, kongCtx.PrintUsage(false))

	help := buf.String()
	for _, gen := range cmake.Generators() {
		assert.Regexp(t, `(?m)^\s*`+regexp.QuoteMeta(gen.Key)+`\s+`+regexp.QuoteMeta(gen.Description)+`$`, help)
	}
}

func TestBuildType(t *testing.T) {
	tests := []struct {
		name  string
		cmd   RootCmd
		given []string
		want  cmake.BuildType
		ok    bool
	}{
		{name: "none", cmd: RootCmd{}},
		{name: "debug", cmd: RootCmd{Debug: true}, want: cmake.Debug, ok: true},
		{name: "release", cmd: RootCmd{Release: true}, want: cmake.Release, ok: true},
		{name: "both", cmd: RootCmd{Both: true}, want: cmake.Both, ok: true},
		{name: "all set", cmd: RootCmd{Debug: true, Release: true, Both: true}, want: cmake.Debug, ok: true},
		{name: "release and both", cmd: RootCmd{Release: true, Both: true}, want: cmake.Release, ok: true},
		{
			name:  "command line replaces configured debug",
			cmd:   RootCmd{Debug: true, Release: true},
			given: []string{"release"},
			want:  cmake.Release,
			ok:    true,
		},
		{
			name:  "command line priority",
			cmd:   RootCmd{Debug: true, Release: true, Both: true},
			given: []string{"both", "release"},
			want:  cmake.Release,
			ok:    true,
		},
		{
			name:  "unrelated flags keep configured type",
			cmd:   RootCmd{Both: true},
			given: []string{"generator", "dry-run"},
			want:  cmake.Both,
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			given := map[string]bool{}
			for _, name := range tt.given {
				given[name] = true
			}

			got, ok := tt.cmd.buildType(given)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(old)
		LogLevel.Set(slog.LevelInfo)
	})

	configureLogger(&RootCmd{Verbose: true})
	assert.Equal(t, slog.LevelDebug, LogLevel.Level())

	configureLogger(&RootCmd{Quiet: true})
	assert.Equal(t, slog.LevelWarn, LogLevel.Level())

	configureLogger(&RootCmd{Quiet: true, Verbose: true})
	assert.Equal(t, slog.LevelDebug, LogLevel.Level(), "verbose wins over quiet")
}
