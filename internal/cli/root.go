package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ggpo4all/ggpoinit/internal"
	"github.com/ggpo4all/ggpoinit/internal/cmake"
	"github.com/ggpo4all/ggpoinit/internal/console"
	"github.com/ggpo4all/ggpoinit/internal/paths"
	"github.com/pkg/errors"
)

// Level of the default logger. Seeded by main, adjusted after flag parsing.
var LogLevel = new(slog.LevelVar)

// Represents the root command for ggpoinit.
type RootCmd struct {
	Debug     bool             `help:"Used for a debug build." group:"Build type"`
	Release   bool             `help:"Used for a release build." group:"Build type"`
	Both      bool             `help:"Used to build both a debug and release build." group:"Build type"`
	Generator string           `short:"G" help:"Project file generator (env ${env}), one of:${generator_help}" env:"GGPOINIT_GENERATOR" placeholder:"GENERATOR"`
	Source    string           `short:"S" help:"CMake source directory." default:"." placeholder:"DIR"`
	Binary    string           `short:"B" help:"CMake binary directory." default:"${build_root}" placeholder:"DIR"`
	CMake     string           `name:"cmake" help:"CMake executable." default:"cmake" env:"CMAKE" placeholder:"PATH"`
	CMakeArgs string           `name:"cmake-args" help:"Extra arguments for the configure step, split with shell quoting rules." placeholder:"ARGS"`
	Env       []string         `short:"e" help:"Environment variable for CMake processes. Repeatable." sep:"none" placeholder:"KEY=VALUE"`
	DryRun    bool             `short:"n" help:"Print the CMake commands instead of running them."`
	Quiet     bool             `short:"q" help:"Suppress informational logging."`
	Verbose   bool             `short:"v" help:"Enable verbose logging."`
	Version   kong.VersionFlag `help:"Show version information."`
}

// Parses arguments, configures logging, and runs the build.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return run(ctx, console.Stdout(), paths.ConfigFiles(), os.Args[1:])
}

// Parses args with defaults from configFiles and runs the root command.
//
// An unreadable configuration file and a malformed command line are returned
// as errors. The latter also prints a usage summary.
func run(ctx context.Context, out *console.Printer, configFiles, args []string) error {
	var root RootCmd

	parser, err := kong.New(&root, options(ctx, out, configFiles)...)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		return err
	}

	configureLogger(&root)

	return kongCtx.Run()
}

// Returns the kong options shared by [run] and tests.
//
// Missing configuration files are ignored. Flags given on the command line
// always win over configuration values.
func options(ctx context.Context, out *console.Printer, configFiles []string) []kong.Option {
	return []kong.Option{
		kong.Name(internal.Name),
		kong.Description(out.Colourize("Used for building GGPO4ALL from source.", console.BrightGreen)),
		kong.Writers(out.Writer(), os.Stderr),
		kong.Vars{
			"version":        internal.VersionString(),
			"generator_help": generatorHelp(),
			"build_root":     paths.BuildRoot,
		},
		kong.Configuration(kong.JSON, configFiles...),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(out),
	}
}

// Returns the generator list for the -G help, one generator and its
// description per line.
//
// The lines are indented so help output does not reflow them.
func generatorHelp() string {
	var b strings.Builder
	b.WriteString("\n")
	for _, gen := range cmake.Generators() {
		fmt.Fprintf(&b, "\n  %-13s %s", gen.Key, gen.Description)
	}
	return b.String()
}

// Configures the global logger based on CLI flags.
func configureLogger(root *RootCmd) {
	quiet := root.Quiet || internal.IsQuiet()
	verbose := root.Verbose || internal.IsVerbose()

	switch {
	case verbose:
		LogLevel.Set(slog.LevelDebug)
	case quiet:
		LogLevel.Set(slog.LevelWarn)
	default:
		LogLevel.Set(slog.LevelInfo)
	}

	slog.SetDefault(NewLogger(os.Stderr, console.IsTerminal(os.Stderr)))
}

// Creates a text logger writing to f at [LogLevel].
//
// Timestamps are dropped on interactive terminals.
func NewLogger(f *os.File, interactive bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: LogLevel}
	if interactive {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}
	return slog.New(slog.NewTextHandler(f, opts).WithGroup(internal.Name))
}
