// Package cli provides command-line interface functionality for preflight.
package cli

import (
	"context"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/preflight-run/preflight/internal/check"
	"github.com/preflight-run/preflight/internal/config"
	"github.com/preflight-run/preflight/internal/errors"
	"github.com/preflight-run/preflight/internal/output"
	"github.com/preflight-run/preflight/internal/pause"
	"github.com/preflight-run/preflight/internal/project"
	"github.com/preflight-run/preflight/internal/runner"
)

// Version is set at build time.
var Version = "dev"

var out = output.New()

const widthFlag = 16

// Options holds parsed global flags.
type Options struct {
	Quiet       bool
	Verbose     bool
	Pause       bool
	NoPause     bool
	ConfigPath  string
	ShowHelp    bool
	ShowVersion bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		out.Hint("run 'preflight --help' for usage")
		return errors.GetExitCode(err)
	}

	if opts.ShowHelp {
		printUsage()
		return 0
	}
	if opts.ShowVersion {
		out.Println("preflight %s", Version)
		return 0
	}

	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)

	proj, err := loadProject(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	steps := check.BuildPlan(proj.Config, proj.Root)
	r := runner.New(check.NewShellInvoker(), out)
	results := r.Run(context.Background(), suiteName(proj.Config), steps)

	maybePause(opts, proj.Config)

	if runner.Failed(results) {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// suiteName renders the header name for the run. Config names are
// conventionally lowercase directory names, so they are title-cased
// for display.
func suiteName(cfg *config.Config) string {
	return cases.Title(language.English).String(cfg.Project.Name) + " Test Suite"
}

func loadProject(opts *Options) (*project.Project, error) {
	if opts.ConfigPath != "" {
		return project.LoadFromConfig(opts.ConfigPath)
	}
	return project.Load()
}

// maybePause applies the pause flags over the configured mode and
// waits for a keypress when the resolved mode says so.
func maybePause(opts *Options, cfg *config.Config) {
	mode := cfg.Pause
	if opts.Pause {
		mode = config.PauseAlways
	}
	if opts.NoPause {
		mode = config.PauseNever
	}
	if pause.ShouldPause(mode, pause.StdinIsTerminal(), os.Getenv) {
		pause.Wait(os.Stdin, os.Stdout)
	}
}

// parseFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because custom
// error messages with usage hints are needed and positional arguments
// must be rejected with a dedicated message.
func parseFlags(args []string) (*Options, error) {
	opts := &Options{}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-h" || arg == "--help":
			opts.ShowHelp = true
			i++
		case arg == "--version":
			opts.ShowVersion = true
			i++
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--pause":
			opts.Pause = true
			i++
		case arg == "--no-pause":
			opts.NoPause = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, errors.Config("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			value := strings.TrimPrefix(arg, "--config=")
			if value == "" {
				return nil, errors.Config("--config requires a value")
			}
			opts.ConfigPath = value
			i++
		case len(arg) > 0 && arg[0] == '-':
			return nil, errors.Configf("unknown flag %q", arg)
		default:
			return nil, errors.Configf("unexpected argument %q; preflight takes no positional arguments", arg)
		}
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// validateOptions checks that global options are valid.
func validateOptions(opts *Options) error {
	if opts.Quiet && opts.Verbose {
		return errors.Config("--quiet and --verbose are mutually exclusive")
	}
	if opts.Pause && opts.NoPause {
		return errors.Config("--pause and --no-pause are mutually exclusive")
	}
	return nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("preflight - run tests and type checks before you ship")

	w.HelpSection("Usage:")
	w.HelpUsage("preflight [flags]")

	w.HelpSection("Checks:")
	w.HelpUsage("Runs pytest and then mypy against the project package,")
	w.HelpUsage("in that order, and summarizes both results.")

	w.HelpSection("Flags:")
	w.HelpFlag("-q, --quiet", "Minimal output (errors only)", widthFlag)
	w.HelpFlag("-v, --verbose", "Show the exact commands being run", widthFlag)
	w.HelpFlag("--pause", "Always wait for a keypress before exiting", widthFlag)
	w.HelpFlag("--no-pause", "Never wait for a keypress", widthFlag)
	w.HelpFlag("--config=<path>", "Use an explicit config file", widthFlag)
	w.HelpFlag("-h, --help", "Show this help", widthFlag)
	w.HelpFlag("--version", "Show version", widthFlag)

	w.HelpSection("Environment:")
	w.HelpEnvVar("CI=1", "Disables the exit pause in auto mode", 6)

	w.HelpSection("Examples:")
	w.HelpExample("preflight", "Run both checks in the current project")
	w.HelpExample("preflight -v", "Show the exact pytest and mypy command lines")
	w.HelpExample("preflight --no-pause", "Run checks without the exit prompt")
	w.HelpExample("preflight --config=ci/preflight.json", "Run with an explicit config")
	w.Println("")
}
