// Package main provides the CLI entrypoint for fieldmap.
//
// fieldmap inspects Elasticsearch-style index mappings:
//   - dump prints the field tree of a mapping file
//   - typos suggests corrections for mistyped field paths
//   - filter applies include/exclude glob patterns to the tree
//   - profile prints the effective inspection profile
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fieldmap/internal/field"
	"fieldmap/internal/mapping"
	"fieldmap/internal/profile"
)

const (
	version = "1.0.0"

	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `usage: fieldmap <command> [flags]

Commands:
  dump    -mapping FILE [-index] [-skip-unsupported] [-debug] [-json]
  typos   -mapping FILE [-profile FILE] [-threshold F] [-fold] [-json] PATH...
  filter  -mapping FILE [-profile FILE] [-include P,..] [-exclude P,..] [-json]
  profile [-profile FILE] [-skip-unsupported]
  version
`

// errUsage marks errors caused by bad command line input.
var errUsage = errors.New("usage error")

// cli carries the output streams and the shared logging flags.
type cli struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	quiet   bool
}

func main() {
	c := &cli{stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(c.run(os.Args[1:]))
}

func (c *cli) run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return exitUsage
	}

	var err error

	switch args[0] {
	case "dump":
		err = c.runDump(args[1:])
	case "typos":
		err = c.runTypos(args[1:])
	case "filter":
		err = c.runFilter(args[1:])
	case "profile":
		err = c.runProfile(args[1:])
	case "version", "-version", "--version":
		fmt.Fprintf(c.stdout, "fieldmap %s\n", version)
		return exitOK
	case "help", "-h", "-help", "--help":
		fmt.Fprint(c.stdout, usage)
		return exitOK
	default:
		c.logError("unknown command %q", args[0])
		fmt.Fprint(c.stderr, usage)

		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		c.logError("%v", err)
		return exitUsage
	case errors.Is(err, errTyposFound):
		c.logVerbose("%v", err)
		return exitFail
	default:
		c.logError("%v", err)
		return exitFail
	}
}

// commonFlags are the flags every subcommand accepts.
type commonFlags struct {
	mapping     string
	profile     string
	skipUnknown bool
}

func (c *cli) newFlagSet(name string, cf *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	fs.StringVar(&cf.mapping, "mapping", "", "Path to the mapping file (JSON, or YAML for .yaml/.yml)")
	fs.StringVar(&cf.mapping, "m", "", "Path to the mapping file (shorthand)")
	fs.BoolVar(&cf.skipUnknown, "skip-unsupported", false, "Drop fields of unsupported types instead of keeping them as leaves")
	fs.BoolVar(&c.verbose, "verbose", false, "Enable verbose logging to stderr")
	fs.BoolVar(&c.verbose, "v", false, "Enable verbose logging (shorthand)")
	fs.BoolVar(&c.quiet, "quiet", false, "Suppress all non-error output")
	fs.BoolVar(&c.quiet, "q", false, "Suppress non-error output (shorthand)")

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}

		return fmt.Errorf("%w: %v", errUsage, err)
	}

	return nil
}

// loadProfile returns the profile named by cf, or the default one.
// The -skip-unsupported flag overrides the profile.
func (c *cli) loadProfile(cf *commonFlags) (*profile.Profile, error) {
	p := profile.Default()

	if cf.profile != "" {
		var err error

		p, err = profile.LoadFile(cf.profile)
		if err != nil {
			return nil, err
		}

		c.logVerbose("loaded profile %s", cf.profile)
	}

	if cf.skipUnknown {
		p.SkipUnsupported = true
	}

	return p, nil
}

func (c *cli) loadMapping(cf *commonFlags, p *profile.Profile) (*field.Field, error) {
	if cf.mapping == "" {
		return nil, fmt.Errorf("%w: -mapping is required", errUsage)
	}

	root, err := mapping.LoadFile(cf.mapping, p.MappingOptions()...)
	if err != nil {
		return nil, err
	}

	c.logVerbose("loaded mapping %q with %d fields", root.Name(), len(field.Paths(root)))

	return root, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string

	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func (c *cli) logVerbose(format string, args ...any) {
	if c.verbose && !c.quiet {
		fmt.Fprintf(c.stderr, "[info] "+format+"\n", args...)
	}
}

func (c *cli) logWarning(format string, args ...any) {
	if !c.quiet {
		fmt.Fprintf(c.stderr, "[warning] "+format+"\n", args...)
	}
}

func (c *cli) logError(format string, args ...any) {
	fmt.Fprintf(c.stderr, "[error] "+format+"\n", args...)
}
