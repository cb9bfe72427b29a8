package main

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-json"

	"fieldmap/internal/diagnostic"
	"fieldmap/internal/document"
	"fieldmap/internal/field"
	"fieldmap/internal/mapping"
	"fieldmap/internal/profile"
	"fieldmap/internal/typo"
)

// errTyposFound makes the typos command exit non-zero without logging.
var errTyposFound = errors.New("typos found")

func (c *cli) runDump(args []string) error {
	var (
		cf     commonFlags
		index  bool
		debug  bool
		asJSON bool
	)

	fs := c.newFlagSet("dump", &cf)
	fs.BoolVar(&index, "index", false, "Treat the file as an index mapping response")
	fs.BoolVar(&debug, "debug", false, "Dump the raw tree structure")
	fs.BoolVar(&asJSON, "json", false, "Print the mapping as JSON")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	p, err := c.loadProfile(&cf)
	if err != nil {
		return err
	}

	var roots []*field.Field

	if index {
		if cf.mapping == "" {
			return fmt.Errorf("%w: -mapping is required", errUsage)
		}

		roots, err = mapping.LoadIndexFile(cf.mapping, p.MappingOptions()...)
	} else {
		var root *field.Field

		root, err = c.loadMapping(&cf, p)
		roots = []*field.Field{root}
	}

	if err != nil {
		return err
	}

	for _, root := range roots {
		switch {
		case debug:
			fmt.Fprint(c.stdout, field.Dump(root))
		case asJSON:
			if err := c.writeMapping(root); err != nil {
				return err
			}
		default:
			c.writeTree(root)
		}
	}

	return nil
}

func (c *cli) runTypos(args []string) error {
	var (
		cf        commonFlags
		threshold float64
		fold      bool
		asJSON    bool
	)

	fs := c.newFlagSet("typos", &cf)
	fs.StringVar(&cf.profile, "profile", "", "Path to a YAML inspection profile")
	fs.Float64Var(&threshold, "threshold", -1, "Minimum similarity (0-1) for a suggestion; overrides the profile")
	fs.BoolVar(&fold, "fold", false, "Ignore case and '_', '-' separators when matching")
	fs.BoolVar(&asJSON, "json", false, "Print corrections as JSON")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	p, err := c.loadProfile(&cf)
	if err != nil {
		return err
	}

	if threshold >= 0 {
		if err := p.SetThreshold(threshold); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}

	if fold {
		p.Fold = true
	}

	if p.Fields.IsEmpty() && fs.NArg() == 0 {
		return fmt.Errorf("%w: no field paths given", errUsage)
	}

	requested := slices.Concat([]string(p.Fields), fs.Args())

	root, err := c.loadMapping(&cf, p)
	if err != nil {
		return err
	}

	corrections := typo.Find(requested, root, p.TypoOptions()...)

	if asJSON {
		if corrections == nil {
			corrections = typo.Corrections{}
		}

		out, err := json.MarshalIndent(corrections, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode corrections: %w", err)
		}

		fmt.Fprintln(c.stdout, string(out))
	} else {
		for _, corr := range corrections {
			fmt.Fprintf(c.stdout, "%s\t%s\n", corr.Requested, corr.Suggested)
		}
	}

	diags := diagnostic.CheckFields(root, requested, p.TypoOptions()...)
	for _, d := range diags.All() {
		if d.Severity == diagnostic.DiagnosticWarning {
			c.logWarning("%s", d.String())
		}
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %w", errTyposFound, diags.Error())
	}

	return nil
}

func (c *cli) runProfile(args []string) error {
	var cf commonFlags

	fs := c.newFlagSet("profile", &cf)
	fs.StringVar(&cf.profile, "profile", "", "Path to a YAML inspection profile")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	p, err := c.loadProfile(&cf)
	if err != nil {
		return err
	}

	data, err := profile.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = c.stdout.Write(data)

	return err
}

func (c *cli) runFilter(args []string) error {
	var (
		cf      commonFlags
		include string
		exclude string
		asJSON  bool
	)

	fs := c.newFlagSet("filter", &cf)
	fs.StringVar(&cf.profile, "profile", "", "Path to a YAML inspection profile")
	fs.StringVar(&include, "include", "", "Comma-separated include glob patterns; overrides the profile")
	fs.StringVar(&exclude, "exclude", "", "Comma-separated exclude glob patterns; overrides the profile")
	fs.BoolVar(&asJSON, "json", false, "Print the filtered mapping as JSON")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	p, err := c.loadProfile(&cf)
	if err != nil {
		return err
	}

	if include != "" {
		p.Include = splitList(include)
	}

	if exclude != "" {
		p.Exclude = splitList(exclude)
	}

	f, err := p.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	root, err := c.loadMapping(&cf, p)
	if err != nil {
		return err
	}

	filtered := f.Apply(root)

	for _, info := range diagnostic.FilteredFields(root, filtered).Infos {
		c.logVerbose("%s", info.String())
	}

	if asJSON {
		return c.writeMapping(filtered)
	}

	c.writeTree(filtered)

	return nil
}

// writeTree prints one "path<TAB>kind" line per descendant.
func (c *cli) writeTree(root *field.Field) {
	_ = field.Walk(root, func(path string, f *field.Field) error {
		fmt.Fprintf(c.stdout, "%s\t%s\n", path, f.Kind())
		return nil
	})
}

// writeMapping prints root as an indented mapping document.
func (c *cli) writeMapping(root *field.Field) error {
	doc, err := mapping.Render(root)
	if err != nil {
		return fmt.Errorf("failed to render mapping %q: %w", root.Name(), err)
	}

	data, err := document.EncodeJSON(doc)
	if err != nil {
		return fmt.Errorf("failed to encode mapping %q: %w", root.Name(), err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to encode mapping %q: %w", root.Name(), err)
	}

	buf.WriteByte('\n')

	_, err = c.stdout.Write(buf.Bytes())

	return err
}
