package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds core property flags.
type documentFlags struct {
	title       string
	author      string
	description string
}

// themeFlags selects the document theme.
type themeFlags struct {
	name      string // Name or path to a YAML file
	assetPath string // Directory searched before embedded themes
}

// codeFlags holds code block flags. The *Set fields record whether the
// flag appeared on the command line, so an explicit value can override
// the config file even when it equals the zero value.
type codeFlags struct {
	highlight    bool
	highlightSet bool
	style        string
	tabWidth     int
	tabWidthSet  bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	document documentFlags
	theme    themeFlags
	code     codeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds core property flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from H1)")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.description, "description", "", "document description")
}

// addThemeFlags adds theme selection flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.name, "theme", "", "theme name or YAML file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom theme directory")
}

// addCodeFlags adds code block flags to a FlagSet.
func addCodeFlags(fs *flag.FlagSet, f *codeFlags) {
	fs.BoolVar(&f.highlight, "highlight", false, "color code blocks by language")
	fs.StringVar(&f.style, "highlight-style", "", "chroma style name, implies --highlight")
	fs.IntVar(&f.tabWidth, "tab-width", 0, "spaces per tab in code blocks (1-16)")
}

// newConvertFlagSet builds the convert FlagSet bound to f.
func newConvertFlagSet(f *convertFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVarP(&f.output, "output", "o", "", "output .docx file")
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addThemeFlags(fs, &f.theme)
	addCodeFlags(fs, &f.code)

	fs.Usage = func() { printConvertUsage(usage) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage and parse errors are written to usage.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f, usage)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.code.highlightSet = fs.Changed("highlight")
	f.code.tabWidthSet = fs.Changed("tab-width")

	return f, fs.Args(), nil
}
