package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs      = errors.New("invalid arguments")
	ErrInvalidExtension = errors.New("destination must have .docx extension")
)

// maxPositionalArgs is source and destination.
const maxPositionalArgs = 2

// conversionPaths holds the resolved source and destination.
type conversionPaths struct {
	src        string
	dst        string
	srcDefault bool // src came from config or the built-in default
}

// runConvert converts one file. Values are resolved in the order
// positional argument, flag, config file, built-in default.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if len(positionalArgs) > maxPositionalArgs {
		return fmt.Errorf("%w: got %d positional, want at most %d (source, destination)",
			ErrInvalidArgs, len(positionalArgs), maxPositionalArgs)
	}
	if flags.code.tabWidthSet && (flags.code.tabWidth < md2docx.MinTabWidth || flags.code.tabWidth > md2docx.MaxTabWidth) {
		return fmt.Errorf("%w: --tab-width %d (must be between %d and %d)",
			md2docx.ErrInvalidTabWidth, flags.code.tabWidth, md2docx.MinTabWidth, md2docx.MaxTabWidth)
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths := resolvePaths(positionalArgs, cfg)
	if !fileutil.HasExtension(paths.dst, ".docx") {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, paths.dst)
	}

	conv, err := md2docx.NewConverter(converterOptions(cfg)...)
	if err != nil {
		if errors.Is(err, md2docx.ErrThemeNotFound) {
			available, _ := md2docx.AvailableThemes(cfg.Theme.BasePath)
			return fmt.Errorf("%w%s", err, hints.ForThemeNotFound(available))
		}
		return err
	}

	start := env.Now()
	res, err := conv.ConvertFile(ctx, paths.src, paths.dst, md2docx.Input{
		Title:       cfg.Document.Title,
		Author:      cfg.Document.Author,
		Description: cfg.Document.Description,
	})
	if err != nil {
		return fmt.Errorf("%w%s", err, hintFor(err, paths))
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Theme: %s\n", conv.Theme().Name)
		fmt.Fprintf(env.Stderr, "Parsed %d lines into %d blocks\n", res.Lines, res.Blocks)
		if res.Title != "" {
			fmt.Fprintf(env.Stderr, "Title: %s\n", res.Title)
		}
		fmt.Fprintf(env.Stderr, "Completed in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "[SUCCESS] Converted %s to %s\n", paths.src, paths.dst)
	}
	return nil
}

// loadConfig returns the named config, or a copy of env.Config when name is empty.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	if name == "" {
		cfg := config.DefaultConfig()
		if env.Config != nil {
			*cfg = *env.Config
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !fileutil.IsFilePath(name) {
				searched = config.SearchPaths(name)
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultFile = flags.output
	}

	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.description != "" {
		cfg.Document.Description = flags.document.description
	}

	// Theme flags
	if flags.theme.name != "" {
		cfg.Theme.Name = flags.theme.name
	}
	if flags.theme.assetPath != "" {
		cfg.Theme.BasePath = flags.theme.assetPath
	}

	// Code flags
	if flags.code.highlightSet {
		cfg.Code.Highlight = flags.code.highlight
	}
	if flags.code.style != "" {
		cfg.Code.Style = flags.code.style
		cfg.Code.Highlight = cfg.Code.Highlight || !flags.code.highlightSet
	}
	if flags.code.tabWidthSet {
		cfg.Code.TabWidth = flags.code.tabWidth
	}
}

// resolvePaths picks the source and destination.
// mergeFlags has already folded --output into cfg.Output.DefaultFile.
func resolvePaths(args []string, cfg *config.Config) conversionPaths {
	p := conversionPaths{
		src:        cfg.Input.DefaultFile,
		dst:        cfg.Output.DefaultFile,
		srcDefault: true,
	}
	if len(args) > 0 {
		p.src = args[0]
		p.srcDefault = false
	}
	if len(args) > 1 {
		p.dst = args[1]
	}

	defaults := config.DefaultConfig()
	if p.src == "" {
		p.src = defaults.Input.DefaultFile
	}
	if p.dst == "" {
		p.dst = defaults.Output.DefaultFile
	}
	return p
}

// converterOptions translates cfg into converter options.
func converterOptions(cfg *config.Config) []md2docx.Option {
	opts := []md2docx.Option{
		md2docx.WithThemeName(cfg.Theme.Name),
		md2docx.WithAssetPath(cfg.Theme.BasePath),
	}
	if cfg.Code.TabWidth > 0 {
		opts = append(opts, md2docx.WithTabWidth(cfg.Code.TabWidth))
	}
	if cfg.Code.Highlight {
		opts = append(opts, md2docx.WithHighlighting(cfg.Code.Style))
	}
	return opts
}

// hintFor returns an actionable hint for a conversion error, or "".
func hintFor(err error, p conversionPaths) string {
	switch {
	case errors.Is(err, md2docx.ErrInvalidEncoding):
		return hints.ForInvalidEncoding()
	case errors.Is(err, md2docx.ErrSourceRead) && errors.Is(err, os.ErrNotExist):
		return hints.ForSourceNotFound(p.src, p.srcDefault)
	case errors.Is(err, md2docx.ErrOutputWrite) && errors.Is(err, os.ErrPermission):
		return hints.ForOutputLocked(p.dst)
	case errors.Is(err, md2docx.ErrOutputWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}
