package md2docx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LinePreprocessor)(nil)
	_ pipeline.TitleExtractor       = (*pipeline.GoldmarkTitleExtractor)(nil)
	_ pipeline.CodeHighlighter      = (*pipeline.ChromaHighlighter)(nil)
	_ docx.Builder                  = (*docx.Document)(nil)
)

// Converter turns Markdown into DOCX documents.
// It holds no per-conversion state; Convert may be called repeatedly and
// from multiple goroutines.
type Converter struct {
	cfg          converterConfig
	theme        *Theme
	assetLoader  assets.AssetLoader
	preprocessor pipeline.MarkdownPreprocessor
	titles       pipeline.TitleExtractor
	highlighter  pipeline.CodeHighlighter // nil when highlighting is off
	newBuilder   func() docx.Builder
}

// NewConverter creates a Converter with the default theme.
// Use options to pick another theme, enable highlighting or change the tab width.
// Returns error if the asset path, theme or tab width is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          defaultConverterConfig(),
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.LinePreprocessor{},
		titles:       pipeline.NewGoldmarkTitleExtractor(),
		newBuilder:   func() docx.Builder { return docx.NewDocument() },
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.tabWidth < MinTabWidth || c.cfg.tabWidth > MaxTabWidth {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidTabWidth, c.cfg.tabWidth, MinTabWidth, MaxTabWidth)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveTheme(); err != nil {
		return nil, err
	}

	if c.cfg.highlight && c.highlighter == nil {
		c.highlighter = pipeline.NewChromaHighlighter(c.cfg.highlightStyle)
	}

	return c, nil
}

// Theme returns the resolved theme. Callers must not modify it.
func (c *Converter) Theme() *Theme {
	return c.theme
}

// Convert translates input.Markdown and returns the serialized document.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	md := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	lines := pipeline.SplitLines(md)
	blocks := pipeline.Translate(lines)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := c.resolveTitle(input, md)

	b := c.newBuilder()
	b.SetDefaultFont(c.theme.Body.Font, c.theme.Body.Size)
	b.SetMetadata(docx.Metadata{
		Title:       title,
		Author:      input.Author,
		Description: input.Description,
	})

	r := &renderer{
		theme:       c.theme,
		builder:     b,
		highlighter: c.highlighter,
		tabWidth:    c.cfg.tabWidth,
	}
	if err := r.render(ctx, blocks); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return &ConvertResult{
		DOCX:   buf.Bytes(),
		Title:  title,
		Blocks: len(blocks),
		Lines:  len(lines),
	}, nil
}

// ConvertFile reads src, converts it and writes the document to dst.
// Title, Author and Description are taken from meta; its Markdown and
// SourceName are replaced by the file's content and name.
// dst is replaced atomically and is never left half written.
func (c *Converter) ConvertFile(ctx context.Context, src, dst string, meta Input) (*ConvertResult, error) {
	text, err := fileutil.ReadText(src)
	if err != nil {
		if errors.Is(err, fileutil.ErrInvalidEncoding) {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceRead, src, ErrInvalidEncoding)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}

	meta.Markdown = text
	meta.SourceName = filepath.Base(src)

	res, err := c.Convert(ctx, meta)
	if err != nil {
		return nil, err
	}

	// An interrupted run must not replace dst.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(dst, res.DOCX, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOutputWrite, dst, err)
	}
	return res, nil
}

// resolveTitle picks the document title: explicit, first H1, then file name.
func (c *Converter) resolveTitle(input Input, md string) string {
	if input.Title != "" {
		return input.Title
	}
	if title := c.titles.ExtractTitle(md); title != "" {
		return title
	}
	if input.SourceName != "" {
		base := filepath.Base(input.SourceName)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return ""
}

// resolveTheme sets c.theme from WithTheme, WithThemeName or the default.
// Called during NewConverter after options are applied and the asset loader is configured.
func (c *Converter) resolveTheme() error {
	if c.cfg.theme != nil {
		if err := c.cfg.theme.Validate(); err != nil {
			return err
		}
		c.theme = c.cfg.theme
		return nil
	}

	name := c.cfg.themeName
	if name == "" {
		name = assets.DefaultThemeName
	}

	var data []byte
	if fileutil.IsFilePath(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrThemeNotFound, name)
			}
			return fmt.Errorf("loading theme file %q: %w", name, err)
		}
		data = content
	} else {
		content, err := c.assetLoader.LoadTheme(name)
		if err != nil {
			if errors.Is(err, assets.ErrThemeNotFound) {
				return fmt.Errorf("%w: %q", ErrThemeNotFound, name)
			}
			if errors.Is(err, assets.ErrInvalidAssetName) {
				return fmt.Errorf("%w: %v", ErrInvalidTheme, err)
			}
			return fmt.Errorf("loading theme %q: %w", name, err)
		}
		data = content
	}

	theme, err := ParseTheme(data)
	if err != nil {
		return fmt.Errorf("theme %q: %w", name, err)
	}
	c.theme = theme
	return nil
}

// AvailableThemes lists the theme names usable with WithThemeName,
// including those under assetPath when it is set.
func AvailableThemes(assetPath string) ([]string, error) {
	if assetPath == "" {
		return assets.ListThemes()
	}
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver.ListThemes()
}
