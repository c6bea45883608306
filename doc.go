// Package md2docx converts Markdown documents to Word (DOCX) files.
//
// # Quick Start
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// ConvertFile reads a source file, decodes UTF-8 or BOM-marked UTF-16, and
// replaces the destination atomically.
//
// # Conversion Pipeline
//
//  1. Line ending normalization and splitting
//  2. Line classification into blocks (headings, lists, checkboxes, tables,
//     fenced code, rules, paragraphs) in a single forward pass
//  3. Inline splitting of paragraphs and list items into bold, italic,
//     code and plain runs
//  4. Rendering into a WordprocessingML document via gooxml
//
// The supported syntax is a line-oriented subset of Markdown. Nested lists,
// links, images and nested inline styles are rendered as plain text.
//
// # Themes
//
// Fonts, sizes, colors and indents come from a Theme. Built-in themes are
// "default" and "monochrome"; more can be provided as YAML files:
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithThemeName("corporate"),
//	    md2docx.WithAssetPath("/path/to/assets"), // reads themes/corporate.yaml
//	)
//
// A theme file only lists the settings it changes; everything else keeps the
// DefaultTheme value.
//
// # Code Highlighting
//
// Fenced code blocks are plain monospace text unless highlighting is enabled:
//
//	conv, err := md2docx.NewConverter(md2docx.WithHighlighting("monokai"))
package md2docx
