// Package pipeline implements the Markdown side of the Markdown-to-DOCX conversion.
//
// This package turns source text into a flat sequence of blocks:
//   - Preprocessing (line ending normalization, line splitting)
//   - Line translation via a small state machine (headings, lists, tables, code...)
//   - Inline span splitting for bold, italic and code runs
//   - Title extraction for document metadata (goldmark AST)
//   - Optional code tokenization for syntax highlighting (chroma)
//
// Rendering blocks into a document is handled by the root md2docx package through
// the internal/docx builder. This package knows nothing about fonts, colors or the
// output format.
package pipeline
