package md2docx

import (
	"fmt"
	"regexp"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// hexColor matches "#rrggbb".
var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TextStyle is the character formatting of one kind of text.
// Zero values inherit the body style.
type TextStyle struct {
	Font   string  `yaml:"font,omitempty"`
	Size   float64 `yaml:"size,omitempty"` // points
	Color  string  `yaml:"color,omitempty"`
	Bold   bool    `yaml:"bold,omitempty"`
	Italic bool    `yaml:"italic,omitempty"`
}

// CodeStyle formats fenced code blocks.
type CodeStyle struct {
	Font        string  `yaml:"font,omitempty"`
	Size        float64 `yaml:"size,omitempty"`
	Color       string  `yaml:"color,omitempty"`
	IndentLeft  float64 `yaml:"indentLeft,omitempty"`  // inches
	IndentRight float64 `yaml:"indentRight,omitempty"` // inches
	SpaceBefore float64 `yaml:"spaceBefore,omitempty"` // points
	SpaceAfter  float64 `yaml:"spaceAfter,omitempty"`  // points
}

// RuleStyle formats horizontal rules, drawn as a repeated character.
type RuleStyle struct {
	Char  string `yaml:"char,omitempty"`
	Width int    `yaml:"width,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// CheckboxStyle formats task list items.
type CheckboxStyle struct {
	Checked   string  `yaml:"checked,omitempty"`
	Unchecked string  `yaml:"unchecked,omitempty"`
	Indent    float64 `yaml:"indent,omitempty"` // inches
}

// TableStyle formats pipe tables.
type TableStyle struct {
	Style       string `yaml:"style,omitempty"`       // named table style
	BorderColor string `yaml:"borderColor,omitempty"` // empty = automatic
	HeaderFill  string `yaml:"headerFill,omitempty"`  // empty = no shading
	HeaderBold  bool   `yaml:"headerBold,omitempty"`
}

// Theme holds every visual setting used when rendering a document.
type Theme struct {
	Name       string        `yaml:"name,omitempty"`
	Body       TextStyle     `yaml:"body"`
	Heading1   TextStyle     `yaml:"heading1"`
	Heading2   TextStyle     `yaml:"heading2"`
	Heading3   TextStyle     `yaml:"heading3"`
	Heading4   TextStyle     `yaml:"heading4"` // level 4 and deeper, rendered as a paragraph
	InlineCode TextStyle     `yaml:"inlineCode"`
	Code       CodeStyle     `yaml:"code"`
	Rule       RuleStyle     `yaml:"rule"`
	Checkbox   CheckboxStyle `yaml:"checkbox"`
	Table      TableStyle    `yaml:"table"`
}

// DefaultTheme returns the built-in theme: Calibri body text, blue headings,
// Consolas code.
func DefaultTheme() *Theme {
	return &Theme{
		Name:       "default",
		Body:       TextStyle{Font: "Calibri", Size: 11},
		Heading1:   TextStyle{Size: 24, Color: "#003366"},
		Heading2:   TextStyle{Size: 18, Color: "#0066CC"},
		Heading3:   TextStyle{Size: 14, Bold: true},
		Heading4:   TextStyle{Bold: true},
		InlineCode: TextStyle{Font: "Consolas", Size: 10, Color: "#C7254E"},
		Code: CodeStyle{
			Font:        "Consolas",
			Size:        9,
			Color:       "#000000",
			IndentLeft:  0.5,
			IndentRight: 0.5,
			SpaceBefore: 6,
			SpaceAfter:  6,
		},
		Rule:     RuleStyle{Char: "_", Width: 80, Color: "#C0C0C0"},
		Checkbox: CheckboxStyle{Checked: "☑", Unchecked: "☐", Indent: 0.25},
		Table:    TableStyle{Style: "LightGrid-Accent1", HeaderBold: true},
	}
}

// ParseTheme decodes a YAML theme over DefaultTheme, so a theme only needs
// the settings it changes. Unknown keys are rejected.
func ParseTheme(data []byte) (*Theme, error) {
	theme := DefaultTheme()
	if err := yamlutil.UnmarshalStrict(data, theme); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

// Validate checks that sizes are positive and colors are well formed.
// A nil theme is valid and means DefaultTheme.
func (t *Theme) Validate() error {
	if t == nil {
		return nil
	}

	if t.Body.Font == "" {
		return fmt.Errorf("%w: body.font is required", ErrInvalidTheme)
	}
	if t.Body.Size <= 0 {
		return fmt.Errorf("%w: body.size must be positive, got %v", ErrInvalidTheme, t.Body.Size)
	}

	styles := []struct {
		field string
		style TextStyle
	}{
		{"heading1", t.Heading1},
		{"heading2", t.Heading2},
		{"heading3", t.Heading3},
		{"heading4", t.Heading4},
		{"inlineCode", t.InlineCode},
	}
	for _, s := range styles {
		if err := validateTextStyle(s.field, s.style); err != nil {
			return err
		}
	}

	if err := validateTextStyle("code", TextStyle{Size: t.Code.Size, Color: t.Code.Color}); err != nil {
		return err
	}
	if t.Code.IndentLeft < 0 || t.Code.IndentRight < 0 || t.Code.SpaceBefore < 0 || t.Code.SpaceAfter < 0 {
		return fmt.Errorf("%w: code indents and spacing cannot be negative", ErrInvalidTheme)
	}

	if t.Rule.Width < 0 {
		return fmt.Errorf("%w: rule.width cannot be negative, got %d", ErrInvalidTheme, t.Rule.Width)
	}
	if err := validateColor("rule.color", t.Rule.Color); err != nil {
		return err
	}

	if t.Checkbox.Indent < 0 {
		return fmt.Errorf("%w: checkbox.indent cannot be negative", ErrInvalidTheme)
	}

	if err := validateColor("table.borderColor", t.Table.BorderColor); err != nil {
		return err
	}
	return validateColor("table.headerFill", t.Table.HeaderFill)
}

func validateTextStyle(field string, s TextStyle) error {
	if s.Size < 0 {
		return fmt.Errorf("%w: %s.size cannot be negative, got %v", ErrInvalidTheme, field, s.Size)
	}
	return validateColor(field+".color", s.Color)
}

// validateColor accepts "" (inherit) or "#rrggbb".
func validateColor(field, value string) error {
	if value == "" || hexColor.MatchString(value) {
		return nil
	}
	return fmt.Errorf("%w: %s must be #rrggbb, got %q", ErrInvalidTheme, field, value)
}
