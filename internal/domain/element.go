package domain

import "fmt"

type ElementType string

const (
	ElementTypeText  ElementType = "TEXT"
	ElementTypeImage ElementType = "IMAGE"
	ElementTypeShape ElementType = "SHAPE"
	ElementTypeLogo  ElementType = "LOGO"
)

// ParseElementType accepts only the four known element types.
func ParseElementType(s string) (ElementType, error) {
	switch t := ElementType(s); t {
	case ElementTypeText, ElementTypeImage, ElementTypeShape, ElementTypeLogo:
		return t, nil
	}
	return "", fmt.Errorf("unknown element type %q", s)
}

type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// Element is one positioned item on a page. Coordinates are page-local units
// and are never clamped, so decorations may bleed off the canvas.
type Element struct {
	ID      string      `json:"id"`
	Type    ElementType `json:"type"`
	Content string      `json:"content"` // text, or an image data URL for IMAGE/LOGO
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"` // advisory for TEXT
	ZIndex  int         `json:"zIndex"`

	FontSize        float64   `json:"fontSize,omitempty"`
	FontWeight      string    `json:"fontWeight,omitempty"`
	FontStyle       string    `json:"fontStyle,omitempty"`
	Color           string    `json:"color,omitempty"`
	TextAlign       TextAlign `json:"textAlign,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	BorderRadius    float64   `json:"borderRadius,omitempty"`
	Opacity         *float64  `json:"opacity,omitempty"`

	// TextKey names the dictionary entry a generated text was rendered from.
	// Edited is set once a user overwrites Content; such text is never retranslated.
	TextKey string `json:"textKey,omitempty"`
	Edited  bool   `json:"edited,omitempty"`
}

// DefaultSize returns the box a freshly added element of type t gets.
func DefaultSize(t ElementType) (width, height float64) {
	switch t {
	case ElementTypeText:
		return 300, 50
	case ElementTypeLogo:
		return 150, 150
	default:
		return 200, 200
	}
}

// NewElement builds an element with the default geometry for its type.
func NewElement(id string, t ElementType, content string) Element {
	w, h := DefaultSize(t)
	return Element{ID: id, Type: t, Content: content, Width: w, Height: h}
}

// ElementPatch is a field-level partial update. Nil fields are left untouched.
type ElementPatch struct {
	Content         *string    `json:"content,omitempty"`
	X               *float64   `json:"x,omitempty"`
	Y               *float64   `json:"y,omitempty"`
	Width           *float64   `json:"width,omitempty"`
	Height          *float64   `json:"height,omitempty"`
	ZIndex          *int       `json:"zIndex,omitempty"`
	FontSize        *float64   `json:"fontSize,omitempty"`
	FontWeight      *string    `json:"fontWeight,omitempty"`
	FontStyle       *string    `json:"fontStyle,omitempty"`
	Color           *string    `json:"color,omitempty"`
	TextAlign       *TextAlign `json:"textAlign,omitempty"`
	BackgroundColor *string    `json:"backgroundColor,omitempty"`
	BorderRadius    *float64   `json:"borderRadius,omitempty"`
	Opacity         *float64   `json:"opacity,omitempty"`
}

// Apply merges the patch into e. It reports whether Content changed.
func (p ElementPatch) Apply(e *Element) (contentChanged bool) {
	if p.Content != nil && *p.Content != e.Content {
		e.Content = *p.Content
		contentChanged = true
	}
	setFloat(&e.X, p.X)
	setFloat(&e.Y, p.Y)
	setFloat(&e.Width, p.Width)
	setFloat(&e.Height, p.Height)
	if p.ZIndex != nil {
		e.ZIndex = *p.ZIndex
	}
	setFloat(&e.FontSize, p.FontSize)
	setString(&e.FontWeight, p.FontWeight)
	setString(&e.FontStyle, p.FontStyle)
	setString(&e.Color, p.Color)
	if p.TextAlign != nil {
		e.TextAlign = *p.TextAlign
	}
	setString(&e.BackgroundColor, p.BackgroundColor)
	setFloat(&e.BorderRadius, p.BorderRadius)
	if p.Opacity != nil {
		v := *p.Opacity
		e.Opacity = &v
	}
	return contentChanged
}

// Move returns a patch that only repositions an element.
func Move(x, y float64) ElementPatch {
	return ElementPatch{X: &x, Y: &y}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
