package mcpserver

import (
	"encoding/json"
	"fmt"

	"proprofile/internal/domain"
)

// parseJSON parses a JSON string into the target type.
func parseJSON(data string, target any) error {
	return json.Unmarshal([]byte(data), target)
}

// patchFromArgs collects the element attributes present in args. Absent
// keys stay nil and are left untouched by the update.
func patchFromArgs(args map[string]any) (domain.ElementPatch, error) {
	var p domain.ElementPatch
	str := func(key string) *string {
		if v, ok := args[key].(string); ok {
			return &v
		}
		return nil
	}
	num := func(key string) *float64 {
		if v, ok := args[key].(float64); ok {
			return &v
		}
		return nil
	}

	p.Content = str("content")
	p.X, p.Y = num("x"), num("y")
	p.Width, p.Height = num("width"), num("height")
	if z := num("zIndex"); z != nil {
		n := int(*z)
		p.ZIndex = &n
	}
	p.FontSize = num("fontSize")
	p.FontWeight = str("fontWeight")
	p.FontStyle = str("fontStyle")
	p.Color = str("color")
	if a := str("textAlign"); a != nil {
		switch al := domain.TextAlign(*a); al {
		case domain.AlignLeft, domain.AlignCenter, domain.AlignRight:
			p.TextAlign = &al
		default:
			return p, fmt.Errorf("textAlign must be left, center or right, got %q", *a)
		}
	}
	p.BackgroundColor = str("backgroundColor")
	p.BorderRadius = num("borderRadius")
	if o := num("opacity"); o != nil {
		if *o < 0 || *o > 1 {
			return p, fmt.Errorf("opacity must be between 0 and 1, got %v", *o)
		}
		p.Opacity = o
	}
	return p, nil
}
