// Package render paints pages to bitmaps. It only reads documents.
package render

import (
	"cmp"
	"slices"

	"proprofile/internal/domain"
)

// PaintOrder returns the elements in back-to-front order: ascending zIndex,
// ties broken by list position. The input is not modified.
func PaintOrder(elements []domain.Element) []domain.Element {
	out := slices.Clone(elements)
	slices.SortStableFunc(out, func(a, b domain.Element) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	return out
}
