package layout

import "proprofile/internal/domain"

// Retranslate re-renders every keyed, unedited text in doc for l and reports
// how many elements changed. User-supplied values carry no key and stay as is.
func Retranslate(doc *domain.Document, l Locale) int {
	if l.strings == nil {
		l = localeOf(English)
	}
	n := 0
	for pi := range doc.Pages {
		els := doc.Pages[pi].Elements
		for i := range els {
			el := &els[i]
			if el.TextKey == "" || el.Edited {
				continue
			}
			if s := l.Render(Key(el.TextKey)); s != el.Content {
				el.Content = s
				n++
			}
		}
	}
	doc.Language = l.Code()
	return n
}
