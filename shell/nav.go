package shell

import "slices"

// Navigation sections in page order.
var Sections = []string{"home", "about", "skills", "portfolio", "contact"}

// activationOffset is how far below the top of the viewport a section
// becomes active, so it lights up before its heading reaches the top.
const activationOffset = 100

// Bounds is the vertical extent of a rendered section.
type Bounds struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ActiveSection returns the first section containing scrollY plus the
// activation offset. When none does, current is returned unchanged.
func ActiveSection(scrollY float64, sections []Bounds, current string) string {
	pos := scrollY + activationOffset
	for _, s := range sections {
		if pos >= s.Top && pos < s.Top+s.Height {
			return s.ID
		}
	}
	return current
}

// IsSection reports whether id is a known navigation section.
func IsSection(id string) bool {
	return slices.Contains(Sections, id)
}
