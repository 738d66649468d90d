// Package catalog holds the static content of the learning center landing
// page: the ordered list of navigation sections shown as cards. The list is
// compile-time configuration, not state; insertion order is display order.
package catalog

import (
	"fmt"
	"strings"

	"learning-center-backend/internal/models"
	"learning-center-backend/pkg/validator"
)

var navigationSections = []models.NavigationSection{
	{
		Title:       "提示词库",
		Description: "浏览精选的提示词合集，按场景分类，随取随用。",
		Icon:        "library",
		Href:        "/learn/prompts",
		Color:       "violet",
	},
	{
		Title:       "学习路径图",
		Description: "跟随循序渐进的路径，从入门到进阶掌握核心技巧。",
		Icon:        "map",
		Href:        "/learn/roadmaps",
		Color:       "sky",
	},
}

// Sections returns a fresh copy of the navigation section list in display order.
func Sections() []models.NavigationSection {
	out := make([]models.NavigationSection, len(navigationSections))
	copy(out, navigationSections)
	return out
}

// FindByHref returns the navigation section whose href matches exactly.
func FindByHref(href string) (models.NavigationSection, bool) {
	for _, section := range navigationSections {
		if section.Href == href {
			return section, true
		}
	}
	return models.NavigationSection{}, false
}

// Validate checks the built-in list against the catalog invariants.
func Validate() error {
	return ValidateSections(navigationSections)
}

// ValidateSections enforces the invariants every navigation section list must
// hold: non-empty titles, non-empty absolute hrefs, and href uniqueness
// (hrefs double as rendering identity keys).
func ValidateSections(list []models.NavigationSection) error {
	seen := make(map[string]bool, len(list))
	for i, section := range list {
		if err := validator.Validate(section); err != nil {
			return fmt.Errorf("navigation section %d (%q): %w", i, section.Title, err)
		}

		href := strings.TrimSpace(section.Href)
		if seen[href] {
			return fmt.Errorf("navigation section %d (%q): duplicate href %q", i, section.Title, href)
		}
		seen[href] = true
	}
	return nil
}
