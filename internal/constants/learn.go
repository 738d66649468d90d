package constants

import "time"

const (
	// SectionTypeNavCards is the section type holding the navigation card grid.
	SectionTypeNavCards = "nav_cards"
	// ElementTypeNavCard is the element type for a single navigation card.
	ElementTypeNavCard = "nav_card"
	// SectionTypeCallToAction is the section type for the closing subscribe panel.
	SectionTypeCallToAction = "cta"

	// LearnPath is the route of the learning center landing page.
	LearnPath = "/learn"
	// LearnPagePrefix is the CSS class prefix used by the landing page renderers.
	LearnPagePrefix = "learn"

	// LandingPageSlug keys the cached landing page fragment.
	LandingPageSlug = "learn-landing"

	// DefaultPageCacheTTL bounds how long a rendered page fragment stays cached.
	DefaultPageCacheTTL = time.Hour
)
