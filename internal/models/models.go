package models

// NavigationSection describes one clickable destination card on the learning
// center landing page. The list of sections is process-local, immutable
// configuration data: it is never persisted and never mutated after startup.
type NavigationSection struct {
	Title       string `json:"title" validate:"required,no_html"`
	Description string `json:"description" validate:"no_html"`
	// Icon is a presentational glyph reference. It is forwarded to the
	// renderer opaquely; this package attaches no meaning to it.
	Icon string `json:"icon"`
	Href string `json:"href" validate:"required,route_path"`
	// Color is a semantic accent tag carried on the record. No renderer
	// currently consumes it.
	Color string `json:"color,omitempty"`
}

// Section is one block of a rendered page. Elements are rendered in order by
// the renderer registered for their type.
type Section struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Title    string           `json:"title"`
	Order    int              `json:"order"`
	Elements []SectionElement `json:"elements"`
}

// SectionElement is a single renderable unit inside a section.
type SectionElement struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Order   int         `json:"order"`
	Content interface{} `json:"content"`
}
