package sections

// DefaultRegistry returns a registry pre-populated with the built-in section renderers.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}

// RegisterDefaults adds the built-in section renderers to the provided registry.
// Registration errors are logged rather than propagated to prevent panics in production.
func RegisterDefaults(reg *Registry) {
	if reg == nil {
		return
	}

	RegisterNavCards(reg)
	RegisterCallToAction(reg)
}
