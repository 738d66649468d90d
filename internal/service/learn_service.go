package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"learning-center-backend/internal/catalog"
	"learning-center-backend/internal/constants"
	"learning-center-backend/internal/models"
	"learning-center-backend/internal/sections"
	"learning-center-backend/pkg/cache"
	"learning-center-backend/pkg/icons"
	"learning-center-backend/pkg/logger"
	"learning-center-backend/pkg/validator"
)

// LearnService assembles the learning center pages from the static catalog
// and renders them through the section registry. Rendering is synchronous,
// deterministic and free of side effects; the only mutable collaborator is
// the optional page cache.
type LearnService struct {
	cache    *cache.Cache
	registry *sections.Registry
	pageTTL  time.Duration
}

func NewLearnService(cacheService *cache.Cache, registry *sections.Registry, pageTTL time.Duration) *LearnService {
	if registry == nil {
		registry = sections.DefaultRegistry()
	}
	if pageTTL <= 0 {
		pageTTL = constants.DefaultPageCacheTTL
	}
	return &LearnService{
		cache:    cacheService,
		registry: registry,
		pageTTL:  pageTTL,
	}
}

// SanitizeHTML implements sections.RenderContext.
func (s *LearnService) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

// BuildLandingSections constructs the landing page section list fresh on
// every call: one navigation card grid populated from the catalog, followed
// by the static call-to-action panel.
func (s *LearnService) BuildLandingSections() []models.Section {
	navs := catalog.Sections()

	cards := make([]models.SectionElement, 0, len(navs))
	for i, nav := range navs {
		cards = append(cards, models.SectionElement{
			ID:    fmt.Sprintf("nav-card-%d", i+1),
			Type:  constants.ElementTypeNavCard,
			Order: i,
			Content: map[string]interface{}{
				"title":       nav.Title,
				"description": nav.Description,
				"icon":        nav.Icon,
				"href":        nav.Href,
				"color":       nav.Color,
			},
		})
	}

	return []models.Section{
		{
			ID:       "nav-cards",
			Type:     constants.SectionTypeNavCards,
			Order:    0,
			Elements: cards,
		},
		{
			ID:    "cta",
			Type:  constants.SectionTypeCallToAction,
			Order: 1,
		},
	}
}

// RenderSections renders a section list into an HTML fragment plus the
// scripts requested by individual renderers. Sections whose type has a
// registered section-level renderer receive the whole section as content;
// otherwise their elements are rendered one by one.
func (s *LearnService) RenderSections(list []models.Section, prefix string) (template.HTML, []string) {
	if len(list) == 0 {
		return "", nil
	}

	var sb strings.Builder
	var scripts []string

	for _, section := range list {
		sectionType := strings.TrimSpace(strings.ToLower(section.Type))
		if sectionType == "" {
			continue
		}

		sectionClasses := []string{
			fmt.Sprintf("%s__section", prefix),
			fmt.Sprintf("%s__section--%s", prefix, strings.ReplaceAll(sectionType, "_", "-")),
		}

		sb.WriteString(`<section class="` + strings.Join(sectionClasses, " ") + `" id="section-` + template.HTMLEscapeString(section.ID) + `">`)

		if title := strings.TrimSpace(section.Title); title != "" {
			sb.WriteString(`<h2 class="` + fmt.Sprintf("%s__section-title", prefix) + `">` + template.HTMLEscapeString(title) + `</h2>`)
		}

		if renderer, ok := s.registry.Get(sectionType); ok {
			html, sectionScripts := renderer(s, prefix, models.SectionElement{
				ID:      section.ID,
				Type:    section.Type,
				Content: section,
			})
			scripts = appendScripts(scripts, sectionScripts)
			sb.WriteString(html)
		} else {
			for _, elem := range section.Elements {
				elemRenderer, found := s.registry.Get(elem.Type)
				if !found {
					continue
				}
				html, elemScripts := elemRenderer(s, prefix, elem)
				scripts = appendScripts(scripts, elemScripts)
				sb.WriteString(html)
			}
		}

		sb.WriteString(`</section>`)
	}

	return template.HTML(sb.String()), scripts
}

// RenderLandingPage returns the landing page fragment, serving the cached
// copy when available.
func (s *LearnService) RenderLandingPage() template.HTML {
	if s.cache.Enabled() {
		if cached, err := s.cache.GetCachedPageHTML(constants.LandingPageSlug); err == nil && cached != "" {
			return template.HTML(cached)
		}
	}

	html, _ := s.RenderSections(s.BuildLandingSections(), constants.LearnPagePrefix)

	if s.cache.Enabled() {
		if err := s.cache.CachePageHTML(constants.LandingPageSlug, string(html), s.pageTTL); err != nil {
			logger.Error(err, "Failed to cache landing page", map[string]interface{}{"slug": constants.LandingPageSlug})
		}
	}

	return html
}

// WarmLandingPage pre-renders the landing page into the cache. It is safe to
// call repeatedly; each call replaces the cached fragment.
func (s *LearnService) WarmLandingPage() error {
	if !s.cache.Enabled() {
		return nil
	}

	html, _ := s.RenderSections(s.BuildLandingSections(), constants.LearnPagePrefix)
	return s.cache.CachePageHTML(constants.LandingPageSlug, string(html), s.pageTTL)
}

// RenderSectionPage renders the detail page header for a navigation target.
// The boolean result reports whether the href belongs to the catalog.
func (s *LearnService) RenderSectionPage(href string) (template.HTML, bool) {
	nav, ok := catalog.FindByHref(href)
	if !ok {
		return "", false
	}

	prefix := constants.LearnPagePrefix

	var sb strings.Builder
	sb.WriteString(`<section class="` + fmt.Sprintf("%s__section %s__section--detail", prefix, prefix) + `">`)
	sb.WriteString(`<header class="` + fmt.Sprintf("%s__detail-header", prefix) + `">`)

	if glyph := icons.SVG(nav.Icon); glyph != "" {
		sb.WriteString(`<span class="` + fmt.Sprintf("%s__detail-icon", prefix) + `">`)
		sb.WriteString(string(glyph))
		sb.WriteString(`</span>`)
	}

	sb.WriteString(`<h1 class="` + fmt.Sprintf("%s__detail-title", prefix) + `">` + template.HTMLEscapeString(nav.Title) + `</h1>`)

	if description := strings.TrimSpace(nav.Description); description != "" {
		sb.WriteString(`<p class="` + fmt.Sprintf("%s__detail-description", prefix) + `">` + s.SanitizeHTML(description) + `</p>`)
	}

	sb.WriteString(`</header>`)
	sb.WriteString(`</section>`)

	return template.HTML(sb.String()), true
}

func appendScripts(existing []string, additions []string) []string {
	if len(additions) == 0 {
		return existing
	}

	seen := make(map[string]struct{}, len(existing))
	for _, script := range existing {
		if script == "" {
			continue
		}
		seen[script] = struct{}{}
	}

	for _, script := range additions {
		if script == "" {
			continue
		}
		if _, ok := seen[script]; ok {
			continue
		}
		existing = append(existing, script)
		seen[script] = struct{}{}
	}

	return existing
}
