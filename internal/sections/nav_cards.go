package sections

import (
	"fmt"
	"html/template"
	"strings"

	"learning-center-backend/internal/constants"
	"learning-center-backend/internal/models"
	"learning-center-backend/pkg/icons"
)

// previewCaption labels the fixed trailing affordance on every navigation card.
const previewCaption = "预览内容"

// RegisterNavCards registers the navigation card grid and card item renderers.
func RegisterNavCards(reg *Registry) {
	if reg == nil {
		return
	}

	reg.RegisterSafe(constants.SectionTypeNavCards, renderNavCardsSection)
	reg.RegisterSafe(constants.ElementTypeNavCard, renderNavCard)
}

func renderNavCardsSection(ctx RenderContext, prefix string, elem models.SectionElement) (string, []string) {
	section, ok := extractSection(elem)
	if !ok {
		return "", nil
	}

	if len(section.Elements) == 0 {
		return "", nil
	}

	containerClass := fmt.Sprintf("%s__nav-cards", prefix)
	gridClass := fmt.Sprintf("%s__nav-cards-grid", prefix)

	var cards []string
	for _, item := range section.Elements {
		if strings.TrimSpace(strings.ToLower(item.Type)) != constants.ElementTypeNavCard {
			continue
		}
		cardHTML, _ := renderNavCard(ctx, prefix, item)
		if cardHTML != "" {
			cards = append(cards, cardHTML)
		}
	}

	if len(cards) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + containerClass + `">`)
	sb.WriteString(`<div class="` + gridClass + `">`)
	for _, card := range cards {
		sb.WriteString(card)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	return sb.String(), nil
}

// renderNavCard renders a single destination card. The whole card is wrapped
// in the navigation link so any activation inside it produces exactly one
// navigation to the card's href.
func renderNavCard(ctx RenderContext, prefix string, elem models.SectionElement) (string, []string) {
	content := sectionContent(elem)

	title := strings.TrimSpace(getString(content, "title"))
	description := strings.TrimSpace(getString(content, "description"))
	icon := strings.TrimSpace(getString(content, "icon"))
	href := strings.TrimSpace(getString(content, "href"))

	if title == "" || href == "" {
		return "", nil
	}

	cardClass := fmt.Sprintf("%s__nav-card", prefix)
	bodyClass := fmt.Sprintf("%s__nav-card-body", prefix)
	iconClass := fmt.Sprintf("%s__nav-card-icon", prefix)
	titleClass := fmt.Sprintf("%s__nav-card-title", prefix)
	descriptionClass := fmt.Sprintf("%s__nav-card-description", prefix)
	previewClass := fmt.Sprintf("%s__nav-card-preview", prefix)
	previewIconClass := fmt.Sprintf("%s__nav-card-preview-icon", prefix)

	var sb strings.Builder
	sb.WriteString(`<a class="` + cardClass + `" href="` + template.HTMLEscapeString(href) + `">`)
	sb.WriteString(`<article class="` + bodyClass + `">`)

	if glyph := icons.SVG(icon); glyph != "" {
		sb.WriteString(`<span class="` + iconClass + `">`)
		sb.WriteString(string(glyph))
		sb.WriteString(`</span>`)
	}

	sb.WriteString(`<h3 class="` + titleClass + `">` + template.HTMLEscapeString(title) + `</h3>`)

	if description != "" {
		sb.WriteString(`<p class="` + descriptionClass + `">` + ctx.SanitizeHTML(description) + `</p>`)
	}

	sb.WriteString(`<span class="` + previewClass + `">`)
	sb.WriteString(template.HTMLEscapeString(previewCaption))
	sb.WriteString(`<span class="` + previewIconClass + `">`)
	sb.WriteString(string(icons.SVG("arrow-right")))
	sb.WriteString(`</span>`)
	sb.WriteString(`</span>`)

	sb.WriteString(`</article>`)
	sb.WriteString(`</a>`)
	return sb.String(), nil
}
