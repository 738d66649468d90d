package sections

import (
	"fmt"
	"html/template"
	"strings"

	"learning-center-backend/internal/constants"
	"learning-center-backend/internal/models"
	"learning-center-backend/pkg/icons"
)

// Fixed copy of the closing call-to-action panel. The subscribe button carries
// no action handler: it is a visual affordance only.
const (
	ctaHeading     = "保持更新"
	ctaBody        = "订阅后第一时间获取新的提示词与学习路径。"
	ctaButtonLabel = "订阅更新"
)

// RegisterCallToAction registers the static call-to-action panel renderer.
func RegisterCallToAction(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterSafe(constants.SectionTypeCallToAction, renderCallToAction)
}

func renderCallToAction(ctx RenderContext, prefix string, elem models.SectionElement) (string, []string) {
	panelClass := fmt.Sprintf("%s__cta", prefix)
	iconClass := fmt.Sprintf("%s__cta-icon", prefix)
	titleClass := fmt.Sprintf("%s__cta-title", prefix)
	textClass := fmt.Sprintf("%s__cta-text", prefix)
	buttonClass := fmt.Sprintf("%s__cta-button btn btn--lg btn--outline", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + panelClass + `">`)

	sb.WriteString(`<span class="` + iconClass + `">`)
	sb.WriteString(string(icons.SVG("sparkles")))
	sb.WriteString(`</span>`)

	sb.WriteString(`<h2 class="` + titleClass + `">` + template.HTMLEscapeString(ctaHeading) + `</h2>`)
	sb.WriteString(`<p class="` + textClass + `">` + template.HTMLEscapeString(ctaBody) + `</p>`)

	sb.WriteString(`<button type="button" class="` + buttonClass + `">`)
	sb.WriteString(template.HTMLEscapeString(ctaButtonLabel))
	sb.WriteString(`</button>`)

	sb.WriteString(`</div>`)
	return sb.String(), nil
}
