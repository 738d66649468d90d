package service

import (
	"os"
	"strings"
	"testing"

	"learning-center-backend/internal/constants"
	"learning-center-backend/pkg/cache"
	"learning-center-backend/pkg/validator"
)

func TestMain(m *testing.M) {
	validator.Init()
	os.Exit(m.Run())
}

func newTestService() *LearnService {
	return NewLearnService(cache.Disabled(), nil, 0)
}

func TestBuildLandingSectionsShape(t *testing.T) {
	list := newTestService().BuildLandingSections()
	if len(list) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(list))
	}

	if list[0].Type != constants.SectionTypeNavCards {
		t.Fatalf("expected first section to be the card grid, got %q", list[0].Type)
	}
	if len(list[0].Elements) != 2 {
		t.Fatalf("expected 2 navigation cards, got %d", len(list[0].Elements))
	}

	if list[1].Type != constants.SectionTypeCallToAction {
		t.Fatalf("expected second section to be the call to action, got %q", list[1].Type)
	}
	if len(list[1].Elements) != 0 {
		t.Fatalf("expected call to action section to carry no elements")
	}
}

func TestRenderLandingPageContent(t *testing.T) {
	html := string(newTestService().RenderLandingPage())

	if got := strings.Count(html, `class="learn__nav-card"`); got != 2 {
		t.Fatalf("expected 2 navigation cards, got %d", got)
	}
	for _, want := range []string{
		"提示词库",
		"学习路径图",
		`href="/learn/prompts"`,
		`href="/learn/roadmaps"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected landing page to contain %q", want)
		}
	}

	if got := strings.Count(html, `class="learn__cta"`); got != 1 {
		t.Fatalf("expected exactly one call-to-action panel, got %d", got)
	}
}

func TestRenderLandingPageSectionOrder(t *testing.T) {
	html := string(newTestService().RenderLandingPage())

	cards := strings.Index(html, `learn__section--nav-cards`)
	cta := strings.Index(html, `learn__section--cta`)
	if cards == -1 || cta == -1 {
		t.Fatalf("expected both section wrappers in output")
	}
	if cards > cta {
		t.Fatalf("expected card grid before call to action")
	}

	prompts := strings.Index(html, "提示词库")
	roadmaps := strings.Index(html, "学习路径图")
	if prompts == -1 || roadmaps == -1 || prompts > roadmaps {
		t.Fatalf("expected cards in catalog order, got positions %d and %d", prompts, roadmaps)
	}
}

func TestRenderLandingPageDeterministic(t *testing.T) {
	svc := newTestService()

	first := svc.RenderLandingPage()
	second := svc.RenderLandingPage()
	if first != second {
		t.Fatalf("expected byte-identical output on repeated renders")
	}
}

func TestRenderSectionsFallsBackToElementRenderers(t *testing.T) {
	svc := newTestService()

	list := svc.BuildLandingSections()
	list[0].Type = "custom_grid"

	html, _ := svc.RenderSections(list, constants.LearnPagePrefix)
	if got := strings.Count(string(html), `class="learn__nav-card"`); got != 2 {
		t.Fatalf("expected elements to render individually, got %d cards", got)
	}
	if strings.Contains(string(html), "learn__nav-cards-grid") {
		t.Fatalf("expected no grid wrapper without a section-level renderer")
	}
}

func TestRenderSectionsSkipsUnknownElementTypes(t *testing.T) {
	svc := newTestService()

	list := svc.BuildLandingSections()
	list[0].Type = "custom_grid"
	for i := range list[0].Elements {
		list[0].Elements[i].Type = "mystery"
	}

	html, _ := svc.RenderSections(list, constants.LearnPagePrefix)
	if strings.Contains(string(html), "learn__nav-card") {
		t.Fatalf("expected unknown element types to render nothing")
	}
	if got := strings.Count(string(html), `class="learn__cta"`); got != 1 {
		t.Fatalf("expected remaining sections to still render, got %d panels", got)
	}
}

func TestRenderSectionPage(t *testing.T) {
	svc := newTestService()

	html, ok := svc.RenderSectionPage("/learn/prompts")
	if !ok {
		t.Fatalf("expected catalog href to resolve")
	}
	if !strings.Contains(string(html), "提示词库") {
		t.Fatalf("expected detail page to carry the section title")
	}

	if _, ok := svc.RenderSectionPage("/learn/unknown"); ok {
		t.Fatalf("expected unknown href to miss")
	}
}

func TestWarmLandingPageNoopWithoutCache(t *testing.T) {
	if err := newTestService().WarmLandingPage(); err != nil {
		t.Fatalf("expected warm to be a no-op without cache: %v", err)
	}
}
