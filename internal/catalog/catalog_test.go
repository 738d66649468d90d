package catalog

import (
	"os"
	"strings"
	"testing"

	"learning-center-backend/internal/models"
	"learning-center-backend/pkg/validator"
)

func TestMain(m *testing.M) {
	validator.Init()
	os.Exit(m.Run())
}

func TestSectionsOrderAndContent(t *testing.T) {
	list := Sections()
	if len(list) != 2 {
		t.Fatalf("expected 2 navigation sections, got %d", len(list))
	}

	if list[0].Title != "提示词库" || list[0].Href != "/learn/prompts" {
		t.Fatalf("unexpected first section: %+v", list[0])
	}
	if list[1].Title != "学习路径图" || list[1].Href != "/learn/roadmaps" {
		t.Fatalf("unexpected second section: %+v", list[1])
	}
}

func TestSectionsReturnsFreshCopy(t *testing.T) {
	first := Sections()
	first[0].Title = "mutated"

	second := Sections()
	if second[0].Title == "mutated" {
		t.Fatalf("expected Sections to return an independent copy")
	}
}

func TestFindByHref(t *testing.T) {
	nav, ok := FindByHref("/learn/prompts")
	if !ok {
		t.Fatalf("expected to find catalog entry for /learn/prompts")
	}
	if nav.Title != "提示词库" {
		t.Fatalf("unexpected entry: %+v", nav)
	}

	if _, ok := FindByHref("/learn/unknown"); ok {
		t.Fatalf("expected miss for unknown href")
	}
}

func TestValidateBuiltInCatalog(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("expected built-in catalog to pass validation: %v", err)
	}
}

func TestValidateSectionsRejectsDuplicateHref(t *testing.T) {
	list := []models.NavigationSection{
		{Title: "A", Href: "/learn/a", Icon: "library"},
		{Title: "B", Href: "/learn/a", Icon: "map"},
	}

	err := ValidateSections(list)
	if err == nil {
		t.Fatalf("expected duplicate href to be rejected")
	}
	if !strings.Contains(err.Error(), "duplicate href") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestValidateSectionsRejectsMissingHref(t *testing.T) {
	list := []models.NavigationSection{
		{Title: "A", Href: "", Icon: "library"},
	}
	if err := ValidateSections(list); err == nil {
		t.Fatalf("expected empty href to be rejected")
	}
}

func TestValidateSectionsRejectsRelativeHref(t *testing.T) {
	list := []models.NavigationSection{
		{Title: "A", Href: "learn/a", Icon: "library"},
	}
	if err := ValidateSections(list); err == nil {
		t.Fatalf("expected relative href to be rejected")
	}
}

func TestValidateSectionsRejectsMarkupInTitle(t *testing.T) {
	list := []models.NavigationSection{
		{Title: "<b>A</b>", Href: "/learn/a", Icon: "library"},
	}
	if err := ValidateSections(list); err == nil {
		t.Fatalf("expected markup in title to be rejected")
	}
}
