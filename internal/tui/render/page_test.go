package render

import (
	"testing"

	"folio-cli/internal/router"
	"folio-cli/internal/site"
)

func TestRenderPageMapsAnchorsAfterWrapping(t *testing.T) {
	page := site.Page{
		Lines: []site.Line{
			{Text: "a long line that wraps several times", Style: site.StyleBody},
			{},
			{Text: "Work", Style: site.StyleHeading},
		},
		Anchors: map[string]int{site.AnchorWork: 2},
	}
	lines, anchors := RenderPage(page, 10)
	row := anchors[site.AnchorWork]
	if got := lines[row].Text(); got != "Work" {
		t.Fatalf("anchor row %d = %q, want Work", row, got)
	}
	if row <= 2 {
		t.Fatalf("anchor row should move down after wrapping, got %d", row)
	}
}

func TestRenderPageDefaultContent(t *testing.T) {
	page := site.Default().Render(router.Location{Page: router.PageHome}, "")
	lines, anchors := RenderPage(page, 60)
	for _, name := range []string{site.AnchorProjects, site.AnchorWork} {
		row, ok := anchors[name]
		if !ok || row >= len(lines) {
			t.Fatalf("anchor %q missing or out of range", name)
		}
	}
	if lines[anchors[site.AnchorProjects]].Text() != "~/projects" {
		t.Fatalf("projects anchor row = %q", lines[anchors[site.AnchorProjects]].Text())
	}
}
