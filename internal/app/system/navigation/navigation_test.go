package navigation_test

import (
	"testing"

	"github.com/dalemusser/campaigngen/internal/app/system/navigation"
	"github.com/dalemusser/campaigngen/internal/app/system/routetable"
)

func TestItems_LinksAreRoutedOrPlaceholder(t *testing.T) {
	items := navigation.Items()
	if len(items) != 6 {
		t.Fatalf("expected 6 nav items, got %d", len(items))
	}
	for _, it := range items {
		if it.Name == "" {
			t.Error("nav item with empty name")
		}
		if it.Link != navigation.Placeholder && !routetable.Has(it.Link) {
			t.Errorf("nav item %q links to unrouted path %q", it.Name, it.Link)
		}
	}
}

func TestRender_MarksFirstMatchActive(t *testing.T) {
	got := navigation.Render("/dashboard")

	var active []string
	for _, it := range got {
		if it.Active {
			active = append(active, it.Name)
		}
	}
	if len(active) != 1 || active[0] != "Home" {
		t.Errorf("active entries: got %v, want [Home]", active)
	}
}

func TestRender_PlaceholderIsInert(t *testing.T) {
	for _, it := range navigation.Render("#") {
		if it.Name == "Admin" {
			if !it.Inert || it.Active {
				t.Errorf("Admin: got %+v, want inert and inactive", it)
			}
			return
		}
	}
	t.Fatal("Admin entry not found")
}

func TestRender_UnknownPathMarksNothing(t *testing.T) {
	for _, it := range navigation.Render("/release-notes") {
		if it.Active {
			t.Errorf("%q should not be active", it.Name)
		}
	}
}
