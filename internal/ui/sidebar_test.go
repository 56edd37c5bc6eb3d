package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/chatgate/internal/prompts"
	"github.com/zhubert/chatgate/internal/router"
)

func testPrompts() []prompts.Template {
	return []prompts.Template{
		{Title: "Translator", Prompt: "Translate the following text."},
		{Title: "Code reviewer", Prompt: "Review this code."},
		{Title: "Travel guide", Prompt: "Plan a trip."},
	}
}

func newTestSidebar() *Sidebar {
	s := NewSidebar()
	s.SetPrompts(testPrompts())
	s.SetSize(30, 20)
	s.SetFocused(true)
	return s
}

func TestSidebar_Items(t *testing.T) {
	s := newTestSidebar()

	items := s.Items()
	if len(items) != len(routeItems)+3 {
		t.Fatalf("len(Items()) = %d", len(items))
	}
	if items[0].Kind != NavRoute || items[0].Path != router.Chat {
		t.Errorf("first item = %+v, want the chat route", items[0])
	}
	if items[len(items)-1].Kind != NavPrompt {
		t.Error("prompts should follow the routes")
	}
}

func TestSidebar_Navigation(t *testing.T) {
	s := newTestSidebar()

	s.Update(keyPress("down"))
	if item, _ := s.Selected(); item.Path != router.Settings {
		t.Errorf("selected %q after down, want Settings", item.Title)
	}

	s.Update(keyPress("end"))
	if item, _ := s.Selected(); item.Title != "Travel guide" {
		t.Errorf("selected %q after end", item.Title)
	}

	s.Update(keyPress("j"))
	if item, _ := s.Selected(); item.Title != "Travel guide" {
		t.Error("selection should clamp at the last item")
	}

	s.Update(keyPress("home"))
	if item, _ := s.Selected(); item.Path != router.Chat {
		t.Error("home should select the first item")
	}
}

func TestSidebar_EnterActivates(t *testing.T) {
	s := newTestSidebar()
	s.Update(keyPress("down"))

	item, _ := s.Update(keyPress("enter"))
	if item == nil || item.Path != router.Settings {
		t.Fatalf("activated %+v, want Settings", item)
	}
}

func TestSidebar_IgnoresKeysWhenBlurred(t *testing.T) {
	s := newTestSidebar()
	s.SetFocused(false)

	if item, _ := s.Update(keyPress("enter")); item != nil {
		t.Error("blurred sidebar should not activate items")
	}
}

func TestSidebar_Search(t *testing.T) {
	s := newTestSidebar()

	s.Update(keyPress("/"))
	if !s.IsSearchMode() {
		t.Fatal("/ should enter search mode")
	}
	for _, r := range "tra" {
		s.Update(keyPress(string(r)))
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("filtered items = %v, want Translator and Travel guide", items)
	}
	for _, it := range items {
		if it.Kind != NavPrompt {
			t.Error("routes should be hidden while filtering")
		}
	}

	item, _ := s.Update(keyPress("enter"))
	if item == nil || item.Title != "Translator" {
		t.Fatalf("activated %+v, want Translator", item)
	}
	if s.IsSearchMode() {
		t.Error("enter should leave search mode")
	}
}

func TestSidebar_SearchEscapeClears(t *testing.T) {
	s := newTestSidebar()
	s.EnterSearchMode()
	s.Update(keyPress("x"))
	s.Update(keyPress("esc"))

	if s.IsSearchMode() {
		t.Error("esc should leave search mode")
	}
	if len(s.Items()) != len(routeItems)+3 {
		t.Error("esc should clear the filter")
	}
}

func TestSidebar_View(t *testing.T) {
	s := newTestSidebar()
	s.SetActive(router.Chat)

	view := stripANSI(s.View())
	for _, want := range []string{"• Chat", "Settings", "Prompts", "Translator"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
