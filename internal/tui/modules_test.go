package tui

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pixeldock/pixelctl/internal/client/panel"
)

func testModule(id int64, key string, enabled bool) panel.Module {
	return panel.Module{
		ID:              id,
		Key:             key,
		Name:            key,
		Enabled:         enabled,
		DurationSeconds: 10,
		SortOrder:       int(id),
		Settings:        map[string]any{},
	}
}

func TestNewModuleCardCollapseFollowsEnabled(t *testing.T) {
	t.Parallel()

	if card := newModuleCard(testModule(1, "clock", true)); card.collapsed {
		t.Error("enabled module starts collapsed")
	}
	if card := newModuleCard(testModule(2, "btc", false)); !card.collapsed {
		t.Error("disabled module starts expanded")
	}
}

func TestMergeModulesPreservesLocalState(t *testing.T) {
	t.Parallel()

	cards := []moduleCard{newModuleCard(testModule(1, "clock", false))}
	cards[0].collapsed = false // operator expanded it
	cards[0].draft["timezone"] = "Europe/Berlin"
	cards[0].durationDraft = "42"

	refreshed := testModule(1, "clock", false)
	refreshed.Name = "Wall Clock"
	merged := mergeModules(cards, []panel.Module{refreshed, testModule(2, "weather", true)})

	if len(merged) != 2 {
		t.Fatalf("got %d cards, want 2", len(merged))
	}
	if merged[0].collapsed {
		t.Error("refresh reset collapse state")
	}
	if got := merged[0].draft["timezone"]; got != "Europe/Berlin" {
		t.Errorf("draft[timezone] = %q, want preserved edit", got)
	}
	if merged[0].durationDraft != "42" {
		t.Error("refresh reset duration draft")
	}
	if merged[0].module.Name != "Wall Clock" {
		t.Error("refresh did not pick up server-side module changes")
	}
	if merged[1].collapsed == merged[1].module.Enabled {
		t.Error("new card collapse does not follow enabled")
	}
}

func TestMergeModulesDropsRemoved(t *testing.T) {
	t.Parallel()

	cards := []moduleCard{
		newModuleCard(testModule(1, "clock", true)),
		newModuleCard(testModule(2, "btc", true)),
	}
	merged := mergeModules(cards, []panel.Module{testModule(2, "btc", true)})

	if len(merged) != 1 || merged[0].module.ID != 2 {
		t.Errorf("merged ids wrong: %+v", merged)
	}
}

func TestValidateCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration string
		sort     string
		wantOK   bool
	}{
		{"valid", "10", "1", true},
		{"trimmed", " 10 ", " 2 ", true},
		{"zero duration", "0", "1", false},
		{"negative duration", "-5", "1", false},
		{"non-integer duration", "abc", "1", false},
		{"float duration", "1.5", "1", false},
		{"empty duration", "", "1", false},
		{"non-integer sort", "10", "first", false},
		{"empty sort", "10", "", false},
		{"negative sort ok", "10", "-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, errMessage := validateCard(tt.duration, tt.sort)
			if ok := errMessage == ""; ok != tt.wantOK {
				t.Errorf("validateCard(%q, %q) error = %q, want ok=%v",
					tt.duration, tt.sort, errMessage, tt.wantOK)
			}
		})
	}
}

func TestSaveRejectedLocallyWithoutNetworkCall(t *testing.T) {
	t.Parallel()

	// nil panel client: any attempted request would panic when the returned
	// command runs, proving validation short-circuits before the network
	m := New(Deps{})
	m.state.console.modules.cards = []moduleCard{newModuleCard(testModule(1, "clock", true))}
	m.state.console.modules.cards[0].durationDraft = "0"
	m.state.console.modules.loaded = true

	cmd := m.saveSelectedModule()
	if cmd == nil {
		t.Fatal("expected a toast command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("toast command produced no message")
	}
	if !m.toast.Visible() {
		t.Error("rejected save did not surface a toast")
	}
}

func TestToggleRevertsOnRejection(t *testing.T) {
	t.Parallel()

	m := New(Deps{})
	m.state.console.modules.cards = []moduleCard{newModuleCard(testModule(1, "clock", true))}

	// optimistic flip happened; the server then rejected it
	m.state.console.modules.cards[0].module.Enabled = false
	m.handleModuleToggled(ModuleToggledMsg{
		ID:      1,
		Enabled: false,
		Err:     &panel.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "nope"},
	})

	if !m.state.console.modules.cards[0].module.Enabled {
		t.Error("rejected toggle was not reverted")
	}
}

func TestToggleKeepsSuccessfulFlip(t *testing.T) {
	t.Parallel()

	m := New(Deps{})
	m.state.console.modules.cards = []moduleCard{newModuleCard(testModule(1, "clock", true))}
	m.state.console.modules.cards[0].module.Enabled = false

	updated := testModule(1, "clock", false)
	m.handleModuleToggled(ModuleToggledMsg{ID: 1, Enabled: false, Module: &updated})

	if m.state.console.modules.cards[0].module.Enabled {
		t.Error("successful toggle was reverted")
	}
}

func TestSavedModuleReplacesCardAndDraft(t *testing.T) {
	t.Parallel()

	m := New(Deps{})
	card := newModuleCard(testModule(1, "clock", true))
	card.durationDraft = "25"
	m.state.console.modules.cards = []moduleCard{card}

	saved := testModule(1, "clock", true)
	saved.DurationSeconds = 25
	m.handleModuleSaved(ModuleSavedMsg{ID: 1, Module: &saved})

	got := m.state.console.modules.cards[0]
	if diff := cmp.Diff(saved, got.module); diff != "" {
		t.Errorf("card module mismatch (-want +got):\n%s", diff)
	}
	if got.durationDraft != "25" {
		t.Errorf("durationDraft = %q, want reseeded from saved module", got.durationDraft)
	}
}

func TestNextOption(t *testing.T) {
	t.Parallel()

	options := []string{"static", "scroll"}
	if got := nextOption(options, "static"); got != "scroll" {
		t.Errorf("nextOption = %q, want scroll", got)
	}
	if got := nextOption(options, "scroll"); got != "static" {
		t.Errorf("nextOption wraps = %q, want static", got)
	}
	if got := nextOption(options, "bogus"); got != "static" {
		t.Errorf("nextOption unknown = %q, want first option", got)
	}
	if got := nextOption(nil, "x"); got != "x" {
		t.Errorf("nextOption empty = %q, want unchanged", got)
	}
}
