package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/client/panel"
	"github.com/pixeldock/pixelctl/internal/registry"
	"github.com/pixeldock/pixelctl/internal/tui/components/textinput"
	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

// moduleCard is one rotation entry plus its local edit state. The draft never
// touches the module until a save round-trips.
type moduleCard struct {
	module        panel.Module
	collapsed     bool
	draft         registry.Draft
	durationDraft string
	sortDraft     string
}

func newModuleCard(module panel.Module) moduleCard {
	fields := registry.Lookup(module.Key).Fields(module.Settings)
	return moduleCard{
		module:        module,
		collapsed:     !module.Enabled,
		draft:         registry.NewDraft(fields),
		durationDraft: strconv.Itoa(module.DurationSeconds),
		sortDraft:     strconv.Itoa(module.SortOrder),
	}
}

// resetDraft reseeds the edit state from the card's module.
func (c *moduleCard) resetDraft() {
	fields := registry.Lookup(c.module.Key).Fields(c.module.Settings)
	c.draft = registry.NewDraft(fields)
	c.durationDraft = strconv.Itoa(c.module.DurationSeconds)
	c.sortDraft = strconv.Itoa(c.module.SortOrder)
}

// fields returns the card's schema fields with draft values substituted in.
func (c *moduleCard) fields() []registry.Field {
	fields := registry.Lookup(c.module.Key).Fields(c.module.Settings)
	for i := range fields {
		if v, ok := c.draft[fields[i].Key]; ok {
			fields[i].Value = v
		}
	}
	return fields
}

type ModulesState struct {
	cards    []moduleCard
	selected int
	fieldIdx int // 0 duration, 1 sort order, 2.. schema fields
	editing  bool
	input    textinput.Model
	scroll   int
	loaded   bool
}

func NewModulesState() ModulesState {
	return ModulesState{}
}

// mergeModules reconciles a fresh server list with local card state. Cards
// are matched by id: collapse state and unsaved drafts survive a refresh,
// first-seen modules start collapsed unless enabled.
func mergeModules(cards []moduleCard, modules []panel.Module) []moduleCard {
	byID := make(map[int64]*moduleCard, len(cards))
	for i := range cards {
		byID[cards[i].module.ID] = &cards[i]
	}

	merged := make([]moduleCard, 0, len(modules))
	for _, module := range modules {
		if prev, ok := byID[module.ID]; ok {
			card := *prev
			card.module = module
			merged = append(merged, card)
			continue
		}
		merged = append(merged, newModuleCard(module))
	}
	return merged
}

// validateCard checks the module-level drafts before any save is attempted.
// A non-empty message means the save must not be sent.
func validateCard(durationDraft, sortDraft string) (duration, sortOrder int, errMessage string) {
	duration, err := strconv.Atoi(strings.TrimSpace(durationDraft))
	if err != nil || duration < 1 {
		return 0, 0, "duration must be a whole number of seconds, at least 1"
	}
	sortOrder, err = strconv.Atoi(strings.TrimSpace(sortDraft))
	if err != nil {
		return 0, 0, "sort order must be a whole number"
	}
	return duration, sortOrder, ""
}

func (m *Model) updateModules(key string) tea.Cmd {
	s := &m.state.console.modules

	if s.editing {
		return m.updateModuleFieldEdit(key)
	}

	if len(s.cards) == 0 {
		return nil
	}
	card := &s.cards[s.selected]

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			s.fieldIdx = 0
		}
	case "down", "j":
		if s.selected < len(s.cards)-1 {
			s.selected++
			s.fieldIdx = 0
		}
	case "enter", "space":
		card.collapsed = !card.collapsed
		s.fieldIdx = 0
	case "left", "h":
		if !card.collapsed && s.fieldIdx > 0 {
			s.fieldIdx--
		}
	case "right", "l":
		if !card.collapsed && s.fieldIdx < len(card.fields())+1 {
			s.fieldIdx++
		}
	case "t":
		return m.toggleSelectedModule()
	case "e":
		return m.editSelectedField()
	case "s":
		return m.saveSelectedModule()
	}
	return nil
}

func (m *Model) toggleSelectedModule() tea.Cmd {
	s := &m.state.console.modules
	card := &s.cards[s.selected]

	// optimistic flip; ModuleToggledMsg reverts on rejection
	card.module.Enabled = !card.module.Enabled

	duration, sortOrder, errMessage := validateCard(card.durationDraft, card.sortDraft)
	if errMessage != "" {
		// drafts are broken; toggle with the last saved values instead
		duration = card.module.DurationSeconds
		sortOrder = card.module.SortOrder
	}

	return toggleModuleCmd(m.deps.Panel, card.module.ID, panel.ModuleUpdate{
		Enabled:         card.module.Enabled,
		DurationSeconds: duration,
		SortOrder:       sortOrder,
		Settings:        registry.Lookup(card.module.Key).Collect(card.draft),
	})
}

func (m *Model) editSelectedField() tea.Cmd {
	s := &m.state.console.modules
	card := &s.cards[s.selected]
	if card.collapsed {
		return nil
	}

	switch s.fieldIdx {
	case 0:
		s.input = textinput.New("seconds")
		s.input.SetValue(card.durationDraft)
	case 1:
		s.input = textinput.New("order")
		s.input.SetValue(card.sortDraft)
	default:
		fields := card.fields()
		idx := s.fieldIdx - 2
		if idx >= len(fields) {
			return nil
		}
		field := fields[idx]

		switch field.Kind {
		case registry.KindBool:
			// flip in place, no input needed
			if card.draft[field.Key] == "true" {
				card.draft[field.Key] = "false"
			} else {
				card.draft[field.Key] = "true"
			}
			return nil
		case registry.KindSelect:
			card.draft[field.Key] = nextOption(field.Options, card.draft[field.Key])
			return nil
		}

		s.input = textinput.New(field.Label)
		s.input.SetValue(card.draft[field.Key])
	}

	s.input.Focus()
	s.editing = true
	return nil
}

func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m *Model) updateModuleFieldEdit(key string) tea.Cmd {
	s := &m.state.console.modules
	card := &s.cards[s.selected]

	switch key {
	case "esc":
		s.editing = false
		return nil
	case "enter":
		value := s.input.Value()
		switch s.fieldIdx {
		case 0:
			card.durationDraft = value
		case 1:
			card.sortDraft = value
		default:
			fields := card.fields()
			if idx := s.fieldIdx - 2; idx < len(fields) {
				card.draft[fields[idx].Key] = value
			}
		}
		s.editing = false
		return nil
	}

	s.input.HandleKey(key)
	return nil
}

func (m *Model) saveSelectedModule() tea.Cmd {
	s := &m.state.console.modules
	card := &s.cards[s.selected]

	duration, sortOrder, errMessage := validateCard(card.durationDraft, card.sortDraft)
	if errMessage != "" {
		return m.toast.Show(errMessage, true)
	}

	return saveModuleCmd(m.deps.Panel, card.module.ID, panel.ModuleUpdate{
		Enabled:         card.module.Enabled,
		DurationSeconds: duration,
		SortOrder:       sortOrder,
		Settings:        registry.Lookup(card.module.Key).Collect(card.draft),
	})
}

func (m *Model) handleModules(msg ModulesMsg) tea.Cmd {
	s := &m.state.console.modules

	if msg.Err != nil {
		return m.handleAPIError(msg.Err)
	}

	s.cards = mergeModules(s.cards, msg.Modules)
	s.loaded = true
	if s.selected >= len(s.cards) {
		s.selected = max(len(s.cards)-1, 0)
	}
	return nil
}

func (m *Model) handleModuleSaved(msg ModuleSavedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.handleAPIError(msg.Err)
	}

	s := &m.state.console.modules
	for i := range s.cards {
		if s.cards[i].module.ID == msg.ID && msg.Module != nil {
			s.cards[i].module = *msg.Module
			s.cards[i].resetDraft()
		}
	}
	return tea.Batch(
		m.toast.Show("module saved", false),
		fetchModulesCmd(m.deps.Panel),
		fetchStatusCmd(m.deps.Panel),
		fetchPreviewCmd(m.deps.Panel),
	)
}

func (m *Model) handleModuleToggled(msg ModuleToggledMsg) tea.Cmd {
	s := &m.state.console.modules

	if msg.Err != nil {
		// revert the optimistic flip
		for i := range s.cards {
			if s.cards[i].module.ID == msg.ID {
				s.cards[i].module.Enabled = !msg.Enabled
			}
		}
		return m.handleAPIError(msg.Err)
	}

	for i := range s.cards {
		if s.cards[i].module.ID == msg.ID {
			if msg.Module != nil {
				enabled := s.cards[i].module.Enabled
				s.cards[i].module = *msg.Module
				s.cards[i].module.Enabled = enabled
			}
			s.cards[i].collapsed = !s.cards[i].module.Enabled
		}
	}

	message := "module disabled"
	if msg.Enabled {
		message = "module enabled"
	}
	return tea.Batch(
		m.toast.Show(message, false),
		fetchStatusCmd(m.deps.Panel),
		fetchPreviewCmd(m.deps.Panel),
	)
}

func (m *Model) ModulesView(bodyHeight int) string {
	s := &m.state.console.modules

	if !s.loaded {
		return m.theme.TextDim().Render("loading modules...")
	}
	if len(s.cards) == 0 {
		return m.theme.TextDim().Render("no modules configured")
	}

	rendered := make([]string, len(s.cards))
	for i := range s.cards {
		rendered[i] = m.moduleCardView(i)
	}

	// keep the selected card inside the visible window
	if s.selected < s.scroll {
		s.scroll = s.selected
	}
	for {
		height := 0
		for i := s.scroll; i <= s.selected; i++ {
			height += lipgloss.Height(rendered[i]) + 1
		}
		if height <= bodyHeight || s.scroll >= s.selected {
			break
		}
		s.scroll++
	}

	var parts []string
	for i := s.scroll; i < len(rendered); i++ {
		parts = append(parts, rendered[i])
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) moduleCardView(i int) string {
	s := &m.state.console.modules
	card := s.cards[i]
	selected := i == s.selected

	var (
		nameStyle   = lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true)
		keyStyle    = m.theme.TextDim()
		onStyle     = lipgloss.NewStyle().Foreground(theme.ColorOK)
		offStyle    = m.theme.TextDim()
		borderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.ColorBgLight).
				Padding(0, 1)
	)
	if selected {
		borderStyle = borderStyle.BorderForeground(theme.ColorAccent)
	}

	state := offStyle.Render("○ off")
	if card.module.Enabled {
		state = onStyle.Render("● on")
	}

	marker := "▸"
	if !card.collapsed {
		marker = "▾"
	}

	header := fmt.Sprintf("%s %s %s  %s  %ss · #%s",
		marker,
		nameStyle.Render(card.module.Name),
		keyStyle.Render("("+card.module.Key+")"),
		state,
		card.durationDraft,
		card.sortDraft,
	)

	if card.collapsed {
		return borderStyle.Render(header)
	}

	rows := []string{header, ""}
	rows = append(rows, m.fieldRow(card, selected, 0, "duration (s)", card.durationDraft))
	rows = append(rows, m.fieldRow(card, selected, 1, "sort order", card.sortDraft))
	fields := card.fields()
	for idx, field := range fields {
		rows = append(rows, m.fieldRow(card, selected, idx+2, field.Label, fieldDisplay(field)))
	}
	if len(fields) == 0 {
		rows = append(rows, m.theme.TextDim().Render("no settings available"))
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func fieldDisplay(f registry.Field) string {
	if f.Kind == registry.KindMultiline {
		return strings.ReplaceAll(f.Value, "\n", "⏎")
	}
	return f.Value
}

func (m *Model) fieldRow(card moduleCard, cardSelected bool, idx int, label, value string) string {
	s := &m.state.console.modules

	var (
		labelStyle = m.theme.TextDim().Width(22)
		valueStyle = lipgloss.NewStyle().Foreground(theme.ColorWhite)
	)

	active := cardSelected && s.fieldIdx == idx
	if active && s.editing {
		return labelStyle.Render(label) + s.input.View()
	}
	if active {
		valueStyle = lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true)
	}
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func (m *Model) modulesHint() string {
	s := &m.state.console.modules
	if s.editing {
		return "enter apply · esc cancel"
	}
	return "j/k select · enter expand · ←/→ field · e edit · t toggle · s save · r refresh · q quit"
}
