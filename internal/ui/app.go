package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kgrieve/rosterdeck/internal/action"
	"github.com/kgrieve/rosterdeck/internal/directory"
	"github.com/kgrieve/rosterdeck/internal/prefs"
	"github.com/kgrieve/rosterdeck/internal/roster"
	"github.com/kgrieve/rosterdeck/internal/scope"
	"github.com/kgrieve/rosterdeck/internal/view"
)

// Options configures the dashboard UI.
type Options struct {
	Context    context.Context
	Cache      *prefs.Cache
	Directory  directory.Client
	Controller *action.Controller
	Logger     *slog.Logger
	ThemeName  string
	SortField  view.SortField
	SortDir    view.Direction
}

// addDoneMsg reports the settlement of an async add-user invocation.
type addDoneMsg struct {
	outcome action.Outcome
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx      context.Context
	provider *scope.Provider
	pipeline *view.Pipeline
	cache    *prefs.Cache
	ctrl     *action.Controller
	dir      directory.Client
	log      *slog.Logger

	keys      keyMap
	shortcuts *shortcutDispatcher
	theme     Theme
	styles    Styles

	width  int
	height int
	ready  bool

	filter    textinput.Model
	sortField view.SortField
	sortDir   view.Direction

	list      *List[roster.User]
	addButton *Button

	visible       roster.Collection
	cursor        int
	notice        string
	noticeIsError bool
	showHelp      bool
}

// New creates the dashboard model. It resolves the roster provider from the
// context and fails immediately when no provider scope is active.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := scope.From(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("init dashboard: %w", err)
	}
	if opts.Directory == nil {
		return Model{}, fmt.Errorf("init dashboard: directory client is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = action.New(logger.With("component", "action"))
	}

	theme := GetTheme(opts.ThemeName)

	filter := textinput.New()
	filter.Placeholder = "filter by name or email"
	filter.Prompt = "/ "
	filter.CharLimit = 64
	filter.SetValue(opts.Cache.Get(prefs.KeyFilter, ""))

	sortField := opts.SortField
	if sortField == "" {
		sortField = view.FieldName
	}

	m := Model{
		ctx:       ctx,
		provider:  provider,
		pipeline:  view.New(),
		cache:     opts.Cache,
		ctrl:      ctrl,
		dir:       opts.Directory,
		log:       logger.With("component", "ui"),
		keys:      defaultKeyMap(),
		theme:     theme,
		styles:    theme.Styles(),
		filter:    filter,
		sortField: sortField,
		sortDir:   opts.SortDir,
		list:      newUserList(theme),
		addButton: NewButton("Add user", Primary, Medium, theme),
	}

	m.shortcuts = newShortcutDispatcher(m.keys.FocusFilter, func() tea.Cmd {
		return textinput.Blink
	})
	m.shortcuts.bind()

	m.refresh()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case addDoneMsg:
		m.addButton.SetLoading(false)
		switch msg.outcome {
		case action.Completed:
			m.setNotice("user added", false)
		case action.Failed:
			m.setNotice("add failed, see log", true)
		}
		m.refresh()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// The global shortcut runs before anything else so that a focused
	// filter cannot swallow ctrl+k (its default would be kill-to-end).
	if cmd, ok := m.shortcuts.handle(msg); ok {
		m.filter.Focus()
		m.addButton.Blur()
		return m, cmd
	}

	if m.filter.Focused() {
		return m.handleFilterKey(msg)
	}
	if m.addButton.Focused() {
		if key.Matches(msg, m.keys.Confirm) {
			return m.startAddUser()
		}
		if key.Matches(msg, m.keys.Escape) {
			m.addButton.Blur()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		m.cache.Set(prefs.KeyTheme, m.theme.Name)
		return m, nil

	case key.Matches(msg, m.keys.AddUser):
		return m.startAddUser()

	case key.Matches(msg, m.keys.RemoveUser):
		m.removeSelected()
		return m, nil

	case key.Matches(msg, m.keys.ToggleActive):
		m.toggleActive()
		return m, nil

	case key.Matches(msg, m.keys.CycleRole):
		m.cycleRole()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.sortField = m.sortField.Next()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.ToggleDir):
		m.sortDir = m.sortDir.Toggle()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.addButton.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// handleFilterKey routes input to the filter field while it has focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm):
		m.filter.Blur()
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)

	if value := m.filter.Value(); value != before {
		m.cache.Set(prefs.KeyFilter, value)
		m.refresh()
	}
	return m, cmd
}

// quit disarms the global shortcut and exits. Unbinding on every exit path
// keeps remounts from stacking listeners.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.shortcuts.unbind()
	return m, tea.Quit
}

// startAddUser launches the async add. The busy gate is taken synchronously
// so the pending window is visible on the very next render; a rejected
// press is a no-op with a notice.
func (m Model) startAddUser() (tea.Model, tea.Cmd) {
	if !m.ctrl.TryBegin() {
		m.setNotice("an add is already in progress", true)
		return m, nil
	}
	m.addButton.SetLoading(true)
	m.notice = ""

	ctx, ctrl, dir, prov := m.ctx, m.ctrl, m.dir, m.provider
	return m, func() tea.Msg {
		outcome := ctrl.Run(ctx, func(opCtx context.Context) (roster.User, error) {
			return dir.Create(opCtx, roster.User{})
		}, func(u roster.User) {
			prov.AddUser(u)
		})
		return addDoneMsg{outcome: outcome}
	}
}

func (m *Model) removeSelected() {
	id := m.selectedID()
	if id == 0 {
		m.setNotice("nothing selected", false)
		return
	}
	m.provider.RemoveUser(id)
	m.refresh()
}

func (m *Model) toggleActive() {
	cur := m.provider.CurrentUser()
	if cur == nil {
		return
	}
	active := !cur.Active
	m.provider.UpdateUser(cur.ID, roster.Patch{Active: &active})
	m.refresh()
}

func (m *Model) cycleRole() {
	cur := m.provider.CurrentUser()
	if cur == nil {
		return
	}
	var next roster.Role
	switch cur.Role {
	case roster.RoleUser:
		next = roster.RoleModerator
	case roster.RoleModerator:
		next = roster.RoleAdmin
	default:
		next = roster.RoleUser
	}
	m.provider.UpdateUser(cur.ID, roster.Patch{Role: &next})
	m.refresh()
}

func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.provider.Select(m.visible[m.cursor].ID)
}

func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.list = newUserList(m.theme)
	m.addButton.SetTheme(m.theme)
}

func (m *Model) setNotice(text string, isError bool) {
	m.notice = text
	m.noticeIsError = isError
}

// refresh recomputes the visible projection from the provider snapshot and
// keeps cursor and selection consistent with it.
func (m *Model) refresh() {
	snap := m.provider.Snapshot()
	m.visible = m.pipeline.Apply(snap.Users, view.Inputs{
		Version:    snap.CollectionVersion,
		FilterText: m.filter.Value(),
		Field:      m.sortField,
		Dir:        m.sortDir,
	})

	if len(m.visible) == 0 {
		m.cursor = 0
		m.provider.Select(0)
		return
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.provider.Select(m.visible[m.cursor].ID)
}

func (m Model) selectedID() int64 {
	if cur := m.provider.CurrentUser(); cur != nil {
		return cur.ID
	}
	return 0
}

func (m Model) renderMain() string {
	selectedKey := ""
	if id := m.selectedID(); id != 0 {
		selectedKey = strconv.FormatInt(id, 10)
	}

	listView := m.list.View(m.visible, selectedKey)
	if len(m.visible) == 0 {
		listView = m.styles.FaintText.Render("  no users match the filter")
	}

	filterLine := lipgloss.JoinHorizontal(lipgloss.Center,
		m.filter.View(),
		"  ",
		m.addButton.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		filterLine,
		"",
		listView,
		"",
		m.renderFooter(),
	)
}

// newUserList builds the roster list renderer for a theme. Rows are keyed
// by user id, so redraws are incremental across snapshots.
func newUserList(theme Theme) *List[roster.User] {
	styles := theme.Styles()
	render := func(u roster.User, selected bool) string {
		marker := "  "
		if selected {
			marker = styles.AccentText.Render("> ")
		}

		dot := styles.FaintText.Render("○")
		if u.Active {
			dot = styles.SuccessText.Render("●")
		}

		name := styles.Text.Width(22).Render(truncate(u.Name, 22))
		email := styles.MutedText.Width(28).Render(truncate(u.Email, 28))
		role := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.RoleColor(u.Role))).
			Render(strings.ToUpper(string(u.Role)))

		row := fmt.Sprintf("%s%s %s %s %s", marker, dot, name, email, role)
		if selected {
			return styles.Selected.Render(row)
		}
		return row
	}
	keyFor := func(u roster.User) string {
		return strconv.FormatInt(u.ID, 10)
	}
	return NewList(render, keyFor, nil)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
