package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeList Mode = iota
	ModeSearch
	ModeCreate
	ModeConfirm
	ModeAnalytics
)

// notificationTTL is how long the notification line stays visible.
const notificationTTL = 4 * time.Second

// statusFilters is the cycle order for the status filter key.
var statusFilters = []string{
	domain.StatusFilterAll,
	string(domain.StatusPending),
	string(domain.StatusInProgress),
	string(domain.StatusCompleted),
}

// priorities is the cycle order for the form's priority selector.
var priorities = domain.AllPriorities()

var errInvalidDueDate = errors.New("due date must be in YYYY-MM-DD format")

// pendingAction is a mutation awaiting the confirmation dialog.
type pendingAction struct {
	task   domain.Task
	action usecase.StatusAction // empty for delete
	delete bool
}

// Deps are the dashboard's injected dependencies.
type Deps struct {
	Store        *store.Store
	Feed         *notify.Feed
	Changes      <-chan struct{}
	Refresh      *usecase.RefreshTasks
	Create       *usecase.CreateTask
	ChangeStatus *usecase.ChangeStatus
	Delete       *usecase.DeleteTask
	Analytics    *usecase.ShowAnalytics
	Username     string
}

// Model is the dashboard TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	deps Deps

	// State
	tasks        []domain.Task // current projection of the store
	analytics    *domain.Analytics
	notification *domain.Notification
	pending      pendingAction
	formErr      error
	statusFilter string

	// Components
	keys        KeyMap
	styles      Styles
	help        help.Model
	spin        spinner.Model
	searchInput textinput.Model
	form        createForm

	// Numeric state
	cursor      int
	filterIndex int
	width       int
	height      int
	mode        Mode

	// Boolean state
	busy bool // a mutation round trip is outstanding
}

// createForm holds the new-task inputs.
type createForm struct {
	title       textinput.Model
	description textinput.Model
	due         textinput.Model
	priority    int // index into priorities
	focus       int // 0..3
}

// New creates a new dashboard model.
func New(deps Deps) *Model {
	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.Prompt = "/ "
	si.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		deps:         deps,
		statusFilter: domain.StatusFilterAll,
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		help:         help.New(),
		spin:         sp,
		searchInput:  si,
		form:         newCreateForm(),
	}
	m.reproject()
	return m
}

func newCreateForm() createForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 500

	due := textinput.New()
	due.Placeholder = "Due date (YYYY-MM-DD, optional)"
	due.CharLimit = 10

	return createForm{title: title, description: description, due: due, priority: 1}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.waitStoreChange(),
		m.waitNotification(),
		m.spin.Tick,
	)
}

// waitStoreChange blocks until the store mutates.
func (m *Model) waitStoreChange() tea.Cmd {
	return func() tea.Msg {
		<-m.deps.Changes
		return MsgStoreChanged{}
	}
}

// waitNotification blocks until a notification arrives.
func (m *Model) waitNotification() tea.Cmd {
	return func() tea.Msg {
		return MsgNotification{Notification: <-m.deps.Feed.C()}
	}
}

// reproject rebuilds the visible task slice from the store.
func (m *Model) reproject() {
	proj := domain.Projection{
		Search:       m.searchInput.Value(),
		StatusFilter: m.statusFilter,
	}
	m.tasks = proj.Apply(m.deps.Store.Tasks())
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the task under the cursor.
func (m *Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgStoreChanged:
		m.reproject()
		return m, m.waitStoreChange()

	case MsgNotification:
		n := msg.Notification
		m.notification = &n
		return m, tea.Batch(
			m.waitNotification(),
			tea.Tick(notificationTTL, func(time.Time) tea.Msg {
				return MsgNotificationExpired{ID: n.ID}
			}),
		)

	case MsgNotificationExpired:
		if m.notification != nil && m.notification.ID == msg.ID {
			m.notification = nil
		}
		return m, nil

	case MsgMutationDone:
		m.busy = false
		if msg.Err != nil && m.mode == ModeCreate {
			m.formErr = msg.Err
			return m, nil
		}
		if m.mode == ModeCreate {
			m.closeForm()
		}
		return m, nil

	case MsgAnalyticsLoaded:
		m.busy = false
		if msg.Err == nil {
			m.analytics = msg.Analytics
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey dispatches a key press for the current mode.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeCreate:
		return m.handleCreateKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeAnalytics:
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Analytics) || key.Matches(msg, m.keys.Quit) {
			m.mode = ModeList
		}
		return m, nil
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.filterIndex = (m.filterIndex + 1) % len(statusFilters)
		m.statusFilter = statusFilters[m.filterIndex]
		m.reproject()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.New):
		m.mode = ModeCreate
		m.form = newCreateForm()
		m.formErr = nil
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Start):
		if t, ok := m.selected(); ok && t.Status == domain.StatusPending {
			m.pending = pendingAction{task: t, action: usecase.ActionStart}
			m.mode = ModeConfirm
		}

	case key.Matches(msg, m.keys.Complete):
		if t, ok := m.selected(); ok && t.Status != domain.StatusCompleted {
			m.pending = pendingAction{task: t, action: usecase.ActionComplete}
			m.mode = ModeConfirm
		}

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok && !m.busy {
			m.busy = true
			return m, m.changeStatusCmd(t.ID, usecase.ActionToggle)
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.pending = pendingAction{task: t, delete: true}
			m.mode = ModeConfirm
		}

	case key.Matches(msg, m.keys.Analytics):
		m.mode = ModeAnalytics
		m.busy = true
		return m, m.analyticsCmd()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Escape):
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.reproject()
		}
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.reproject()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.mode = ModeList
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.reproject()
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = ModeList
		m.busy = true
		p := m.pending
		if p.delete {
			return m, m.deleteCmd(p.task.ID)
		}
		return m, m.changeStatusCmd(p.task.ID, p.action)
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeList
	}
	return m, nil
}

func (m *Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeForm()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.form.focus < 3 {
			return m, m.form.setFocus(m.form.focus + 1)
		}
		return m.submitForm()

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		return m, m.form.setFocus((m.form.focus + 1) % 4)

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		return m, m.form.setFocus((m.form.focus + 3) % 4)
	}

	// The priority row is a selector, not a text input.
	if m.form.focus == 3 {
		switch msg.String() {
		case "left", "h":
			m.form.priority = (m.form.priority + len(priorities) - 1) % len(priorities)
		case "right", "l":
			m.form.priority = (m.form.priority + 1) % len(priorities)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case 0:
		m.form.title, cmd = m.form.title.Update(msg)
	case 1:
		m.form.description, cmd = m.form.description.Update(msg)
	case 2:
		m.form.due, cmd = m.form.due.Update(msg)
	}
	return m, cmd
}

// setFocus moves form focus to the given row.
func (f *createForm) setFocus(focus int) tea.Cmd {
	f.focus = focus
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()
	switch focus {
	case 0:
		return f.title.Focus()
	case 1:
		return f.description.Focus()
	case 2:
		return f.due.Focus()
	}
	return nil
}

func (m *Model) closeForm() {
	m.mode = ModeList
	m.formErr = nil
	m.form = newCreateForm()
}

// submitForm validates locally and submits the draft. Validation errors
// stay inline in the form; only a submission that reaches the server
// produces a notification.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	draft := domain.TaskDraft{
		Title:       m.form.title.Value(),
		Description: m.form.description.Value(),
		Priority:    priorities[m.form.priority],
	}
	if v := m.form.due.Value(); v != "" {
		due, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			m.formErr = errInvalidDueDate
			return m, nil
		}
		draft.DueDate = &due
	}

	m.busy = true
	m.formErr = nil
	return m, func() tea.Msg {
		_, err := m.deps.Create.Execute(context.Background(), usecase.CreateTaskInput{Draft: draft})
		return MsgMutationDone{Err: err}
	}
}

// Commands

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.deps.Refresh.Execute(context.Background())
		return MsgMutationDone{Err: err}
	}
}

func (m *Model) changeStatusCmd(id int, action usecase.StatusAction) tea.Cmd {
	return func() tea.Msg {
		_, err := m.deps.ChangeStatus.Execute(context.Background(), usecase.ChangeStatusInput{TaskID: id, Action: action})
		return MsgMutationDone{Err: err}
	}
}

func (m *Model) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.deps.Delete.Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id, Confirmed: true})
		return MsgMutationDone{Err: err}
	}
}

func (m *Model) analyticsCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.deps.Analytics.Execute(context.Background())
		if err != nil {
			return MsgAnalyticsLoaded{Err: err}
		}
		return MsgAnalyticsLoaded{Analytics: &out.Analytics}
	}
}
