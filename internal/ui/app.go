package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/threds/internal/logging"
	"github.com/five82/threds/internal/nav"
	"github.com/five82/threds/internal/prefs"
	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/state"
	"github.com/five82/threds/internal/threds"
)

// focusArea is where key input goes.
type focusArea int

const (
	focusList focusArea = iota
	focusForm
)

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayLogs
)

const logTailLines = 500

// Backend is the API surface the UI needs. *threds.Client implements it.
type Backend interface {
	nav.Loader
	nav.Poster
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    Backend
	Store     *state.Store
	History   *route.History
	Probe     func(context.Context) state.Snapshot
	Logger    *slog.Logger
	LogPath   string
	DarkMode  bool
	PrefsPath string
	Version   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    Backend
	store     *state.Store
	history   *route.History
	probe     func(context.Context) state.Snapshot
	logger    *slog.Logger
	logPath   string
	prefsPath string
	version   string

	ctrl *nav.Controller
	keys keyMap

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	cursor  int
	body    viewport.Model
	focus   focusArea
	form    formModel
	spinner spinner.Model
	overlay overlay

	// Data state
	snapshot state.Snapshot
	loading  int

	// Log overlay
	logView viewport.Model
	logErr  error
}

type (
	loadedMsg    struct{ result nav.Result }
	submittedMsg struct{ result nav.SubmitResult }
	probedMsg    state.Snapshot
	logsMsg      struct {
		lines []string
		err   error
	}
)

// New creates a new Bubble Tea model positioned at the history's current
// path.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	history := opts.History
	if history == nil {
		history = route.NewHistory("/")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		history:   history,
		probe:     opts.Probe,
		logger:    logger,
		logPath:   opts.LogPath,
		prefsPath: opts.PrefsPath,
		version:   opts.Version,
		ctrl:      nav.New(history),
		keys:      DefaultKeyMap(),
		theme:     ThemeFor(opts.DarkMode),
		body:      viewport.New(0, 0),
		form:      newFormModel(),
		spinner:   sp,
		logView:   viewport.New(0, 0),
	}
	if m.client != nil && !m.ctrl.Init().Empty() {
		m.loading = 1
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.probeCmd(), m.loadCmd(m.ctrl.Init()))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadedMsg:
		m.loading = max(m.loading-1, 0)
		m.ctrl.Apply(msg.result)
		if msg.result.Err != nil {
			m.logger.Warn("load failed", "path", m.history.Path(), "error", msg.result.Err)
		}
		m.refresh()
		return m, nil

	case submittedMsg:
		m.handleSubmitted(msg.result)
		return m, nil

	case probedMsg:
		m.snapshot = state.Snapshot(msg)
		m.ctrl.SetOnline(m.snapshot.Online)
		m.refresh()
		return m, nil

	case logsMsg:
		m.logErr = msg.err
		content := strings.Join(msg.lines, "\n")
		if len(msg.lines) == 0 {
			content = "(log is empty)"
		}
		m.logView.SetContent(content)
		m.logView.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Form().Busy && m.loading == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blinks and the like belong to the focused widget.
	if m.focus == focusForm {
		return m, m.form.update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayLogs:
		return m.renderLogs()
	}

	parts := []string{
		m.renderHeader(),
		m.renderStatusLine(),
		m.body.View(),
	}
	if m.formVisible() {
		parts = append(parts, m.renderForm())
	}
	parts = append(parts, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the program and blocks until the user quits or ctx is done.
// Preferences are saved on the way out.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.savePrefs()
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayHelp:
		// Any key closes help
		m.overlay = overlayNone
		return m, nil
	case overlayLogs:
		return m.handleLogsKey(msg)
	}

	if m.focus == focusForm && m.formVisible() {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.overlay = overlayHelp
		return m, nil

	case key.Matches(msg, k.Logs):
		m.overlay = overlayLogs
		m.logView.SetContent("Loading...")
		return m, m.logsCmd()

	case key.Matches(msg, k.ToggleDark):
		m.theme = ThemeFor(!m.theme.Dark)
		m.savePrefs()
		m.refresh()
		return m, nil

	case key.Matches(msg, k.Dismiss):
		m.ctrl.DismissError()
		m.ctrl.DismissFormError()
		m.refresh()
		return m, nil

	case key.Matches(msg, k.Home):
		return m.navigate(m.ctrl.GoHome)

	case key.Matches(msg, k.Board1):
		return m.selectBoard(0)
	case key.Matches(msg, k.Board2):
		return m.selectBoard(1)
	case key.Matches(msg, k.Board3):
		return m.selectBoard(2)

	case key.Matches(msg, k.Back):
		if !m.history.Back() {
			return m, nil
		}
		return m.navigate(m.ctrl.PopState)

	case key.Matches(msg, k.Forward):
		if !m.history.Forward() {
			return m, nil
		}
		return m.navigate(m.ctrl.PopState)

	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case key.Matches(msg, k.Top):
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, k.Bottom):
		m.cursor = len(m.rows()) - 1
		m.refresh()
	case key.Matches(msg, k.PageUp):
		m.moveCursor(-m.pageStep())
	case key.Matches(msg, k.PageDown):
		m.moveCursor(m.pageStep())

	case key.Matches(msg, k.Open):
		return m.openSelected()

	case key.Matches(msg, k.Close):
		if m.ctrl.Kind() == route.KindThread {
			return m.navigate(func() nav.Fetch {
				m.ctrl.CloseThread()
				return nav.Fetch{}
			})
		}
		if m.ctrl.CancelForm() {
			m.syncForm()
			m.refresh()
		}

	case key.Matches(msg, k.NewThread):
		if m.ctrl.StartThread() {
			m.syncForm()
			return m, m.focusForm(fieldSubject)
		}

	case key.Matches(msg, k.Reply):
		return m.replyToSelected()

	case key.Matches(msg, k.JumpQuote):
		m.jumpToQuoted()

	case key.Matches(msg, k.FocusForm):
		if m.formVisible() {
			return m, m.focusForm(m.formFields()[0])
		}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Submit):
		return m.submit()

	case key.Matches(msg, k.Cancel):
		// The composer is discarded; the reply bar keeps its draft.
		if m.ctrl.Kind() == route.KindBoard && !m.ctrl.CancelForm() {
			return m, nil
		}
		m.blurForm()
		m.syncForm()
		m.refresh()
		return m, nil

	case key.Matches(msg, k.NextField):
		return m, m.form.cycle(m.formFields(), 1)
	case key.Matches(msg, k.PrevField):
		return m, m.form.cycle(m.formFields(), -1)

	case key.Matches(msg, k.ClearTarget):
		m.ctrl.ClearReplyTarget()
		m.refresh()
		return m, nil
	}

	if m.ctrl.Form().Busy {
		return m, nil
	}
	cmd := m.form.update(msg)
	m.ctrl.EditDraft(m.form.draft())
	m.refresh()
	return m, cmd
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	if key.Matches(msg, k.Close) || key.Matches(msg, k.Logs) || key.Matches(msg, k.Quit) {
		m.overlay = overlayNone
		return m, nil
	}
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

// navigate runs a controller transition and schedules the loads it needs.
func (m Model) navigate(move func() nav.Fetch) (tea.Model, tea.Cmd) {
	prev := m.ctrl.State()
	fetch := move()
	if m.ctrl.State() != prev {
		m.cursor = 0
		m.blurForm()
		m.logger.Info("navigate", "from", route.Encode(prev), "to", m.history.Path())
	}
	m.syncForm()
	m.refresh()

	cmd := m.loadCmd(fetch)
	if cmd != nil {
		m.loading++
	}
	return m, cmd
}

func (m Model) selectBoard(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(threds.Boards) {
		return m, nil
	}
	board := threds.Boards[idx].ID
	return m.navigate(func() nav.Fetch { return m.ctrl.SelectBoard(board) })
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	sel, ok := m.selected()
	if !ok {
		return m, nil
	}
	switch sel.kind {
	case rowBoard:
		return m.navigate(func() nav.Fetch { return m.ctrl.SelectBoard(sel.board) })
	case rowThread:
		board := sel.thread.BoardID
		if board == "" {
			board = sel.board
		}
		return m.navigate(func() nav.Fetch { return m.ctrl.OpenThread(board, sel.thread.ID) })
	default:
		return m.replyToSelected()
	}
}

func (m Model) replyToSelected() (tea.Model, tea.Cmd) {
	sel, ok := m.selected()
	if !ok || sel.kind != rowPost {
		return m, nil
	}
	if !m.ctrl.ReplyTo(sel.post.ID) {
		return m, nil
	}
	return m, m.focusForm(fieldContent)
}

// jumpToQuoted moves the cursor to the post the selected post replies to.
func (m *Model) jumpToQuoted() {
	sel, ok := m.selected()
	thread := m.ctrl.ActiveThread()
	if !ok || sel.kind != rowPost || sel.post.ReplyToID == "" || thread == nil {
		return
	}
	if idx := thread.PostIndex(sel.post.ReplyToID); idx >= 0 {
		m.cursor = idx
		m.refresh()
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	draft := m.form.draft()

	var (
		sub nav.Submission
		err error
	)
	if m.ctrl.Kind() == route.KindThread {
		sub, err = m.ctrl.BeginReply(draft)
	} else {
		sub, err = m.ctrl.BeginCreateThread(draft)
	}
	m.refresh()
	if err != nil {
		m.logger.Debug("submit rejected", "error", err)
		return m, nil
	}

	m.logger.Info("submitting", "kind", submitKind(sub.Kind), "board", sub.Board, "thread", sub.ThreadID)
	return m, tea.Batch(m.submitCmd(sub), m.spinner.Tick)
}

func (m *Model) handleSubmitted(res nav.SubmitResult) {
	m.ctrl.FinishSubmit(res)

	kind := submitKind(res.Submission.Kind)
	switch {
	case res.Err != nil:
		m.logger.Warn("submit failed", "kind", kind, "error", res.Err)
	case res.RefreshErr != nil:
		m.logger.Warn("reload after reply failed", "thread", res.Submission.ThreadID, "error", res.RefreshErr)
	default:
		m.logger.Info("submitted", "kind", kind, "board", res.Submission.Board, "thread", res.Submission.ThreadID)
	}

	m.syncForm()
	if res.Err == nil && res.Submission.Kind == nav.SubmitThread && m.ctrl.Kind() == route.KindBoard {
		m.cursor = 0
	}
	m.refresh()
}

func submitKind(kind nav.SubmitKind) string {
	if kind == nav.SubmitReply {
		return "reply"
	}
	return "thread"
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.refresh()
}

func (m Model) pageStep() int {
	return max(m.body.Height/3, 1)
}

// formVisible reports whether the composer or reply bar is on screen.
func (m Model) formVisible() bool {
	switch m.ctrl.Kind() {
	case route.KindThread:
		return true
	case route.KindBoard:
		return m.ctrl.Form().Composing
	default:
		return false
	}
}

func (m Model) formFields() []formField {
	if m.ctrl.Kind() == route.KindThread {
		return replyFields
	}
	return composerFields
}

func (m *Model) focusForm(field formField) tea.Cmd {
	m.focus = focusForm
	cmd := m.form.focus(field)
	m.refresh()
	return cmd
}

func (m *Model) blurForm() {
	m.focus = focusList
	m.form.blur()
}

// syncForm mirrors the controller's form into the widgets.
func (m *Model) syncForm() {
	m.form.load(m.ctrl.Form())
	if !m.formVisible() && m.focus == focusForm {
		m.blurForm()
	}
}

func (m Model) renderForm() string {
	if m.ctrl.Kind() == route.KindThread {
		return m.renderReplyBar(m.width)
	}
	return m.renderComposer(m.width)
}

// refresh re-renders the body and keeps the cursor in view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	rows := m.rows()
	m.cursor = clamp(m.cursor, 0, len(rows)-1)
	m.relayout()

	body := m.renderBody(rows)
	m.body.SetContent(body.String())
	if body.end >= m.body.YOffset+m.body.Height {
		m.body.SetYOffset(body.end - m.body.Height + 1)
	}
	if body.start < m.body.YOffset {
		m.body.SetYOffset(body.start)
	}
}

func (m *Model) relayout() {
	m.form.setSize(m.width, m.ctrl.Kind() == route.KindThread)

	used := lipgloss.Height(m.renderHeader()) + 2 // status line and footer
	if m.formVisible() {
		used += lipgloss.Height(m.renderForm())
	}
	m.body.Width = m.width
	m.body.Height = max(m.height-used, 1)

	m.logView.Width = max(m.width-4, 10)
	m.logView.Height = max(m.height-6, 3)
}

func (m Model) renderBody(rows []row) bodyBuilder {
	switch m.ctrl.Kind() {
	case route.KindHome:
		return m.renderHome(rows)
	case route.KindBoard:
		return m.renderBoard(rows)
	default:
		return m.renderThread(rows)
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{DarkMode: m.theme.Dark, LastPath: m.history.Path()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

func (m Model) probeCmd() tea.Cmd {
	if m.probe == nil {
		return nil
	}
	ctx, probe := m.ctx, m.probe
	return func() tea.Msg {
		return probedMsg(probe(ctx))
	}
}

func (m Model) loadCmd(f nav.Fetch) tea.Cmd {
	if f.Empty() || m.client == nil {
		return nil
	}
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return loadedMsg{result: nav.Load(ctx, client, f)}
	}
}

func (m Model) submitCmd(sub nav.Submission) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if client == nil {
			return submittedMsg{result: nav.SubmitResult{Submission: sub, Err: errors.New("no backend configured")}}
		}
		return submittedMsg{result: nav.Submit(ctx, client, sub)}
	}
}

func (m Model) logsCmd() tea.Cmd {
	path := m.logPath
	return func() tea.Msg {
		if path == "" {
			return logsMsg{err: errors.New("logging to file is disabled")}
		}
		lines, err := logging.Tail(path, logTailLines)
		return logsMsg{lines: lines, err: err}
	}
}
