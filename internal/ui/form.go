package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/threds/internal/nav"
)

type formField int

const (
	fieldSubject formField = iota
	fieldContent
	fieldImage
)

var (
	composerFields = []formField{fieldSubject, fieldContent, fieldImage}
	replyFields    = []formField{fieldContent, fieldImage}
)

// formModel holds the input widgets shared by the thread composer and the
// reply bar. The controller's Form is the source of truth; the widgets mirror
// it.
type formModel struct {
	subject textinput.Model
	content textarea.Model
	image   textinput.Model
	field   formField
	focused bool
}

func newFormModel() formModel {
	subject := textinput.New()
	subject.Placeholder = "What is on your mind?"
	subject.CharLimit = 200
	subject.Prompt = ""

	content := textarea.New()
	content.Placeholder = "Type your message here..."
	content.ShowLineNumbers = false
	content.CharLimit = 4000
	content.Prompt = ""

	image := textinput.New()
	image.Placeholder = "path/to/image.png (optional)"
	image.CharLimit = 1024
	image.Prompt = ""

	return formModel{subject: subject, content: content, image: image, field: fieldContent}
}

func (f formModel) draft() nav.Draft {
	return nav.Draft{
		Subject:   f.subject.Value(),
		Content:   f.content.Value(),
		ImagePath: f.image.Value(),
	}
}

// load copies the controller's form values into widgets that differ.
func (f *formModel) load(form nav.Form) {
	if f.subject.Value() != form.Subject {
		f.subject.SetValue(form.Subject)
	}
	if f.content.Value() != form.Content {
		f.content.SetValue(form.Content)
	}
	if f.image.Value() != form.ImagePath {
		f.image.SetValue(form.ImagePath)
	}
}

func (f *formModel) setSize(width int, reply bool) {
	inner := max(width-6, 10)
	f.subject.Width = inner
	f.image.Width = inner
	f.content.SetWidth(inner)
	if reply {
		f.content.SetHeight(2)
	} else {
		f.content.SetHeight(4)
	}
}

func (f *formModel) focus(field formField) tea.Cmd {
	f.blur()
	f.field = field
	f.focused = true
	switch field {
	case fieldSubject:
		return f.subject.Focus()
	case fieldImage:
		return f.image.Focus()
	default:
		return f.content.Focus()
	}
}

func (f *formModel) blur() {
	f.focused = false
	f.subject.Blur()
	f.content.Blur()
	f.image.Blur()
}

// cycle moves focus by delta within fields, wrapping around.
func (f *formModel) cycle(fields []formField, delta int) tea.Cmd {
	idx := 0
	for i, field := range fields {
		if field == f.field {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return f.focus(fields[idx])
}

func (f *formModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case fieldSubject:
		f.subject, cmd = f.subject.Update(msg)
	case fieldImage:
		f.image, cmd = f.image.Update(msg)
	default:
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

func (m Model) renderComposer(width int) string {
	styles := m.theme.Styles()
	form := m.ctrl.Form()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Create New Thread"))
	b.WriteString("\n")
	if form.Err != "" {
		b.WriteString(styles.DangerText.Render("! " + form.Err))
		b.WriteString("\n")
	}
	b.WriteString(m.fieldLabel("Subject", fieldSubject))
	b.WriteString("\n")
	b.WriteString(m.form.subject.View())
	b.WriteString("\n")
	b.WriteString(m.fieldLabel("Message", fieldContent))
	b.WriteString("\n")
	b.WriteString(m.form.content.View())
	b.WriteString("\n")
	b.WriteString(m.fieldLabel("Image (Optional)", fieldImage))
	b.WriteString("\n")
	b.WriteString(m.form.image.View())
	b.WriteString("\n")
	b.WriteString(m.submitLine("Post Thread"))

	return m.panelStyle().Width(width - 2).Render(b.String())
}

func (m Model) renderReplyBar(width int) string {
	styles := m.theme.Styles()
	form := m.ctrl.Form()

	var b strings.Builder
	if form.Err != "" {
		b.WriteString(styles.DangerText.Render("! " + form.Err))
		b.WriteString("\n")
	}
	if form.ReplyTo != "" {
		b.WriteString(styles.AccentText.Render("Replying to " + quoteRef(form.ReplyTo)))
		b.WriteString(styles.FaintText.Render("  ctrl+x clear"))
		b.WriteString("\n")
	}
	b.WriteString(m.fieldLabel("Reply", fieldContent))
	b.WriteString("\n")
	b.WriteString(m.form.content.View())
	b.WriteString("\n")
	b.WriteString(m.fieldLabel("Image", fieldImage))
	b.WriteString(" ")
	b.WriteString(m.form.image.View())
	b.WriteString("\n")
	b.WriteString(m.submitLine("Reply"))

	return m.panelStyle().Width(width - 2).Render(b.String())
}

func (m Model) fieldLabel(label string, field formField) string {
	styles := m.theme.Styles()
	if m.focus == focusForm && m.form.field == field {
		return styles.AccentText.Bold(true).Render(label)
	}
	return styles.MutedText.Render(label)
}

func (m Model) submitLine(action string) string {
	styles := m.theme.Styles()
	if m.ctrl.Form().Busy {
		return m.spinner.View() + " " + styles.WarningText.Render("Submitting...")
	}
	if m.focus != focusForm {
		return styles.FaintText.Render("tab to write")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.AccentText.Render("ctrl+s "+action),
		styles.FaintText.Render("  tab next field  esc cancel"),
	)
}

func (m Model) panelStyle() lipgloss.Style {
	styles := m.theme.Styles()
	if m.focus == focusForm {
		return styles.PanelFocus
	}
	return styles.Panel
}
