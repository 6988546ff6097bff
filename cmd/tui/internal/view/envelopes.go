package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
)

type envelopesState int

const (
	envelopesStateBrowse envelopesState = iota
	envelopesStateCreate
	envelopesStateTransfer
	envelopesStateDelete
)

type EnvelopesModel struct {
	CommonModel
	envService *envelope.Service

	state     envelopesState
	table     table.Model
	envelopes []*envelope.Envelope
	form      *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formName    string
	formBalance string
	formToID    string
	formAmount  string
	formConfirm bool
}

func NewEnvelopesModel(envSvc *envelope.Service) EnvelopesModel {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Balance", Width: 12},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return EnvelopesModel{
		envService: envSvc,
		table:      t,
	}
}

func (m EnvelopesModel) Title() string { return "Envelopes" }
func (m EnvelopesModel) ShortHelp() string {
	if m.state != envelopesStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | t: transfer | d: delete | r: refresh"
}

func (m EnvelopesModel) Init() tea.Cmd {
	return m.loadEnvelopesCmd()
}

func (m EnvelopesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadEnvelopesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.envelopes = msg.envelopes
		m.err = nil
		m.refreshTable()
		return m, nil

	case envelopeSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = envelopesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadEnvelopesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == envelopesStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m EnvelopesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadEnvelopesCmd()
		case "n":
			return m.enterCreateMode()
		case "t":
			return m.enterTransferMode()
		case "d":
			return m.enterDeleteMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m EnvelopesModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formBalance = "0.00"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("balance").
				Title("Starting Balance").
				Value(&m.formBalance).
				Validate(validateAmount(false)),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = envelopesStateCreate
	m.table.Blur()
	return m, m.form.Init()
}

func (m EnvelopesModel) enterTransferMode() (tea.Model, tea.Cmd) {
	from := m.selected()
	if from == nil {
		return m, nil
	}

	options := make([]huh.Option[string], 0, len(m.envelopes)-1)
	for _, e := range m.envelopes {
		if e.ID == from.ID {
			continue
		}
		options = append(options, huh.NewOption(
			fmt.Sprintf("%s (%s)", e.Name, FormatAmount(e.Balance)),
			e.ID.String(),
		))
	}

	if len(options) == 0 {
		m.status = "No other envelope to transfer to."
		return m, nil
	}

	m.formToID = ""
	m.formAmount = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("to").
				Title(fmt.Sprintf("Transfer from %s to", from.Name)).
				Options(options...).
				Value(&m.formToID),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(validateAmount(true)),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = envelopesStateTransfer
	m.table.Blur()
	return m, m.form.Init()
}

func (m EnvelopesModel) enterDeleteMode() (tea.Model, tea.Cmd) {
	e := m.selected()
	if e == nil {
		return m, nil
	}

	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete envelope %q?", e.Name)).
				Description("Envelopes with transactions cannot be deleted.").
				Value(&m.formConfirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = envelopesStateDelete
	m.table.Blur()
	return m, m.form.Init()
}

func (m EnvelopesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = envelopesStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case envelopesStateCreate:
		return m, m.createCmd()
	case envelopesStateTransfer:
		return m, m.transferCmd()
	case envelopesStateDelete:
		return m, m.deleteCmd()
	}

	return m, nil
}

func (m EnvelopesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading envelopes...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state != envelopesStateBrowse && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m EnvelopesModel) selected() *envelope.Envelope {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.envelopes) {
		return nil
	}
	return m.envelopes[idx]
}

func (m *EnvelopesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.envelopes))
	for _, e := range m.envelopes {
		rows = append(rows, table.Row{
			e.Name,
			FormatAmount(e.Balance),
			FormatDate(e.CreatedAt),
		})
	}
	m.table.SetRows(rows)
}

func validateAmount(positive bool) func(string) error {
	return func(s string) error {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("not a valid amount")
		}
		if positive && d.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("amount must be positive")
		}
		if !positive && d.IsNegative() {
			return fmt.Errorf("amount must not be negative")
		}
		return nil
	}
}

// Messages

type loadEnvelopesMsg struct {
	envelopes []*envelope.Envelope
	err       error
}

func (m EnvelopesModel) loadEnvelopesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		envelopes, err := m.envService.List(ctx)
		return loadEnvelopesMsg{envelopes: envelopes, err: err}
	}
}

type envelopeSavedMsg struct {
	status string
	err    error
}

func (m EnvelopesModel) createCmd() tea.Cmd {
	name := m.formName
	balance := m.formBalance

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		b, err := decimal.NewFromString(strings.TrimSpace(balance))
		if err != nil {
			return envelopeSavedMsg{err: err}
		}

		e, err := m.envService.Create(ctx, envelope.CreateParams{Name: name, Balance: b})
		if err != nil {
			return envelopeSavedMsg{err: err}
		}

		return envelopeSavedMsg{status: fmt.Sprintf("Created %s.", e.Name)}
	}
}

func (m EnvelopesModel) transferCmd() tea.Cmd {
	from := m.selected()
	if from == nil {
		return nil
	}

	toID := m.formToID
	amount := m.formAmount

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		to, err := uuid.Parse(toID)
		if err != nil {
			return envelopeSavedMsg{err: err}
		}

		a, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return envelopeSavedMsg{err: err}
		}

		if _, _, err := m.envService.Transfer(ctx, from.ID, to, a); err != nil {
			return envelopeSavedMsg{err: err}
		}

		return envelopeSavedMsg{status: fmt.Sprintf("Transferred %s.", a.StringFixed(2))}
	}
}

func (m EnvelopesModel) deleteCmd() tea.Cmd {
	e := m.selected()
	if e == nil || !m.formConfirm {
		return func() tea.Msg { return envelopeSavedMsg{} }
	}

	id := e.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		deleted, err := m.envService.Delete(ctx, id)
		if err != nil {
			return envelopeSavedMsg{err: err}
		}

		return envelopeSavedMsg{status: fmt.Sprintf("Deleted %s.", deleted.Name)}
	}
}
