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
	"github.com/clutch42/envelope-budget/internal/transaction"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateCreate
	transactionsStateDelete
)

type TransactionsModel struct {
	CommonModel
	txService  *transaction.Service
	envService *envelope.Service

	state         transactionsState
	table         table.Model
	txs           []*transaction.Transaction
	envelopeNames map[uuid.UUID]string
	envelopes     []*envelope.Envelope
	form          *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formEnvelopeID string
	formAmount     string
	formRecipient  string
	formConfirm    bool
}

func NewTransactionsModel(txSvc *transaction.Service, envSvc *envelope.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 10},
		{Title: "Recipient", Width: 30},
		{Title: "Envelope", Width: 20},
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

	return TransactionsModel{
		txService:     txSvc,
		envService:    envSvc,
		table:         t,
		envelopeNames: map[uuid.UUID]string{},
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	if m.state != transactionsStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | d: delete | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTransactionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.txs = msg.txs
		m.envelopes = msg.envelopes
		m.envelopeNames = make(map[uuid.UUID]string, len(msg.envelopes))
		for _, e := range msg.envelopes {
			m.envelopeNames[e.ID] = e.Name
		}
		m.err = nil
		m.refreshTable()
		return m, nil

	case transactionSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = transactionsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == transactionsStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterCreateMode()
		case "d":
			return m.enterDeleteMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) enterCreateMode() (tea.Model, tea.Cmd) {
	if len(m.envelopes) == 0 {
		m.status = "Create an envelope first."
		return m, nil
	}

	options := make([]huh.Option[string], 0, len(m.envelopes))
	for _, e := range m.envelopes {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%s (%s)", e.Name, FormatAmount(e.Balance)),
			e.ID.String(),
		))
	}

	m.formEnvelopeID = ""
	m.formAmount = ""
	m.formRecipient = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("envelope").
				Title("Envelope").
				Options(options...).
				Value(&m.formEnvelopeID),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(validateAmount(true)),

			huh.NewInput().
				Key("recipient").
				Title("Recipient").
				Value(&m.formRecipient).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("recipient cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = transactionsStateCreate
	m.table.Blur()
	return m, m.form.Init()
}

func (m TransactionsModel) enterDeleteMode() (tea.Model, tea.Cmd) {
	tx := m.selected()
	if tx == nil {
		return m, nil
	}

	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %s to %s?", FormatAmount(tx.Amount), tx.Recipient)).
				Description("The amount is returned to the envelope.").
				Value(&m.formConfirm),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = transactionsStateDelete
	m.table.Blur()
	return m, m.form.Init()
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transactionsStateBrowse
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

	if m.state == transactionsStateCreate {
		return m, m.createCmd()
	}

	return m, m.deleteCmd()
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state != transactionsStateBrowse && m.form != nil {
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

func (m TransactionsModel) selected() *transaction.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}
	return m.txs[idx]
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		name := m.envelopeNames[tx.EnvelopeID]
		if name == "" {
			name = tx.EnvelopeID.String()
		}
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			FormatAmount(tx.Amount),
			tx.Recipient,
			name,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadTransactionsMsg struct {
	txs       []*transaction.Transaction
	envelopes []*envelope.Envelope
	err       error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx)
		if err != nil {
			return loadTransactionsMsg{err: err}
		}

		envelopes, err := m.envService.List(ctx)
		if err != nil {
			return loadTransactionsMsg{err: err}
		}

		return loadTransactionsMsg{txs: txs, envelopes: envelopes}
	}
}

type transactionSavedMsg struct {
	status string
	err    error
}

func (m TransactionsModel) createCmd() tea.Cmd {
	envID := m.formEnvelopeID
	amount := m.formAmount
	recipient := m.formRecipient

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		id, err := uuid.Parse(envID)
		if err != nil {
			return transactionSavedMsg{err: err}
		}

		a, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return transactionSavedMsg{err: err}
		}

		tx, err := m.txService.Create(ctx, transaction.CreateParams{
			EnvelopeID: id,
			Amount:     a,
			Recipient:  recipient,
		})
		if err != nil {
			return transactionSavedMsg{err: err}
		}

		return transactionSavedMsg{status: fmt.Sprintf("Recorded %s to %s.", FormatAmount(tx.Amount), tx.Recipient)}
	}
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	tx := m.selected()
	if tx == nil || !m.formConfirm {
		return func() tea.Msg { return transactionSavedMsg{} }
	}

	id := tx.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		deleted, err := m.txService.Delete(ctx, id)
		if err != nil {
			return transactionSavedMsg{err: err}
		}

		return transactionSavedMsg{status: fmt.Sprintf("Deleted %s to %s.", FormatAmount(deleted.Amount), deleted.Recipient)}
	}
}
