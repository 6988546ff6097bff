package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/clutch42/envelope-budget/cmd/tui/internal/view"
	"github.com/clutch42/envelope-budget/internal/config"
	"github.com/clutch42/envelope-budget/internal/database"
	"github.com/clutch42/envelope-budget/internal/envelope"
	envStore "github.com/clutch42/envelope-budget/internal/envelope/store"
	"github.com/clutch42/envelope-budget/internal/transaction"
	txStore "github.com/clutch42/envelope-budget/internal/transaction/store"
)

type model struct {
	envService *envelope.Service
	txService  *transaction.Service

	currentView View

	envelopesView    view.EnvelopesModel
	transactionsView view.TransactionsModel
}

type View int

const (
	ViewMenu         View = 0
	ViewEnvelopes    View = 1
	ViewTransactions View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	envSvc := envelope.NewService(envStore.New(db))
	txSvc := transaction.NewService(txStore.New(db))

	return model{
		envService:       envSvc,
		txService:        txSvc,
		currentView:      ViewMenu,
		envelopesView:    view.NewEnvelopesModel(envSvc),
		transactionsView: view.NewTransactionsModel(txSvc, envSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewEnvelopes
				m.envelopesView = view.NewEnvelopesModel(m.envService)

				return m, m.envelopesView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.envService)

				return m, m.transactionsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewEnvelopes:
		var newModel tea.Model
		newModel, cmd = m.envelopesView.Update(msg)
		m.envelopesView = newModel.(view.EnvelopesModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Envelope Budget\n\n" +
				"1. Envelopes\n" +
				"2. Transactions\n\n" +
				"q. Quit",
		)
	case ViewEnvelopes:
		return m.envelopesView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
