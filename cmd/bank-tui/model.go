package main

import (
	"fmt"
	"strings"

	"bank-portal/entities"
	"bank-portal/usecases"
	"bank-portal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const recentTransactions = 5

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16)

	balanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noteStyles = map[entities.NotificationType]lipgloss.Style{
		entities.NotificationSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		entities.NotificationError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		entities.NotificationWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		entities.NotificationInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoading
	stepMenu
	stepEnteringDestination
	stepEnteringAmount
	stepWorking
)

type action int

const (
	actionNone action = iota
	actionDeposit
	actionWithdraw
	actionTransfer
)

func (a action) String() string {
	switch a {
	case actionDeposit:
		return "Deposit"
	case actionWithdraw:
		return "Withdraw"
	case actionTransfer:
		return "Transfer"
	}
	return ""
}

type model struct {
	bank         *bank
	step         step
	username     string
	password     string
	session      *entities.Session
	overview     usecases.CustomerOverview
	action       action
	destination  string
	currentInput string
	notes        []note
	quitting     bool
}

func initialModel(b *bank) model {
	return model{bank: b, step: stepEnteringUsername}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) typing() bool {
	switch m.step {
	case stepEnteringUsername, stepEnteringPassword, stepEnteringDestination, stepEnteringAmount:
		return true
	}
	return false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginSuccessMsg:
		m.session = msg.session
		m.password = ""
		m.notes = msg.notes
		m.step = stepLoading
		return m, m.bank.load(m.session)

	case overviewMsg:
		m.overview = msg.overview
		m.notes = append(m.notes, msg.notes...)
		m.step = stepMenu
		m.action = actionNone

	case errMsg:
		m.notes = msg.notes
		if m.session == nil {
			m.step = stepEnteringUsername
			m.password = ""
		} else {
			m.step = stepMenu
			m.action = actionNone
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.step == stepEnteringDestination || m.step == stepEnteringAmount {
			m.step = stepMenu
			m.action = actionNone
			m.currentInput = ""
		}
		return m, nil

	case "backspace":
		if m.typing() && len(m.currentInput) > 0 {
			runes := []rune(m.currentInput)
			m.currentInput = string(runes[:len(runes)-1])
		}
		return m, nil

	case "enter":
		return m.submit()
	}

	if m.typing() {
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.currentInput += string(msg.Runes)
		}
		return m, nil
	}

	if m.step != stepMenu {
		return m, nil
	}
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "d":
		m.action = actionDeposit
		m.step = stepEnteringAmount
		m.notes = nil
	case "w":
		m.action = actionWithdraw
		m.step = stepEnteringAmount
		m.notes = nil
	case "t":
		m.action = actionTransfer
		m.step = stepEnteringDestination
		m.notes = nil
	case "r":
		m.step = stepLoading
		m.notes = nil
		return m, m.bank.load(m.session)
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	input := m.currentInput
	switch m.step {
	case stepEnteringUsername:
		if strings.TrimSpace(input) != "" {
			m.username = strings.TrimSpace(input)
			m.currentInput = ""
			m.step = stepEnteringPassword
		}

	case stepEnteringPassword:
		if input != "" {
			m.password = input
			m.currentInput = ""
			m.step = stepLoggingIn
			m.notes = nil
			return m, m.bank.login(m.username, m.password)
		}

	case stepEnteringDestination:
		if strings.TrimSpace(input) != "" {
			m.destination = strings.TrimSpace(input)
			m.currentInput = ""
			m.step = stepEnteringAmount
		}

	case stepEnteringAmount:
		if strings.TrimSpace(input) != "" {
			m.currentInput = ""
			m.step = stepWorking
			return m, m.bank.run(m.session, m.action, m.destination, input)
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("🏦 " + web.BankName + " Terminal"))
	s.WriteString("\n")

	switch m.step {
	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Username or email:") + "\n")
		s.WriteString(inputStyle.Render("> "+m.currentInput) + "\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:") + "\n")
		s.WriteString(inputStyle.Render("> "+strings.Repeat("•", len([]rune(m.currentInput)))) + "\n")

	case stepLoggingIn:
		s.WriteString("Logging in...\n")

	case stepLoading:
		s.WriteString("Loading account...\n")

	case stepWorking:
		s.WriteString(fmt.Sprintf("%s in progress...\n", m.action))

	default:
		s.WriteString(m.summaryView())
		switch m.step {
		case stepEnteringDestination:
			s.WriteString("\n" + promptStyle.Render("Destination account:") + "\n")
			s.WriteString(inputStyle.Render("> "+m.currentInput) + "\n")
		case stepEnteringAmount:
			s.WriteString("\n" + promptStyle.Render(m.action.String()+" amount (₹):") + "\n")
			s.WriteString(inputStyle.Render("> "+m.currentInput) + "\n")
		}
	}

	if len(m.notes) > 0 {
		s.WriteString("\n")
		for _, n := range m.notes {
			s.WriteString(noteStyles[n.kind].Render(n.kind.Icon()+" "+n.text) + "\n")
		}
	}

	s.WriteString("\n" + helpStyle.Render(m.help()) + "\n")
	return s.String()
}

func (m model) summaryView() string {
	c := m.overview.Customer
	if c == nil {
		return "No account loaded.\n"
	}

	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Customer", c.CustomerName)
	row("Account", c.AccountNumber)
	row("Type", c.AccountType)
	row("Balance", balanceStyle.Render(web.Money(c.Balance)))

	s.WriteString("\n" + promptStyle.Render("Recent transactions") + "\n")
	if len(m.overview.Transactions) == 0 {
		s.WriteString(helpStyle.Render("No transactions yet") + "\n")
		return s.String()
	}
	for i, tx := range m.overview.Transactions {
		if i == recentTransactions {
			break
		}
		s.WriteString(fmt.Sprintf("%-16s %-10s %14s  %s\n",
			web.ShortTime(tx.Timestamp), web.Title(string(tx.TransactionType)), web.Money(tx.Amount), tx.Status))
	}
	return s.String()
}

func (m model) help() string {
	switch m.step {
	case stepMenu:
		return "d deposit • w withdraw • t transfer • r refresh • q quit"
	case stepEnteringDestination, stepEnteringAmount:
		return "enter confirm • esc cancel"
	case stepEnteringUsername, stepEnteringPassword:
		return "enter continue • ctrl+c quit"
	}
	return "ctrl+c quit"
}
