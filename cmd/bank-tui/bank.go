package main

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"bank-portal/entities"
	"bank-portal/usecases"
	"bank-portal/validation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
)

// terminalVisitor keys the notes of the single local user.
const terminalVisitor = "terminal"

type note struct {
	kind entities.NotificationType
	text string
}

// statusNotifier collects what the portal would have shown as toasts so the
// terminal can print them under the summary.
type statusNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (n *statusNotifier) add(kind entities.NotificationType, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note{kind: kind, text: text})
}

func (n *statusNotifier) Success(_, message string) { n.add(entities.NotificationSuccess, message) }
func (n *statusNotifier) Error(_, message string)   { n.add(entities.NotificationError, message) }
func (n *statusNotifier) Warning(_, message string) { n.add(entities.NotificationWarning, message) }
func (n *statusNotifier) Info(_, message string)    { n.add(entities.NotificationInfo, message) }

// drain returns and forgets the collected notes.
func (n *statusNotifier) drain() []note {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.notes
	n.notes = nil
	return out
}

// bank bundles the use cases the terminal drives.
type bank struct {
	auth      *usecases.AuthUseCase
	dashboard *usecases.CustomerDashboard
	notes     *statusNotifier
	validate  *validator.Validate
	timeout   time.Duration
}

type loginSuccessMsg struct {
	session *entities.Session
	notes   []note
}

type overviewMsg struct {
	overview usecases.CustomerOverview
	notes    []note
}

type errMsg struct{ notes []note }

func errNote(text string) errMsg {
	return errMsg{notes: []note{{kind: entities.NotificationError, text: text}}}
}

func (b *bank) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.timeout)
}

// firstProblem picks one readable message out of a failed form check.
func firstProblem(err error) string {
	fields := validation.Translate(err)
	for _, key := range []string{"identifier", "password", "destinationAccount", "amount"} {
		if msg, ok := fields[key]; ok {
			return msg
		}
	}
	return fields.Error()
}

func (b *bank) login(identifier, password string) tea.Cmd {
	return func() tea.Msg {
		form := validation.LoginForm{Identifier: identifier, Password: password, Role: string(entities.RoleCustomer)}
		if err := b.validate.Struct(form); err != nil {
			return errNote(firstProblem(err))
		}

		ctx, cancel := b.context()
		defer cancel()
		session, err := b.auth.Login(ctx, terminalVisitor, form.Identifier, form.Password)
		if err != nil {
			return errMsg{notes: b.notes.drain()}
		}
		if session.Role != entities.RoleCustomer {
			b.auth.Logout(ctx, session.ID)
			b.notes.drain()
			return errNote("This terminal is for customers; staff please use the web portal")
		}
		return loginSuccessMsg{session: session, notes: b.notes.drain()}
	}
}

func (b *bank) load(session *entities.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := b.context()
		defer cancel()
		overview := b.dashboard.Load(ctx, session)
		return overviewMsg{overview: overview, notes: b.notes.drain()}
	}
}

// run performs one money movement and reloads the summary.
func (b *bank) run(session *entities.Session, act action, destination, rawAmount string) tea.Cmd {
	return func() tea.Msg {
		amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
		if err != nil {
			return errNote("Amount must be a number")
		}

		var form any
		switch act {
		case actionDeposit:
			form = validation.DepositForm{Amount: amount}
		case actionWithdraw:
			form = validation.WithdrawForm{Amount: amount}
		case actionTransfer:
			form = validation.TransferForm{DestinationAccount: strings.TrimSpace(destination), Amount: amount}
		}
		if err := b.validate.Struct(form); err != nil {
			return errNote(firstProblem(err))
		}

		ctx, cancel := b.context()
		defer cancel()
		switch act {
		case actionDeposit:
			err = b.dashboard.Deposit(ctx, session, amount)
		case actionWithdraw:
			err = b.dashboard.Withdraw(ctx, session, amount)
		case actionTransfer:
			err = b.dashboard.Transfer(ctx, session, strings.TrimSpace(destination), amount)
		}
		notes := b.notes.drain()
		if err != nil {
			return errMsg{notes: notes}
		}
		overview := b.dashboard.Load(ctx, session)
		return overviewMsg{overview: overview, notes: append(notes, b.notes.drain()...)}
	}
}

func (b *bank) logout(session *entities.Session) {
	if session == nil {
		return
	}
	ctx, cancel := b.context()
	defer cancel()
	b.auth.Logout(ctx, session.ID)
}
