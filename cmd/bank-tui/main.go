// Command bank-tui is a terminal client for SecureBank customers: log in,
// check the balance and recent transactions, and move money.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"bank-portal/clients"
	"bank-portal/confs"
	"bank-portal/repositories"
	"bank-portal/usecases"
	"bank-portal/validation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
)

// quietLogs keeps log lines off the screen bubbletea draws on. Set
// BANK_TUI_LOG to a file path to keep them.
func quietLogs() (func(), error) {
	path := os.Getenv("BANK_TUI_LOG")
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(tint.NewHandler(f, &tint.Options{NoColor: true})))
	return func() { _ = f.Close() }, nil
}

func main() {
	closeLogs, err := quietLogs()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer closeLogs()

	cfg, err := confs.LoadConfig()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	authAPI := clients.NewAuthClient(cfg.AuthAPIURL, httpClient)
	customerAPI := clients.NewCustomerClient(cfg.CustomerAPIURL, httpClient)
	accountAPI := clients.NewAccountClient(cfg.AccountAPIURL, httpClient)

	notes := &statusNotifier{}
	b := &bank{
		auth:      usecases.NewAuthUseCase(authAPI, customerAPI, repositories.NewSessionMemRepository(), notes, cfg.SessionTTL),
		dashboard: usecases.NewCustomerDashboard(customerAPI, accountAPI, notes),
		notes:     notes,
		validate:  validation.New(),
		timeout:   cfg.UpstreamTimeout,
	}

	p := tea.NewProgram(initialModel(b))
	final, err := p.Run()
	if m, ok := final.(model); ok {
		b.logout(m.session)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
