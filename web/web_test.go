package web

import (
	"bytes"
	"io"
	"testing"
	"time"

	"bank-portal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "₹0.00", Money(0))
	assert.Equal(t, "₹1,234.50", Money(1234.5))
	assert.Equal(t, "₹1,000,000.00", Money(1e6))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Deposit", Title("DEPOSIT"))
	assert.Equal(t, "Savings", Title("savings"))
}

func TestShortTime(t *testing.T) {
	assert.Equal(t, "3/4/25, 2:05 PM", ShortTime("2025-03-04T14:05:00"))
	assert.Equal(t, "3/4/25, 2:05 PM", ShortTime("2025-03-04T14:05:00.123456"))
	assert.Equal(t, "yesterday", ShortTime("yesterday"))
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"login", "register", "unauthorized", "customer", "employee", "manager", "confirm"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "unauthorized", map[string]any{
		"Title":    "Unauthorized",
		"BankName": BankName,
		"Session":  &entities.Session{Username: "jane", Role: entities.RoleCustomer},
		"ToastTTL": 5 * time.Second,
		"Toasts":   []entities.Notification{{ID: "n1", Type: entities.NotificationInfo, Message: "hi", Timestamp: time.Now()}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SecureBank")
	assert.Contains(t, buf.String(), "Welcome, jane")
	assert.Contains(t, buf.String(), `data-toast-ttl="5000"`)
}

func TestDict(t *testing.T) {
	m, err := dict("Base", "/x", "Page", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Base": "/x", "Page": 2}, m)

	_, err = dict("odd")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}

func TestStaticAssets(t *testing.T) {
	f, err := Static().Open("app.js")
	require.NoError(t, err)
	defer f.Close()
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/ws/notifications")
}
