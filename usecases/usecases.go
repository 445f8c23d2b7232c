package usecases

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"bank-portal/clients"
	"bank-portal/entities"
)

var (
	ErrNoSession        = errors.New("no active session")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAccountInUse     = errors.New("account number already in use")
)

// Notifier raises toast notifications for a visitor.
type Notifier interface {
	Success(visitorID, message string)
	Error(visitorID, message string)
	Warning(visitorID, message string)
	Info(visitorID, message string)
}

// FormatAmount renders an amount the way toasts quote it: no padding, no grouping.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// searchBySSN looks a customer up for the search boxes of the staff dashboards.
func searchBySSN(ctx context.Context, customers clients.CustomerAPI, notify Notifier, visitorID, ssnID, failure string) *entities.Customer {
	c, err := customers.BySSN(ctx, ssnID)
	if err != nil {
		slog.Warn("customer search failed", "ssn", ssnID, "error", err)
		notify.Error(visitorID, clients.MessageOr(err, failure))
		return nil
	}
	if c == nil {
		notify.Warning(visitorID, "No customer found with this SSN")
		return nil
	}
	notify.Success(visitorID, "Customer found successfully!")
	return c
}
