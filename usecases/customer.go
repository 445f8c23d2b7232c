package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"bank-portal/clients"
	"bank-portal/entities"
	"bank-portal/validation"
)

// CustomerDashboard drives the self-service pages of a logged in customer.
type CustomerDashboard struct {
	customers clients.CustomerAPI
	accounts  clients.AccountAPI
	notify    Notifier
}

func NewCustomerDashboard(customers clients.CustomerAPI, accounts clients.AccountAPI, notify Notifier) *CustomerDashboard {
	return &CustomerDashboard{customers: customers, accounts: accounts, notify: notify}
}

type CustomerOverview struct {
	Customer     *entities.Customer
	Transactions []entities.Transaction
}

// customerSSN is how a login maps onto its customer record: the auth user id is the SSN.
func customerSSN(s *entities.Session) string {
	return strconv.FormatInt(s.UserID, 10)
}

// Load fetches the customer behind the session and their transaction history.
// Problems are reported as toasts; the overview is whatever could be loaded.
func (uc *CustomerDashboard) Load(ctx context.Context, s *entities.Session) CustomerOverview {
	var out CustomerOverview
	if s == nil {
		return out
	}
	if s.Role != entities.RoleCustomer {
		uc.notify.Error(s.VisitorID, "Invalid session or user role")
		return out
	}

	c, err := uc.current(ctx, s)
	if err != nil {
		return out
	}
	out.Customer = c

	if c.AccountNumber != "" {
		txs, err := uc.accounts.Transactions(ctx, c.AccountNumber)
		if err != nil {
			uc.notify.Error(s.VisitorID, "Failed to load transactions: "+clients.MessageOr(err, "account service unavailable"))
		} else {
			out.Transactions = txs
		}
	}
	return out
}

func (uc *CustomerDashboard) current(ctx context.Context, s *entities.Session) (*entities.Customer, error) {
	c, err := uc.customers.BySSN(ctx, customerSSN(s))
	if err != nil {
		slog.Warn("loading customer", "ssn", customerSSN(s), "error", err)
		uc.notify.Error(s.VisitorID, "Customer data not found")
		return nil, err
	}
	if c == nil {
		uc.notify.Error(s.VisitorID, "Customer data not found")
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// UpdateProfile applies the form to the stored record and saves it.
func (uc *CustomerDashboard) UpdateProfile(ctx context.Context, s *entities.Session, form validation.ProfileForm) error {
	c, err := uc.current(ctx, s)
	if err != nil {
		return err
	}
	form.Apply(c)
	if _, err := uc.customers.Update(ctx, c.SSNID, *c); err != nil {
		uc.notify.Error(s.VisitorID, clients.MessageOr(err, "Failed to update profile"))
		return err
	}
	uc.notify.Success(s.VisitorID, "Profile updated successfully!")
	return nil
}

func (uc *CustomerDashboard) Deposit(ctx context.Context, s *entities.Session, amount float64) error {
	c, err := uc.current(ctx, s)
	if err != nil {
		return err
	}
	if _, err := uc.accounts.Deposit(ctx, c.AccountNumber, amount); err != nil {
		uc.notify.Error(s.VisitorID, clients.MessageOr(err, "Deposit failed"))
		return err
	}
	slog.Info("deposit", "account", c.AccountNumber, "amount", amount)
	uc.notify.Success(s.VisitorID, "Successfully deposited ₹"+FormatAmount(amount))
	return nil
}

func (uc *CustomerDashboard) Withdraw(ctx context.Context, s *entities.Session, amount float64) error {
	c, err := uc.current(ctx, s)
	if err != nil {
		return err
	}
	if _, err := uc.accounts.Withdraw(ctx, c.AccountNumber, amount); err != nil {
		uc.notify.Error(s.VisitorID, clients.MessageOr(err, "Withdrawal failed"))
		return err
	}
	slog.Info("withdrawal", "account", c.AccountNumber, "amount", amount)
	uc.notify.Success(s.VisitorID, "Successfully withdrew ₹"+FormatAmount(amount))
	return nil
}

// Transfer moves money from the customer's own account to destination.
func (uc *CustomerDashboard) Transfer(ctx context.Context, s *entities.Session, destination string, amount float64) error {
	c, err := uc.current(ctx, s)
	if err != nil {
		return err
	}
	if _, err := uc.accounts.Transfer(ctx, c.AccountNumber, destination, amount); err != nil {
		uc.notify.Error(s.VisitorID, clients.MessageOr(err, "Transfer failed"))
		return err
	}
	slog.Info("transfer", "from", c.AccountNumber, "to", destination, "amount", amount)
	uc.notify.Success(s.VisitorID, fmt.Sprintf("Successfully transferred ₹%s to %s", FormatAmount(amount), destination))
	return nil
}
