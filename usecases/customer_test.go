package usecases

import (
	"context"
	"net/http"
	"testing"

	"bank-portal/clients"
	"bank-portal/entities"
	"bank-portal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerSession() *entities.Session {
	return &entities.Session{ID: "s1", VisitorID: "v1", UserID: 1234567, Username: "jane", Role: entities.RoleCustomer}
}

func newCustomerFixture() (*CustomerDashboard, *fakeCustomers, *fakeAccounts, *fakeNotifier) {
	customers := newFakeCustomers(entities.Customer{
		SSNID:         "1234567",
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		AccountNumber: "ACC1",
		Balance:       2500,
	})
	accounts := &fakeAccounts{txs: []entities.Transaction{{ID: 1, Amount: 100, TransactionType: entities.TransactionDeposit}}}
	notify := &fakeNotifier{}
	return NewCustomerDashboard(customers, accounts, notify), customers, accounts, notify
}

func TestCustomerLoad(t *testing.T) {
	uc, _, _, notify := newCustomerFixture()

	out := uc.Load(context.Background(), customerSession())
	require.NotNil(t, out.Customer)
	assert.Equal(t, "Jane Doe", out.Customer.CustomerName)
	assert.Len(t, out.Transactions, 1)
	assert.Empty(t, notify.all())
}

func TestCustomerLoadProblems(t *testing.T) {
	uc, customers, accounts, notify := newCustomerFixture()

	staff := customerSession()
	staff.Role = entities.RoleEmployee
	assert.Nil(t, uc.Load(context.Background(), staff).Customer)
	assert.Equal(t, toast{"error", "Invalid session or user role"}, notify.last())

	accounts.txErr = &clients.APIError{Status: http.StatusInternalServerError, Message: "ledger offline"}
	out := uc.Load(context.Background(), customerSession())
	assert.NotNil(t, out.Customer)
	assert.Nil(t, out.Transactions)
	assert.Equal(t, toast{"error", "Failed to load transactions: ledger offline"}, notify.last())

	delete(customers.records, "1234567")
	assert.Nil(t, uc.Load(context.Background(), customerSession()).Customer)
	assert.Equal(t, toast{"error", "Customer data not found"}, notify.last())

	customers.lookupErr = &clients.APIError{Status: http.StatusBadGateway}
	assert.Nil(t, uc.Load(context.Background(), customerSession()).Customer)
	assert.Equal(t, toast{"error", "Customer data not found"}, notify.last())
}

func TestCustomerMoneyMovements(t *testing.T) {
	uc, _, accounts, notify := newCustomerFixture()
	ctx := context.Background()

	require.NoError(t, uc.Deposit(ctx, customerSession(), 500))
	assert.Equal(t, toast{"success", "Successfully deposited ₹500"}, notify.last())

	require.NoError(t, uc.Withdraw(ctx, customerSession(), 1000))
	assert.Equal(t, toast{"success", "Successfully withdrew ₹1000"}, notify.last())

	require.NoError(t, uc.Transfer(ctx, customerSession(), "ACC2", 250.5))
	assert.Equal(t, toast{"success", "Successfully transferred ₹250.5 to ACC2"}, notify.last())

	require.Len(t, accounts.calls, 3)
	assert.Equal(t, accountCall{op: "transfer", account: "ACC1", destination: "ACC2", amount: 250.5}, accounts.calls[2])
}

func TestCustomerMoneyMovementFailures(t *testing.T) {
	uc, _, accounts, notify := newCustomerFixture()
	ctx := context.Background()

	accounts.err = &clients.APIError{Status: http.StatusBadRequest, Message: "Insufficient balance"}
	assert.Error(t, uc.Withdraw(ctx, customerSession(), 5000))
	assert.Equal(t, toast{"error", "Insufficient balance"}, notify.last())

	accounts.err = &clients.APIError{Status: http.StatusBadGateway}
	assert.Error(t, uc.Deposit(ctx, customerSession(), 5))
	assert.Equal(t, toast{"error", "Deposit failed"}, notify.last())
	assert.Error(t, uc.Transfer(ctx, customerSession(), "ACC2", 5))
	assert.Equal(t, toast{"error", "Transfer failed"}, notify.last())
}

func TestCustomerUpdateProfileMergesForm(t *testing.T) {
	uc, customers, _, notify := newCustomerFixture()

	form := validation.ProfileForm{
		CustomerName:  "Jane Q. Doe",
		Email:         "jq@example.com",
		ContactNumber: "9876543210",
		City:          "Pune",
	}
	require.NoError(t, uc.UpdateProfile(context.Background(), customerSession(), form))

	require.Len(t, customers.updated, 1)
	saved := customers.updated[0]
	assert.Equal(t, "Jane Q. Doe", saved.CustomerName)
	assert.Equal(t, "ACC1", saved.AccountNumber)
	assert.Equal(t, 2500.0, saved.Balance)
	assert.Equal(t, entities.GenderMale, saved.Gender)
	assert.Equal(t, toast{"success", "Profile updated successfully!"}, notify.last())
}
