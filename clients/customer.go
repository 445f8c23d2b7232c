package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"bank-portal/entities"
)

// CustomerClient talks to the customer service (/api/customers).
type CustomerClient struct {
	rest *restClient
}

func NewCustomerClient(baseURL string, httpClient *http.Client) *CustomerClient {
	return &CustomerClient{rest: newRESTClient("customer", baseURL, httpClient)}
}

func (c *CustomerClient) List(ctx context.Context) ([]entities.Customer, error) {
	var customers []entities.Customer
	if err := c.rest.get(ctx, "", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// BySSN returns nil without error when no customer has that SSN.
func (c *CustomerClient) BySSN(ctx context.Context, ssnID string) (*entities.Customer, error) {
	return c.lookup(ctx, seg(ssnID))
}

// ByAccountNumber returns nil without error when the account is unknown.
func (c *CustomerClient) ByAccountNumber(ctx context.Context, accountNumber string) (*entities.Customer, error) {
	return c.lookup(ctx, "/account"+seg(accountNumber))
}

func (c *CustomerClient) lookup(ctx context.Context, path string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := c.rest.get(ctx, path, &customer); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create stores a new customer. The opening balance is the initial deposit.
func (c *CustomerClient) Create(ctx context.Context, customer entities.Customer) (*entities.Customer, error) {
	customer.Balance = customer.InitialDeposit
	var created entities.Customer
	if err := c.rest.send(ctx, http.MethodPost, "", customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the record at ssnID. The SSN itself is never sent.
func (c *CustomerClient) Update(ctx context.Context, ssnID string, customer entities.Customer) (*entities.Customer, error) {
	payload, err := withoutField(customer, "ssnId")
	if err != nil {
		return nil, fmt.Errorf("customer: encode update: %w", err)
	}
	var updated entities.Customer
	if err := c.rest.send(ctx, http.MethodPut, seg(ssnID), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *CustomerClient) Delete(ctx context.Context, ssnID string) error {
	return c.rest.send(ctx, http.MethodDelete, seg(ssnID), nil, nil)
}

// ExistsByAccountNumber treats any failure as "does not exist".
func (c *CustomerClient) ExistsByAccountNumber(ctx context.Context, accountNumber string) bool {
	var exists bool
	if err := c.rest.get(ctx, "/exists/account"+seg(accountNumber), &exists); err != nil {
		slog.Warn("account existence check failed", "account", accountNumber, "error", err)
		return false
	}
	return exists
}

// Count treats any failure as zero customers.
func (c *CustomerClient) Count(ctx context.Context) int64 {
	var n int64
	if err := c.rest.get(ctx, "/count", &n); err != nil {
		slog.Warn("customer count failed", "error", err)
		return 0
	}
	return n
}
