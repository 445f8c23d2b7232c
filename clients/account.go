package clients

import (
	"context"
	"net/http"

	"bank-portal/entities"
)

// AccountClient talks to the account service (/api/accounts).
type AccountClient struct {
	rest *restClient
}

func NewAccountClient(baseURL string, httpClient *http.Client) *AccountClient {
	return &AccountClient{rest: newRESTClient("account", baseURL, httpClient)}
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

type transferRequest struct {
	SourceAccount      string  `json:"sourceAccount"`
	DestinationAccount string  `json:"destinationAccount"`
	Amount             float64 `json:"amount"`
}

func (c *AccountClient) Deposit(ctx context.Context, accountNumber string, amount float64) (*entities.Transaction, error) {
	return c.post(ctx, seg(accountNumber)+"/deposit", amountRequest{Amount: amount})
}

func (c *AccountClient) Withdraw(ctx context.Context, accountNumber string, amount float64) (*entities.Transaction, error) {
	return c.post(ctx, seg(accountNumber)+"/withdraw", amountRequest{Amount: amount})
}

func (c *AccountClient) Transfer(ctx context.Context, source, destination string, amount float64) (*entities.Transaction, error) {
	return c.post(ctx, "/transfer", transferRequest{
		SourceAccount:      source,
		DestinationAccount: destination,
		Amount:             amount,
	})
}

func (c *AccountClient) post(ctx context.Context, path string, body any) (*entities.Transaction, error) {
	var tx entities.Transaction
	if err := c.rest.send(ctx, http.MethodPost, path, body, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *AccountClient) Transactions(ctx context.Context, accountNumber string) ([]entities.Transaction, error) {
	var txs []entities.Transaction
	if err := c.rest.get(ctx, seg(accountNumber)+"/transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
