package entities

import "strings"

type TransactionType string

const (
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTransfer   TransactionType = "TRANSFER"
)

// Transaction mirrors an account service ledger entry.
type Transaction struct {
	ID                 int64           `json:"id"`
	SourceAccount      string          `json:"sourceAccount"`
	DestinationAccount string          `json:"destinationAccount"`
	Amount             float64         `json:"amount"`
	TransactionType    TransactionType `json:"transactionType"`
	Timestamp          string          `json:"timestamp"`
	Status             string          `json:"status"`
	Description        string          `json:"description,omitempty"`
}

// CSSClass is the row class used to color transactions by type.
func (t Transaction) CSSClass() string {
	return "type-" + strings.ToLower(string(t.TransactionType))
}
