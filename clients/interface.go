package clients

import (
	"context"
	"net/http"

	"bank-portal/entities"
)

type AuthAPI interface {
	Login(ctx context.Context, req entities.LoginRequest) (*entities.LoginResponse, []*http.Cookie, error)
	Register(ctx context.Context, req entities.RegisterUserRequest) (*entities.User, error)
	Logout(ctx context.Context, cookies []*http.Cookie) error
	Session(ctx context.Context, cookies []*http.Cookie) (*entities.SessionInfo, error)
	UserByUsername(ctx context.Context, username string) (*entities.User, error)
}

type CustomerAPI interface {
	List(ctx context.Context) ([]entities.Customer, error)
	BySSN(ctx context.Context, ssnID string) (*entities.Customer, error)
	ByAccountNumber(ctx context.Context, accountNumber string) (*entities.Customer, error)
	Create(ctx context.Context, customer entities.Customer) (*entities.Customer, error)
	Update(ctx context.Context, ssnID string, customer entities.Customer) (*entities.Customer, error)
	Delete(ctx context.Context, ssnID string) error
	ExistsByAccountNumber(ctx context.Context, accountNumber string) bool
	Count(ctx context.Context) int64
}

type AccountAPI interface {
	Deposit(ctx context.Context, accountNumber string, amount float64) (*entities.Transaction, error)
	Withdraw(ctx context.Context, accountNumber string, amount float64) (*entities.Transaction, error)
	Transfer(ctx context.Context, source, destination string, amount float64) (*entities.Transaction, error)
	Transactions(ctx context.Context, accountNumber string) ([]entities.Transaction, error)
}

type EmployeeAPI interface {
	List(ctx context.Context) ([]entities.Employee, error)
	ByID(ctx context.Context, id int64) (*entities.Employee, error)
	Create(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	Update(ctx context.Context, id int64, employee entities.Employee) (*entities.Employee, error)
	Delete(ctx context.Context, id int64) error
	ByDesignation(ctx context.Context, designation string) ([]entities.Employee, error)
	AddSalaryToClerks(ctx context.Context, amount float64) ([]entities.Employee, error)
	AddPercentageToManagers(ctx context.Context, percentage float64) ([]entities.Employee, error)
}

var (
	_ AuthAPI     = (*AuthClient)(nil)
	_ CustomerAPI = (*CustomerClient)(nil)
	_ AccountAPI  = (*AccountClient)(nil)
	_ EmployeeAPI = (*EmployeeClient)(nil)
)
