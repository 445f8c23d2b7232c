package usecases

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"bank-portal/entities"
)

type toast struct {
	kind    string
	message string
}

type fakeNotifier struct {
	mu     sync.Mutex
	toasts []toast
}

func (n *fakeNotifier) add(kind, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{kind, msg})
}

func (n *fakeNotifier) Success(_, msg string) { n.add("success", msg) }
func (n *fakeNotifier) Error(_, msg string)   { n.add("error", msg) }
func (n *fakeNotifier) Warning(_, msg string) { n.add("warning", msg) }
func (n *fakeNotifier) Info(_, msg string)    { n.add("info", msg) }

func (n *fakeNotifier) last() toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

func (n *fakeNotifier) all() []toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]toast(nil), n.toasts...)
}

type fakeAuth struct {
	loginResp   *entities.LoginResponse
	loginErr    error
	cookies     []*http.Cookie
	registerErr error
	registered  []entities.RegisterUserRequest
	logoutErr   error
	logouts     [][]*http.Cookie
	session     *entities.SessionInfo
	sessionErr  error
	sessionSeen []*http.Cookie
}

func (f *fakeAuth) Login(_ context.Context, _ entities.LoginRequest) (*entities.LoginResponse, []*http.Cookie, error) {
	if f.loginErr != nil {
		return nil, nil, f.loginErr
	}
	return f.loginResp, f.cookies, nil
}

func (f *fakeAuth) Register(_ context.Context, req entities.RegisterUserRequest) (*entities.User, error) {
	f.registered = append(f.registered, req)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &entities.User{ID: 100, Username: req.Username, Email: req.Email, Role: req.Role}, nil
}

func (f *fakeAuth) Logout(_ context.Context, cookies []*http.Cookie) error {
	f.logouts = append(f.logouts, cookies)
	return f.logoutErr
}

func (f *fakeAuth) Session(_ context.Context, cookies []*http.Cookie) (*entities.SessionInfo, error) {
	f.sessionSeen = cookies
	return f.session, f.sessionErr
}

func (f *fakeAuth) UserByUsername(_ context.Context, username string) (*entities.User, error) {
	return &entities.User{Username: username}, nil
}

type fakeCustomers struct {
	records   map[string]entities.Customer
	listErr   error
	lookupErr error
	createErr error
	updateErr error
	deleteErr error
	created   []entities.Customer
	updated   []entities.Customer
	deleted   []string
}

func newFakeCustomers(cs ...entities.Customer) *fakeCustomers {
	f := &fakeCustomers{records: map[string]entities.Customer{}}
	for _, c := range cs {
		f.records[c.SSNID] = c
	}
	return f
}

func (f *fakeCustomers) List(context.Context) ([]entities.Customer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entities.Customer, 0, len(f.records))
	for _, c := range f.records {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SSNID < out[j].SSNID })
	return out, nil
}

func (f *fakeCustomers) BySSN(_ context.Context, ssn string) (*entities.Customer, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	c, ok := f.records[ssn]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCustomers) ByAccountNumber(_ context.Context, acct string) (*entities.Customer, error) {
	for _, c := range f.records {
		if c.AccountNumber == acct {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomers) Create(_ context.Context, c entities.Customer) (*entities.Customer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.Balance = c.InitialDeposit
	f.created = append(f.created, c)
	f.records[c.SSNID] = c
	return &c, nil
}

func (f *fakeCustomers) Update(_ context.Context, ssn string, c entities.Customer) (*entities.Customer, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	c.SSNID = ssn
	f.updated = append(f.updated, c)
	f.records[ssn] = c
	return &c, nil
}

func (f *fakeCustomers) Delete(_ context.Context, ssn string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, ssn)
	delete(f.records, ssn)
	return nil
}

func (f *fakeCustomers) ExistsByAccountNumber(ctx context.Context, acct string) bool {
	c, _ := f.ByAccountNumber(ctx, acct)
	return c != nil
}

func (f *fakeCustomers) Count(context.Context) int64 { return int64(len(f.records)) }

type accountCall struct {
	op          string
	account     string
	destination string
	amount      float64
}

type fakeAccounts struct {
	err   error
	txErr error
	txs   []entities.Transaction
	calls []accountCall
}

func (f *fakeAccounts) record(c accountCall) (*entities.Transaction, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return nil, f.err
	}
	return &entities.Transaction{Amount: c.amount, Status: "SUCCESS"}, nil
}

func (f *fakeAccounts) Deposit(_ context.Context, acct string, amount float64) (*entities.Transaction, error) {
	return f.record(accountCall{op: "deposit", account: acct, amount: amount})
}

func (f *fakeAccounts) Withdraw(_ context.Context, acct string, amount float64) (*entities.Transaction, error) {
	return f.record(accountCall{op: "withdraw", account: acct, amount: amount})
}

func (f *fakeAccounts) Transfer(_ context.Context, src, dst string, amount float64) (*entities.Transaction, error) {
	return f.record(accountCall{op: "transfer", account: src, destination: dst, amount: amount})
}

func (f *fakeAccounts) Transactions(context.Context, string) ([]entities.Transaction, error) {
	return f.txs, f.txErr
}

type fakeEmployees struct {
	records   []entities.Employee
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	raiseErr  error
	nextID    int64
	raises    []float64
}

func (f *fakeEmployees) List(context.Context) ([]entities.Employee, error) {
	return f.records, f.listErr
}

func (f *fakeEmployees) ByID(_ context.Context, id int64) (*entities.Employee, error) {
	for _, e := range f.records {
		if e.EmployeeID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployees) Create(_ context.Context, e entities.Employee) (*entities.Employee, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	e.EmployeeID = f.nextID
	f.records = append(f.records, e)
	return &e, nil
}

func (f *fakeEmployees) Update(_ context.Context, id int64, e entities.Employee) (*entities.Employee, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e.EmployeeID = id
	return &e, nil
}

func (f *fakeEmployees) Delete(context.Context, int64) error { return f.deleteErr }

func (f *fakeEmployees) ByDesignation(_ context.Context, d string) ([]entities.Employee, error) {
	var out []entities.Employee
	for _, e := range f.records {
		if e.Designation == d {
			out = append(out, e)
		}
	}
	return out, f.listErr
}

func (f *fakeEmployees) AddSalaryToClerks(ctx context.Context, amount float64) ([]entities.Employee, error) {
	f.raises = append(f.raises, amount)
	if f.raiseErr != nil {
		return nil, f.raiseErr
	}
	return f.ByDesignation(ctx, entities.DesignationClerk)
}

func (f *fakeEmployees) AddPercentageToManagers(ctx context.Context, pct float64) ([]entities.Employee, error) {
	f.raises = append(f.raises, pct)
	if f.raiseErr != nil {
		return nil, f.raiseErr
	}
	return f.ByDesignation(ctx, entities.DesignationManager)
}
