package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"bank-portal/entities"
)

type fakeUser struct {
	password string
	user     entities.User
}

// fakeBank stands in for the four upstream services on one test server.
type fakeBank struct {
	mu        sync.Mutex
	users     map[string]fakeUser
	customers map[string]entities.Customer
	employees []entities.Employee
	deposits  []float64
	logouts   int
}

func newFakeBank() *fakeBank {
	return &fakeBank{
		users: map[string]fakeUser{
			"jane": {password: "pw", user: entities.User{ID: 1234567, Username: "jane", Role: entities.RoleCustomer}},
			"boss": {password: "pw", user: entities.User{ID: 7, Username: "boss", Role: entities.RoleManager}},
			"desk": {password: "pw", user: entities.User{ID: 8, Username: "desk", Role: entities.RoleEmployee}},
		},
		customers: map[string]entities.Customer{
			"1234567": {SSNID: "1234567", CustomerName: "Jane Doe", Email: "jane@example.com",
				AccountNumber: "ACC1001", AccountType: "Savings", Balance: 1500},
		},
		employees: []entities.Employee{
			{EmployeeID: 1, FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com", Designation: "Clerk", Salary: 30000},
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBank) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req entities.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		u, ok := b.users[req.Username]
		b.mu.Unlock()
		if !ok || u.password != req.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: req.Username, Path: "/"})
		writeJSON(w, http.StatusOK, entities.LoginResponse{Message: "ok", User: u.user})
	})
	mux.HandleFunc("GET /api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("JSESSIONID")
		b.mu.Lock()
		u, ok := b.users[cookieValue(ck, err)]
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No active session"})
			return
		}
		writeJSON(w, http.StatusOK, entities.SessionInfo{UserID: u.user.ID, Username: u.user.Username, Role: u.user.Role})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.logouts++
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "bye"})
	})

	mux.HandleFunc("GET /api/customers", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		out := make([]entities.Customer, 0, len(b.customers))
		for _, c := range b.customers {
			out = append(out, c)
		}
		writeJSON(w, http.StatusOK, out)
	})
	mux.HandleFunc("GET /api/customers/{ssn}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		c, ok := b.customers[r.PathValue("ssn")]
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Customer not found"})
			return
		}
		writeJSON(w, http.StatusOK, c)
	})

	mux.HandleFunc("GET /api/accounts/{account}/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []entities.Transaction{})
	})
	mux.HandleFunc("POST /api/accounts/{account}/deposit", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount float64 `json:"amount"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		b.deposits = append(b.deposits, req.Amount)
		for ssn, c := range b.customers {
			if c.AccountNumber == r.PathValue("account") {
				c.Balance += req.Amount
				b.customers[ssn] = c
			}
		}
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, entities.Transaction{ID: 1, DestinationAccount: r.PathValue("account"),
			Amount: req.Amount, TransactionType: entities.TransactionDeposit, Status: "SUCCESS"})
	})

	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.employees)
	})
	mux.HandleFunc("GET /api/employees/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, e := range b.employees {
			if strconv.FormatInt(e.EmployeeID, 10) == r.PathValue("id") {
				writeJSON(w, http.StatusOK, e)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Employee not found"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func cookieValue(ck *http.Cookie, err error) string {
	if err != nil {
		return ""
	}
	return ck.Value
}
