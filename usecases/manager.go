package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"bank-portal/clients"
	"bank-portal/entities"
)

// ManagerDashboard is the branch manager's view over customers and staff.
type ManagerDashboard struct {
	customers clients.CustomerAPI
	employees clients.EmployeeAPI
	notify    Notifier
	pageSize  int
}

func NewManagerDashboard(customers clients.CustomerAPI, employees clients.EmployeeAPI, notify Notifier, pageSize int) *ManagerDashboard {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &ManagerDashboard{customers: customers, employees: employees, notify: notify, pageSize: pageSize}
}

type Statistics struct {
	TotalCustomers  int
	TotalEmployees  int
	TotalBalance    float64
	ActiveCustomers int
}

// Statistics summarizes the bank. Failures only reach the log.
func (uc *ManagerDashboard) Statistics(ctx context.Context) Statistics {
	var stats Statistics

	customers, err := uc.customers.List(ctx)
	if err != nil {
		// Balances need the full list; the head count has its own endpoint.
		slog.Error("failed to load customer statistics", "error", err)
		stats.TotalCustomers = int(uc.customers.Count(ctx))
		stats.ActiveCustomers = stats.TotalCustomers
	} else {
		stats.TotalCustomers = len(customers)
		stats.ActiveCustomers = len(customers)
		for _, c := range customers {
			stats.TotalBalance += c.Balance
		}
	}

	employees, err := uc.employees.List(ctx)
	if err != nil {
		slog.Error("failed to load employee statistics", "error", err)
	} else {
		stats.TotalEmployees = len(employees)
	}
	return stats
}

// ============= Customers =============

func (uc *ManagerDashboard) LoadCustomers(ctx context.Context, visitorID string) (Page[entities.Customer], error) {
	page, err := uc.CustomerPage(ctx, visitorID, 1)
	if err != nil {
		return page, err
	}
	uc.notify.Success(visitorID, fmt.Sprintf("Loaded %d customers", len(page.Items)))
	return page, nil
}

func (uc *ManagerDashboard) CustomerPage(ctx context.Context, visitorID string, page int) (Page[entities.Customer], error) {
	all, err := uc.customers.List(ctx)
	if err != nil {
		slog.Error("listing customers", "error", err)
		uc.notify.Error(visitorID, "Failed to load customers")
		return Page[entities.Customer]{}, err
	}
	return Paginate(all, page, uc.pageSize), nil
}

func (uc *ManagerDashboard) SearchCustomer(ctx context.Context, visitorID, ssnID string) *entities.Customer {
	return searchBySSN(ctx, uc.customers, uc.notify, visitorID, ssnID, "Search failed")
}

func (uc *ManagerDashboard) Customer(ctx context.Context, ssnID string) (*entities.Customer, error) {
	c, err := uc.customers.BySSN(ctx, ssnID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// CreateCustomer registers a customer record only; managers do not open logins.
func (uc *ManagerDashboard) CreateCustomer(ctx context.Context, visitorID string, c entities.Customer) (*entities.Customer, error) {
	if uc.customers.ExistsByAccountNumber(ctx, c.AccountNumber) {
		uc.notify.Error(visitorID, "Account number "+c.AccountNumber+" is already in use")
		return nil, ErrAccountInUse
	}
	created, err := uc.customers.Create(ctx, c)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to create customer"))
		return nil, err
	}
	uc.notify.Success(visitorID, "Customer registered successfully! Account: "+created.AccountNumber)
	_, _ = uc.LoadCustomers(ctx, visitorID)
	return created, nil
}

// UpdateCustomer saves c over the record at ssnID, keeping the stored balance.
func (uc *ManagerDashboard) UpdateCustomer(ctx context.Context, visitorID, ssnID string, c entities.Customer) (*entities.Customer, error) {
	existing, err := uc.customers.BySSN(ctx, ssnID)
	switch {
	case err != nil:
		slog.Warn("reading customer before update", "ssn", ssnID, "error", err)
	case existing != nil:
		c.Balance = existing.Balance
	}
	updated, err := uc.customers.Update(ctx, ssnID, c)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to update customer"))
		return nil, err
	}
	uc.notify.Success(visitorID, "Customer updated successfully!")
	return updated, nil
}

func (uc *ManagerDashboard) DeleteCustomer(ctx context.Context, visitorID, ssnID string) error {
	if err := uc.customers.Delete(ctx, ssnID); err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to delete customer"))
		return err
	}
	uc.notify.Success(visitorID, "Customer deleted successfully!")
	return nil
}

// RefreshCustomers reloads whatever customer view is on screen and reports whether it did.
func (uc *ManagerDashboard) RefreshCustomers(ctx context.Context, visitorID string, showing bool) bool {
	if !showing {
		uc.notify.Info(visitorID, `Click "View Customers" to load data`)
		return false
	}
	_, err := uc.LoadCustomers(ctx, visitorID)
	return err == nil
}

// ============= Employees =============

func (uc *ManagerDashboard) LoadEmployees(ctx context.Context, visitorID string) (Page[entities.Employee], error) {
	page, err := uc.EmployeePage(ctx, visitorID, 1, "")
	if err != nil {
		return page, err
	}
	uc.notify.Success(visitorID, fmt.Sprintf("Loaded %d employees", len(page.Items)))
	return page, nil
}

// EmployeePage lists employees, optionally only one designation.
func (uc *ManagerDashboard) EmployeePage(ctx context.Context, visitorID string, page int, designation string) (Page[entities.Employee], error) {
	var (
		all []entities.Employee
		err error
	)
	if designation != "" {
		all, err = uc.employees.ByDesignation(ctx, designation)
	} else {
		all, err = uc.employees.List(ctx)
	}
	if err != nil {
		slog.Error("listing employees", "designation", designation, "error", err)
		uc.notify.Error(visitorID, "Failed to load employees")
		return Page[entities.Employee]{}, err
	}
	return Paginate(all, page, uc.pageSize), nil
}

func (uc *ManagerDashboard) Employee(ctx context.Context, id int64) (*entities.Employee, error) {
	e, err := uc.employees.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}
	return e, nil
}

// PickEmployeeToEdit backs the "Update Employee" shortcut: the first employee on screen.
func (uc *ManagerDashboard) PickEmployeeToEdit(visitorID string, shown []entities.Employee) *entities.Employee {
	if len(shown) == 0 {
		uc.notify.Warning(visitorID, "Please load employees first")
		return nil
	}
	e := shown[0]
	return &e
}

func (uc *ManagerDashboard) CreateEmployee(ctx context.Context, visitorID string, e entities.Employee) (*entities.Employee, error) {
	created, err := uc.employees.Create(ctx, e)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to create employee"))
		return nil, err
	}
	uc.notify.Success(visitorID, fmt.Sprintf("Employee registered successfully! ID: %d", created.EmployeeID))
	_, _ = uc.LoadEmployees(ctx, visitorID)
	return created, nil
}

func (uc *ManagerDashboard) UpdateEmployee(ctx context.Context, visitorID string, id int64, e entities.Employee) (*entities.Employee, error) {
	updated, err := uc.employees.Update(ctx, id, e)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to update employee"))
		return nil, err
	}
	uc.notify.Success(visitorID, "Employee updated successfully!")
	return updated, nil
}

func (uc *ManagerDashboard) DeleteEmployee(ctx context.Context, visitorID string, id int64) error {
	if err := uc.employees.Delete(ctx, id); err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to delete employee"))
		return err
	}
	uc.notify.Success(visitorID, "Employee deleted successfully!")
	return nil
}

func (uc *ManagerDashboard) RefreshEmployees(ctx context.Context, visitorID string, showing bool) bool {
	if !showing {
		uc.notify.Info(visitorID, `Click "View Employees" to load data`)
		return false
	}
	_, err := uc.LoadEmployees(ctx, visitorID)
	return err == nil
}

// RaiseClerks adds amount to every clerk's salary.
func (uc *ManagerDashboard) RaiseClerks(ctx context.Context, visitorID string, amount float64) error {
	updated, err := uc.employees.AddSalaryToClerks(ctx, amount)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to update clerk salaries"))
		return err
	}
	slog.Info("clerk salaries raised", "amount", amount, "count", len(updated))
	uc.notify.Success(visitorID, fmt.Sprintf("Updated salary for %d clerks", len(updated)))
	return nil
}

// RaiseManagers raises every manager's salary by percentage.
func (uc *ManagerDashboard) RaiseManagers(ctx context.Context, visitorID string, percentage float64) error {
	updated, err := uc.employees.AddPercentageToManagers(ctx, percentage)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to update manager salaries"))
		return err
	}
	slog.Info("manager salaries raised", "percentage", percentage, "count", len(updated))
	uc.notify.Success(visitorID, fmt.Sprintf("Updated salary for %d managers", len(updated)))
	return nil
}
