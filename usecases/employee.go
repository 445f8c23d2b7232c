package usecases

import (
	"context"
	"fmt"

	"bank-portal/clients"
	"bank-portal/entities"
	"bank-portal/validation"
)

// EmployeeDesk is the bank clerk's view over customer records.
type EmployeeDesk struct {
	auth      clients.AuthAPI
	customers clients.CustomerAPI
	notify    Notifier
	pageSize  int
}

func NewEmployeeDesk(auth clients.AuthAPI, customers clients.CustomerAPI, notify Notifier, pageSize int) *EmployeeDesk {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &EmployeeDesk{auth: auth, customers: customers, notify: notify, pageSize: pageSize}
}

func (uc *EmployeeDesk) Search(ctx context.Context, visitorID, ssnID string) *entities.Customer {
	return searchBySSN(ctx, uc.customers, uc.notify, visitorID, ssnID, "Search failed. Please try again.")
}

// LoadActive fetches the first page of customers and announces it.
func (uc *EmployeeDesk) LoadActive(ctx context.Context, visitorID string) (Page[entities.Customer], error) {
	page, err := uc.ActivePage(ctx, visitorID, 1)
	if err != nil {
		return page, err
	}
	uc.notify.Success(visitorID, fmt.Sprintf("Loaded %d active customers", len(page.Items)))
	return page, nil
}

func (uc *EmployeeDesk) ActivePage(ctx context.Context, visitorID string, page int) (Page[entities.Customer], error) {
	all, err := uc.customers.List(ctx)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to load customers"))
		return Page[entities.Customer]{}, err
	}
	return Paginate(all, page, uc.pageSize), nil
}

// Customer fetches one record for the edit and delete screens.
func (uc *EmployeeDesk) Customer(ctx context.Context, ssnID string) (*entities.Customer, error) {
	c, err := uc.customers.BySSN(ctx, ssnID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// CreateCustomer opens a login for the customer, then their record, then reloads the list.
func (uc *EmployeeDesk) CreateCustomer(ctx context.Context, visitorID string, reg entities.CustomerRegistration) (*entities.Customer, error) {
	if _, err := uc.auth.Register(ctx, entities.RegisterUserRequest{
		Username: reg.Email,
		Password: reg.Password,
		Email:    reg.Email,
		Role:     entities.RoleCustomer,
	}); err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to register user"))
		return nil, err
	}

	created, err := uc.customers.Create(ctx, reg.Customer())
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to create customer"))
		return nil, err
	}
	uc.notify.Success(visitorID, "Customer created successfully! Account: "+created.AccountNumber)
	_, _ = uc.LoadActive(ctx, visitorID)
	return created, nil
}

func (uc *EmployeeDesk) UpdateCustomer(ctx context.Context, visitorID, ssnID string, form validation.DeskCustomerEditForm) (*entities.Customer, error) {
	existing, err := uc.Customer(ctx, ssnID)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to update customer"))
		return nil, err
	}
	form.Apply(existing)
	updated, err := uc.customers.Update(ctx, ssnID, *existing)
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to update customer"))
		return nil, err
	}
	uc.notify.Success(visitorID, "Customer updated successfully!")
	return updated, nil
}

func (uc *EmployeeDesk) DeleteCustomer(ctx context.Context, visitorID, ssnID string) error {
	if err := uc.customers.Delete(ctx, ssnID); err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to delete customer"))
		return err
	}
	uc.notify.Success(visitorID, "Customer deleted successfully!")
	return nil
}

// Refresh reloads the list when one is on screen and reports whether it did.
func (uc *EmployeeDesk) Refresh(ctx context.Context, visitorID string, listing bool) bool {
	if !listing {
		uc.notify.Info(visitorID, `Click "Active Customers" to load data`)
		return false
	}
	_, err := uc.LoadActive(ctx, visitorID)
	return err == nil
}
