package clients

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"bank-portal/entities"
)

// EmployeeClient talks to the employee service (/api/employees).
type EmployeeClient struct {
	rest *restClient
}

func NewEmployeeClient(baseURL string, httpClient *http.Client) *EmployeeClient {
	return &EmployeeClient{rest: newRESTClient("employee", baseURL, httpClient)}
}

type employeePayload struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contactNumber"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
}

func toPayload(e entities.Employee) employeePayload {
	return employeePayload{
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		ContactNumber: e.ContactNumber,
		Designation:   e.Designation,
		Salary:        e.Salary,
	}
}

func idPath(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

func (c *EmployeeClient) List(ctx context.Context) ([]entities.Employee, error) {
	return c.list(ctx, "")
}

// ByID returns nil without error when the employee does not exist.
func (c *EmployeeClient) ByID(ctx context.Context, id int64) (*entities.Employee, error) {
	var e entities.Employee
	if err := c.rest.get(ctx, idPath(id), &e); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (c *EmployeeClient) Create(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	var created entities.Employee
	if err := c.rest.send(ctx, http.MethodPost, "", toPayload(employee), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *EmployeeClient) Update(ctx context.Context, id int64, employee entities.Employee) (*entities.Employee, error) {
	var updated entities.Employee
	if err := c.rest.send(ctx, http.MethodPut, idPath(id), toPayload(employee), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *EmployeeClient) Delete(ctx context.Context, id int64) error {
	return c.rest.send(ctx, http.MethodDelete, idPath(id), nil, nil)
}

func (c *EmployeeClient) ByDesignation(ctx context.Context, designation string) ([]entities.Employee, error) {
	return c.list(ctx, "/designation"+seg(designation))
}

// AddSalaryToClerks adds a flat amount to every clerk and returns the updated clerks.
func (c *EmployeeClient) AddSalaryToClerks(ctx context.Context, amount float64) ([]entities.Employee, error) {
	return c.adjust(ctx, "/salary/clerk/add/"+formatNumber(amount))
}

// AddPercentageToManagers raises every manager by percentage and returns the updated managers.
func (c *EmployeeClient) AddPercentageToManagers(ctx context.Context, percentage float64) ([]entities.Employee, error) {
	return c.adjust(ctx, "/salary/manager/percentage/"+formatNumber(percentage))
}

func (c *EmployeeClient) adjust(ctx context.Context, path string) ([]entities.Employee, error) {
	var updated []entities.Employee
	if err := c.rest.send(ctx, http.MethodPut, path, struct{}{}, &updated); err != nil {
		return nil, fmt.Errorf("salary adjustment: %w", err)
	}
	return updated, nil
}

func (c *EmployeeClient) list(ctx context.Context, path string) ([]entities.Employee, error) {
	var employees []entities.Employee
	if err := c.rest.get(ctx, path, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
