package httpHandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"bank-portal/entities"
	"bank-portal/middleware"
	"bank-portal/usecases"
	"bank-portal/validation"

	"github.com/gin-gonic/gin"
)

const managerBase = "/dashboard/manager"

type ManagerHandler struct {
	dashboard *usecases.ManagerDashboard
	pages     *Pages
}

func NewManagerHandler(dashboard *usecases.ManagerDashboard, pages *Pages) *ManagerHandler {
	return &ManagerHandler{dashboard: dashboard, pages: pages}
}

func employeesURL(page int, designation string) string {
	q := url.Values{"tab": {"employees"}, "view": {"employees"}}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if designation != "" {
		q.Set("designation", designation)
	}
	return managerBase + "?" + q.Encode()
}

func validDesignation(d string) string {
	for _, known := range entities.Designations {
		if d == known {
			return d
		}
	}
	return ""
}

// render draws the dashboard from the query string state, then applies overrides.
func (h *ManagerHandler) render(c *gin.Context, status int, overrides gin.H) {
	ctx := c.Request.Context()
	visitor := middleware.VisitorID(c)
	designation := validDesignation(c.Query("designation"))

	data := gin.H{
		"Title":        "Manager Dashboard",
		"Stats":        h.dashboard.Statistics(ctx),
		"Tab":          "customers",
		"View":         "",
		"Customers":    usecases.Page[entities.Customer]{},
		"Employees":    usecases.Page[entities.Employee]{},
		"Result":       (*entities.Customer)(nil),
		"Modal":        "",
		"Search":       validation.SearchForm{},
		"CustomerForm": validation.NewManagerCustomerForm(),
		"EditSSN":      "",
		"EmployeeForm": validation.NewEmployeeForm(),
		"EditID":       int64(0),
		"Designation":  designation,
		"Designations": entities.Designations,
		"ClerkRaise":   validation.ClerkRaiseForm{},
		"ManagerRaise": validation.ManagerRaiseForm{},
	}
	if c.Query("tab") == "employees" || c.Query("view") == "employees" {
		data["Tab"] = "employees"
	}

	switch c.Query("view") {
	case "customers":
		if page, err := h.dashboard.CustomerPage(ctx, visitor, queryPage(c)); err == nil {
			data["View"] = "customers"
			data["Customers"] = page
		}
	case "search":
		if found, err := h.dashboard.Customer(ctx, c.Query("ssn")); err == nil {
			data["View"] = "search"
			data["Result"] = found
		}
	case "employees":
		if page, err := h.dashboard.EmployeePage(ctx, visitor, queryPage(c), designation); err == nil {
			data["View"] = "employees"
			data["Employees"] = page
		}
	}

	if m := c.Query("modal"); m == "search" || m == "customer" || m == "employee" {
		data["Modal"] = m
	}
	if edit := c.Query("edit"); edit != "" {
		if data["Tab"] == "employees" {
			h.loadEmployeeEdit(c, data, edit)
		} else {
			h.loadCustomerEdit(c, data, edit)
		}
	}

	for k, v := range overrides {
		data[k] = v
	}
	h.pages.Render(c, status, "manager", data)
}

func (h *ManagerHandler) loadCustomerEdit(c *gin.Context, data gin.H, ssn string) {
	existing, err := h.dashboard.Customer(c.Request.Context(), ssn)
	if err != nil {
		slog.Warn("customer to edit not available", "ssn", ssn, "error", err)
		return
	}
	data["Modal"] = "customer"
	data["EditSSN"] = ssn
	data["CustomerForm"] = validation.ManagerCustomerFormFrom(*existing)
}

func (h *ManagerHandler) loadEmployeeEdit(c *gin.Context, data gin.H, raw string) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return
	}
	existing, err := h.dashboard.Employee(c.Request.Context(), id)
	if err != nil {
		slog.Warn("employee to edit not available", "id", id, "error", err)
		return
	}
	data["Modal"] = "employee"
	data["EditID"] = id
	data["EmployeeForm"] = validation.EmployeeFormFrom(*existing)
}

// Show handles GET /dashboard/manager
func (h *ManagerHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, nil)
}

// ============= Customers =============

// LoadCustomers handles POST /dashboard/manager/customers/load
func (h *ManagerHandler) LoadCustomers(c *gin.Context) {
	if _, err := h.dashboard.LoadCustomers(c.Request.Context(), middleware.VisitorID(c)); err != nil {
		seeOther(c, managerBase+"?tab=customers")
		return
	}
	seeOther(c, managerBase+"?tab=customers&view=customers")
}

// RefreshCustomers handles POST /dashboard/manager/customers/refresh
func (h *ManagerHandler) RefreshCustomers(c *gin.Context) {
	if h.dashboard.RefreshCustomers(c.Request.Context(), middleware.VisitorID(c), formBool(c, "showing")) {
		seeOther(c, managerBase+"?tab=customers&view=customers")
		return
	}
	seeOther(c, managerBase+"?tab=customers")
}

// SearchCustomer handles POST /dashboard/manager/customers/search
func (h *ManagerHandler) SearchCustomer(c *gin.Context) {
	var form validation.SearchForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Modal": "search", "Search": form, "Errors": errs})
		return
	}
	if found := h.dashboard.SearchCustomer(c.Request.Context(), middleware.VisitorID(c), form.SSNID); found != nil {
		seeOther(c, managerBase+"?tab=customers&view=search&ssn="+url.QueryEscape(found.SSNID))
		return
	}
	seeOther(c, managerBase+"?tab=customers")
}

// ClearSearch handles POST /dashboard/manager/customers/search/clear and
// puts the full customer list back.
func (h *ManagerHandler) ClearSearch(c *gin.Context) {
	h.LoadCustomers(c)
}

// CreateCustomer handles POST /dashboard/manager/customers
func (h *ManagerHandler) CreateCustomer(c *gin.Context) {
	var form validation.ManagerCustomerForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Modal": "customer", "CustomerForm": form, "Errors": errs})
		return
	}
	customer := form.Customer()
	customer.Balance = form.InitialDeposit
	if _, err := h.dashboard.CreateCustomer(c.Request.Context(), middleware.VisitorID(c), customer); err != nil {
		h.render(c, http.StatusBadGateway, gin.H{"Modal": "customer", "CustomerForm": form})
		return
	}
	seeOther(c, managerBase+"?tab=customers&view=customers")
}

// UpdateCustomer handles POST /dashboard/manager/customers/:ssn
func (h *ManagerHandler) UpdateCustomer(c *gin.Context) {
	ssn := c.Param("ssn")
	var form validation.ManagerCustomerForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Modal": "customer", "EditSSN": ssn, "CustomerForm": form, "Errors": errs})
		return
	}
	form.SSNID = ssn
	if _, err := h.dashboard.UpdateCustomer(c.Request.Context(), middleware.VisitorID(c), ssn, form.Customer()); err != nil {
		h.render(c, http.StatusBadGateway, gin.H{"Modal": "customer", "EditSSN": ssn, "CustomerForm": form})
		return
	}
	seeOther(c, managerBase+"?tab=customers&view=customers")
}

// ConfirmDeleteCustomer handles GET /dashboard/manager/customers/:ssn/delete
func (h *ManagerHandler) ConfirmDeleteCustomer(c *gin.Context) {
	ssn := c.Param("ssn")
	existing, err := h.dashboard.Customer(c.Request.Context(), ssn)
	if err != nil {
		seeOther(c, managerBase+"?tab=customers&view=customers")
		return
	}
	h.pages.Render(c, http.StatusOK, "confirm", gin.H{
		"Title":   "Delete Customer",
		"Message": "Are you sure you want to delete customer " + existing.CustomerName + "?",
		"Action":  managerBase + "/customers/" + url.PathEscape(ssn) + "/delete",
		"Back":    managerBase + "?tab=customers&view=customers",
	})
}

// DeleteCustomer handles POST /dashboard/manager/customers/:ssn/delete
func (h *ManagerHandler) DeleteCustomer(c *gin.Context) {
	_ = h.dashboard.DeleteCustomer(c.Request.Context(), middleware.VisitorID(c), c.Param("ssn"))
	seeOther(c, managerBase+"?tab=customers&view=customers")
}

// ============= Employees =============

// LoadEmployees handles POST /dashboard/manager/employees/load
func (h *ManagerHandler) LoadEmployees(c *gin.Context) {
	if _, err := h.dashboard.LoadEmployees(c.Request.Context(), middleware.VisitorID(c)); err != nil {
		seeOther(c, managerBase+"?tab=employees")
		return
	}
	seeOther(c, employeesURL(1, ""))
}

// RefreshEmployees handles POST /dashboard/manager/employees/refresh
func (h *ManagerHandler) RefreshEmployees(c *gin.Context) {
	if h.dashboard.RefreshEmployees(c.Request.Context(), middleware.VisitorID(c), formBool(c, "showing")) {
		seeOther(c, employeesURL(1, ""))
		return
	}
	seeOther(c, managerBase+"?tab=employees")
}

// PickEmployee handles POST /dashboard/manager/employees/pick and opens
// the edit form for the first employee on screen.
func (h *ManagerHandler) PickEmployee(c *gin.Context) {
	visitor := middleware.VisitorID(c)
	page, _ := strconv.Atoi(c.PostForm("page"))
	if page < 1 {
		page = 1
	}
	designation := validDesignation(c.PostForm("designation"))

	var shown []entities.Employee
	if formBool(c, "showing") {
		if current, err := h.dashboard.EmployeePage(c.Request.Context(), visitor, page, designation); err == nil {
			shown = current.Items
		}
	}
	picked := h.dashboard.PickEmployeeToEdit(visitor, shown)
	if picked == nil {
		seeOther(c, managerBase+"?tab=employees")
		return
	}
	seeOther(c, fmt.Sprintf("%s&edit=%d", employeesURL(page, designation), picked.EmployeeID))
}

// CreateEmployee handles POST /dashboard/manager/employees
func (h *ManagerHandler) CreateEmployee(c *gin.Context) {
	var form validation.EmployeeForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Tab": "employees", "Modal": "employee", "EmployeeForm": form, "Errors": errs})
		return
	}
	form.EmployeeID = 0
	if _, err := h.dashboard.CreateEmployee(c.Request.Context(), middleware.VisitorID(c), form.Employee()); err != nil {
		h.render(c, http.StatusBadGateway, gin.H{"Tab": "employees", "Modal": "employee", "EmployeeForm": form})
		return
	}
	seeOther(c, employeesURL(1, ""))
}

// UpdateEmployee handles POST /dashboard/manager/employees/:id
func (h *ManagerHandler) UpdateEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		seeOther(c, managerBase+"?tab=employees")
		return
	}
	var form validation.EmployeeForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Tab": "employees", "Modal": "employee", "EditID": id, "EmployeeForm": form, "Errors": errs})
		return
	}
	form.EmployeeID = id
	if _, err := h.dashboard.UpdateEmployee(c.Request.Context(), middleware.VisitorID(c), id, form.Employee()); err != nil {
		h.render(c, http.StatusBadGateway, gin.H{"Tab": "employees", "Modal": "employee", "EditID": id, "EmployeeForm": form})
		return
	}
	seeOther(c, employeesURL(1, ""))
}

// ConfirmDeleteEmployee handles GET /dashboard/manager/employees/:id/delete
func (h *ManagerHandler) ConfirmDeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		seeOther(c, employeesURL(1, ""))
		return
	}
	existing, err := h.dashboard.Employee(c.Request.Context(), id)
	if err != nil {
		seeOther(c, employeesURL(1, ""))
		return
	}
	h.pages.Render(c, http.StatusOK, "confirm", gin.H{
		"Title":   "Delete Employee",
		"Message": fmt.Sprintf("Are you sure you want to delete employee %s %s?", existing.FirstName, existing.LastName),
		"Action":  fmt.Sprintf("%s/employees/%d/delete", managerBase, id),
		"Back":    employeesURL(1, ""),
	})
}

// DeleteEmployee handles POST /dashboard/manager/employees/:id/delete
func (h *ManagerHandler) DeleteEmployee(c *gin.Context) {
	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil {
		_ = h.dashboard.DeleteEmployee(c.Request.Context(), middleware.VisitorID(c), id)
	}
	seeOther(c, employeesURL(1, ""))
}

// ============= Salaries =============

// RaiseClerks handles POST /dashboard/manager/salary/clerks
func (h *ManagerHandler) RaiseClerks(c *gin.Context) {
	var form validation.ClerkRaiseForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Tab": "employees", "ClerkRaise": form, "Errors": errs})
		return
	}
	if err := h.dashboard.RaiseClerks(c.Request.Context(), middleware.VisitorID(c), form.Amount); err != nil {
		seeOther(c, managerBase+"?tab=employees")
		return
	}
	seeOther(c, employeesURL(1, entities.DesignationClerk))
}

// RaiseManagers handles POST /dashboard/manager/salary/managers
func (h *ManagerHandler) RaiseManagers(c *gin.Context) {
	var form validation.ManagerRaiseForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Tab": "employees", "ManagerRaise": form, "Errors": errs})
		return
	}
	if err := h.dashboard.RaiseManagers(c.Request.Context(), middleware.VisitorID(c), form.Percentage); err != nil {
		seeOther(c, managerBase+"?tab=employees")
		return
	}
	seeOther(c, employeesURL(1, entities.DesignationManager))
}
