package httpHandler

import (
	"log/slog"
	"net/http"
	"net/url"

	"bank-portal/entities"
	"bank-portal/middleware"
	"bank-portal/usecases"
	"bank-portal/validation"

	"github.com/gin-gonic/gin"
)

const employeeBase = "/dashboard/employee"

type EmployeeHandler struct {
	desk  *usecases.EmployeeDesk
	pages *Pages
}

func NewEmployeeHandler(desk *usecases.EmployeeDesk, pages *Pages) *EmployeeHandler {
	return &EmployeeHandler{desk: desk, pages: pages}
}

// render draws the desk from the query string state, then applies overrides.
func (h *EmployeeHandler) render(c *gin.Context, status int, overrides gin.H) {
	ctx := c.Request.Context()
	data := gin.H{
		"Title":     "Employee Dashboard",
		"View":      "",
		"Customers": usecases.Page[entities.Customer]{},
		"Result":    (*entities.Customer)(nil),
		"Modal":     "",
		"Search":    validation.SearchForm{},
		"Create":    validation.NewDeskCustomerForm(),
		"Edit":      validation.DeskCustomerEditForm{},
		"EditSSN":   "",
	}

	switch c.Query("view") {
	case "customers":
		if page, err := h.desk.ActivePage(ctx, middleware.VisitorID(c), queryPage(c)); err == nil {
			data["View"] = "customers"
			data["Customers"] = page
		}
	case "search":
		if found, err := h.desk.Customer(ctx, c.Query("ssn")); err == nil {
			data["View"] = "search"
			data["Result"] = found
		}
	}

	if ssn := c.Query("edit"); ssn != "" {
		if existing, err := h.desk.Customer(ctx, ssn); err == nil {
			data["EditSSN"] = ssn
			data["Edit"] = validation.DeskCustomerEditFormFrom(*existing)
		} else {
			slog.Warn("customer to edit not available", "ssn", ssn, "error", err)
		}
	}
	if m := c.Query("modal"); m == "search" || m == "create" {
		data["Modal"] = m
	}

	for k, v := range overrides {
		data[k] = v
	}
	h.pages.Render(c, status, "employee", data)
}

// Show handles GET /dashboard/employee
func (h *EmployeeHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, nil)
}

// LoadCustomers handles POST /dashboard/employee/customers/load
func (h *EmployeeHandler) LoadCustomers(c *gin.Context) {
	if _, err := h.desk.LoadActive(c.Request.Context(), middleware.VisitorID(c)); err != nil {
		seeOther(c, employeeBase)
		return
	}
	seeOther(c, employeeBase+"?view=customers")
}

// Search handles POST /dashboard/employee/search
func (h *EmployeeHandler) Search(c *gin.Context) {
	var form validation.SearchForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Modal": "search", "Search": form, "Errors": errs})
		return
	}
	if found := h.desk.Search(c.Request.Context(), middleware.VisitorID(c), form.SSNID); found != nil {
		seeOther(c, employeeBase+"?view=search&ssn="+url.QueryEscape(found.SSNID))
		return
	}
	seeOther(c, employeeBase)
}

// CreateCustomer handles POST /dashboard/employee/customers
func (h *EmployeeHandler) CreateCustomer(c *gin.Context) {
	var form validation.DeskCustomerForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Modal": "create", "Create": form, "Errors": errs})
		return
	}
	if _, err := h.desk.CreateCustomer(c.Request.Context(), middleware.VisitorID(c), form.Registration()); err != nil {
		h.render(c, http.StatusBadGateway, gin.H{"Modal": "create", "Create": form})
		return
	}
	seeOther(c, employeeBase+"?view=customers")
}

// UpdateCustomer handles POST /dashboard/employee/customers/:ssn
func (h *EmployeeHandler) UpdateCustomer(c *gin.Context) {
	ssn := c.Param("ssn")
	var form validation.DeskCustomerEditForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, gin.H{"EditSSN": ssn, "Edit": form, "Errors": errs})
		return
	}
	if _, err := h.desk.UpdateCustomer(c.Request.Context(), middleware.VisitorID(c), ssn, form); err != nil {
		h.render(c, http.StatusBadGateway, gin.H{"EditSSN": ssn, "Edit": form})
		return
	}
	seeOther(c, employeeBase+"?view=customers")
}

// ConfirmDelete handles GET /dashboard/employee/customers/:ssn/delete
func (h *EmployeeHandler) ConfirmDelete(c *gin.Context) {
	ssn := c.Param("ssn")
	existing, err := h.desk.Customer(c.Request.Context(), ssn)
	if err != nil {
		seeOther(c, employeeBase+"?view=customers")
		return
	}
	h.pages.Render(c, http.StatusOK, "confirm", gin.H{
		"Title":   "Delete Customer",
		"Message": "Are you sure you want to delete customer " + existing.CustomerName + "?",
		"Action":  employeeBase + "/customers/" + url.PathEscape(ssn) + "/delete",
		"Back":    employeeBase + "?view=customers",
	})
}

// DeleteCustomer handles POST /dashboard/employee/customers/:ssn/delete
func (h *EmployeeHandler) DeleteCustomer(c *gin.Context) {
	_ = h.desk.DeleteCustomer(c.Request.Context(), middleware.VisitorID(c), c.Param("ssn"))
	seeOther(c, employeeBase+"?view=customers")
}

// Refresh handles POST /dashboard/employee/refresh
func (h *EmployeeHandler) Refresh(c *gin.Context) {
	if h.desk.Refresh(c.Request.Context(), middleware.VisitorID(c), formBool(c, "listing")) {
		seeOther(c, employeeBase+"?view=customers")
		return
	}
	seeOther(c, employeeBase)
}
