package httpHandler

import (
	"net/http"

	"bank-portal/usecases"
	"bank-portal/validation"

	"github.com/gin-gonic/gin"
)

var customerModals = map[string]bool{"profile": true, "deposit": true, "withdraw": true, "transfer": true}

type CustomerHandler struct {
	dashboard *usecases.CustomerDashboard
	pages     *Pages
}

func NewCustomerHandler(dashboard *usecases.CustomerDashboard, pages *Pages) *CustomerHandler {
	return &CustomerHandler{dashboard: dashboard, pages: pages}
}

// render loads the overview and draws the dashboard, with modal open and
// overrides (forms being re-shown, errors) on top.
func (h *CustomerHandler) render(c *gin.Context, status int, modal string, overrides gin.H) {
	overview := h.dashboard.Load(c.Request.Context(), actingSession(c))

	profile := validation.ProfileForm{Gender: "M"}
	if overview.Customer != nil {
		profile = validation.ProfileFormFrom(*overview.Customer)
	}
	if !customerModals[modal] {
		modal = ""
	}

	data := gin.H{
		"Title":        "Customer Dashboard",
		"Customer":     overview.Customer,
		"Transactions": overview.Transactions,
		"Modal":        modal,
		"Profile":      profile,
		"Deposit":      validation.DepositForm{},
		"Withdraw":     validation.WithdrawForm{},
		"Transfer":     validation.TransferForm{},
	}
	for k, v := range overrides {
		data[k] = v
	}
	h.pages.Render(c, status, "customer", data)
}

// Show handles GET /dashboard/customer
func (h *CustomerHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, c.Query("modal"), nil)
}

// UpdateProfile handles POST /dashboard/customer/profile
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	var form validation.ProfileForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, "profile", gin.H{"Profile": form, "Errors": errs})
		return
	}
	if err := h.dashboard.UpdateProfile(c.Request.Context(), actingSession(c), form); err != nil {
		seeOther(c, "/dashboard/customer?modal=profile")
		return
	}
	seeOther(c, "/dashboard/customer")
}

// Deposit handles POST /dashboard/customer/deposit
func (h *CustomerHandler) Deposit(c *gin.Context) {
	var form validation.DepositForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, "deposit", gin.H{"Deposit": form, "Errors": errs})
		return
	}
	if err := h.dashboard.Deposit(c.Request.Context(), actingSession(c), form.Amount); err != nil {
		seeOther(c, "/dashboard/customer?modal=deposit")
		return
	}
	seeOther(c, "/dashboard/customer")
}

// Withdraw handles POST /dashboard/customer/withdraw
func (h *CustomerHandler) Withdraw(c *gin.Context) {
	var form validation.WithdrawForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, "withdraw", gin.H{"Withdraw": form, "Errors": errs})
		return
	}
	if err := h.dashboard.Withdraw(c.Request.Context(), actingSession(c), form.Amount); err != nil {
		seeOther(c, "/dashboard/customer?modal=withdraw")
		return
	}
	seeOther(c, "/dashboard/customer")
}

// Transfer handles POST /dashboard/customer/transfer
func (h *CustomerHandler) Transfer(c *gin.Context) {
	var form validation.TransferForm
	if errs := bindForm(c, &form); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, "transfer", gin.H{"Transfer": form, "Errors": errs})
		return
	}
	if err := h.dashboard.Transfer(c.Request.Context(), actingSession(c), form.DestinationAccount, form.Amount); err != nil {
		seeOther(c, "/dashboard/customer?modal=transfer")
		return
	}
	seeOther(c, "/dashboard/customer")
}
