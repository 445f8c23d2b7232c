package httpHandler

import (
	"net/http"

	"bank-portal/middleware"
	"bank-portal/usecases"
	"bank-portal/validation"

	"github.com/gin-gonic/gin"
)

type RegisterHandler struct {
	auth  *usecases.AuthUseCase
	pages *Pages
}

func NewRegisterHandler(auth *usecases.AuthUseCase, pages *Pages) *RegisterHandler {
	return &RegisterHandler{auth: auth, pages: pages}
}

func (h *RegisterHandler) render(c *gin.Context, status int, data gin.H) {
	data["Title"] = "Register"
	h.pages.Render(c, status, "register", data)
}

// ShowRegister handles GET /register
func (h *RegisterHandler) ShowRegister(c *gin.Context) {
	h.render(c, http.StatusOK, gin.H{"Form": validation.RegisterForm{AccountType: "Savings"}})
}

// Register handles POST /register. Success renders the confirmation panel in place.
func (h *RegisterHandler) Register(c *gin.Context) {
	var form validation.RegisterForm
	if errs := bindForm(c, &form); errs != nil {
		form.Password, form.ConfirmPassword = "", ""
		h.render(c, http.StatusUnprocessableEntity, gin.H{"Form": form, "Errors": errs})
		return
	}

	created, err := h.auth.Register(c.Request.Context(), middleware.VisitorID(c), form.Registration())
	if err != nil {
		form.Password, form.ConfirmPassword = "", ""
		h.render(c, http.StatusBadGateway, gin.H{"Form": form})
		return
	}
	h.render(c, http.StatusCreated, gin.H{"Form": form, "Created": created})
}
