package httpHandler

import (
	"net/http"

	"bank-portal/entities"
	"bank-portal/middleware"
	"bank-portal/usecases"
	"bank-portal/validation"

	"github.com/gin-gonic/gin"
)

var loginRoles = []entities.Role{entities.RoleCustomer, entities.RoleEmployee, entities.RoleManager}

type LoginHandler struct {
	auth  *usecases.AuthUseCase
	guard *middleware.Guard
	pages *Pages
}

func NewLoginHandler(auth *usecases.AuthUseCase, guard *middleware.Guard, pages *Pages) *LoginHandler {
	return &LoginHandler{auth: auth, guard: guard, pages: pages}
}

func loginRole(raw string) entities.Role {
	for _, r := range loginRoles {
		if string(r) == raw {
			return r
		}
	}
	return entities.RoleCustomer
}

func (h *LoginHandler) renderLogin(c *gin.Context, status int, form validation.LoginForm, errs validation.FieldErrors) {
	h.pages.Render(c, status, "login", gin.H{
		"Title":  "Login",
		"Roles":  loginRoles,
		"Role":   loginRole(form.Role),
		"Form":   form,
		"Errors": errs,
	})
}

// ShowLogin handles GET /login. Picking a role tab starts from an empty form.
func (h *LoginHandler) ShowLogin(c *gin.Context) {
	if h.guard.Lookup(c) != nil {
		seeOther(c, "/dashboard")
		return
	}
	h.renderLogin(c, http.StatusOK, validation.LoginForm{Role: c.Query("role")}, nil)
}

// Login handles POST /login
func (h *LoginHandler) Login(c *gin.Context) {
	var form validation.LoginForm
	if errs := bindForm(c, &form); errs != nil {
		form.Password = ""
		h.renderLogin(c, http.StatusUnprocessableEntity, form, errs)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), middleware.VisitorID(c), form.Identifier, form.Password)
	if err != nil {
		form.Password = ""
		h.renderLogin(c, http.StatusUnauthorized, form, nil)
		return
	}
	if err := h.guard.IssueCookie(c, session); err != nil {
		h.auth.Logout(c.Request.Context(), session.ID)
		c.String(http.StatusInternalServerError, "could not start session")
		return
	}
	seeOther(c, "/dashboard")
}

// Logout handles POST /logout
func (h *LoginHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context(), h.guard.SessionID(c))
	h.guard.ClearCookie(c)
	seeOther(c, "/login")
}
