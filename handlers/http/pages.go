package httpHandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bank-portal/entities"
	"bank-portal/middleware"
	"bank-portal/validation"
	"bank-portal/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ToastSource lists the live toasts of a visitor.
type ToastSource interface {
	List(visitorID string) []entities.Notification
}

// Pages renders full HTML pages with the layout data every page needs.
type Pages struct {
	toasts ToastSource
	ttl    time.Duration
}

func NewPages(toasts ToastSource, ttl time.Duration) *Pages {
	return &Pages{toasts: toasts, ttl: ttl}
}

// Render executes the named template. Data keys set by the caller win over the defaults.
func (p *Pages) Render(c *gin.Context, status int, name string, data gin.H) {
	page := gin.H{
		"Title":    "Banking Portal",
		"BankName": web.BankName,
		"Session":  middleware.CurrentSession(c),
		"Toasts":   p.toasts.List(middleware.VisitorID(c)),
		"ToastTTL": p.ttl,
		"Errors":   validation.FieldErrors(nil),
	}
	for k, v := range data {
		page[k] = v
	}
	c.HTML(status, name, page)
}

// RegisterValidation adds the portal's form rules to gin's binding engine.
func RegisterValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return validation.Register(v)
}

// bindForm binds the posted form into dst and returns the per-field problems, if any.
func bindForm(c *gin.Context, dst any) validation.FieldErrors {
	if err := c.ShouldBindWith(dst, binding.Form); err != nil {
		slog.Debug("form rejected", "path", c.Request.URL.Path, "error", err)
		return validation.Translate(err)
	}
	return nil
}

// actingSession is the guarded session with toasts routed to the browser making the request.
func actingSession(c *gin.Context) *entities.Session {
	s := middleware.CurrentSession(c)
	if s == nil {
		return nil
	}
	acting := *s
	if v := middleware.VisitorID(c); v != "" {
		acting.VisitorID = v
	}
	return &acting
}

func seeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func formBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(c.PostForm(key))
	return b
}
