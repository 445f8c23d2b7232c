package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"bank-portal/confs"
	"bank-portal/entities"
	"bank-portal/handlers"
	httpHandler "bank-portal/handlers/http"
	"bank-portal/middleware"
	"bank-portal/services"
	"bank-portal/usecases"
	"bank-portal/web"
	"bank-portal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Deps are the wired use cases and shared state the routes run on.
type Deps struct {
	Auth     *usecases.AuthUseCase
	Customer *usecases.CustomerDashboard
	Desk     *usecases.EmployeeDesk
	Manager  *usecases.ManagerDashboard
	Notifier *services.Notifier
	Hub      *ws.Manager
	Guard    *middleware.Guard
	ToastTTL time.Duration
}

type Server struct {
	app  *gin.Engine
	addr string
}

func NewServer(cfg *confs.Config, deps Deps) (*Server, error) {
	if err := httpHandler.RegisterValidation(); err != nil {
		return nil, err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	app := gin.New()
	app.Use(gin.Recovery(), middleware.Visitor(cfg.CookieSecure), middleware.RequestLogger(), middleware.Metrics())

	// Setup CORS middleware
	config := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 || slices.Contains(cfg.CORSOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = cfg.CORSOrigins
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	app.Use(cors.New(config))

	app.SetHTMLTemplate(tmpl)
	app.StaticFS("/static", web.Static())

	s := &Server{app: app, addr: cfg.Addr}
	s.routes(deps)
	return s, nil
}

func (s *Server) routes(deps Deps) {
	guard := deps.Guard
	pages := httpHandler.NewPages(deps.Notifier, deps.ToastTTL)

	loginHandler := httpHandler.NewLoginHandler(deps.Auth, guard, pages)
	registerHandler := httpHandler.NewRegisterHandler(deps.Auth, pages)
	dashboardHandler := httpHandler.NewDashboardHandler(pages)
	customerHandler := httpHandler.NewCustomerHandler(deps.Customer, pages)
	employeeHandler := httpHandler.NewEmployeeHandler(deps.Desk, pages)
	managerHandler := httpHandler.NewManagerHandler(deps.Manager, pages)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifier)
	wsHandler := handlers.NewWSHandler(deps.Hub, deps.Notifier)

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	s.app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.app.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/login") })
	s.app.GET("/login", loginHandler.ShowLogin)
	s.app.POST("/login", loginHandler.Login)
	s.app.GET("/register", registerHandler.ShowRegister)
	s.app.POST("/register", registerHandler.Register)
	s.app.POST("/logout", loginHandler.Logout)
	s.app.GET("/unauthorized", dashboardHandler.Unauthorized)

	dashboard := s.app.Group("/dashboard", guard.RequireSession())
	{
		dashboard.GET("", dashboardHandler.Dashboard)

		customer := dashboard.Group("/customer", guard.RequireRole(entities.RoleCustomer))
		{
			customer.GET("", customerHandler.Show)
			customer.POST("/profile", customerHandler.UpdateProfile)
			customer.POST("/deposit", customerHandler.Deposit)
			customer.POST("/withdraw", customerHandler.Withdraw)
			customer.POST("/transfer", customerHandler.Transfer)
		}

		employee := dashboard.Group("/employee", guard.RequireRole(entities.RoleEmployee))
		{
			employee.GET("", employeeHandler.Show)
			employee.POST("/customers/load", employeeHandler.LoadCustomers)
			employee.POST("/search", employeeHandler.Search)
			employee.POST("/refresh", employeeHandler.Refresh)
			employee.POST("/customers", employeeHandler.CreateCustomer)
			employee.POST("/customers/:ssn", employeeHandler.UpdateCustomer)
			employee.GET("/customers/:ssn/delete", employeeHandler.ConfirmDelete)
			employee.POST("/customers/:ssn/delete", employeeHandler.DeleteCustomer)
		}

		manager := dashboard.Group("/manager", guard.RequireRole(entities.RoleManager))
		{
			manager.GET("", managerHandler.Show)

			customers := manager.Group("/customers")
			{
				customers.POST("", managerHandler.CreateCustomer)
				customers.POST("/load", managerHandler.LoadCustomers)
				customers.POST("/refresh", managerHandler.RefreshCustomers)
				customers.POST("/search", managerHandler.SearchCustomer)
				customers.POST("/search/clear", managerHandler.ClearSearch)
				customers.POST("/:ssn", managerHandler.UpdateCustomer)
				customers.GET("/:ssn/delete", managerHandler.ConfirmDeleteCustomer)
				customers.POST("/:ssn/delete", managerHandler.DeleteCustomer)
			}

			employees := manager.Group("/employees")
			{
				employees.POST("", managerHandler.CreateEmployee)
				employees.POST("/load", managerHandler.LoadEmployees)
				employees.POST("/refresh", managerHandler.RefreshEmployees)
				employees.POST("/pick", managerHandler.PickEmployee)
				employees.POST("/:id", managerHandler.UpdateEmployee)
				employees.GET("/:id/delete", managerHandler.ConfirmDeleteEmployee)
				employees.POST("/:id/delete", managerHandler.DeleteEmployee)
			}

			manager.POST("/salary/clerks", managerHandler.RaiseClerks)
			manager.POST("/salary/managers", managerHandler.RaiseManagers)
		}
	}

	api := s.app.Group("/api/v1")
	{
		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.DELETE("", notificationHandler.Clear)
			notifications.GET("/stats", notificationHandler.Stats)
			notifications.GET("/connected", wsHandler.GetConnectedVisitors)
			notifications.DELETE("/:id", notificationHandler.Dismiss)
		}
	}

	s.app.GET("/ws/notifications", wsHandler.HandleNotificationsWS)

	s.app.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.app
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("portal listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down portal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
