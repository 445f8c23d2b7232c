package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bank-portal/clients"
	"bank-portal/entities"
	"bank-portal/repositories"
)

// AuthUseCase owns portal sessions and the login, registration and logout flows.
type AuthUseCase struct {
	auth      clients.AuthAPI
	customers clients.CustomerAPI
	sessions  repositories.SessionRepository
	notify    Notifier
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthUseCase(auth clients.AuthAPI, customers clients.CustomerAPI, sessions repositories.SessionRepository, notify Notifier, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{
		auth:      auth,
		customers: customers,
		sessions:  sessions,
		notify:    notify,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Login authenticates against the auth service and opens a portal session.
func (uc *AuthUseCase) Login(ctx context.Context, visitorID, identifier, password string) (*entities.Session, error) {
	resp, cookies, err := uc.auth.Login(ctx, entities.LoginRequest{
		Username: strings.TrimSpace(identifier),
		Password: password,
	})
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Login failed. Please try again."))
		return nil, err
	}

	now := uc.now().UTC()
	session := &entities.Session{
		VisitorID:       visitorID,
		UserID:          resp.User.ID,
		Username:        resp.User.Username,
		Role:            resp.User.Role,
		UpstreamCookies: EncodeCookies(cookies),
		CreatedAt:       now,
		ExpiresAt:       now.Add(uc.ttl),
	}
	if err := uc.sessions.Create(session); err != nil {
		uc.notify.Error(visitorID, "Login failed. Please try again.")
		return nil, fmt.Errorf("store session: %w", err)
	}

	slog.Info("user logged in", "username", session.Username, "role", session.Role)
	uc.notify.Success(visitorID, fmt.Sprintf("Welcome back, %s!", resp.User.Username))
	return session, nil
}

// Register creates the login first and the customer record second.
// The username of the new login is the customer's email.
func (uc *AuthUseCase) Register(ctx context.Context, visitorID string, reg entities.CustomerRegistration) (*entities.Customer, error) {
	if _, err := uc.auth.Register(ctx, entities.RegisterUserRequest{
		Username: reg.Email,
		Password: reg.Password,
		Email:    reg.Email,
		Role:     entities.RoleCustomer,
	}); err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Registration failed. Please try again."))
		return nil, err
	}

	customer, err := uc.customers.Create(ctx, reg.Customer())
	if err != nil {
		uc.notify.Error(visitorID, clients.MessageOr(err, "Failed to create customer account"))
		return nil, err
	}

	uc.notify.Success(visitorID, "Registration successful! Your account has been created.")
	return customer, nil
}

// Logout ends the upstream and the portal session. It never fails from the
// caller's point of view: a dead auth service must not keep anyone logged in.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	session, err := uc.sessions.GetByID(sessionID)
	if err == nil {
		if err := uc.auth.Logout(ctx, DecodeCookies(session.UpstreamCookies)); err != nil {
			slog.Warn("upstream logout failed", "username", session.Username, "error", err)
		}
	}
	if err := uc.sessions.Delete(sessionID); err != nil {
		slog.Error("deleting session", "error", err)
	}
}

// Current resolves a portal session and confirms it with the auth service.
// The returned session carries the username and role the auth service reports now.
func (uc *AuthUseCase) Current(ctx context.Context, sessionID string) (*entities.Session, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	session, err := uc.sessions.GetByID(sessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	now := uc.now().UTC()
	if session.Expired(now) {
		_ = uc.sessions.Delete(session.ID)
		return nil, ErrNoSession
	}

	info, err := uc.auth.Session(ctx, DecodeCookies(session.UpstreamCookies))
	if err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}
	if info == nil {
		_ = uc.sessions.Delete(session.ID)
		return nil, ErrNoSession
	}

	if info.Username != "" {
		session.Username = info.Username
	}
	if info.Role != "" {
		session.Role = info.Role
	}
	if info.UserID != 0 {
		session.UserID = info.UserID
	}
	session.LastSeenAt = now
	if err := uc.sessions.Update(session); err != nil {
		slog.Warn("refreshing session", "error", err)
	}
	return session, nil
}

// DashboardPath is where a role lands after login.
func DashboardPath(role entities.Role) (string, bool) {
	switch role {
	case entities.RoleCustomer:
		return "/dashboard/customer", true
	case entities.RoleEmployee:
		return "/dashboard/employee", true
	case entities.RoleManager:
		return "/dashboard/manager", true
	default:
		return "", false
	}
}
