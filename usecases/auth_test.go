package usecases

import (
	"context"
	"net/http"
	"testing"
	"time"

	"bank-portal/clients"
	"bank-portal/entities"
	"bank-portal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthUseCase, *fakeAuth, *fakeCustomers, repositories.SessionRepository, *fakeNotifier) {
	auth := &fakeAuth{
		loginResp: &entities.LoginResponse{
			Message: "Login successful",
			User:    entities.User{ID: 1234567, Username: "jane", Role: entities.RoleCustomer},
		},
		cookies: []*http.Cookie{{Name: "JSESSIONID", Value: "abc123"}},
		session: &entities.SessionInfo{UserID: 1234567, Username: "jane", Role: entities.RoleCustomer},
	}
	customers := newFakeCustomers()
	sessions := repositories.NewSessionMemRepository()
	notify := &fakeNotifier{}
	return NewAuthUseCase(auth, customers, sessions, notify, time.Hour), auth, customers, sessions, notify
}

func TestLoginOpensSessionAndWelcomes(t *testing.T) {
	uc, _, _, sessions, notify := newAuthFixture()

	s, err := uc.Login(context.Background(), "visitor-1", "  jane ", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	assert.Equal(t, "visitor-1", s.VisitorID)
	assert.Equal(t, entities.RoleCustomer, s.Role)
	assert.Equal(t, "JSESSIONID=abc123", s.UpstreamCookies)
	assert.Equal(t, toast{"success", "Welcome back, jane!"}, notify.last())

	stored, err := sessions.GetByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567), stored.UserID)
}

func TestLoginFailureUsesServiceMessage(t *testing.T) {
	uc, auth, _, _, notify := newAuthFixture()

	auth.loginErr = &clients.APIError{Service: "auth", Status: http.StatusUnauthorized, Message: "Invalid username or password"}
	_, err := uc.Login(context.Background(), "v", "jane", "bad")
	require.Error(t, err)
	assert.Equal(t, toast{"error", "Invalid username or password"}, notify.last())

	auth.loginErr = &clients.APIError{Service: "auth", Status: http.StatusInternalServerError}
	_, err = uc.Login(context.Background(), "v", "jane", "bad")
	require.Error(t, err)
	assert.Equal(t, toast{"error", "Login failed. Please try again."}, notify.last())
}

func TestRegisterCreatesLoginThenCustomer(t *testing.T) {
	uc, auth, customers, _, notify := newAuthFixture()

	reg := entities.CustomerRegistration{
		SSNID:          "1234567",
		CustomerName:   "Jane Doe",
		Email:          "jane@example.com",
		Password:       "secret1",
		InitialDeposit: 500,
		AccountNumber:  "ACC1",
		AccountType:    entities.AccountTypeSavings,
	}
	c, err := uc.Register(context.Background(), "v", reg)
	require.NoError(t, err)

	require.Len(t, auth.registered, 1)
	assert.Equal(t, "jane@example.com", auth.registered[0].Username)
	assert.Equal(t, entities.RoleCustomer, auth.registered[0].Role)
	require.Len(t, customers.created, 1)
	assert.Equal(t, 500.0, c.Balance)
	assert.Equal(t, toast{"success", "Registration successful! Your account has been created."}, notify.last())
}

func TestRegisterStopsWhenLoginCannotBeCreated(t *testing.T) {
	uc, auth, customers, _, notify := newAuthFixture()
	auth.registerErr = &clients.APIError{Status: http.StatusBadRequest, Message: "Username already exists"}

	_, err := uc.Register(context.Background(), "v", entities.CustomerRegistration{Email: "a@b.c"})
	require.Error(t, err)
	assert.Empty(t, customers.created)
	assert.Equal(t, toast{"error", "Username already exists"}, notify.last())
}

func TestRegisterReportsCustomerFailure(t *testing.T) {
	uc, _, customers, _, notify := newAuthFixture()
	customers.createErr = &clients.APIError{Status: http.StatusInternalServerError}

	_, err := uc.Register(context.Background(), "v", entities.CustomerRegistration{Email: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, toast{"error", "Failed to create customer account"}, notify.last())
}

func TestLogoutAlwaysDropsSession(t *testing.T) {
	uc, auth, _, sessions, _ := newAuthFixture()
	s, err := uc.Login(context.Background(), "v", "jane", "secret")
	require.NoError(t, err)

	auth.logoutErr = &clients.APIError{Status: http.StatusBadGateway}
	uc.Logout(context.Background(), s.ID)

	require.Len(t, auth.logouts, 1)
	assert.Equal(t, "abc123", auth.logouts[0][0].Value)
	_, err = sessions.GetByID(s.ID)
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)

	uc.Logout(context.Background(), "")
	assert.Len(t, auth.logouts, 1)
}

func TestCurrentRefreshesFromAuthService(t *testing.T) {
	uc, auth, _, _, _ := newAuthFixture()
	s, err := uc.Login(context.Background(), "v", "jane", "secret")
	require.NoError(t, err)

	auth.session = &entities.SessionInfo{UserID: 7654321, Username: "jane.doe", Role: entities.RoleEmployee}
	current, err := uc.Current(context.Background(), s.ID)
	require.NoError(t, err)

	assert.Equal(t, "jane.doe", current.Username)
	assert.Equal(t, entities.RoleEmployee, current.Role)
	assert.Equal(t, int64(7654321), current.UserID)
	require.Len(t, auth.sessionSeen, 1)
	assert.Equal(t, "JSESSIONID", auth.sessionSeen[0].Name)
}

func TestCurrentRejectsMissingExpiredAndRevoked(t *testing.T) {
	uc, auth, _, sessions, _ := newAuthFixture()

	_, err := uc.Current(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = uc.Current(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoSession)

	s, err := uc.Login(context.Background(), "v", "jane", "secret")
	require.NoError(t, err)
	auth.session = nil
	_, err = uc.Current(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = sessions.GetByID(s.ID)
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)

	auth.session = &entities.SessionInfo{Username: "jane", Role: entities.RoleCustomer}
	s, err = uc.Login(context.Background(), "v", "jane", "secret")
	require.NoError(t, err)
	uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = uc.Current(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentSurfacesAuthOutage(t *testing.T) {
	uc, auth, _, _, _ := newAuthFixture()
	s, err := uc.Login(context.Background(), "v", "jane", "secret")
	require.NoError(t, err)

	auth.sessionErr = &clients.APIError{Status: http.StatusServiceUnavailable}
	_, err = uc.Current(context.Background(), s.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}

func TestDashboardPath(t *testing.T) {
	cases := map[entities.Role]string{
		entities.RoleCustomer: "/dashboard/customer",
		entities.RoleEmployee: "/dashboard/employee",
		entities.RoleManager:  "/dashboard/manager",
	}
	for role, want := range cases {
		got, ok := DashboardPath(role)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := DashboardPath(entities.RoleAdmin)
	assert.False(t, ok)
}

func TestCookiesRoundTrip(t *testing.T) {
	header := EncodeCookies([]*http.Cookie{{Name: "JSESSIONID", Value: "x"}, nil, {Name: "route", Value: "a1"}})
	assert.Equal(t, "JSESSIONID=x; route=a1", header)

	decoded := DecodeCookies(header)
	require.Len(t, decoded, 2)
	assert.Equal(t, "route", decoded[1].Name)
	assert.Nil(t, DecodeCookies("  "))
}
