package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bank-portal/entities"
)

// AuthClient talks to the auth service (/api/auth).
type AuthClient struct {
	rest *restClient
}

func NewAuthClient(baseURL string, httpClient *http.Client) *AuthClient {
	return &AuthClient{rest: newRESTClient("auth", baseURL, httpClient)}
}

// Login posts the credentials and returns the upstream session cookies with the response.
func (c *AuthClient) Login(ctx context.Context, req entities.LoginRequest) (*entities.LoginResponse, []*http.Cookie, error) {
	var resp entities.LoginResponse
	cookies, err := c.rest.do(ctx, http.MethodPost, "/login", nil, req, &resp)
	if err != nil {
		return nil, nil, err
	}
	return &resp, cookies, nil
}

func (c *AuthClient) Register(ctx context.Context, req entities.RegisterUserRequest) (*entities.User, error) {
	var raw json.RawMessage
	if err := c.rest.send(ctx, http.MethodPost, "/register", req, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Message string         `json:"message"`
		User    *entities.User `json:"user"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("auth: decode register response: %w", err)
		}
	}
	if wrapped.User != nil {
		return wrapped.User, nil
	}

	var user entities.User
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("auth: decode register response: %w", err)
		}
	}
	return &user, nil
}

func (c *AuthClient) Logout(ctx context.Context, cookies []*http.Cookie) error {
	_, err := c.rest.do(ctx, http.MethodPost, "/logout", cookies, struct{}{}, nil)
	return err
}

// Session returns the upstream session, or nil when the service reports none.
func (c *AuthClient) Session(ctx context.Context, cookies []*http.Cookie) (*entities.SessionInfo, error) {
	var info entities.SessionInfo
	if _, err := c.rest.do(ctx, http.MethodGet, "/session", cookies, nil, &info); err != nil {
		if IsUnauthorized(err) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func (c *AuthClient) UserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := c.rest.get(ctx, "/users"+seg(username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
