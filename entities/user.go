package entities

// Role is the authorization role the auth service assigns to a user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// DisplayName returns the label shown in the dashboard header.
func (r Role) DisplayName() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleEmployee:
		return "Employee"
	case RoleManager:
		return "Manager"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// User mirrors the auth service user record. The password never leaves the auth service.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Enabled   bool   `json:"enabled,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	LastLogin string `json:"lastLogin,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	User      User   `json:"user"`
	SessionID string `json:"sessionId,omitempty"`
}

// RegisterUserRequest is the auth service registration payload.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// SessionInfo is the auth service view of the current upstream session.
type SessionInfo struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	SessionID string `json:"sessionId"`
}
