package models

// OperatorRole labels what a dashboard operator does; it is carried in the
// JWT for the UI but not enforced beyond that.
type OperatorRole string

const (
	RoleManager       OperatorRole = "Manager"
	RoleDispatcher    OperatorRole = "Dispatcher"
	RoleSafetyOfficer OperatorRole = "Safety Officer"
	RoleAnalyst       OperatorRole = "Analyst"
)

// Operator is a dashboard account, defined in configuration
type Operator struct {
	Name         string       `json:"name" mapstructure:"name"`
	Email        string       `json:"email" mapstructure:"email"`
	PasswordHash string       `json:"-" mapstructure:"password_hash"`
	Role         OperatorRole `json:"role" mapstructure:"role"`
}

// LoginRequest is the credential payload for operator login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries an issued token and the operator it belongs to
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      OperatorRole `json:"role"`
}
