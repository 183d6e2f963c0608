package models

// LoginRequest is the body of POST /api/auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /api/auth/signup/.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

// ErrorResponse is the {error} body of a failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Text returns the first non-empty message field.
func (e ErrorResponse) Text() string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Detail != "":
		return e.Detail
	default:
		return e.Message
	}
}
