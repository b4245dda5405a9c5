package models

// LoginRequest represents credentials provided by the client. The login
// endpoint accepts a form-encoded body (OAuth2 password style), JSON works too.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse is returned upon successful authentication.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ErrorResponse is the error shape for every API rejection.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
