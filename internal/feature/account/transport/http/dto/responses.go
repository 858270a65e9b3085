package dto

// MessageRes is the body of a successful signup.
type MessageRes struct {
	Message string `json:"message"`
}

// ErrorRes is the body of every failed request.
type ErrorRes struct {
	Error string `json:"error"`
}

// UserRes is the public view of a user. It never carries the password.
type UserRes struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRes is the body of a successful login.
type LoginRes struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}
