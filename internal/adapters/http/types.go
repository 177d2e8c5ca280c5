package http

// Fixed response messages. The login failure message is deliberately
// generic so an unknown user and a wrong password are indistinguishable.
const (
	MsgMissingFields = "please fill in all fields"
	MsgProductAdded  = "product added successfully"
	MsgBasketRemoved = "product removed from basket"
	MsgUserExists    = "user already exists"
	MsgRegistered    = "registration successful"
	MsgInvalidLogin  = "invalid login or password"
	MsgLoggedIn      = "login successful"
	MsgInternalError = "something went wrong"
)

// MessageResponse is the envelope most endpoints answer with
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the success flag alongside the message
type LoginResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
