package model

// GenerateRequest represents a password generation request.
// Length is left untyped so both numbers and raw text from form fields are accepted.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    any   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength string `json:"strength"`
}

// StrengthRequest asks for the rating of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the rating and the points behind it.
type StrengthResponse struct {
	Strength string `json:"strength"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
