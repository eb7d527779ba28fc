package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"` // short message for humans
	Data    any    `json:"data,omitempty"`    // actual payload (can be nil)
	Detail  string `json:"detail,omitempty"`  // error detail (if any)
}
