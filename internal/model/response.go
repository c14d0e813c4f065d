package model

type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse carries per-field validation messages, e.g.
// {"error":{"password":["password must be at least 6 characters"]}}.
type FieldErrorResponse struct {
	Error map[string][]string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LogoutResponse struct {
	Status string `json:"status"`
}
