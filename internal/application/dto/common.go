package dto

// ErrorResponse cuerpo de error HTTP. Message nunca expone texto crudo del store.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
