package utils

// Result is the usecase return envelope. Error is nil on success.
type Result struct {
	Data  interface{}
	Error error
}
