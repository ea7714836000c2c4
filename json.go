package errcode

import (
	"encoding/json"
)

// Response is the flat, serializable shape of an error code.
type Response struct {
	// Category is the category name, e.g. "PosixError".
	Category string `json:"category" yaml:"category"`

	// Code is the raw code.
	Code Int `json:"code" yaml:"code"`

	// Symbol is the symbolic name when the category knows one.
	// Omitted from JSON if empty.
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`

	// Message is the rendered description.
	Message string `json:"message" yaml:"message"`

	// Classification is RETRYABLE for would-block codes and PERMANENT otherwise.
	Classification string `json:"classification" yaml:"classification"`
}

// NewResponse renders e into a Response.
func NewResponse(e ErrorCode) *Response {
	var buf MessageBuf
	return &Response{
		Category:       e.Category().Name(),
		Code:           e.code,
		Symbol:         e.Symbol(),
		Message:        string(e.Message(&buf)),
		Classification: string(e.Classification()),
	}
}

// ToJSON converts the code carried by err to a Response.
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := conn.Read(p); err != nil {
//	    json.NewEncoder(w).Encode(errcode.ToJSON(err))
//	}
func ToJSON(err error) *Response {
	if err == nil {
		return nil
	}
	return NewResponse(FromError(err))
}

// MarshalJSON implements json.Marshaler.
//
//	{"category":"PosixError","code":2,"symbol":"ENOENT","message":"No such file or directory","classification":"PERMANENT"}
func (e ErrorCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewResponse(e))
}
