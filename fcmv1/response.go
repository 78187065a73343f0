package fcmv1

import (
	"encoding/json"
	"net/http"
)

const Provider = "fcmv1"

// ResponseBody fcm v1 response body
type ResponseBody struct {
	Name  string    `json:"name"`
	Error *FCMError `json:"error"`
}

type FCMError struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Details []Detail `json:"details,omitempty"`
}

type Detail struct {
	Type      string `json:"@type"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// Result is the outcome of one request to the v1 endpoint.
type Result struct {
	StatusCode int
	Token      string
	Name       string
	Error      *FCMError
	RawBody    string
}

// Sent reports whether fcm accepted the message for delivery.
func (r *Result) Sent() bool {
	return r.StatusCode == http.StatusOK && r.Error == nil
}

func (r *Result) Status() int {
	return r.StatusCode
}

func (r *Result) Body() string {
	return r.RawBody
}

func (r *Result) Provider() string {
	return Provider
}

func (r *Result) RecipientIdentifier() string {
	return r.Token
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Provider string    `json:"provider"`
		Status   int       `json:"status"`
		Token    string    `json:"token,omitempty"`
		Name     string    `json:"name,omitempty"`
		Error    *FCMError `json:"error,omitempty"`
	}{
		Provider: Provider,
		Status:   r.StatusCode,
		Token:    r.Token,
		Name:     r.Name,
		Error:    r.Error,
	})
}
