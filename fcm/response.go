package fcm

import (
	"encoding/json"
	"net/http"
)

const Provider = "fcm"

// ResponseBody is the legacy fcm connection server response body.
type ResponseBody struct {
	MulticastID  int             `json:"multicast_id"`
	Success      int             `json:"success"`
	Failure      int             `json:"failure"`
	CanonicalIDs int             `json:"canonical_ids"`
	Results      []MessageResult `json:"results,omitempty"`
	MessageID    int             `json:"message_id,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// MessageResult is the per-message status inside a legacy response.
type MessageResult struct {
	MessageID      string `json:"message_id,omitempty"`
	RegistrationID string `json:"registration_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Result is the outcome of one request to the legacy endpoint.
type Result struct {
	StatusCode int
	To         string
	RawBody    string
	Response   ResponseBody
}

// Sent reports whether fcm accepted the request for delivery.
func (r *Result) Sent() bool {
	return r.StatusCode == http.StatusOK
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
	return r.To
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Provider string       `json:"provider"`
		Status   int          `json:"status"`
		To       string       `json:"to,omitempty"`
		Response ResponseBody `json:"response"`
	}{
		Provider: Provider,
		Status:   r.StatusCode,
		To:       r.To,
		Response: r.Response,
	})
}
