package fcm

// Payload is a request body for the legacy FCM HTTP API.
// https://firebase.google.com/docs/cloud-messaging/http-server-ref#downstream-http-messages-json
type Payload struct {
	To              string        `json:"to,omitempty"`
	RegistrationIDs []string      `json:"registration_ids,omitempty"`
	Data            *Data         `json:"data,omitempty"`
	Notification    *Notification `json:"notification,omitempty"`
}

// Data is the custom key-value part of a legacy payload.
type Data map[string]string

// Notification is the predefined notification part of a legacy payload.
type Notification struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}
