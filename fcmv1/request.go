package fcmv1

import (
	"firebase.google.com/go/messaging"
)

// Payload is a request body for the FCM v1 API.
// https://firebase.google.com/docs/reference/fcm/rest/v1/projects.messages/send
type Payload struct {
	Message messaging.Message `json:"message"`
}
