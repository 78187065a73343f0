package fcm

import "fmt"

// Well-known legacy error codes returned with a 200 status.
const (
	MissingRegistration = "MissingRegistration"
	InvalidRegistration = "InvalidRegistration"
	NotRegistered       = "NotRegistered"
	MessageTooBig       = "MessageTooBig"
	Unavailable         = "Unavailable"
	InternalServerError = "InternalServerError"
)

type Error struct {
	StatusCode int
	Reason     string
}

func (e Error) Error() string {
	return fmt.Sprintf("status:%d reason:%s", e.StatusCode, e.Reason)
}

func NewError(s int, r string) Error {
	return Error{
		StatusCode: s,
		Reason:     r,
	}
}
