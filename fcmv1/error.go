package fcmv1

import "fmt"

// Error status strings of the v1 API.
const (
	InvalidArgument = "INVALID_ARGUMENT"
	Unregistered    = "UNREGISTERED"
	NotFound        = "NOT_FOUND"
	Unavailable     = "UNAVAILABLE"
	Internal        = "INTERNAL"
	QuotaExceeded   = "QUOTA_EXCEEDED"
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
