package mock

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/kayac/fcmsend/fcmv1"
)

// FCMv1MockServer registers the v1 send endpoint for projectID on mux.
// Error injection is keyed off the message token: send to a token named
// after a v1 error status to receive that error.
func FCMv1MockServer(mux *http.ServeMux, projectID string, verbose bool) {
	p := fmt.Sprintf("/v1/projects/%s/messages:send", projectID)
	mux.HandleFunc(p, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if verbose {
				log.Printf("reqtime:%f proto:%s method:%s path:%s host:%s", reqtime(start), r.Proto, r.Method, r.URL.Path, r.RemoteAddr)
			}
		}()

		// sets the response time from FCM server
		time.Sleep(time.Millisecond * time.Duration(rand.Int63n(100)))

		var payload fcmv1.Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			createFCMv1ErrorResponse(w, http.StatusBadRequest, fcmv1.InvalidArgument)
			return
		}

		w.Header().Set("Content-Type", ApplicationJSON)
		switch payload.Message.Token {
		case fcmv1.InvalidArgument:
			createFCMv1ErrorResponse(w, http.StatusBadRequest, fcmv1.InvalidArgument)
		case fcmv1.Unregistered:
			createFCMv1ErrorResponse(w, http.StatusNotFound, fcmv1.Unregistered)
		case fcmv1.Unavailable:
			createFCMv1ErrorResponse(w, http.StatusServiceUnavailable, fcmv1.Unavailable)
		case fcmv1.Internal:
			createFCMv1ErrorResponse(w, http.StatusInternalServerError, fcmv1.Internal)
		case fcmv1.QuotaExceeded:
			createFCMv1ErrorResponse(w, http.StatusTooManyRequests, fcmv1.QuotaExceeded)
		default:
			enc := json.NewEncoder(w)
			enc.Encode(fcmv1.ResponseBody{
				Name: fmt.Sprintf("projects/%s/messages/0:%d", projectID, time.Now().UnixNano()),
			})
		}
	})
}

func createFCMv1ErrorResponse(w http.ResponseWriter, code int, status string) error {
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	return enc.Encode(fcmv1.ResponseBody{
		Error: &fcmv1.FCMError{
			Status:  status,
			Message: "mock error:" + status,
		},
	})
}
