package mock

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/kayac/fcmsend/fcm"
)

const ApplicationJSON = "application/json"

func reqtime(start time.Time) float64 {
	return time.Now().Sub(start).Seconds()
}

// FCMMockServer registers the legacy fcm send endpoint on mux. Error
// injection is keyed off the target: send to a token named after a
// legacy error code to receive that error.
func FCMMockServer(mux *http.ServeMux, apiKey string, verbose bool) {
	mux.HandleFunc("/fcm/send", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if verbose {
				log.Printf("reqtime:%f proto:%s method:%s path:%s host:%s", reqtime(start), r.Proto, r.Method, r.URL.Path, r.RemoteAddr)
			}
		}()

		// sets the response time from FCM server
		time.Sleep(time.Millisecond * time.Duration(rand.Int63n(100)))

		if r.Header.Get("Authorization") != fmt.Sprintf("key=%s", apiKey) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, "INVALID_KEY")
			return
		}

		var p fcm.Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "JSON_PARSING_ERROR")
			return
		}

		w.Header().Set("Content-Type", ApplicationJSON)
		switch p.To {
		case fcm.NotRegistered, fcm.InvalidRegistration, fcm.MissingRegistration:
			json.NewEncoder(w).Encode(fcm.ResponseBody{
				MulticastID: rand.Int(),
				Failure:     1,
				Results: []fcm.MessageResult{
					{Error: p.To},
				},
			})
		case fcm.Unavailable:
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, "Service Unavailable")
		case fcm.InternalServerError:
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "Internal Server Error")
		default:
			json.NewEncoder(w).Encode(fcm.ResponseBody{
				MulticastID: rand.Int(),
				Success:     1,
				Results: []fcm.MessageResult{
					{MessageID: fmt.Sprintf("0:%d", time.Now().UnixNano())},
				},
			})
		}
	})
}
