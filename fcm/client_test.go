package fcm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestMarshalPayload(t *testing.T) {
	p := Payload{
		To: "testToken",
		Data: &Data{
			"title": "FCM Notification",
			"body":  "Notification from FCM",
		},
	}
	output, err := json.Marshal(p)
	if err != nil {
		t.Error(err)
	}

	expected := `{"to":"testToken","data":{"body":"Notification from FCM","title":"FCM Notification"}}`
	if string(output) != expected {
		t.Errorf("should be expected json: got=%s, expected=%s", output, expected)
	}
}

func TestSendSetsLegacyAuthorization(t *testing.T) {
	var gotAuth, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ResponseBody{
			MulticastID: 100,
			Success:     1,
			Results: []MessageResult{
				{MessageID: "0:1487073977923500%caa8591dcaa8591d"},
			},
		})
	}))
	defer ts.Close()

	ep, _ := url.Parse(ts.URL)
	c := NewClient("ABC123", ep, ClientTimeout)

	res, err := c.Send(Payload{To: "testToken", Data: &Data{"title": "t", "body": "b"}})
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "key=ABC123" {
		t.Errorf("unexpected authorization header: %s", gotAuth)
	}
	if gotContentType != ContentTypeJSON {
		t.Errorf("unexpected content-type header: %s", gotContentType)
	}
	if !res.Sent() {
		t.Errorf("message should be sent: %v", res)
	}
	if res.Response.Success != 1 {
		t.Errorf("unexpected response body: %v", res.Response)
	}
	if res.RecipientIdentifier() != "testToken" {
		t.Errorf("unexpected recipient: %s", res.RecipientIdentifier())
	}
	if res.Provider() != Provider {
		t.Errorf("unexpected provider: %s", res.Provider())
	}
}

func TestSendUnauthorizedIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the legacy endpoint replies to bad keys with a non-JSON body
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("INVALID_KEY"))
	}))
	defer ts.Close()

	ep, _ := url.Parse(ts.URL)
	c := NewClient("wrong", ep, ClientTimeout)

	res, err := c.Send(Payload{To: "testToken"})
	if err != nil {
		t.Fatalf("a non-200 status must not be an error: %s", err)
	}
	if res.Sent() {
		t.Error("message should not be sent")
	}
	if res.Status() != http.StatusUnauthorized {
		t.Errorf("unexpected status: %d", res.Status())
	}
	if res.Body() != "INVALID_KEY" {
		t.Errorf("raw body should be kept: %q", res.Body())
	}
}
