package fcmv1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"firebase.google.com/go/messaging"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"
)

func testMessage(token string) Payload {
	return Payload{
		Message: messaging.Message{
			Notification: &messaging.Notification{
				Title: "FCM Notification",
				Body:  "Notification from FCM",
			},
			Token: token,
		},
	}
}

func TestSendSetsBearerAuthorization(t *testing.T) {
	var gotAuth, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ResponseBody{
			Name: "projects/test/messages/0:1487073977923500",
		})
	}))
	defer ts.Close()

	ep, _ := url.Parse(ts.URL)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-access-token"})
	c, err := NewClientWithTokenSource("test", src, ep, ClientTimeout)
	if err != nil {
		t.Fatal(err)
	}

	res, err := c.Send(testMessage("testToken"))
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer test-access-token" {
		t.Errorf("unexpected authorization header: %s", gotAuth)
	}
	if gotContentType != ContentTypeJSON {
		t.Errorf("unexpected content-type header: %s", gotContentType)
	}
	if !res.Sent() {
		t.Errorf("message should be sent: %v", res)
	}
	if res.Name != "projects/test/messages/0:1487073977923500" {
		t.Errorf("unexpected message name: %s", res.Name)
	}
	if res.RecipientIdentifier() != "testToken" {
		t.Errorf("unexpected recipient: %s", res.RecipientIdentifier())
	}
}

func TestSendErrorResponseIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ResponseBody{
			Error: &FCMError{
				Status:  Unregistered,
				Message: "Requested entity was not found.",
			},
		})
	}))
	defer ts.Close()

	ep, _ := url.Parse(ts.URL)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-access-token"})
	c, err := NewClientWithTokenSource("test", src, ep, ClientTimeout)
	if err != nil {
		t.Fatal(err)
	}

	res, err := c.Send(testMessage("goneToken"))
	if err != nil {
		t.Fatalf("a non-200 status must not be an error: %s", err)
	}
	if res.Sent() {
		t.Error("message should not be sent")
	}
	if res.Status() != http.StatusNotFound {
		t.Errorf("unexpected status: %d", res.Status())
	}
	expected := &FCMError{
		Status:  Unregistered,
		Message: "Requested entity was not found.",
	}
	if diff := cmp.Diff(res.Error, expected); diff != "" {
		t.Errorf("mismatch decoded error: diff: %s", diff)
	}
}

func TestNewClientFromServiceAccount(t *testing.T) {
	c, err := NewClient("testdata/service-account.json", nil, ClientTimeout)
	if err != nil {
		t.Fatal(err)
	}
	if g, w := c.endpoint.String(), "https://fcm.googleapis.com/v1/projects/sample-project/messages:send"; g != w {
		t.Errorf("unexpected endpoint: got %s want %s", g, w)
	}
	if c.tokenSource == nil {
		t.Error("token source should be built")
	}

	if _, err := NewClient("testdata/missing.json", nil, ClientTimeout); err == nil {
		t.Error("a missing service account file should fail")
	}
}

func TestDefaultEndpointPerProject(t *testing.T) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-access-token"})
	c, err := NewClientWithTokenSource("sample-project", src, nil, ClientTimeout)
	if err != nil {
		t.Fatal(err)
	}
	if g, w := c.endpoint.String(), "https://fcm.googleapis.com/v1/projects/sample-project/messages:send"; g != w {
		t.Errorf("unexpected endpoint: got %s want %s", g, w)
	}
}
