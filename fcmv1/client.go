package fcmv1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// fcm v1 Client const variables
const (
	DefaultFCMEndpointFmt = "https://fcm.googleapis.com/v1/projects/%s/messages:send"
	Scope                 = "https://www.googleapis.com/auth/firebase.messaging"
	ClientTimeout         = time.Second * 10
	ContentTypeJSON       = "application/json; UTF-8"
)

// Client is FCM v1 client
type Client struct {
	endpoint    *url.URL
	Client      *http.Client
	tokenSource oauth2.TokenSource
}

// Send posts p to fcm once. A non-200 status is not an error: the outcome
// is carried by the returned Result together with the raw response text.
// Errors are reserved for request building, token retrieval and transport
// failures.
func (c *Client) Send(p Payload) (*Result, error) {
	req, err := c.NewRequest(p)
	if err != nil {
		return nil, err
	}

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, NewError(res.StatusCode, err.Error())
	}

	result := &Result{
		StatusCode: res.StatusCode,
		Token:      p.Message.Token,
		RawBody:    string(body),
	}
	var rb ResponseBody
	if err := json.Unmarshal(body, &rb); err != nil {
		if res.StatusCode == http.StatusOK {
			return nil, NewError(res.StatusCode, err.Error())
		}
	} else {
		result.Name = rb.Name
		result.Error = rb.Error
	}

	return result, nil
}

// NewRequest creates request for fcm. The bearer token is retrieved from
// the token source on each request; the oauth2 package caches it until
// near expiry.
func (c *Client) NewRequest(p Payload) (*http.Request, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	token, err := c.tokenSource.Token()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("POST", c.endpoint.String(), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", ContentTypeJSON)

	return req, nil
}

// NewClient establishes a http connection with fcm v1 using a service
// account file.
func NewClient(serviceAccountFilepath string, endpoint *url.URL, timeout time.Duration) (*Client, error) {
	b, err := ioutil.ReadFile(serviceAccountFilepath)
	if err != nil {
		return nil, err
	}
	serviceAccount := make(map[string]string)
	if err := json.Unmarshal(b, &serviceAccount); err != nil {
		return nil, err
	}
	projectID := serviceAccount["project_id"]
	if projectID == "" {
		return nil, fmt.Errorf("invalid service account json: %s project_id is not defined", serviceAccountFilepath)
	}

	conf, err := google.JWTConfigFromJSON(b, Scope)
	if err != nil {
		return nil, err
	}

	return NewClientWithTokenSource(projectID, conf.TokenSource(context.Background()), endpoint, timeout)
}

// NewClientWithTokenSource builds a client for a known project with a
// prepared token source.
func NewClientWithTokenSource(projectID string, ts oauth2.TokenSource, endpoint *url.URL, timeout time.Duration) (*Client, error) {
	c := &Client{
		Client: &http.Client{
			Timeout: timeout,
		},
		tokenSource: ts,
	}

	if endpoint != nil {
		c.endpoint = endpoint
	} else {
		ep, err := url.Parse(fmt.Sprintf(DefaultFCMEndpointFmt, projectID))
		if err != nil {
			return nil, err
		}
		c.endpoint = ep
	}

	return c, nil
}
