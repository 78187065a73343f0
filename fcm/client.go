package fcm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"
)

// fcm Client const variables
const (
	DefaultFCMEndpoint = "https://fcm.googleapis.com/fcm/send"
	ClientTimeout      = time.Second * 10
	ContentTypeJSON    = "application/json; UTF-8"
)

// Client is a client for the legacy FCM HTTP API.
type Client struct {
	endpoint *url.URL
	apiKey   string
	Client   *http.Client
}

// Send posts p to fcm once. A non-200 status is not an error: the outcome
// is carried by the returned Result together with the raw response text.
// Errors are reserved for request building and transport failures.
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
		To:         p.To,
		RawBody:    string(body),
	}
	// 401 and 5xx replies are not always JSON. Keep the raw text then.
	if err := json.Unmarshal(body, &result.Response); err != nil {
		if res.StatusCode == http.StatusOK {
			return nil, NewError(res.StatusCode, err.Error())
		}
	}

	return result, nil
}

// NewRequest creates request for fcm
func (c *Client) NewRequest(p Payload) (*http.Request, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.endpoint.String(), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("key=%s", c.apiKey))
	req.Header.Set("Content-Type", ContentTypeJSON)

	return req, nil
}

// NewClient establishes a http connection with fcm
func NewClient(apikey string, endpoint *url.URL, timeout time.Duration) *Client {
	client := &http.Client{
		Timeout: timeout,
	}

	c := &Client{
		apiKey: apikey,
		Client: client,
	}

	if endpoint != nil {
		c.endpoint = endpoint
	} else {
		c.endpoint, _ = url.Parse(DefaultFCMEndpoint)
	}

	return c
}
