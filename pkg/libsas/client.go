package libsas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the public SimpleAuthStore API.
const DefaultEndpoint = "https://csjpqwui3eosyoqiwqpe2kwhym0selcn.lambda-url.eu-west-1.on.aws/"

type (
	// A Client defines all interactions that can be performed on a SimpleAuthStore server.
	Client interface {
		// Signup creates a new user account and returns its first session.
		Signup(username, password string) (Session, error)
		// Login authenticates an existing user and returns a new session.
		Login(username, password string) (Session, error)

		// ReadUser returns the USER item of the given username.
		ReadUser(username, sessionID string) (Item, error)
		// WriteUserPublic stores the given JSON object as the public data of the user.
		WriteUserPublic(sessionID, username, data string) (Item, error)
		// WriteUserPublicValue is WriteUserPublic with an already structured payload.
		WriteUserPublicValue(sessionID, username string, data map[string]any) (Item, error)
		// WriteUserPrivate stores the given JSON object as the private data of the user.
		WriteUserPrivate(sessionID, username, data string) (Item, error)
		// WriteUserPrivateValue is WriteUserPrivate with an already structured payload.
		WriteUserPrivateValue(sessionID, username string, data map[string]any) (Item, error)

		// CreateSharedItem creates a new SHARED item owned by the session's user.
		CreateSharedItem(sessionID, description string) (Item, error)
		// ReadOwnedItems returns all the items owned by the session's user.
		ReadOwnedItems(sessionID string) ([]Item, error)
		// ReadSharedItem returns the SHARED item of the given id.
		// The session is optional, items shared with ANYONE are readable without one.
		ReadSharedItem(sessionID, sharedItemID string) (Item, error)
		// UpdateSharedItem stores the given JSON object as the shared data of the item.
		UpdateSharedItem(sessionID, sharedItemID, data string) (Item, error)
		// UpdateSharedItemValue is UpdateSharedItem with an already structured payload.
		UpdateSharedItemValue(sessionID, sharedItemID string, data map[string]any) (Item, error)
		// ManageAccess applies the given action for subjectUserID on the shared item.
		ManageAccess(sessionID, subjectUserID, sharedItemID string, action Action) (json.RawMessage, error)

		// Endpoint returns the base URL requests are sent to.
		Endpoint() string
	}

	// An Option configures a Client.
	Option func(*client)

	p      map[string]any
	client struct {
		http     *http.Client
		endpoint string
		logger   logrus.FieldLogger
	}

	envelope struct {
		Data  json.RawMessage `json:"data"`
		Error json.RawMessage `json:"error"`
	}
)

// WithLogger sets the logger used to report failed requests.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(endpoint string, opts ...Option) (Client, error) {
	return NewClient(http.DefaultClient, endpoint, opts...)
}

// NewClient returns a new Client.
func NewClient(c *http.Client, endpoint string, opts ...Option) (Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse endpoint")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("could not parse endpoint: missing scheme or host in %q", endpoint)
	}

	// Endpoint paths are relative segments appended to the base URL.
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	cl := &client{
		http:     c,
		endpoint: endpoint,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl, nil
}

func (c *client) Endpoint() string {
	return c.endpoint
}

// request posts body to the given endpoint and decodes the `data` field of the response into v.
// A null or absent `data` leaves v untouched.
func (c *client) request(endpoint string, body, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindValidation, Endpoint: endpoint, Message: "could not serialize request body", Err: err}
	}

	data, err := c.do(endpoint, payload)
	if err == nil {
		err = decode(endpoint, data, v)
	}
	if err != nil {
		c.logger.WithField("endpoint", endpoint).WithError(err).Error("API error")
		return err
	}
	return nil
}

func (c *client) do(endpoint string, payload []byte) (json.RawMessage, error) {
	//
	// Build request
	req, err := http.NewRequest(http.MethodPost, c.endpoint+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Endpoint: endpoint, Err: errors.Wrap(err, "could not build request")}
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Endpoint: endpoint, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Endpoint: endpoint, StatusCode: res.StatusCode, Err: err}
	}

	//
	// Process response
	var env envelope
	var message string

	malformed := !json.Valid(raw)
	if malformed {
		message = fmt.Sprintf("HTTP %d: %s", res.StatusCode, statusText(res))
	} else {
		// Any JSON value is accepted, only objects carry data and error.
		_ = json.Unmarshal(raw, &env)
		message = errorText(env.Error)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		kind := KindServer
		if malformed {
			kind = KindMalformedResponse
		}

		if message == "" {
			message = fmt.Sprintf("API request to %s failed with status %d", endpoint, res.StatusCode)
		}
		return nil, &Error{Kind: kind, Endpoint: endpoint, StatusCode: res.StatusCode, Message: message}
	}

	return env.Data, nil
}

// errorText returns the message of the `error` field.
// Non-string errors are returned as their compact JSON text.
func errorText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var message string
	if err := json.Unmarshal(raw, &message); err == nil {
		return message
	}

	var b bytes.Buffer
	if err := json.Compact(&b, raw); err != nil {
		return string(raw)
	}
	return b.String()
}

// statusText returns the reason phrase sent by the server, falling back to the standard one.
func statusText(res *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(res.Status, fmt.Sprint(res.StatusCode)))
	if text == "" {
		return http.StatusText(res.StatusCode)
	}
	return text
}

// decode unmarshals the data returned by the gateway into v.
// A null or absent payload leaves v untouched.
func decode(endpoint string, data json.RawMessage, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &Error{Kind: KindMalformedResponse, Endpoint: endpoint, Message: "could not parse response data", Err: err}
	}
	return nil
}
