package integrations

import (
	"encoding/json"
	"net/http"

	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/models"
)

// Response is a fetched API response. It is shared between callers through
// the memo and must not be modified.
type Response struct {
	URL        string      `json:"url"`
	StatusCode int         `json:"status"`
	Header     http.Header `json:"header,omitempty"`
	Body       []byte      `json:"body,omitempty"`
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Location returns the redirect target of a 3xx response.
func (r *Response) Location() string {
	return r.Header.Get("Location")
}

// Err returns nil for 2xx responses. Otherwise it returns an *errors.Error
// coded by status (NOT_FOUND, RATE_LIMITED or HTTP_STATUS) that wraps an
// *errors.StatusError carrying the API's error message, if any.
// what names the request in the message.
func (r *Response) Err(what string) error {
	if r.OK() {
		return nil
	}
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(r.Body, &body)
	return apierr.FromStatus(r.StatusCode, body.Error, what)
}

// DecodeResponse checks resp's status and decodes its body into a T.
func DecodeResponse[T any](resp *Response, what string) (T, error) {
	if err := resp.Err(what); err != nil {
		var zero T
		return zero, err
	}
	return models.DecodeJSON[T](resp.Body, what)
}
