package headerbrute

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
)

// Client is a modified net/http Client that can natively handle our request and response types.
type Client struct {
	*http.Client
}

// Do wraps Go's net/http client with our Request and Response types.
// Error statuses are returned as ordinary responses: only transport failures produce an error.
func (c *Client) Do(req *Request) (*Response, error) {
	resp, err := c.Client.Do(req.Request)
	if err != nil {
		return nil, err
	}
	return &Response{Response: resp}, nil
}

// Request is a probe request for a single candidate key.
type Request struct {
	*http.Request
}

// NewRequest builds a body-less GET to target carrying a copy of headers.
func NewRequest(ctx context.Context, target string, headers http.Header) (*Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	// The Host header can't be set through the header map.
	if host := headers.Get("Host"); host != "" {
		req.Host = host
	}

	return &Request{Request: req}, nil
}

// SetKey places a candidate key in the given request header, replacing any existing value.
func (r *Request) SetKey(header, key string) {
	r.Header.Set(header, key)
}

// Response is a *http.Response with explicit header lookups.
type Response struct {
	*http.Response
}

// Flag reads a response header.
// ok is false when the header is absent, which is distinct from a header that is present and empty.
func (r *Response) Flag(header string) (value string, ok bool) {
	if r.Response == nil || r.Response.Header == nil {
		return "", false
	}

	values, ok := r.Response.Header[http.CanonicalHeaderKey(header)]
	if !ok || len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// Discard drains and closes the response body so the connection can be reused.
// The body is never inspected.
func (r *Response) Discard() error {
	if r.Response == nil || r.Response.Body == nil {
		return nil
	}

	_, err := io.Copy(ioutil.Discard, r.Response.Body)
	closeErr := r.Response.Body.Close()
	if err != nil {
		return err
	}
	return closeErr
}
