package access

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zhubert/chatgate/internal/errors"
)

// maxResponseBytes bounds how much of the permission response is read.
const maxResponseBytes = 64 << 10

// HTTPChecker asks the permission service over HTTP:
//
//	GET <Endpoint>?signature=<signature>
//	200 {"code": 0, "msg": "ok"}
//
// An empty signature is sent as-is; the service decides what it means.
type HTTPChecker struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPChecker creates a checker for endpoint. A zero timeout means the
// request may wait forever, matching a browser fetch with no deadline.
func NewHTTPChecker(endpoint string, timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

// ValidUser implements Checker.
func (c *HTTPChecker) ValidUser(ctx context.Context, signature string) (*Response, error) {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return nil, errors.AuthRequestFailed(c.Endpoint, err)
	}
	q := u.Query()
	q.Set("signature", signature)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.AuthRequestFailed(c.Endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, errors.AuthRequestFailed(c.Endpoint, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errors.AuthBadStatus(c.Endpoint, res.StatusCode)
	}

	var payload Response
	if err := json.NewDecoder(io.LimitReader(res.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, errors.AuthDecodeFailed(c.Endpoint, err)
	}
	return &payload, nil
}
