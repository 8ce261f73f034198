// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// TransportError means the homework status endpoint could not deliver a
// usable response: connection failure, timeout or a non-200 status. All of
// them follow the same recovery path (skip the cycle, retry after the
// interval), so there is a single classification. StatusCode is 0 when no
// response was received at all.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("эндпоинт %s недоступен: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("эндпоинт %s недоступен. Код ответа API: %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client polls the Practicum homework status API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
	now        func() time.Time
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		// The upstream source polled with no timeout at all; a hung fetch
		// would block the poller forever. The timeout keeps the failure
		// inside the TransportError contract.
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
		now:        time.Now,
	}
}

// Fetch performs one authenticated poll of the endpoint with fromDate as the
// lower bound of the window (current wall-clock time when fromDate is unset)
// and returns the decoded JSON payload verbatim. Schema checking belongs to
// homework.CheckResponse, not here.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (any, error) {
	if fromDate <= 0 {
		fromDate = c.now().Unix()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build homework status request: %w", err)
	}
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	requestURL := req.URL.String()
	c.logger.Debugf("Polling homework statuses: from_date=%d", fromDate)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: requestURL, StatusCode: resp.StatusCode}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode homework status response: %w", err)
	}
	return payload, nil
}
