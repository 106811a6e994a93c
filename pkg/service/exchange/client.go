package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/idops-lab/offramp/pkg/domain/interfaces"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// DefaultScope is the resource scope for the client-credentials grant
const DefaultScope = "https://outlook.office365.com/.default"

const mailboxTypeShared = "Shared"

// Client is a mailbox-administration client for the Exchange admin endpoint
type Client struct {
	httpClient *http.Client
	endpoint   string
}

var _ interfaces.MailboxClient = &Client{}

// Option configures the client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates an Exchange client against the admin endpoint
func New(ctx context.Context, ts oauth2.TokenSource, endpoint string, opts ...Option) *Client {
	c := &Client{
		httpClient: oauth2.NewClient(ctx, ts),
		endpoint:   strings.TrimSuffix(endpoint, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping verifies the session against the endpoint health check
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/healthz", nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create health request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to verify Exchange session",
			goerr.V("endpoint", c.endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("exchange endpoint unhealthy",
			goerr.V("status", resp.StatusCode),
			goerr.V("endpoint", c.endpoint))
	}
	return nil
}

type convertRequest struct {
	MailboxType string `json:"mailboxType"`
}

// ConvertToShared converts the mailbox of the principal to a shared mailbox.
// The conversion happens in place; the mailbox is not recreated.
func (c *Client) ConvertToShared(ctx context.Context, principal types.PrincipalName) error {
	u := fmt.Sprintf("%s/mailboxes/%s/convert", c.endpoint, url.PathEscape(principal.String()))

	data, err := json.Marshal(convertRequest{MailboxType: mailboxTypeShared})
	if err != nil {
		return goerr.Wrap(err, "failed to encode convert request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return goerr.Wrap(err, "failed to create convert request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "convert request failed",
			goerr.V("principal", principal))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("failed to convert mailbox",
			goerr.V("status", resp.StatusCode),
			goerr.V("principal", principal),
			goerr.V("body", strings.TrimSpace(string(detail))),
		)
	}
	return nil
}

// Close releases idle connections held by the session
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
