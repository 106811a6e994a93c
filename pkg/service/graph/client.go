package graph

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
	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const (
	// DefaultScope is the resource scope for the client-credentials grant
	DefaultScope = "https://graph.microsoft.com/.default"

	defaultBaseURL  = "https://graph.microsoft.com/v1.0"
	groupObjectType = "#microsoft.graph.group"
	pageSize        = 999
)

// Client is a Microsoft Graph directory client
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.DirectoryClient = &Client{}

// Option configures the client
type Option func(*Client)

// WithBaseURL overrides the Graph endpoint, mainly for tests
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Graph client authenticating with the token source
func New(ctx context.Context, ts oauth2.TokenSource, opts ...Option) *Client {
	c := &Client{
		httpClient: oauth2.NewClient(ctx, ts),
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping verifies the session with a cheap organization read
func (c *Client) Ping(ctx context.Context) error {
	var page organizationPage
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/organization?$select=id", nil, &page); err != nil {
		return goerr.Wrap(err, "failed to verify Graph session")
	}
	return nil
}

// ListAccounts fetches the full user listing of the tenant, following
// @odata.nextLink pages.
func (c *Client) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	next := fmt.Sprintf("%s/users?$select=id,displayName,userPrincipalName,mail,accountEnabled&$top=%d",
		c.baseURL, pageSize)

	var accounts []*model.Account
	for next != "" {
		var page usersPage
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, goerr.Wrap(err, "failed to list users")
		}
		for _, u := range page.Users {
			accounts = append(accounts, &model.Account{
				ID:             types.AccountID(u.ID),
				DisplayName:    u.DisplayName,
				PrincipalName:  types.PrincipalName(u.UserPrincipalName),
				Mail:           u.Mail,
				AccountEnabled: u.AccountEnabled,
			})
		}
		next = page.NextLink
	}
	return accounts, nil
}

// ListMemberships fetches the groups the account is a direct member of.
// Directory roles and administrative units in the memberOf listing are
// ignored.
func (c *Client) ListMemberships(ctx context.Context, accountID types.AccountID) ([]*model.Group, error) {
	next := fmt.Sprintf("%s/users/%s/memberOf?$select=id,displayName",
		c.baseURL, url.PathEscape(accountID.String()))

	var groups []*model.Group
	for next != "" {
		var page directoryObjectsPage
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, goerr.Wrap(err, "failed to list group memberships",
				goerr.V("accountID", accountID))
		}
		for _, obj := range page.Objects {
			if obj.Type != groupObjectType {
				continue
			}
			groups = append(groups, &model.Group{
				ID:          types.GroupID(obj.ID),
				DisplayName: obj.DisplayName,
			})
		}
		next = page.NextLink
	}
	return groups, nil
}

// RemoveMember removes the account from one group
func (c *Client) RemoveMember(ctx context.Context, groupID types.GroupID, accountID types.AccountID) error {
	u := fmt.Sprintf("%s/groups/%s/members/%s/$ref",
		c.baseURL, url.PathEscape(groupID.String()), url.PathEscape(accountID.String()))

	if err := c.do(ctx, http.MethodDelete, u, nil, nil); err != nil {
		return goerr.Wrap(err, "failed to remove group member",
			goerr.V("groupID", groupID),
			goerr.V("accountID", accountID))
	}
	return nil
}

// ListLicenses fetches the license SKUs currently assigned to the account
func (c *Client) ListLicenses(ctx context.Context, accountID types.AccountID) ([]*model.LicenseAssignment, error) {
	next := fmt.Sprintf("%s/users/%s/licenseDetails",
		c.baseURL, url.PathEscape(accountID.String()))

	var licenses []*model.LicenseAssignment
	for next != "" {
		var page licenseDetailsPage
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, goerr.Wrap(err, "failed to list license details",
				goerr.V("accountID", accountID))
		}
		for _, l := range page.Licenses {
			licenses = append(licenses, &model.LicenseAssignment{
				SKU:           types.LicenseSKU(l.SKUID),
				SKUPartNumber: l.SKUPartNumber,
			})
		}
		next = page.NextLink
	}
	return licenses, nil
}

// RemoveLicense removes one license SKU from the account. Removal is a set
// subtraction on the service side and is idempotent.
func (c *Client) RemoveLicense(ctx context.Context, accountID types.AccountID, sku types.LicenseSKU) error {
	u := fmt.Sprintf("%s/users/%s/assignLicense",
		c.baseURL, url.PathEscape(accountID.String()))

	req := assignLicenseRequest{
		AddLicenses:    []assignedLicense{},
		RemoveLicenses: []string{sku.String()},
	}
	if err := c.do(ctx, http.MethodPost, u, &req, nil); err != nil {
		return goerr.Wrap(err, "failed to remove license",
			goerr.V("accountID", accountID),
			goerr.V("sku", sku))
	}
	return nil
}

// Close releases idle connections held by the session
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", rawURL))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "graph request failed", goerr.V("url", rawURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("graph API error",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", rawURL),
			goerr.V("body", strings.TrimSpace(string(detail))),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(err, "failed to decode response", goerr.V("url", rawURL))
		}
	}
	return nil
}
