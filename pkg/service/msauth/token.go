package msauth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultLoginURL = "https://login.microsoftonline.com"

	assertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"
	assertionTTL  = 5 * time.Minute
)

// Credential holds an app registration used for the client-credentials
// grant. When ClientKey is set the grant authenticates with a signed JWT
// client assertion instead of the client secret.
type Credential struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	ClientKey    []byte // PEM-encoded private key

	// LoginURL overrides the token authority, mainly for tests
	LoginURL string
}

// Validate validates the credential
func (c *Credential) Validate() error {
	if c.TenantID == "" {
		return goerr.New("tenant ID is required")
	}
	if c.ClientID == "" {
		return goerr.New("client ID is required")
	}
	if c.ClientSecret == "" && len(c.ClientKey) == 0 {
		return goerr.New("client secret or client key is required",
			goerr.V("clientID", c.ClientID))
	}
	return nil
}

// TokenSource returns a reusable token source scoped to the given resource
// (e.g. "https://graph.microsoft.com/.default").
func (c *Credential) TokenSource(ctx context.Context, scope string) (oauth2.TokenSource, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	loginURL := c.LoginURL
	if loginURL == "" {
		loginURL = defaultLoginURL
	}
	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", loginURL, c.TenantID)

	if len(c.ClientKey) > 0 {
		key, err := jwk.ParseKey(c.ClientKey, jwk.WithPEM(true))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse client key",
				goerr.V("clientID", c.ClientID))
		}
		src := &assertionSource{
			ctx:      ctx,
			tokenURL: tokenURL,
			clientID: c.ClientID,
			scopes:   []string{scope},
			key:      key,
		}
		return oauth2.ReuseTokenSource(nil, src), nil
	}

	cc := &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{scope},
	}
	return cc.TokenSource(ctx), nil
}

// assertionSource mints a fresh signed client assertion for every token
// request; the assertion is short-lived and must not be reused across
// refreshes.
type assertionSource struct {
	ctx      context.Context
	tokenURL string
	clientID string
	scopes   []string
	key      jwk.Key
}

func (s *assertionSource) Token() (*oauth2.Token, error) {
	now := time.Now()
	claims, err := jwt.NewBuilder().
		Issuer(s.clientID).
		Subject(s.clientID).
		Audience([]string{s.tokenURL}).
		JwtID(uuid.New().String()).
		IssuedAt(now).
		NotBefore(now).
		Expiration(now.Add(assertionTTL)).
		Build()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build client assertion")
	}

	signed, err := jwt.Sign(claims, jwt.WithKey(jwa.RS256, s.key))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign client assertion",
			goerr.V("clientID", s.clientID))
	}

	cc := &clientcredentials.Config{
		ClientID: s.clientID,
		TokenURL: s.tokenURL,
		Scopes:   s.scopes,
		EndpointParams: url.Values{
			"client_assertion_type": []string{assertionType},
			"client_assertion":      []string{string(signed)},
		},
		AuthStyle: oauth2.AuthStyleInParams,
	}

	tok, err := cc.Token(s.ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to acquire token with client assertion",
			goerr.V("tokenURL", s.tokenURL))
	}
	return tok, nil
}
