package tradier

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/bluejacket-trading/bluejacket/pkg/secret"
)

// Config is the endpoint and access token for the Tradier REST API.
//
// Endpoint may be reassigned by the caller, e.g. to switch to
// ProductionEndpoint. AccessToken redacts itself when printed, logged or
// marshaled; use Authorize to attach it to a request.
type Config struct {
	Endpoint    string
	AccessToken secret.Secret
}

// New creates a Config from values the caller already has. It does not
// read the environment and does not fail; use Validate when the inputs
// are not known to be non-empty.
func New(endpoint, accessToken string) *Config {
	return &Config{
		Endpoint:    endpoint,
		AccessToken: secret.New(accessToken),
	}
}

// Validate checks that both the endpoint and the access token are set
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is empty", ErrInvalidConfig)
	}
	if c.AccessToken.IsEmpty() {
		return fmt.Errorf("%w: access token is empty", ErrInvalidConfig)
	}
	return nil
}

// Authorize sets the bearer token and JSON accept headers on req
func (c *Config) Authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.AccessToken.Reveal())
	req.Header.Set("Accept", "application/json")
}

// Fields returns the config as log fields with the token redacted
func (c *Config) Fields() log.Fields {
	return log.Fields{
		"endpoint":     c.Endpoint,
		"access_token": c.AccessToken,
	}
}

// Destroy scrubs the access token
func (c *Config) Destroy() {
	c.AccessToken.Destroy()
}

func (c *Config) String() string {
	return fmt.Sprintf("endpoint=%s access_token=%s", c.Endpoint, c.AccessToken)
}
