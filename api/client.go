// Package api is the GraphQL client for the Lagoon API. It wraps the
// transport so commands deal in typed operations and plain Go errors:
// server-reported GraphQL errors come back as the returned error, never as
// a partially-populated response.
package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/machinebox/graphql"
	"github.com/rs/zerolog/log"
)

// Client talks to one Lagoon API endpoint with one token.
type Client struct {
	gql      *graphql.Client
	endpoint string
	token    string
}

// New creates a Client for the given GraphQL endpoint. The underlying HTTP
// client retries transient failures with backoff.
func New(endpoint, token string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = nil

	return &Client{
		gql:      graphql.NewClient(endpoint, graphql.WithHTTPClient(rc.StandardClient())),
		endpoint: endpoint,
		token:    token,
	}
}

// Endpoint returns the configured GraphQL endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// run executes one GraphQL operation and decodes the data envelope into
// resp. GraphQL errors in the response are returned as the error.
func (c *Client) run(ctx context.Context, query string, vars map[string]interface{}, resp interface{}) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	log.Debug().
		Str("endpoint", c.endpoint).
		Str("request_id", requestID).
		Msg("executing graphql request")

	if err := c.gql.Run(ctx, req, resp); err != nil {
		log.Debug().Str("request_id", requestID).Err(err).Msg("graphql request failed")
		return err
	}
	return nil
}
