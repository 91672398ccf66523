// Package linear implements the service.Service interface using the Linear GraphQL API.
package linear

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-hclog"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"golang.org/x/oauth2"

	"linearcli/internal/config"
	"linearcli/internal/service"
)

const (
	// DefaultEndpoint is the Linear GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	// apiKeyPrefix marks personal API keys, which Linear expects verbatim in
	// the Authorization header. Anything else is an OAuth access token.
	apiKeyPrefix = "lin_api_"

	// maxErrorBody bounds how much of a non-JSON error body is echoed back.
	maxErrorBody = 512
)

// Client implements service.Service against the Linear API.
type Client struct {
	gql graphql.Client
}

// New creates a Linear client from the stored credential.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	token := cfg.Store.Token()
	if token == "" {
		return nil, service.Unauthenticated()
	}
	return NewWithToken(ctx, DefaultEndpoint, token, cfg.Logger), nil
}

// NewWithToken creates a client for endpoint authenticating with token.
func NewWithToken(ctx context.Context, endpoint, token string, logger hclog.Logger) *Client {
	return NewWithHTTPClient(endpoint, authClient(ctx, token), logger)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(endpoint string, httpClient *http.Client, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	doer := &statusDoer{client: httpClient, logger: logger.Named("api")}
	return &Client{gql: graphql.NewClient(endpoint, doer)}
}

// authClient returns an HTTP client that authenticates every request.
func authClient(ctx context.Context, token string) *http.Client {
	if strings.HasPrefix(token, apiKeyPrefix) {
		return &http.Client{Transport: &apiKeyTransport{key: token, base: http.DefaultTransport}}
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return oauth2.NewClient(ctx, src)
}

// apiKeyTransport sets a personal API key as the Authorization header.
type apiKeyTransport struct {
	key  string
	base http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", t.key)
	return t.base.RoundTrip(r)
}

type operationKey struct{}

// statusDoer sits between genqlient and the authenticated HTTP client. It
// logs every operation and turns non-200 replies into classified errors.
type statusDoer struct {
	client *http.Client
	logger hclog.Logger
}

func (d *statusDoer) Do(req *http.Request) (*http.Response, error) {
	op, _ := req.Context().Value(operationKey{}).(string)

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Debug("request failed", "operation", op, "error", err)
		return nil, wrapError(err)
	}
	d.logger.Debug("request", "operation", op, "status", resp.StatusCode, "duration", time.Since(start))
	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err)
	}
	// Linear reports GraphQL errors with 4xx statuses too.
	var body struct {
		Errors gqlerror.List `json:"errors"`
	}
	if json.Unmarshal(raw, &body) == nil && len(body.Errors) > 0 {
		return nil, classify(body.Errors[0])
	}
	return nil, statusError(resp.StatusCode, raw)
}

// do runs a GraphQL operation and decodes its data into out.
func (c *Client) do(ctx context.Context, op, query string, vars interface{}, out interface{}) error {
	req := &graphql.Request{OpName: op, Query: query, Variables: vars}
	resp := &graphql.Response{Data: out}

	err := c.gql.MakeRequest(context.WithValue(ctx, operationKey{}, op), req, resp)
	if err == nil {
		return nil
	}
	var list gqlerror.List
	if errors.As(err, &list) && len(list) > 0 {
		return classify(list[0])
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("invalid response from Linear: %w", err)
	}
	return err
}

// classify turns a GraphQL error into an error carrying its message verbatim,
// marked with a kind when Linear tells us what went wrong.
func classify(e *gqlerror.Error) error {
	err := errors.New(e.Message)
	code := strings.ToUpper(extension(e, "code"))
	kind := extension(e, "type")
	switch {
	case code == "AUTHENTICATION_ERROR" || kind == "authentication error":
		return errors.Mark(err, service.ErrUnauthenticated)
	case code == "ENTITY_NOT_FOUND" || strings.HasPrefix(e.Message, "Entity not found"):
		return errors.Mark(err, service.ErrNotFound)
	case code == "INVALID_INPUT" || kind == "invalid input":
		return errors.Mark(err, service.ErrInvalidInput)
	}
	return err
}

func extension(e *gqlerror.Error, key string) string {
	v, _ := e.Extensions[key].(string)
	return v
}

func statusError(code int, body []byte) error {
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return errors.Mark(
			errors.New("token expired or revoked (run: linear auth <token>)"),
			service.ErrUnauthenticated)
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("request failed with status %d: %s", code, msg)
}

// wrapError wraps transport errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return err
}

// unwrap decodes a mutation envelope. A payload that reports failure, or
// carries no entity, is an OperationFailed error.
func unwrap[N any](success bool, node *N, verb, kind string) (N, error) {
	var zero N
	if !success || node == nil {
		return zero, service.OperationFailedf("Failed to %s %s", verb, kind)
	}
	return *node, nil
}
