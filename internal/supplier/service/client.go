package service

import (
	"context"
	"net/http"

	"github.com/brightstone/gemgate/internal/clock"
	"github.com/brightstone/gemgate/internal/config"
	apperrors "github.com/brightstone/gemgate/internal/errors"
)

// The supplier has shipped more than one schema generation: older tenants use
// per-request basic credentials, newer ones an authenticate mutation followed
// by bearer tokens. Client is the one normalized interface over both; the
// integration mode is selected by SUPPLIER_AUTH_MODE.

// SizeRange is the carat weight bounds of a supplier query. An absent bound
// marshals as null, which the supplier treats as unbounded.
type SizeRange struct {
	From *float64 `json:"from"`
	To   *float64 `json:"to"`
}

// SearchQuery is the parameterized supplier search. Zero-valued fields are
// omitted from the query variables entirely.
type SearchQuery struct {
	Shapes        []string
	Sizes         *SizeRange
	MarkupPricing bool
	Limit         int
	Order         string
}

// RawCertificate is the supplier's certificate payload before normalization.
type RawCertificate struct {
	Carats     *float64 `json:"carats"`
	Shape      *string  `json:"shape"`
	Color      *string  `json:"color"`
	Clarity    *string  `json:"clarity"`
	Cut        *string  `json:"cut"`
	CertNumber *string  `json:"certNumber"`
}

// RawDiamond is one supplier inventory item as returned by the search query.
// Price is decoded loosely; the supplier has been observed returning numbers,
// numeric strings, and null in different schema generations.
type RawDiamond struct {
	ID          string          `json:"id"`
	Price       any             `json:"price"`
	Image       *string         `json:"image"`
	Certificate *RawCertificate `json:"certificate"`
}

// SearchResult pairs the raw items with the supplier's own item count. The
// reported count is passed through for diagnostics but should not be trusted
// verbatim; some schema generations echo the page size.
type SearchResult struct {
	Items         []RawDiamond
	ReportedTotal int
}

// Client is the normalized supplier interface.
type Client interface {
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)
}

const authenticateQuery = `query Authenticate($username: String!, $password: String!) {
  authenticate {
    username_and_password(username: $username, password: $password) {
      token
    }
  }
}`

const searchDiamondsQuery = `query SearchDiamonds($query: DiamondQuery!, $limit: Int!, $order: DiamondOrder) {
  diamonds_by_query(query: $query, limit: $limit, order: $order) {
    items {
      id
      price
      image
      certificate {
        carats
        shape
        color
        clarity
        cut
        certNumber
      }
    }
    total_count
  }
}`

// authenticateResponse mirrors the authenticate query's data shape.
type authenticateResponse struct {
	Authenticate struct {
		UsernameAndPassword struct {
			Token string `json:"token"`
		} `json:"username_and_password"`
	} `json:"authenticate"`
}

// searchResponse mirrors the search query's data shape.
type searchResponse struct {
	DiamondsByQuery struct {
		Items      []RawDiamond `json:"items"`
		TotalCount int          `json:"total_count"`
	} `json:"diamonds_by_query"`
}

// searchVariables builds the GraphQL variables for a search query.
func searchVariables(query SearchQuery) map[string]any {
	q := map[string]any{}
	if len(query.Shapes) > 0 {
		q["shapes"] = query.Shapes
	}
	if query.Sizes != nil {
		q["sizes"] = query.Sizes
	}
	if query.MarkupPricing {
		q["markup_mode"] = true
	}

	variables := map[string]any{
		"query": q,
		"limit": query.Limit,
	}
	if query.Order != "" {
		variables["order"] = map[string]any{"type": query.Order, "direction": "ASC"}
	}
	return variables
}

// LoginClient is the bearer-after-login supplier adapter. It authenticates
// with username and password, caches the resulting token, and attaches it as
// a bearer credential on every search.
type LoginClient struct {
	gql      *GraphQLClient
	username string
	password string
	tokens   *TokenCache
}

// NewLoginClient creates a LoginClient with its own token cache. The clock is
// injected so token expiry is testable.
func NewLoginClient(gql *GraphQLClient, cfg *config.Config, clk clock.Clock) *LoginClient {
	c := &LoginClient{
		gql:      gql,
		username: cfg.SupplierUsername,
		password: cfg.SupplierPassword,
	}
	c.tokens = NewTokenCache(AuthenticatorFunc(c.authenticate), cfg.SupplierTokenTTL, clk)
	return c
}

// authenticate performs the supplier authenticate call and returns the token.
func (c *LoginClient) authenticate(ctx context.Context) (string, error) {
	if c.username == "" || c.password == "" {
		return "", apperrors.Wrap(apperrors.ErrAuthentication, "supplier credentials are not configured")
	}

	var resp authenticateResponse
	err := c.gql.Execute(ctx, authenticateQuery, map[string]any{
		"username": c.username,
		"password": c.password,
	}, nil, &resp)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAuthentication, err.Error())
	}

	return resp.Authenticate.UsernameAndPassword.Token, nil
}

// Search executes the diamond search with a cached bearer credential.
func (c *LoginClient) Search(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	err = c.gql.Execute(ctx, searchDiamondsQuery, searchVariables(query), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Items:         resp.DiamondsByQuery.Items,
		ReportedTotal: resp.DiamondsByQuery.TotalCount,
	}, nil
}

// BasicClient is the basic-credential supplier adapter used by older schema
// generations. Every search carries the credentials directly; no token is
// issued or cached.
type BasicClient struct {
	gql      *GraphQLClient
	username string
	password string
}

// NewBasicClient creates a BasicClient from the supplier configuration.
func NewBasicClient(gql *GraphQLClient, cfg *config.Config) *BasicClient {
	return &BasicClient{
		gql:      gql,
		username: cfg.SupplierUsername,
		password: cfg.SupplierPassword,
	}
}

// Search executes the diamond search with per-request basic credentials.
func (c *BasicClient) Search(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	if c.username == "" || c.password == "" {
		return nil, apperrors.Wrap(apperrors.ErrAuthentication, "supplier credentials are not configured")
	}

	var resp searchResponse
	err := c.gql.Execute(ctx, searchDiamondsQuery, searchVariables(query), func(r *http.Request) {
		r.SetBasicAuth(c.username, c.password)
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Items:         resp.DiamondsByQuery.Items,
		ReportedTotal: resp.DiamondsByQuery.TotalCount,
	}, nil
}
