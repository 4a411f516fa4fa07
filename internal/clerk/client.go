package clerk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
)

// Client talks to the Clerk Backend API with the instance secret key. The
// mirror only needs the list endpoints, to replay current provider state
// through the sync pipeline during a backfill.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(ctx context.Context, secretKey, baseURL string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: secretKey})
	return &Client{
		http:    oauth2.NewClient(ctx, ts),
		baseURL: baseURL,
	}
}

func (c *Client) ListUsers(ctx context.Context, limit, offset int) ([]UserData, error) {
	var users []UserData
	if err := c.get(ctx, "/users", limit, offset, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (c *Client) ListOrganizations(ctx context.Context, limit, offset int) ([]OrganizationData, error) {
	var resp struct {
		Data       []OrganizationData `json:"data"`
		TotalCount int                `json:"total_count"`
	}
	if err := c.get(ctx, "/organizations", limit, offset, &resp); err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) get(ctx context.Context, path string, limit, offset int, out any) error {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("clerk api returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
