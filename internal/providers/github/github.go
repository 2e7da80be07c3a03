package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
)

// RepoMeta is the slice of repository metadata the skill pipeline reads.
type RepoMeta struct {
	Name        string
	Language    string
	Description string
}

type Client struct {
	api *gh.Client
}

// NewClient builds a GitHub REST client. token is optional; baseURL overrides the API host.
func NewClient(hc *http.Client, token, baseURL string) (*Client, error) {
	c := gh.NewClient(hc)
	if token != "" {
		c = c.WithAuthToken(token)
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, err
		}
		c.BaseURL = u
	}
	return &Client{api: c}, nil
}

// ListRepos returns the first page of the user's public repositories.
func (c *Client) ListRepos(ctx context.Context, username string) ([]RepoMeta, error) {
	repos, _, err := c.api.Repositories.ListByUser(ctx, username, &gh.RepositoryListByUserOptions{
		Type: "owner",
	})
	if err != nil {
		return nil, err
	}

	out := make([]RepoMeta, 0, len(repos))
	for _, r := range repos {
		out = append(out, RepoMeta{
			Name:        r.GetName(),
			Language:    r.GetLanguage(),
			Description: r.GetDescription(),
		})
	}
	return out, nil
}
