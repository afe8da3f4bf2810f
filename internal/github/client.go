package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single repository listing call.
	DefaultTimeout = 15 * time.Second

	// listPerPage caps the relay at the 100 most recently updated repos.
	listPerPage = 100
)

// Repo is the subset of a GitHub repository summary the relay exposes to the
// client: `{id, name, description, stars, forks, url, language}` with nullable
// description and language.
type Repo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	URL         string  `json:"url"`
	Language    *string `json:"language"`
}

// apiRepo mirrors the upstream GitHub field names before they are flattened
// into the relay shape.
type apiRepo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Stargazers  int     `json:"stargazers_count"`
	Forks       int     `json:"forks_count"`
	HTMLURL     string  `json:"html_url"`
	Language    *string `json:"language"`
}

// Client talks to the GitHub REST API. A token is optional; unauthenticated
// calls work against public accounts but hit a much lower upstream quota, so
// the client also rate-limits itself to keep the background refresh job from
// burning through it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the given API base URL. When token is
// non-empty requests carry it via the standard oauth2 transport.
func NewClient(baseURL, token string) *Client {
	httpClient := &http.Client{Timeout: DefaultTimeout}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = &http.Client{
			Timeout:   DefaultTimeout,
			Transport: &oauth2.Transport{Source: src},
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		// Unauthenticated quota is 60 req/h; one request per second with a
		// small burst stays well inside it even with an aggressive cron spec.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// ListUserRepos fetches up to 100 of the account's most recently updated
// repositories and flattens them into the relay shape.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]Repo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	u.Path = u.Path + "/users/" + username + "/repos"

	q := u.Query()
	q.Set("per_page", fmt.Sprintf("%d", listPerPage))
	q.Set("sort", "updated")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var raw []apiRepo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	repos := make([]Repo, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, Repo{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Stars:       r.Stargazers,
			Forks:       r.Forks,
			URL:         r.HTMLURL,
			Language:    r.Language,
		})
	}
	return repos, nil
}
