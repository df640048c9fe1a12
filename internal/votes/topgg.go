// Package votes checks whether a user has voted for the bot on top.gg,
// caching positive answers in Redis. Negative answers are never cached: votes
// expire, but "not yet voted" should be rechecked promptly.
package votes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"remoji/internal/storage"
)

const defaultBaseURL = "https://top.gg/api"

// VoteCache is the caching surface the client needs; *storage.Cache satisfies it.
type VoteCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Client queries the top.gg vote endpoint with caching.
type Client struct {
	token    string
	botID    string
	baseURL  string
	devMode  bool
	cacheTTL time.Duration

	http  *http.Client
	cache VoteCache
	log   *log.Entry
}

// New returns a vote client. In devMode every check passes without I/O.
func New(conn *storage.Connection, token, botID string, devMode bool, cacheTTL time.Duration) *Client {
	return &Client{
		token:    token,
		botID:    botID,
		baseURL:  defaultBaseURL,
		devMode:  devMode,
		cacheTTL: cacheTTL,
		http:     &http.Client{Timeout: 5 * time.Second},
		cache:    conn.NewCache("topgg"),
		log:      log.WithField("component", "topgg"),
	}
}

// HasVoted reports whether the user has an active vote for the bot.
func (c *Client) HasVoted(ctx context.Context, userID string) (bool, error) {
	if c.devMode || c.token == "" {
		return true, nil
	}

	if _, found, err := c.cache.Get(ctx, userID); err == nil && found {
		return true, nil
	} else if err != nil {
		c.log.WithError(err).Warn("vote cache lookup failed")
	}

	voted, err := c.check(ctx, userID)
	if err != nil {
		return false, err
	}
	if voted {
		if err := c.cache.Set(ctx, userID, "1", c.cacheTTL); err != nil {
			c.log.WithError(err).Warn("vote cache write failed")
		}
		return true, nil
	}
	return false, nil
}

func (c *Client) check(ctx context.Context, userID string) (bool, error) {
	endpoint := fmt.Sprintf("%s/bots/%s/check?userId=%s", c.baseURL, c.botID, url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("topgg check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("topgg check: unexpected status %s", resp.Status)
	}

	var body struct {
		Voted int `json:"voted"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("topgg check: %w", err)
	}
	return body.Voted > 0, nil
}
