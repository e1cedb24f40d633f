package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

const (
	twitterSearchURL = "https://api.twitter.com/2/tweets/search/recent"

	twitterMaxResults = 100
	twitterMinResults = 10
)

// TwitterScraper fetches recent tweets mentioning a brand via the v2 recent
// search endpoint.
type TwitterScraper struct {
	client      *http.Client
	bearerToken string
	logger      *zerolog.Logger
}

func NewTwitter(bearerToken string, timeout time.Duration, logger *zerolog.Logger) *TwitterScraper {
	return &TwitterScraper{
		client:      &http.Client{Timeout: timeout},
		bearerToken: bearerToken,
		logger:      logger,
	}
}

func (s *TwitterScraper) Platform() domain.Platform {
	return domain.PlatformTwitter
}

// Fetch queries the recent search endpoint, excluding retweets. Without a
// bearer token it returns an empty slice so jobs can still run against other
// sources.
func (s *TwitterScraper) Fetch(ctx context.Context, brand string, limit int) ([]domain.RawPost, error) {
	if s.bearerToken == "" {
		s.logger.Warn().Msg("twitter bearer token not configured, skipping source")

		return nil, nil
	}

	maxResults := limit
	if maxResults > twitterMaxResults {
		maxResults = twitterMaxResults
	}

	if maxResults < twitterMinResults {
		maxResults = twitterMinResults
	}

	u, err := url.Parse(twitterSearchURL)
	if err != nil {
		return nil, fmt.Errorf("parse twitter url: %w", err)
	}

	q := u.Query()
	q.Set("query", fmt.Sprintf("%q lang:en -is:retweet", brand))
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("tweet.fields", "created_at,lang,author_id")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build twitter request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.bearerToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twitter search: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter search: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read twitter response: %w", err)
	}

	return parseTweets(brand, body, s.logger)
}

type tweetPayload struct {
	Data []struct {
		Text      string `json:"text"`
		AuthorID  string `json:"author_id"`
		Lang      string `json:"lang"`
		CreatedAt string `json:"created_at"`
	} `json:"data"`
}

func parseTweets(brand string, body []byte, logger *zerolog.Logger) ([]domain.RawPost, error) {
	var payload tweetPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode twitter response: %w", err)
	}

	posts := make([]domain.RawPost, 0, len(payload.Data))

	for _, t := range payload.Data {
		if t.Text == "" {
			continue
		}

		createdAt, err := dateparse.ParseAny(t.CreatedAt)
		if err != nil {
			logger.Warn().Str("created_at", t.CreatedAt).Msg("unparseable tweet timestamp, dropping")

			continue
		}

		lang := t.Lang
		if lang == "" {
			lang = domain.DefaultLanguage
		}

		posts = append(posts, domain.RawPost{
			Brand:     brand,
			Platform:  domain.PlatformTwitter,
			Text:      t.Text,
			Author:    t.AuthorID,
			Language:  lang,
			CreatedAt: createdAt.UTC(),
		})
	}

	return posts, nil
}
