package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/brandpulse/brandpulse/internal/core/domain"
)

const (
	redditAuthURL   = "https://www.reddit.com/api/v1/access_token"
	redditSearchURL = "https://oauth.reddit.com/search"

	redditMaxLimit = 100
)

// RedditScraper searches all of Reddit for posts mentioning a brand, using
// the OAuth client-credentials flow.
type RedditScraper struct {
	client    *http.Client
	userAgent string
	enabled   bool
	logger    *zerolog.Logger
}

func NewReddit(clientID, clientSecret, userAgent string, timeout time.Duration, logger *zerolog.Logger) *RedditScraper {
	s := &RedditScraper{
		userAgent: userAgent,
		enabled:   clientID != "" && clientSecret != "",
		logger:    logger,
	}

	if s.enabled {
		conf := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     redditAuthURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		s.client = conf.Client(context.Background())
		s.client.Timeout = timeout
	}

	return s
}

func (s *RedditScraper) Platform() domain.Platform {
	return domain.PlatformReddit
}

// Fetch searches recent submissions mentioning the brand. Without credentials
// it returns an empty slice so jobs can still run against other sources.
func (s *RedditScraper) Fetch(ctx context.Context, brand string, limit int) ([]domain.RawPost, error) {
	if !s.enabled {
		s.logger.Warn().Msg("reddit credentials not configured, skipping source")

		return nil, nil
	}

	if limit > redditMaxLimit {
		limit = redditMaxLimit
	}

	u, err := url.Parse(redditSearchURL)
	if err != nil {
		return nil, fmt.Errorf("parse reddit url: %w", err)
	}

	q := u.Query()
	q.Set("q", fmt.Sprintf("%q", brand))
	q.Set("sort", "new")
	q.Set("type", "link")
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build reddit request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit search: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit search: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read reddit response: %w", err)
	}

	return parseRedditListing(brand, body)
}

var htmlTagRE = regexp.MustCompile(`<[^>]+>`)

// markdownToText renders Reddit markdown and strips the resulting tags so the
// normalizer sees plain prose.
func markdownToText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagRE.ReplaceAllString(string(rendered), " ")

	return strings.Join(strings.Fields(plain), " ")
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title          string  `json:"title"`
				Selftext       string  `json:"selftext"`
				AuthorFullname string  `json:"author_fullname"`
				Author         string  `json:"author"`
				CreatedUTC     float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func parseRedditListing(brand string, body []byte) ([]domain.RawPost, error) {
	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decode reddit listing: %w", err)
	}

	posts := make([]domain.RawPost, 0, len(listing.Data.Children))

	for _, child := range listing.Data.Children {
		d := child.Data

		text := strings.TrimSpace(d.Title + " " + markdownToText(d.Selftext))
		if text == "" {
			continue
		}

		author := d.AuthorFullname
		if author == "" {
			author = d.Author
		}

		posts = append(posts, domain.RawPost{
			Brand:     brand,
			Platform:  domain.PlatformReddit,
			Text:      text,
			Author:    author,
			Language:  domain.DefaultLanguage,
			CreatedAt: time.Unix(int64(d.CreatedUTC), 0).UTC(),
		})
	}

	return posts, nil
}
