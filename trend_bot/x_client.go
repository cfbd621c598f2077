package trendbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"
)

// defaultRateLimitWait is used when a 429 response carries no reset header.
// It matches the length of an X rate-limit window.
const defaultRateLimitWait = 15 * time.Minute

// XClient posts to X through the v2 API using OAuth 1.0a user context.
type XClient struct {
	httpClient      *http.Client
	baseURL         string
	limiter         *rate.Limiter
	waitOnRateLimit bool
	sleep           Sleeper
	now             func() time.Time
}

// XClientOption customizes an XClient.
type XClientOption func(*XClient)

// WithHTTPClient replaces the OAuth1-signing client. Used in tests.
func WithHTTPClient(c *http.Client) XClientOption {
	return func(x *XClient) { x.httpClient = c }
}

// WithLimiter replaces the client-side request limiter.
func WithLimiter(l *rate.Limiter) XClientOption {
	return func(x *XClient) { x.limiter = l }
}

// WithSleeper replaces the sleeper used while waiting out rate limits.
func WithSleeper(s Sleeper) XClientOption {
	return func(x *XClient) { x.sleep = s }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) XClientOption {
	return func(x *XClient) { x.now = now }
}

// NewXClient returns a client signing requests with creds. ctx only
// provides the base transport for the OAuth1 client (see oauth1.HTTPClient).
func NewXClient(ctx context.Context, creds Credentials, config *XConfig, opts ...XClientOption) *XClient {
	if config == nil {
		config = &DefaultConfig().X
	}
	oauthConfig := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	limit := rate.Inf
	if config.MinRequestIntervalMs > 0 {
		limit = rate.Every(time.Duration(config.MinRequestIntervalMs) * time.Millisecond)
	}

	c := &XClient{
		httpClient:      oauthConfig.Client(ctx, token),
		baseURL:         strings.TrimRight(config.APIBaseURL, "/"),
		limiter:         rate.NewLimiter(limit, 1),
		waitOnRateLimit: config.WaitOnRateLimit,
		sleep:           SleepContext,
		now:             time.Now,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultAPIBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createPostRequest struct {
	Text  string     `json:"text"`
	Reply *postReply `json:"reply,omitempty"`
}

type postReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type createPostResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// apiErrorResponse covers both the problem-details and the legacy error shapes.
type apiErrorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// CreatePost publishes text, optionally as a reply to replyTo, and returns
// the new post id. A 429 response is waited out and the request repeated
// when waiting on rate limits is enabled.
func (c *XClient) CreatePost(ctx context.Context, text, replyTo string) (string, error) {
	reqBody := createPostRequest{Text: text}
	if replyTo != "" {
		reqBody.Reply = &postReply{InReplyToTweetID: replyTo}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &PostError{Text: text, ReplyTo: replyTo, Err: err}
	}

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &PostError{Text: text, ReplyTo: replyTo, Err: err}
		}

		status, header, body, err := c.do(ctx, payload)
		if err != nil {
			return "", &PostError{Text: text, ReplyTo: replyTo, Err: err}
		}

		if status == http.StatusTooManyRequests && c.waitOnRateLimit {
			wait := c.rateLimitWait(header)
			pkgLogger.Warn("Rate limit reached, waiting", "wait", wait)
			if err := c.sleep(ctx, wait); err != nil {
				return "", &PostError{Text: text, ReplyTo: replyTo, StatusCode: status, Err: err}
			}
			continue
		}

		if status < 200 || status >= 300 {
			return "", &PostError{Text: text, ReplyTo: replyTo, StatusCode: status, Err: parseAPIError(body)}
		}

		var res createPostResponse
		if err := json.Unmarshal(body, &res); err != nil {
			return "", &PostError{Text: text, ReplyTo: replyTo, StatusCode: status, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
		if res.Data.ID == "" {
			return "", &PostError{Text: text, ReplyTo: replyTo, StatusCode: status, Err: errors.New("response has no post id")}
		}
		return res.Data.ID, nil
	}
}

func (c *XClient) do(ctx context.Context, payload []byte) (int, http.Header, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, resp.Header, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, resp.Header, body, nil
}

// rateLimitWait returns how long to wait until the window in
// x-rate-limit-reset (unix seconds) reopens, plus one second of slack.
func (c *XClient) rateLimitWait(h http.Header) time.Duration {
	reset, err := strconv.ParseInt(h.Get("x-rate-limit-reset"), 10, 64)
	if err != nil {
		return defaultRateLimitWait
	}
	wait := time.Unix(reset, 0).Sub(c.now()) + time.Second
	if wait < 0 {
		return 0
	}
	return wait.Truncate(time.Second)
}

func parseAPIError(body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil {
		switch {
		case apiErr.Detail != "":
			return errors.New(apiErr.Detail)
		case len(apiErr.Errors) > 0 && apiErr.Errors[0].Message != "":
			return errors.New(apiErr.Errors[0].Message)
		case apiErr.Title != "":
			return errors.New(apiErr.Title)
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = "empty response"
	}
	return errors.New(msg)
}
