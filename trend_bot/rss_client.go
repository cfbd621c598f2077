package trendbot

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedFetcher returns the entry titles of a feed in feed order.
// Entries without a title yield an empty string.
type FeedFetcher interface {
	FetchTitles(ctx context.Context, url string) ([]string, error)
}

// RSSClient はRSSフィードの取得とパースを行うクライアント
type RSSClient struct {
	feedParser *gofeed.Parser
}

// NewRSSClient は新しいRSSClientインスタンスを作成します。
func NewRSSClient(config *RSSConfig) *RSSClient {
	fp := gofeed.NewParser()
	timeout := 30 * time.Second
	if config != nil {
		if config.TimeoutSec > 0 {
			timeout = time.Duration(config.TimeoutSec) * time.Second
		}
		if config.UserAgent != "" {
			fp.UserAgent = config.UserAgent
		}
	}
	fp.Client = &http.Client{Timeout: timeout}
	return &RSSClient{
		feedParser: fp,
	}
}

// FetchTitles は指定されたURLからフィードを取得し、各エントリのタイトルを返します。
func (c *RSSClient) FetchTitles(ctx context.Context, url string) ([]string, error) {
	feed, err := c.feedParser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	titles := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			titles = append(titles, "")
			continue
		}
		titles = append(titles, item.Title)
	}
	pkgLogger.Debug("Fetched feed", "url", url, "entries", len(titles))
	return titles, nil
}
