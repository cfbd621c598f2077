package trendbot

import (
	"context"
)

// DefaultTopicLimit is used when GetTrendingTopics is called with limit <= 0.
const DefaultTopicLimit = 5

// TopicSource turns a feed into a list of safe topics.
type TopicSource struct {
	fetcher   FeedFetcher
	blocklist *Blocklist
	feedURL   string
}

// NewTopicSource returns a TopicSource reading feedURL through fetcher.
// A nil blocklist means DefaultBlocklist.
func NewTopicSource(fetcher FeedFetcher, blocklist *Blocklist, feedURL string) *TopicSource {
	if blocklist == nil {
		blocklist = DefaultBlocklist()
	}
	return &TopicSource{
		fetcher:   fetcher,
		blocklist: blocklist,
		feedURL:   feedURL,
	}
}

// GetTrendingTopics returns up to limit safe titles in feed order.
// Titles are used exactly as the feed returned them; only empty ones are skipped.
// The result is empty, not nil, when nothing survives the filter.
func (s *TopicSource) GetTrendingTopics(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultTopicLimit
	}

	titles, err := s.fetcher.FetchTitles(ctx, s.feedURL)
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, limit)
	for _, title := range titles {
		if title == "" {
			continue
		}
		if kw, blocked := s.blocklist.Match(title); blocked {
			pkgLogger.Debug("Skipping blocked title", "title", title, "keyword", kw)
			continue
		}
		topics = append(topics, title)
		if len(topics) >= limit {
			break
		}
	}
	return topics, nil
}
