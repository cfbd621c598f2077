package trendbot

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// TrendBot fetches trending topics and publishes them.
type TrendBot struct {
	topicSource *TopicSource
	publisher   *Publisher
	config      *Config
}

// NewTrendBot builds a bot posting through poster. In dry-run mode poster
// may be nil and a DryRunPoster is used.
func NewTrendBot(config *Config, poster Poster) (*TrendBot, error) {
	if poster == nil {
		if !config.DryRun {
			return nil, fmt.Errorf("failed to create trend bot: no poster configured")
		}
		poster = &DryRunPoster{}
	}

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return &TrendBot{
		topicSource: NewTopicSource(NewRSSClient(&config.RSS), DefaultBlocklist(), config.RSS.URL),
		publisher:   NewPublisher(poster, r, &config.Posting),
		config:      config,
	}, nil
}

// Run performs one fetch-and-post cycle.
func (b *TrendBot) Run(ctx context.Context) (Summary, error) {
	pkgLogger.Info("Start fetching topics", "url", b.config.RSS.URL)
	topics, err := b.topicSource.GetTrendingTopics(ctx, b.config.Posting.FetchLimit)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get trending topics: %w", err)
	}
	pkgLogger.Info("Fetched safe topics", "count", len(topics))

	summary, err := b.publisher.Publish(ctx, topics)
	if err != nil {
		return summary, fmt.Errorf("failed to publish topics: %w", err)
	}
	pkgLogger.Info("Finish posting", "thread_segments", summary.ThreadSegments, "single_posts", summary.SinglePosts)
	return summary, nil
}
