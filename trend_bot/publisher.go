package trendbot

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

// DefaultMaxTopics is the size of the working set taken from the topic list.
const DefaultMaxTopics = 5

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the production Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Publisher posts a run's topics: the longest one as a thread, the rest
// as standalone posts.
type Publisher struct {
	Poster     Poster
	Generator  *Generator
	Rand       Rand
	Sleep      Sleeper
	ThreadWait WaitPolicy
	SingleWait WaitPolicy
	MaxTopics  int
}

// NewPublisher wires a Publisher from the posting config.
func NewPublisher(poster Poster, r Rand, config *PostingConfig) *Publisher {
	return &Publisher{
		Poster:     poster,
		Generator:  &Generator{Rand: r},
		Rand:       r,
		Sleep:      SleepContext,
		ThreadWait: config.ThreadWait,
		SingleWait: config.SingleWait,
		MaxTopics:  config.MaxTopics,
	}
}

// LongestTopic returns the topic with the most characters. Ties go to the
// earliest topic. It returns "" for an empty slice.
func LongestTopic(topics []string) string {
	return lo.MaxBy(topics, func(a, b string) bool {
		return utf8.RuneCountInString(a) > utf8.RuneCountInString(b)
	})
}

// Publish posts topics in order and stops at the first failure. Segments
// already posted are left in place.
func (p *Publisher) Publish(ctx context.Context, topics []string) (Summary, error) {
	var summary Summary
	if len(topics) == 0 {
		pkgLogger.Info("No safe topics found")
		return summary, nil
	}

	maxTopics := p.MaxTopics
	if maxTopics <= 0 {
		maxTopics = DefaultMaxTopics
	}
	selected := topics[:min(len(topics), maxTopics)]

	// Compare by position, not value: a duplicate of the longest topic
	// further down is still a standalone post.
	longIdx := lo.IndexOf(selected, LongestTopic(selected))
	summary.ThreadTopic = selected[longIdx]

	for i, topic := range selected {
		if i == longIdx {
			n, err := p.postThread(ctx, topic)
			summary.ThreadSegments += n
			if err != nil {
				return summary, err
			}
			continue
		}

		text := p.Generator.GeneratePost(topic)
		id, err := p.Poster.CreatePost(ctx, text, "")
		if err != nil {
			return summary, err
		}
		summary.SinglePosts++
		pkgLogger.Info("Single post posted", "id", id, "topic", topic)
		if err := p.wait(ctx, p.SingleWait); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (p *Publisher) postThread(ctx context.Context, topic string) (int, error) {
	replyTo := ""
	for i, text := range p.Generator.GenerateThread(topic) {
		id, err := p.Poster.CreatePost(ctx, text, replyTo)
		if err != nil {
			return i, err
		}
		replyTo = id
		pkgLogger.Info("Thread segment posted", "id", id, "segment", i+1, "topic", topic)
		if err := p.wait(ctx, p.ThreadWait); err != nil {
			return i + 1, err
		}
	}
	return len(threadTail) + 1, nil
}

func (p *Publisher) wait(ctx context.Context, policy WaitPolicy) error {
	if policy.IsZero() {
		return nil
	}
	d := policy.Pick(p.Rand)
	pkgLogger.Debug("Waiting before next post", "delay", d)
	return p.Sleep(ctx, d)
}
