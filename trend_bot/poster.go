package trendbot

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Poster creates a post and returns its identifier. An empty replyTo
// creates a standalone post.
type Poster interface {
	CreatePost(ctx context.Context, text, replyTo string) (string, error)
}

// DryRunPoster logs posts instead of publishing them.
type DryRunPoster struct {
	seq atomic.Int64
}

// CreatePost logs text and returns a synthetic identifier.
func (p *DryRunPoster) CreatePost(ctx context.Context, text, replyTo string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &PostError{Text: text, ReplyTo: replyTo, Err: err}
	}
	id := fmt.Sprintf("dry-run-%d", p.seq.Add(1))
	pkgLogger.Info("Dry run, not posting", "id", id, "reply_to", replyTo, "text", text)
	return id, nil
}
