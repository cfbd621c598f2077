package trendbot

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// seqRand returns vals in order (modulo n), then zeros.
type seqRand struct {
	vals  []int
	calls []int
}

func (r *seqRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

type postCall struct {
	Text    string
	ReplyTo string
}

// fakePoster records calls and returns ids "id-1", "id-2", ...
// It fails on call number failAt (1-based) when failAt > 0.
type fakePoster struct {
	calls  []postCall
	failAt int
}

var errFakePost = errors.New("fake post failure")

func (p *fakePoster) CreatePost(ctx context.Context, text, replyTo string) (string, error) {
	p.calls = append(p.calls, postCall{Text: text, ReplyTo: replyTo})
	if p.failAt > 0 && len(p.calls) == p.failAt {
		return "", &PostError{Text: text, ReplyTo: replyTo, Err: errFakePost}
	}
	return fmt.Sprintf("id-%d", len(p.calls)), nil
}

type recordingSleeper struct {
	waits []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return nil
}

type fakeFetcher struct {
	titles []string
	err    error
	urls   []string
}

func (f *fakeFetcher) FetchTitles(ctx context.Context, url string) ([]string, error) {
	f.urls = append(f.urls, url)
	return f.titles, f.err
}
