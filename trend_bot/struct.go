package trendbot

import "time"

// WaitPolicy は投稿間の待機時間の範囲（秒単位、両端を含む）を保持します。
type WaitPolicy struct {
	MinSec int `yaml:"min_sec"`
	MaxSec int `yaml:"max_sec"`
}

// IsZero reports whether the policy never sleeps.
func (w WaitPolicy) IsZero() bool {
	return w.MinSec <= 0 && w.MaxSec <= 0
}

// Pick returns a uniformly random whole number of seconds in [MinSec, MaxSec].
func (w WaitPolicy) Pick(r Rand) time.Duration {
	lo, hi := w.MinSec, w.MaxSec
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi <= lo {
		return time.Duration(lo) * time.Second
	}
	return time.Duration(lo+r.IntN(hi-lo+1)) * time.Second
}

// Summary は一回の実行で投稿された件数を保持します。
type Summary struct {
	ThreadTopic    string
	ThreadSegments int
	SinglePosts    int
}
