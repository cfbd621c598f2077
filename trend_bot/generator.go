package trendbot

import (
	"strings"
)

// MaxPostLength is the hard character cap applied to single posts.
const MaxPostLength = 270

const topicPlaceholder = "{topic}"

// Templates are the single-post shapes. Each holds exactly one placeholder.
var Templates = [...]string{
	"{topic}. This is gaining attention today.",
	"A lot of people are discussing: {topic}",
	"Trending now: {topic}",
	"Seeing increased buzz around {topic}.",
	"{topic} is getting a lot of attention recently.",
}

var threadTail = [...]string{
	"2/ Here’s a quick breakdown of why this is trending.",
	"3/ It’s gaining attention due to recent developments and growing public interest.",
	"4/ More updates expected soon. Stay tuned.",
}

// Rand is the source of randomness for template and delay selection.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Generator renders topics into post text.
type Generator struct {
	Rand Rand
}

// GeneratePost fills a randomly chosen template with topic and cuts the
// result to MaxPostLength characters. No ellipsis is added.
func (g *Generator) GeneratePost(topic string) string {
	tmpl := Templates[g.Rand.IntN(len(Templates))]
	return truncate(strings.Replace(tmpl, topicPlaceholder, topic, 1), MaxPostLength)
}

// GenerateThread returns the four thread segments for topic. Only the
// first segment depends on topic.
func (g *Generator) GenerateThread(topic string) []string {
	thread := make([]string, 0, 1+len(threadTail))
	thread = append(thread, "1/ "+topic)
	thread = append(thread, threadTail[:]...)
	return thread
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
