package trendbot

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBotConfig(feedURL string) *Config {
	config := DefaultConfig()
	config.RSS.URL = feedURL
	config.Posting.ThreadWait = WaitPolicy{}
	config.Posting.SingleWait = WaitPolicy{}
	return config
}

func TestTrendBot_Run(t *testing.T) {
	srv := newFeedServer(t, http.StatusOK, testFeed)
	poster := &fakePoster{}

	bot, err := NewTrendBot(newTestBotConfig(srv.URL), poster)
	require.NoError(t, err)

	summary, err := bot.Run(context.Background())
	require.NoError(t, err)

	// "Election results delayed" is blocked and the untitled entry skipped.
	assert.Equal(t, "Sports team wins championship", summary.ThreadTopic)
	assert.Equal(t, 4, summary.ThreadSegments)
	assert.Equal(t, 1, summary.SinglePosts)
	require.Len(t, poster.calls, 5)
	assert.Contains(t, poster.calls[0].Text, "Tech firm launches product")
	assert.Equal(t, postCall{Text: "1/ Sports team wins championship"}, poster.calls[1])
	assert.Equal(t, "id-2", poster.calls[2].ReplyTo)
}

func TestTrendBot_Run_NoSafeTopics(t *testing.T) {
	srv := newFeedServer(t, http.StatusOK, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>t</title>
<item><title>Parliament adjourned</title></item>
<item><title>Temple festival draws crowds</title></item>
</channel></rss>`)
	poster := &fakePoster{}

	bot, err := NewTrendBot(newTestBotConfig(srv.URL), poster)
	require.NoError(t, err)

	summary, err := bot.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	assert.Empty(t, poster.calls)
}

func TestTrendBot_Run_FetchError(t *testing.T) {
	srv := newFeedServer(t, http.StatusBadGateway, "")
	poster := &fakePoster{}

	bot, err := NewTrendBot(newTestBotConfig(srv.URL), poster)
	require.NoError(t, err)

	_, err = bot.Run(context.Background())
	var fe *FetchError
	assert.ErrorAs(t, err, &fe)
	assert.Empty(t, poster.calls)
}

func TestTrendBot_Run_PostError(t *testing.T) {
	srv := newFeedServer(t, http.StatusOK, testFeed)
	poster := &fakePoster{failAt: 1}

	bot, err := NewTrendBot(newTestBotConfig(srv.URL), poster)
	require.NoError(t, err)

	_, err = bot.Run(context.Background())
	var pe *PostError
	assert.ErrorAs(t, err, &pe)
	assert.Len(t, poster.calls, 1)
}

func TestNewTrendBot_Poster(t *testing.T) {
	config := DefaultConfig()
	_, err := NewTrendBot(config, nil)
	assert.Error(t, err, "a poster is required outside dry-run mode")

	config.DryRun = true
	bot, err := NewTrendBot(config, nil)
	require.NoError(t, err)
	assert.IsType(t, &DryRunPoster{}, bot.publisher.Poster)
}
