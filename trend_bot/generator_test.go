package trendbot

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePost_Templates(t *testing.T) {
	want := []string{
		"Cats. This is gaining attention today.",
		"A lot of people are discussing: Cats",
		"Trending now: Cats",
		"Seeing increased buzz around Cats.",
		"Cats is getting a lot of attention recently.",
	}
	for i, w := range want {
		r := &seqRand{vals: []int{i}}
		g := &Generator{Rand: r}
		assert.Equal(t, w, g.GeneratePost("Cats"))
		assert.Equal(t, []int{len(Templates)}, r.calls, "template choice must be uniform over all templates")
	}
}

func TestGeneratePost_EachTemplateHasOnePlaceholder(t *testing.T) {
	for _, tmpl := range Templates {
		assert.Equal(t, 1, strings.Count(tmpl, topicPlaceholder), tmpl)
	}
}

func TestGeneratePost_Truncation(t *testing.T) {
	long := strings.Repeat("a", 400)
	for i := range Templates {
		g := &Generator{Rand: &seqRand{vals: []int{i}}}
		post := g.GeneratePost(long)
		assert.Equal(t, MaxPostLength, utf8.RuneCountInString(post))
		assert.False(t, strings.HasSuffix(post, "…"))
	}

	// Characters, not bytes.
	multi := strings.Repeat("é", 300)
	g := &Generator{Rand: &seqRand{vals: []int{2}}}
	post := g.GeneratePost(multi)
	require.True(t, utf8.ValidString(post))
	assert.Equal(t, MaxPostLength, utf8.RuneCountInString(post))
	assert.True(t, strings.HasPrefix(post, "Trending now: éé"))

	// Exactly at the cap is left alone.
	exact := strings.Repeat("b", MaxPostLength-len("Trending now: "))
	g = &Generator{Rand: &seqRand{vals: []int{2}}}
	assert.Equal(t, "Trending now: "+exact, g.GeneratePost(exact))
}

func TestGenerateThread(t *testing.T) {
	g := &Generator{}

	got := g.GenerateThread("New economic policy update")
	want := []string{
		"1/ New economic policy update",
		"2/ Here’s a quick breakdown of why this is trending.",
		"3/ It’s gaining attention due to recent developments and growing public interest.",
		"4/ More updates expected soon. Stay tuned.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateThread() mismatch (-want +got):\n%s", diff)
	}

	other := g.GenerateThread("Cats")
	require.Len(t, other, 4)
	assert.Equal(t, "1/ Cats", other[0])
	assert.Equal(t, got[1:], other[1:], "segments 2-4 must not depend on the topic")
}
