package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendationStrict(t *testing.T) {
	rec, err := ParseRecommendation(`{"mood":"happy","song_title":"Happy","artist":"Pharrell Williams"}`)
	require.NoError(t, err)
	assert.Equal(t, "happy", rec.Mood)
	assert.Equal(t, "Happy", rec.SongTitle)
	assert.Equal(t, "Pharrell Williams", rec.Artist)
}

func TestParseRecommendationExtractsEmbeddedJSON(t *testing.T) {
	raw := "Sure! Here is my pick:\n```json\n{\"mood\": \"chill\", \"song_title\": \"Weightless\", \"artist\": \"Marconi Union\"}\n```\nEnjoy!"
	rec, err := ParseRecommendation(raw)
	require.NoError(t, err)
	assert.Equal(t, "chill", rec.Mood)
	assert.Equal(t, "Weightless", rec.SongTitle)
	assert.Equal(t, "Marconi Union", rec.Artist)
}

func TestParseRecommendationFailures(t *testing.T) {
	for _, raw := range []string{"", "   ", "no json here", "{broken"} {
		_, err := ParseRecommendation(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestRandomFallbackMembership(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec := RandomFallback()
		seen[rec.SongTitle] = true
		assert.Contains(t, fallbackRecommendations, rec)
	}
	assert.NotEmpty(t, seen)
}

func TestRecommendWithoutModel(t *testing.T) {
	prev := DefaultLLM
	DefaultLLM = nil
	defer func() { DefaultLLM = prev }()

	rec, raw := Recommend(context.Background(), "hello world")
	assert.Empty(t, raw)
	assert.NotEmpty(t, rec.Mood)
	assert.NotEmpty(t, rec.SongTitle)
	assert.NotEmpty(t, rec.Artist)
	assert.Contains(t, fallbackRecommendations, rec)
}

func TestBuildDJPromptEmbedsFragment(t *testing.T) {
	prompt := BuildDJPrompt("alice: good vibes only")
	assert.Contains(t, prompt, "alice: good vibes only")
	assert.Contains(t, prompt, "STRICT JSON")
}
