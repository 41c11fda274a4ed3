package home

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollEmbedNumbersOptionsInOrder(t *testing.T) {
	embed := pollEmbed("Pizza or Tacos?", []string{"Pizza", "Tacos"})

	assert.Equal(t, "Pizza or Tacos?", embed.Title)

	lines := strings.Split(strings.TrimRight(embed.Description, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1️⃣ Pizza", lines[0])
	assert.Equal(t, "2️⃣ Tacos", lines[1])
}

func TestPollEmbedTenOptions(t *testing.T) {
	options := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	embed := pollEmbed("q", options)

	lines := strings.Split(strings.TrimRight(embed.Description, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[9], "🔟 "))
}

func TestHelpEmbedListsEveryCommand(t *testing.T) {
	embed := helpEmbed("!")

	assert.Equal(t, "📖 Tryhard Bot Help", embed.Title)
	require.NotEmpty(t, embed.Fields)

	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	joined := strings.Join(names, " ")
	for _, cmd := range []string{
		"!wyr", "!remindme", "!translate", "!mymood", "!moodplay", "!poll",
		"!ineedhelp", "!thankyou", "!plzspeedineedthis", "!67", "!flip",
		"!roast", "!compliment",
	} {
		assert.Contains(t, joined, cmd)
	}
}
