package home

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWYRTwoOptions(t *testing.T) {
	a, b, ok := SplitWYR("Would you rather be invisible or be able to fly?")
	require.True(t, ok)
	assert.Equal(t, "Would you rather be invisible", a)
	assert.Equal(t, "be able to fly", b)
}

func TestSplitWYRStripsQuestionMark(t *testing.T) {
	a, b, ok := SplitWYR("Would you rather have super strength or super speed?")
	require.True(t, ok)
	assert.False(t, strings.HasSuffix(a, "?"))
	assert.False(t, strings.HasSuffix(b, "?"))
}

func TestSplitWYRMultipleOrsStaysWhole(t *testing.T) {
	// Three-way questions can't be mapped onto two reactions.
	_, _, ok := SplitWYR("Would you rather sing or dance or mime?")
	assert.False(t, ok)
}

func TestSplitWYRNoSeparator(t *testing.T) {
	_, _, ok := SplitWYR("Would you rather simply vibe?")
	assert.False(t, ok)
}

func TestWYREmbedSplittable(t *testing.T) {
	embed, ok := wyrEmbed("Would you rather be invisible or be able to fly?")
	require.True(t, ok)
	assert.Equal(t, "🤔 Would You Rather...", embed.Title)
	assert.Contains(t, embed.Description, "1️⃣ Would you rather be invisible")
	assert.Contains(t, embed.Description, "2️⃣ be able to fly")
	assert.Equal(t, colorBlurple, embed.Color)
}

func TestWYREmbedUnsplittable(t *testing.T) {
	_, ok := wyrEmbed("Would you rather sing or dance or mime?")
	assert.False(t, ok)
}
