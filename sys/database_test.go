package sys

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, InitDatabase(context.Background(), path))
	t.Cleanup(CloseDatabase)
}

func TestBotConfigRoundTrip(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	value, err := GetBotConfig(ctx, "bot_user_id")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, SetBotConfig(ctx, "bot_user_id", "111"))
	value, err = GetBotConfig(ctx, "bot_user_id")
	require.NoError(t, err)
	assert.Equal(t, "111", value)

	// Upsert replaces the previous value.
	require.NoError(t, SetBotConfig(ctx, "bot_user_id", "222"))
	value, err = GetBotConfig(ctx, "bot_user_id")
	require.NoError(t, err)
	assert.Equal(t, "222", value)
}

func TestMessageCaptureQueries(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	guild := snowflake.ID(10)
	channelA := snowflake.ID(20)
	channelB := snowflake.ID(21)
	alice := snowflake.ID(30)
	bob := snowflake.ID(31)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	save := func(id snowflake.ID, channel, author snowflake.ID, content string, offset time.Duration) {
		require.NoError(t, SaveMessage(ctx, &LoggedMessage{
			MessageID: id,
			GuildID:   guild,
			ChannelID: channel,
			AuthorID:  author,
			Content:   content,
			CreatedAt: base.Add(offset),
		}))
	}

	save(1, channelA, alice, "first", 0)
	save(2, channelA, bob, "second", time.Minute)
	save(3, channelB, alice, "third", 2*time.Minute)
	save(4, channelA, alice, "fourth", 3*time.Minute)

	// Duplicate message IDs are ignored, not overwritten.
	save(1, channelA, alice, "rewritten", 4*time.Minute)

	byUser, err := GetRecentUserMessages(ctx, guild, alice, 2)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, "fourth", byUser[0].Content)
	assert.Equal(t, "third", byUser[1].Content)

	byChannel, err := GetRecentChannelMessages(ctx, channelA, 10)
	require.NoError(t, err)
	require.Len(t, byChannel, 3)
	assert.Equal(t, "fourth", byChannel[0].Content)
	assert.Equal(t, "second", byChannel[1].Content)
	assert.Equal(t, "first", byChannel[2].Content)
}
