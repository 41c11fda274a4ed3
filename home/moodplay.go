package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("moodplay", handleMoodplay)
}

const (
	djHistoryLimit     = 30
	djPreviewLines     = 10
	djSnippetMaxLength = 160
)

// handleMoodplay runs the AI DJ: read the recent channel vibe, ask for one
// song, and hand the result to the music bot. The channel lock prevents two
// overlapping runs from interleaving their progress messages.
func handleMoodplay(event *events.MessageCreate, args []string) error {
	lock := sys.ChannelLock(event.ChannelID)
	lock.Lock()
	defer lock.Unlock()

	client := event.Client()
	channelID := event.ChannelID

	if err := sys.SafeSend(client, channelID, sys.MsgDJTriggered); err != nil {
		return err
	}
	if err := sys.SafeSend(client, channelID, sys.MsgDJCollecting); err != nil {
		return err
	}

	fragment := collectChatFragment(client, channelID)

	if err := sys.SafeSend(client, channelID, sys.MsgDJThinking); err != nil {
		return err
	}

	rec, raw := api.Recommend(appContext(), fragment)

	// Surface the raw model output for debugging, like the rest of the flow
	// it is best-effort.
	if raw != "" {
		if err := sys.SendAsFile(client, channelID, raw, "model_raw.json", sys.MsgDJRawHeader); err != nil {
			sys.LogDJ("Failed to attach raw model output: %v", err)
		}
	} else {
		_ = sys.SafeSend(client, channelID, sys.MsgDJEmptyResponse)
	}

	sys.LogDJ("Recommending %q by %q (mood %q)", rec.SongTitle, rec.Artist, rec.Mood)

	if err := sys.SafeSend(client, channelID,
		fmt.Sprintf(sys.MsgDJResult, rec.Mood, rec.SongTitle, rec.Artist)); err != nil {
		return err
	}

	if link := api.LookupTrackURL(appContext(), rec.SongTitle, rec.Artist); link != "" {
		if err := sys.SafeSend(client, channelID, link); err != nil {
			return err
		}
	} else {
		sys.LogDJ(sys.MsgDJLinkLookupMiss, rec.SongTitle+" "+rec.Artist)
	}

	// Handoff line for the music bot. Mentions are suppressed so a song
	// title containing @everyone stays inert.
	playCmd := fmt.Sprintf("m!play %s - %s", rec.SongTitle, rec.Artist)
	_, err := client.Rest.CreateMessage(channelID, discord.NewMessageCreate().
		WithContent(playCmd).
		WithAllowedMentions(&discord.AllowedMentions{}))
	return err
}

// collectChatFragment builds the prompt fragment: the last few human messages
// in chronological order, one compact line each. When the history fetch fails
// the gateway capture in sqlite stands in.
func collectChatFragment(client *bot.Client, channelID snowflake.ID) string {
	messages, err := client.Rest.GetMessages(channelID, 0, 0, 0, djHistoryLimit)
	if err != nil {
		sys.LogDJ("Failed to fetch channel history, using captured log: %v", err)
		return capturedFragment(channelID)
	}

	var lines []string
	for _, msg := range messages {
		if msg.Author.Bot {
			continue
		}
		content := strings.TrimSpace(strings.ReplaceAll(msg.Content, "\n", " "))
		if content == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Author.Username, clipRunes(content, djSnippetMaxLength)))
	}

	return fragmentFromLines(lines)
}

// capturedFragment rebuilds the fragment from the message_log capture. Only
// content is stored there, so lines carry no author names.
func capturedFragment(channelID snowflake.ID) string {
	if sys.DB == nil {
		return ""
	}
	logged, err := sys.GetRecentChannelMessages(appContext(), channelID, djHistoryLimit)
	if err != nil {
		sys.LogDJ("Failed to read captured channel log: %v", err)
		return ""
	}

	var lines []string
	for _, m := range logged {
		content := strings.TrimSpace(strings.ReplaceAll(m.Content, "\n", " "))
		if content == "" {
			continue
		}
		lines = append(lines, clipRunes(content, djSnippetMaxLength))
	}
	return fragmentFromLines(lines)
}

// fragmentFromLines flips newest-first lines into chronological order and
// keeps the trailing preview window.
func fragmentFromLines(lines []string) string {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	if len(lines) > djPreviewLines {
		lines = lines[len(lines)-djPreviewLines:]
	}
	return strings.Join(lines, "\n")
}
