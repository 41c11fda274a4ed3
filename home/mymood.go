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
	sys.RegisterCommand("mymood", handleMyMood)
}

const (
	moodMessagesNeeded   = 20
	moodPerChannelLimit  = 100
	moodGlobalScanLimit  = 2000
	moodFallbackScan     = 300
	moodSnippetMaxLength = 200
)

func handleMyMood(event *events.MessageCreate, args []string) error {
	client := event.Client()
	authorID := event.Message.Author.ID

	if err := sys.SafeSend(client, event.ChannelID, sys.MsgMoodAnalyzing); err != nil {
		return err
	}

	var texts []string
	if event.GuildID != nil {
		texts = collectUserMessages(client, *event.GuildID, authorID)
	}
	if len(texts) == 0 {
		texts = collectFromChannel(client, event.ChannelID, authorID, moodFallbackScan)
	}
	if len(texts) == 0 && sys.DB != nil && event.GuildID != nil {
		// Last resort: messages the gateway captured before this scan.
		if logged, err := sys.GetRecentUserMessages(appContext(), *event.GuildID, authorID, moodMessagesNeeded); err == nil {
			for _, m := range logged {
				texts = append(texts, moodSnippet(m.Content))
			}
		}
	}
	if len(texts) == 0 {
		return sys.SafeSend(client, event.ChannelID, sys.MsgMoodNotEnough)
	}

	mood := api.GuessMood(appContext(), texts)
	sys.LogMood("Guessed mood %q for user %s from %d messages", mood, authorID, len(texts))

	return sys.SafeSend(client, event.ChannelID,
		fmt.Sprintf(sys.MsgMoodResult, moodMessagesNeeded, mood))
}

// collectUserMessages gathers the author's most recent messages across the
// guild's text channels, best-effort: unreadable channels are skipped, and the
// scan stops once enough messages or the global cap is reached.
func collectUserMessages(client *bot.Client, guildID, authorID snowflake.ID) []string {
	var texts []string
	scanned := 0

	for channel := range client.Caches.Channels() {
		if len(texts) >= moodMessagesNeeded || scanned >= moodGlobalScanLimit {
			break
		}
		if channel.GuildID() != guildID || channel.Type() != discord.ChannelTypeGuildText {
			continue
		}

		messages, err := client.Rest.GetMessages(channel.ID(), 0, 0, 0, moodPerChannelLimit)
		if err != nil {
			continue
		}

		for _, msg := range messages {
			scanned++
			if scanned > moodGlobalScanLimit || len(texts) >= moodMessagesNeeded {
				break
			}
			if msg.Author.ID != authorID || msg.Content == "" {
				continue
			}
			if clean := moodSnippet(msg.Content); clean != "" {
				texts = append(texts, clean)
			}
		}
	}

	if len(texts) > moodMessagesNeeded {
		texts = texts[:moodMessagesNeeded]
	}
	return texts
}

func collectFromChannel(client *bot.Client, channelID, authorID snowflake.ID, scanLimit int) []string {
	var texts []string
	var before snowflake.ID

	for scanned := 0; scanned < scanLimit && len(texts) < moodMessagesNeeded; {
		batch := scanLimit - scanned
		if batch > 100 {
			batch = 100
		}
		messages, err := client.Rest.GetMessages(channelID, 0, before, 0, batch)
		if err != nil || len(messages) == 0 {
			break
		}
		for _, msg := range messages {
			scanned++
			if msg.Author.ID == authorID && msg.Content != "" {
				if clean := moodSnippet(msg.Content); clean != "" {
					texts = append(texts, clean)
					if len(texts) >= moodMessagesNeeded {
						break
					}
				}
			}
		}
		before = messages[len(messages)-1].ID
	}
	return texts
}

// moodSnippet compacts a message to a single trimmed line capped for the
// prompt.
func moodSnippet(content string) string {
	clean := strings.TrimSpace(strings.ReplaceAll(content, "\n", " "))
	return clipRunes(clean, moodSnippetMaxLength)
}
