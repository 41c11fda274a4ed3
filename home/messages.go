package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/filter"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.OnMessage(captureMessage)
	sys.OnMessage(runFilters)
}

// captureMessage records non-command chat so mood analysis can see messages
// from before the current channel scan.
func captureMessage(event *events.MessageCreate) {
	content := strings.TrimSpace(event.Message.Content)
	if content == "" {
		return
	}
	prefix := "!"
	if sys.GlobalConfig != nil {
		prefix = sys.GlobalConfig.Prefix
	}
	if strings.HasPrefix(content, prefix) {
		return
	}
	if sys.DB == nil {
		return
	}

	var guildID = event.Message.GuildID
	logged := &sys.LoggedMessage{
		MessageID: event.MessageID,
		ChannelID: event.ChannelID,
		AuthorID:  event.Message.Author.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if guildID != nil {
		logged.GuildID = *guildID
	}

	ctx, cancel := context.WithTimeout(appContext(), 5*time.Second)
	defer cancel()
	if err := sys.SaveMessage(ctx, logged); err != nil {
		sys.LogDebug("Failed to capture message %s: %v", event.MessageID, err)
	}
}

// runFilters classifies every inbound message and hands the resulting actions
// off for execution. Classification stays on the listener goroutine so the
// action order is fixed; the side effects do not.
func runFilters(event *events.MessageCreate) {
	msg := filter.Message{
		AuthorID:  event.Message.Author.ID,
		ChannelID: event.ChannelID,
		Content:   event.Message.Content,
	}

	var targetID snowflake.ID
	if sys.GlobalConfig != nil {
		targetID = sys.GlobalConfig.TargetUserID
	}
	actions := filter.Run(msg, targetID)
	if len(actions) == 0 {
		return
	}

	dispatchActions(event.Client(), event.ChannelID, event.MessageID, msg.Mention(), actions)
}

// dispatchActions executes the platform side effects off the listener
// goroutine. Gateway events dispatch serially, and the quote fetch can take
// seconds; blocking here would stall every later event, commands included.
func dispatchActions(client *bot.Client, channelID, messageID snowflake.ID, mention string, actions []filter.Action) {
	sys.SafeGo(func() {
		for _, action := range actions {
			switch action.Kind {
			case filter.ActionDeleteAndReply:
				// Delete is best-effort; the taunt goes out either way.
				if err := client.Rest.DeleteMessage(channelID, messageID); err != nil {
					sys.LogFilter(sys.MsgFilterDeleteFailed, messageID, err)
				}
				if err := sys.SafeSend(client, channelID, action.Text); err != nil {
					sys.LogFilter(sys.MsgFilterReplyFailed, channelID, err)
				}

			case filter.ActionReply:
				if err := sys.SafeSend(client, channelID, action.Text); err != nil {
					sys.LogFilter(sys.MsgFilterReplyFailed, channelID, err)
				}

			case filter.ActionReplyWithQuote:
				quote := api.GetQuote(appContext())
				reply := fmt.Sprintf(sys.MsgFilterSadQuote, mention, quote)
				if err := sys.SafeSend(client, channelID, reply); err != nil {
					sys.LogFilter(sys.MsgFilterReplyFailed, channelID, err)
				}
			}
		}
	})
}

func appContext() context.Context {
	if sys.AppContext != nil {
		return sys.AppContext
	}
	return context.Background()
}

// clipRunes caps a string at max runes, never splitting a UTF-8 sequence.
func clipRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
