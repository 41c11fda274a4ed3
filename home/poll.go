package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("poll", handlePoll)
}

var pollReactions = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

const colorBlue = 0x3498DB

// pollEmbed renders the question as the embed title and one numbered line per
// option.
func pollEmbed(question string, options []string) discord.Embed {
	var body strings.Builder
	for i, option := range options {
		fmt.Fprintf(&body, "%s %s\n", pollReactions[i], option)
	}
	return discord.Embed{
		Title:       question,
		Description: body.String(),
		Color:       colorBlue,
	}
}

func handlePoll(event *events.MessageCreate, args []string) error {
	if len(args) < 3 {
		return sys.SafeSend(event.Client(), event.ChannelID,
			fmt.Sprintf(sys.MsgPollUsage, sys.GlobalConfig.Prefix))
	}

	question := args[0]
	options := args[1:]

	if len(options) > len(pollReactions) {
		return sys.SafeSend(event.Client(), event.ChannelID, sys.MsgPollTooManyOptions)
	}

	client := event.Client()
	msg, err := client.Rest.CreateMessage(event.ChannelID,
		discord.NewMessageCreate().WithEmbeds(pollEmbed(question, options)))
	if err != nil {
		return err
	}

	for i := range options {
		if err := client.Rest.AddReaction(event.ChannelID, msg.ID, pollReactions[i]); err != nil {
			sys.LogDebug("Failed to add poll reaction %s: %v", pollReactions[i], err)
		}
	}
	return nil
}
