package sys

import (
	"strings"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// MessageCharLimit is the platform's per-message character limit.
const MessageCharLimit = 2000

// SafeSend sends text to a channel without exceeding the platform limit. Long
// text is shipped as an attached file instead of being chunked or truncated.
func SafeSend(client *bot.Client, channelID snowflake.ID, text string) error {
	if len(text) <= MessageCharLimit {
		builder := discord.NewMessageCreate().WithContent(text)
		_, err := client.Rest.CreateMessage(channelID, builder)
		return err
	}
	return SendAsFile(client, channelID, text, "message.txt", "")
}

// SendAsFile attaches content as a text file, with an optional header message
// sent first.
func SendAsFile(client *bot.Client, channelID snowflake.ID, content, filename, header string) error {
	if header != "" {
		headerBuilder := discord.NewMessageCreate().WithContent(header)
		if _, err := client.Rest.CreateMessage(channelID, headerBuilder); err != nil {
			return err
		}
	}

	builder := discord.NewMessageCreate().
		WithFiles(discord.NewFile(filename, "", strings.NewReader(content)))
	_, err := client.Rest.CreateMessage(channelID, builder)
	return err
}
