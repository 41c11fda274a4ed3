package home

import (
	"fmt"
	"regexp"

	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("roast", handleRoast)
}

var mentionRe = regexp.MustCompile(`^<@!?(\d+)>$`)

// targetMention resolves the optional @user argument, defaulting to the
// invoking author.
func targetMention(event *events.MessageCreate, args []string) string {
	if len(args) > 0 {
		if m := mentionRe.FindStringSubmatch(args[0]); m != nil {
			return "<@" + m[1] + ">"
		}
	}
	return "<@" + event.Message.Author.ID.String() + ">"
}

func handleRoast(event *events.MessageCreate, args []string) error {
	mention := targetMention(event, args)
	insult := api.GetInsult(appContext())
	return sys.SafeSend(event.Client(), event.ChannelID,
		fmt.Sprintf(sys.MsgRoastResult, mention, insult))
}
