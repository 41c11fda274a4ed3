package home

import (
	"fmt"

	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("compliment", handleCompliment)
}

func handleCompliment(event *events.MessageCreate, args []string) error {
	mention := targetMention(event, args)
	compliment := api.GetCompliment(appContext())
	return sys.SafeSend(event.Client(), event.ChannelID,
		fmt.Sprintf(sys.MsgComplimentResult, mention, compliment))
}
