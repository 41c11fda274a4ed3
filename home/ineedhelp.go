package home

import (
	"fmt"

	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("ineedhelp", handleINeedHelp)
}

func handleINeedHelp(event *events.MessageCreate, args []string) error {
	quote := api.GetQuote(appContext())
	mention := "<@" + event.Message.Author.ID.String() + ">"
	return sys.SafeSend(event.Client(), event.ChannelID,
		fmt.Sprintf(sys.MsgINeedHelpResult, mention, quote))
}
