package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("translate", handleTranslate)
}

func handleTranslate(event *events.MessageCreate, args []string) error {
	client := event.Client()

	if len(args) < 2 {
		prefix := sys.GlobalConfig.Prefix
		return sys.SafeSend(client, event.ChannelID,
			fmt.Sprintf(sys.MsgTranslateUsage, prefix, prefix))
	}

	target := sys.ResolveLangCode(args[0])
	text := strings.Join(args[1:], " ")

	translated, err := api.Translate(appContext(), target, text)
	if err != nil {
		return sys.SafeSend(client, event.ChannelID, fmt.Sprintf(sys.MsgTranslateFailed, err))
	}

	return sys.SafeSend(client, event.ChannelID,
		fmt.Sprintf(sys.MsgTranslateResult, translated, target))
}
