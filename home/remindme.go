package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/proc"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("remindme", handleRemindMe)
}

func handleRemindMe(event *events.MessageCreate, args []string) error {
	client := event.Client()

	if len(args) < 2 {
		return sys.SafeSend(client, event.ChannelID,
			fmt.Sprintf(sys.MsgReminderUsage, sys.GlobalConfig.Prefix))
	}

	durationStr := args[0]
	message := strings.Join(args[1:], " ")

	seconds, err := sys.ParseDuration(durationStr)
	if err != nil {
		return sys.SafeSend(client, event.ChannelID, sys.ErrReminderBadDuration)
	}

	mention := "<@" + event.Message.Author.ID.String() + ">"
	proc.ScheduleReminder(client, event.ChannelID, mention, seconds, message)

	return sys.SafeSend(client, event.ChannelID,
		fmt.Sprintf(sys.MsgReminderSet, mention, durationStr, message))
}
