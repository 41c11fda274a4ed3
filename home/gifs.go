package home

import (
	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/filter"
	"github.com/tryhardbot/tryhard/sys"
)

// The gif commands reply with the same links the auto-triggers use.

func init() {
	sys.RegisterCommand("thankyou", handleThankYou)
	sys.RegisterCommand("plzspeedineedthis", handleSpeed)
	sys.RegisterCommand("67", handleSixtySeven)
}

func handleThankYou(event *events.MessageCreate, args []string) error {
	return sys.SafeSend(event.Client(), event.ChannelID, filter.ThankYouLink)
}

func handleSpeed(event *events.MessageCreate, args []string) error {
	return sys.SafeSend(event.Client(), event.ChannelID, filter.SpeedLink)
}

func handleSixtySeven(event *events.MessageCreate, args []string) error {
	return sys.SafeSend(event.Client(), event.ChannelID, filter.MemeLink)
}
