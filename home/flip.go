package home

import (
	"fmt"
	"math/rand"

	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("flip", handleFlip)
}

var flipSides = []string{"Heads 👑", "Tails 🍑"}

func handleFlip(event *events.MessageCreate, args []string) error {
	result := flipSides[rand.Intn(len(flipSides))]
	return sys.SafeSend(event.Client(), event.ChannelID, fmt.Sprintf(sys.MsgFlipResult, result))
}
