package proc

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.OnClientReady(func(ctx context.Context, client *bot.Client) {
		sys.RegisterDaemon(sys.LogDaily, func(ctx context.Context) (bool, func(), func()) {
			return startDailyQuote(ctx, client)
		})
	})
}

func startDailyQuote(ctx context.Context, client *bot.Client) (bool, func(), func()) {
	run := func() {
		for {
			next := NextDailyRun(time.Now(), sys.GlobalConfig.DailyQuoteHour, sys.GlobalConfig.DailyQuoteUTCOffset)
			sys.LogDaily(sys.MsgDailyNextRun, next.Format(time.RFC3339))

			timer := time.NewTimer(time.Until(next))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			broadcastQuote(ctx, client)
		}
	}
	return true, run, nil
}

// NextDailyRun computes the next occurrence of hour:00 in a fixed UTC offset
// zone, strictly after now.
func NextDailyRun(now time.Time, hour, utcOffset int) time.Time {
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", utcOffset), utcOffset*3600)
	local := now.In(zone)

	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, zone)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func broadcastQuote(ctx context.Context, client *bot.Client) {
	channelID, channelName, ok := pickQuoteChannel(client)
	if !ok {
		sys.LogDaily(sys.MsgDailyNoChannel)
		return
	}

	quote := api.GetQuote(ctx)
	if err := sys.SafeSend(client, channelID, fmt.Sprintf(sys.MsgDailyBroadcast, quote)); err != nil {
		sys.LogDaily(sys.MsgDailySendFailed, err)
		return
	}
	sys.LogDaily(sys.MsgDailySent, channelName)
}

// pickQuoteChannel prefers #general, falling back to the first cached text
// channel.
func pickQuoteChannel(client *bot.Client) (snowflake.ID, string, bool) {
	var firstID snowflake.ID
	var firstName string
	found := false

	for channel := range client.Caches.Channels() {
		if channel.Type() != discord.ChannelTypeGuildText {
			continue
		}
		if channel.Name() == "general" {
			return channel.ID(), channel.Name(), true
		}
		if !found {
			firstID, firstName, found = channel.ID(), channel.Name(), true
		}
	}
	return firstID, firstName, found
}
