package proc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/snowflake/v2"
	"github.com/tryhardbot/tryhard/sys"
)

var (
	reminderWG    sync.WaitGroup
	reminderCount int
	reminderMu    sync.Mutex
)

// ScheduleReminder arms a one-shot reminder without blocking the caller. The
// reminder fires in the originating channel; delivery failures are swallowed
// since the channel may be gone by then.
func ScheduleReminder(client *bot.Client, channelID snowflake.ID, mention string, seconds int, text string) {
	sys.LogReminder(sys.MsgReminderScheduled, mention, seconds)

	reminderMu.Lock()
	reminderCount++
	reminderMu.Unlock()
	reminderWG.Add(1)

	sys.SafeGo(func() {
		defer func() {
			reminderWG.Done()
			reminderMu.Lock()
			reminderCount--
			reminderMu.Unlock()
		}()

		timer := time.NewTimer(time.Duration(seconds) * time.Second)
		defer timer.Stop()

		ctx := sys.AppContext
		if ctx == nil {
			ctx = context.Background()
		}

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		fire := fmt.Sprintf(sys.MsgReminderFire, mention, text)
		if err := sys.SafeSend(client, channelID, fire); err != nil {
			sys.LogReminder(sys.MsgReminderSendFailed, channelID, err)
			return
		}
		sys.LogReminder(sys.MsgReminderDelivered, mention)
	})
}

// DrainReminders waits for in-flight reminder goroutines to finish. Pending
// timers observe the app context cancellation, so this returns promptly on
// shutdown.
func DrainReminders() {
	reminderMu.Lock()
	outstanding := reminderCount
	reminderMu.Unlock()

	if outstanding > 0 {
		sys.LogReminder(sys.MsgReminderDraining, outstanding)
	}
	reminderWG.Wait()
}
