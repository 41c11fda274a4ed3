package sys

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartDaemonsRunsOnce(t *testing.T) {
	var starts int32
	var runs int32

	RegisterDaemon(LogDaily, func(ctx context.Context) (bool, func(), func()) {
		atomic.AddInt32(&starts, 1)
		return true, func() { atomic.AddInt32(&runs, 1) }, nil
	})

	ctx := context.Background()
	// Reconnects deliver Ready repeatedly; the daemon set must start once.
	StartDaemons(ctx)
	StartDaemons(ctx)
	StartDaemons(ctx)

	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&starts))
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
}
