package sys

import (
	"sync"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"45s", 45},
		{"10m", 600},
		{"2h", 7200},
		{"1d", 86400},
		{"1h30m", 5400},
		{"2d4h", 187200},
		{"2h15m30s", 8130},
		{"1h 30m", 5400},
		{"10M", 600},
		{"10m5m", 900},
		{"  1h  ", 3600},
	}
	for _, c := range cases {
		got, err := ParseDuration(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "0m", "0s0m", "m10", "ten minutes"} {
		_, err := ParseDuration(in)
		assert.ErrorIs(t, err, ErrInvalidDuration, "input %q", in)
	}
}

func TestResolveLangCode(t *testing.T) {
	assert.Equal(t, "es", ResolveLangCode("spanish"))
	assert.Equal(t, "es", ResolveLangCode("ES"))
	assert.Equal(t, "zh-cn", ResolveLangCode("mandarin"))
	assert.Equal(t, "ja", ResolveLangCode(" Japanese "))
	assert.Equal(t, "no", ResolveLangCode("norwegian"))
	// Unknown input passes through lowercased for the service to reject.
	assert.Equal(t, "klingon", ResolveLangCode("Klingon"))
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{"poll", "a", "b"}, SplitArgs("poll a b"))
	assert.Equal(t, []string{"poll", "favorite food?", "pizza", "sushi"},
		SplitArgs(`poll "favorite food?" pizza sushi`))
	assert.Equal(t, []string{"one"}, SplitArgs("  one  "))
	assert.Empty(t, SplitArgs("   "))
	// Unterminated quote keeps the remainder as one argument.
	assert.Equal(t, []string{"a", "b c"}, SplitArgs(`a "b c`))
}

func TestChannelLockSameInstance(t *testing.T) {
	id := snowflake.ID(12345)
	assert.Same(t, ChannelLock(id), ChannelLock(id))
	assert.NotSame(t, ChannelLock(id), ChannelLock(snowflake.ID(67890)))
}

func TestChannelLockExcludes(t *testing.T) {
	id := snowflake.ID(999)
	var inCritical int
	var maxInCritical int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := ChannelLock(id)
			lock.Lock()
			defer lock.Unlock()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}
