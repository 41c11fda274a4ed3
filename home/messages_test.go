package home

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/tryhardbot/tryhard/api"
	"github.com/tryhardbot/tryhard/filter"
)

func TestDispatchActionsReturnsWithoutWaitingOnAdapters(t *testing.T) {
	// A stalled quote service must not hold up the caller: gateway events
	// dispatch serially, so the hook has to hand slow work off.
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	prev := api.QuoteURL
	api.QuoteURL = server.URL
	defer func() { api.QuoteURL = prev }()

	actions := []filter.Action{{Kind: filter.ActionReplyWithQuote}}

	start := time.Now()
	dispatchActions(nil, snowflake.ID(1), snowflake.ID(2), "<@3>", actions)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestClipRunes(t *testing.T) {
	assert.Equal(t, "hello", clipRunes("hello", 10))
	assert.Equal(t, "hel", clipRunes("hello", 3))

	// Multi-byte content never gets cut mid-rune.
	clipped := clipRunes("héllo wörld 😭😭😭", 13)
	assert.Equal(t, "héllo wörld 😭", clipped)

	clipped = clipRunes("😭😭😭😭", 2)
	assert.Equal(t, "😭😭", clipped)
}
