// Package api wraps the external collaborators: the quote, insult and
// compliment HTTP services, the translation endpoint, and the LLM. Every
// adapter degrades to a local fallback instead of failing outward, except
// translation, which has no sane default.
package api

import (
	"context"

	"golang.org/x/time/rate"
)

// Courtesy limiter shared by the free public APIs. Burst is generous enough
// that normal chat traffic never blocks here.
var apiLimiter = rate.NewLimiter(rate.Limit(4), 10)

func waitLimiter(ctx context.Context) {
	_ = apiLimiter.Wait(ctx)
}
