package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tryhardbot/tryhard/sys"
)

// QuoteURL is a var so tests can point it at a stub server.
var QuoteURL = "https://zenquotes.io/api/random"

var fallbackQuotes = []string{
	"Believe you can and you're halfway there.",
	"Keep going. Everything you need will come to you at the perfect time.",
	"Dream big and dare to fail.",
	"Success is not final, failure is not fatal: It is the courage to continue that counts.",
}

// GetQuote fetches a quote from the API, falling back to the local list if
// the call fails. Never fails outward.
func GetQuote(ctx context.Context) string {
	waitLimiter(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, QuoteURL, nil)
	if err != nil {
		return localQuote()
	}

	resp, err := sys.HttpClient.Do(req)
	if err != nil {
		return localQuote()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return localQuote()
	}

	var data []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || len(data) == 0 {
		return localQuote()
	}

	return data[0].Q + " — " + data[0].A
}

// localQuote picks deterministically by day-of-month.
func localQuote() string {
	return fallbackQuotes[time.Now().Day()%len(fallbackQuotes)]
}
