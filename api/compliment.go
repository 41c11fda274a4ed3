package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/tryhardbot/tryhard/sys"
)

var (
	ComplimentURL = "https://complimentr.com/api"
	AdviceURL     = "https://api.adviceslip.com/advice"
)

var fallbackCompliments = []string{
	"You have a magnetic energy that brightens rooms.",
	"Your presence makes things better.",
	"You're the kind of person people feel lucky to know.",
	"You make hard things feel possible.",
	"Your humor is elite. Never change.",
	"You're doing better than you think.",
}

// GetCompliment tries the compliment API, then the advice API rephrased as a
// compliment, then a local fallback. Always produces some text.
func GetCompliment(ctx context.Context) string {
	if comp := fetchCompliment(ctx); comp != "" {
		return comp
	}

	if advice := fetchAdvice(ctx); advice != "" {
		return fmt.Sprintf("you're awesome — also, a lil' thought: %s", advice)
	}

	return fallbackCompliments[rand.Intn(len(fallbackCompliments))]
}

func fetchCompliment(ctx context.Context) string {
	waitLimiter(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ComplimentURL, nil)
	if err != nil {
		return ""
	}

	resp, err := sys.HttpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var data struct {
		Compliment string `json:"compliment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ""
	}
	return strings.TrimSpace(data.Compliment)
}

func fetchAdvice(ctx context.Context) string {
	waitLimiter(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, AdviceURL, nil)
	if err != nil {
		return ""
	}

	resp, err := sys.HttpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var data struct {
		Slip struct {
			Advice string `json:"advice"`
		} `json:"slip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ""
	}
	return strings.TrimSpace(data.Slip.Advice)
}
