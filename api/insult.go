package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tryhardbot/tryhard/sys"
)

var InsultURL = "https://evilinsult.com/generate_insult.php?lang=en&type=json"

// GetInsult always produces some text. Service errors fall back to fixed
// lines so the roast command never errors outward.
func GetInsult(ctx context.Context) string {
	waitLimiter(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, InsultURL, nil)
	if err != nil {
		return "the roast API choked. You win this round."
	}

	resp, err := sys.HttpClient.Do(req)
	if err != nil {
		return "the roast API choked. You win this round."
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "you're lucky, the roast machine broke."
	}

	var data struct {
		Insult string `json:"insult"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Insult == "" {
		return "You're lucky, I couldn't think of an insult."
	}

	return data.Insult
}
