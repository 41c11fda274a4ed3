package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tryhardbot/tryhard/sys"
)

var TranslateURL = "https://translate.googleapis.com/translate_a/single"

// Translate translates text into the target language code with automatic
// source detection. Unlike the other adapters this one surfaces failure to
// the caller: translation has no sane local default.
func Translate(ctx context.Context, target, text string) (string, error) {
	waitLimiter(ctx)

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, TranslateURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := sys.HttpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	// Response shape: [[["<translated>","<original>",...],...],...]
	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	segments, ok := firstSlice(payload)
	if !ok {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	out := sb.String()
	if out == "" {
		return "", fmt.Errorf("empty translation result")
	}
	return out, nil
}

func firstSlice(payload []any) ([]any, bool) {
	if len(payload) == 0 {
		return nil, false
	}
	s, ok := payload[0].([]any)
	return s, ok
}
