package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// Recommendation is one song pick from the AI DJ.
type Recommendation struct {
	Mood      string `json:"mood"`
	SongTitle string `json:"song_title"`
	Artist    string `json:"artist"`
}

var fallbackRecommendations = []Recommendation{
	{Mood: "uplifting", SongTitle: "Don't Stop Me Now", Artist: "Queen"},
	{Mood: "chill", SongTitle: "Lo-Fi Beats", Artist: "ChilledCow"},
	{Mood: "happy", SongTitle: "Happy", Artist: "Pharrell Williams"},
	{Mood: "moody", SongTitle: "Blinding Lights", Artist: "The Weeknd"},
}

const djPromptFormat = "You are a DJ. Read the chat fragment and output STRICT JSON matching this schema:\n" +
	"{ \"mood\": string, \"song_title\": string, \"artist\": string }\n" +
	"- Choose EXACTLY ONE specific, real song.\n" +
	"- 'song_title' must be the official song name only (no extra text).\n" +
	"- 'artist' must be the main performing artist only (no features unless essential).\n" +
	"- Do not add commentary. Only output JSON.\n\n" +
	"Chat fragment:\n%s"

func BuildDJPrompt(fragment string) string {
	return fmt.Sprintf(djPromptFormat, fragment)
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// ParseRecommendation parses the model's raw output. Strict JSON first, then
// a secondary attempt on the first balanced {...} substring.
func ParseRecommendation(raw string) (Recommendation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Recommendation{}, fmt.Errorf("empty response")
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(raw), &rec); err == nil {
		return rec, nil
	}

	if m := jsonObjectRe.FindString(raw); m != "" {
		if err := json.Unmarshal([]byte(m), &rec); err == nil {
			return rec, nil
		}
	}

	return Recommendation{}, fmt.Errorf("malformed response")
}

// RandomFallback picks uniformly from the fixed fallback tuples.
func RandomFallback() Recommendation {
	return fallbackRecommendations[rand.Intn(len(fallbackRecommendations))]
}

// Recommend asks the DJ for one song based on a chat fragment. It never
// propagates a model or parse failure: any problem degrades to a fallback
// recommendation. The raw model output is returned for diagnostics (empty
// when the model produced nothing).
func Recommend(ctx context.Context, fragment string) (Recommendation, string) {
	raw := ""
	if DefaultLLM != nil {
		if out, err := DefaultLLM.Generate(ctx, BuildDJPrompt(fragment), true); err == nil {
			raw = out
		}
	}

	rec, err := ParseRecommendation(raw)
	if err != nil {
		rec = RandomFallback()
	}

	rec.Mood = strings.TrimSpace(rec.Mood)
	if rec.Mood == "" {
		rec.Mood = "unknown"
	}
	rec.SongTitle = strings.TrimSpace(rec.SongTitle)
	rec.Artist = strings.TrimSpace(rec.Artist)
	if rec.SongTitle == "" || rec.Artist == "" {
		rec.SongTitle, rec.Artist = "Don't Stop Me Now", "Queen"
	}

	return rec, raw
}
