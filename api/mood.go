package api

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var posWords = []string{
	"happy", "glad", "great", "awesome", "good", "love", "excited", "yay", "win", "nice",
	"fun", "cool", "chill", "relaxed", "relax", "lol", "lmao", "haha", "hehe", "content",
}

var negWords = []string{
	"sad", "tired", "angry", "mad", "upset", "anxious", "stress", "stressed", "depressed",
	"cry", "crying", "lonely", "worthless", "pain", "hurt", "numb", "lost", "down", "ugh", "hate",
}

const moodPromptFormat = "You will receive up to 20 recent messages from ONE user. " +
	"Infer their CURRENT OVERALL MOOD as a single lowercase word from this set:\n" +
	"[happy, sad, stressed, chill, angry, excited, bored, anxious, neutral].\n" +
	"Rules:\n" +
	"- Respond with ONLY one word, no punctuation or explanations.\n" +
	"- If uncertain, respond with 'neutral'.\n\n" +
	"MESSAGES:\n%s\n\nMOOD:"

var lettersOnlyRe = regexp.MustCompile(`[^a-z]`)

// GuessMood infers a single-word mood for the given message texts. The model
// answer is sanitized to letters only; any model failure falls through to the
// local keyword heuristic.
func GuessMood(ctx context.Context, texts []string) string {
	if DefaultLLM != nil {
		prompt := fmt.Sprintf(moodPromptFormat, strings.Join(texts, "\n"))
		if raw, err := DefaultLLM.Generate(ctx, prompt, false); err == nil {
			mood := lettersOnlyRe.ReplaceAllString(strings.ToLower(raw), "")
			if mood != "" {
				return mood
			}
		}
	}
	return HeuristicMood(texts)
}

// HeuristicMood is the no-model mood guess: count positive and negative
// keyword hits over the joined text, then refine the negative case.
func HeuristicMood(texts []string) string {
	text := strings.ToLower(strings.Join(texts, " "))

	pos := 0
	for _, w := range posWords {
		if strings.Contains(text, w) {
			pos++
		}
	}
	neg := 0
	for _, w := range negWords {
		if strings.Contains(text, w) {
			neg++
		}
	}

	switch {
	case pos > neg && pos > 0:
		return "happy"
	case neg > pos && neg > 0:
		switch {
		case containsAny(text, "stress", "stressed", "pressure", "deadline"):
			return "stressed"
		case containsAny(text, "angry", "mad"):
			return "angry"
		case containsAny(text, "sad", "cry", "lonely", "depress"):
			return "sad"
		}
		return "down"
	}
	return "neutral"
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
