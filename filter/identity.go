package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// bannedWords is the extensive banned list with variations. Both the list and
// the message are normalized before matching, so punctuation, spacing and
// digit substitutions don't dodge the filter.
var bannedWords = []string{
	"nigga", "nigger", "niga", "niger", "nibba", "nibber",
	"niqqa", "niqqer", "n1gga", "n1gger", "n1gg4", "nigg4",
	"neega", "neegr", "niggaz", "nigz", "nigs", "nig",
	"nygga", "nygger", "nigguh", "niggur", "niggir",
}

const tauntFormat = "%s just called himself gay!"

var nonLetterRe = regexp.MustCompile(`[^a-z]`)

// Normalize removes symbols, punctuation and emojis and lowercases, keeping
// only a-z, for strict containment matching.
func Normalize(content string) string {
	return nonLetterRe.ReplaceAllString(strings.ToLower(content), "")
}

// ClassifyIdentity checks the configured target user's messages against the
// banned list. First match wins: the message is deleted and replaced with a
// fixed taunt. Containment is substring-based post-normalization on purpose,
// overbroad matches included.
func ClassifyIdentity(msg Message, targetID snowflake.ID) Action {
	if targetID == 0 || msg.AuthorID != targetID {
		return none
	}

	normalized := Normalize(msg.Content)
	for _, word := range bannedWords {
		if strings.Contains(normalized, Normalize(word)) {
			return Action{
				Kind: ActionDeleteAndReply,
				Text: fmt.Sprintf(tauntFormat, msg.Mention()),
			}
		}
	}
	return none
}
