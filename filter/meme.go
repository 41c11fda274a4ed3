package filter

import (
	"regexp"
	"strings"
)

const MemeLink = "https://tenor.com/view/taylen-kinney-6-7-67-six-seven-doot-doot-gif-14312959711459626479"

// Any orientation of 6 7: digits, words, or mixed, with optional interior
// whitespace.
var memePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b6\s*7\b`),
	regexp.MustCompile(`\b7\s*6\b`),
	regexp.MustCompile(`\bsix\s*seven\b`),
	regexp.MustCompile(`\bseven\s*six\b`),
	regexp.MustCompile(`\b6\s*seven\b`),
	regexp.MustCompile(`\bsix\s*7\b`),
	regexp.MustCompile(`\bseven\s*6\b`),
	regexp.MustCompile(`\b7\s*six\b`),
}

// ClassifyMeme replies with the meme link when the message matches any 6-7
// variant. The pipeline stops running later classifiers after a match.
func ClassifyMeme(msg Message) Action {
	lower := strings.ToLower(msg.Content)
	for _, p := range memePatterns {
		if p.MatchString(lower) {
			return Action{Kind: ActionReply, Text: MemeLink}
		}
	}
	return none
}
