package filter

import (
	"regexp"
	"strings"
)

const (
	ThankYouLink = "https://tenor.com/view/thank-you-thank-you-bro-how-i-thank-bro-fantasy-challenge-thank-you-tiktok-gif-7839145224229268701"
	SpeedLink    = "https://tenor.com/view/my-mom-is-kinda-homeless-ishowspeed-speeding-please-speed-i-need-this-ishowspeed-trying-not-to-laugh-gif-16620227105127147208"
)

var speedRe = regexp.MustCompile(`plz.*speed.*i need this`)

// ClassifyAutoReplies runs the fixed substring/regex auto-triggers in
// insertion order. They are not exclusive; several can fire on one message.
func ClassifyAutoReplies(msg Message) []Action {
	lower := strings.ToLower(msg.Content)
	var actions []Action

	if strings.Contains(lower, "thank you") {
		actions = append(actions, Action{Kind: ActionReply, Text: ThankYouLink})
	}

	if speedRe.MatchString(lower) {
		actions = append(actions, Action{Kind: ActionReply, Text: SpeedLink})
	}

	return actions
}
