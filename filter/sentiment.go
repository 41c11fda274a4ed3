package filter

import "strings"

// sadWords is the expanded depression/sadness trigger lexicon: plain words,
// multi-word phrases and emoji. Matching is plain substring containment over
// the lowercased message, so "I am not sad" still triggers; that gap is the
// documented behavior.
var sadWords = []string{
	"sad", "so sad", "really sad", "feeling sad", "feels sad", "sadness", "sadtimes", "sadge",
	"depressed", "depression", "depressing", "depress", "down bad", "downbad", "emo", "blue",
	"cry", "crying", "cryinggg", "cryin", "tears", "tearful", "sobbing", "weeping", "😢", "😭",
	"hopeless", "pointless", "worthless", "meaningless", "nothing matters", "no point",
	"why bother", "life sucks", "fml", "ugh life", "why me", "done with life", "so tired of this",
	"lonely", "alone", "unloved", "nobody cares", "nobody loves me", "i’m worthless", "not cared about",
	"no friends", "ignored", "abandoned", "empty", "isolated",
	"kill myself", "kms", "kys", "end it all", "suicidal", "suicide", "i wanna die", "want to die",
	"wish i was dead", "better off dead", "die alone", "ending it", "goodbye world",
	"slit wrists", "cutting", "self harm", "self-harm", "hurt myself", "not gonna make it",
	"im gonna throw myself off a cliff", "throw myself off a cliff",
	"jump off a bridge", "jump off a building", "throw myself off", "end my life",
	"anxious", "anxiety", "stressed", "stressful", "overwhelmed", "drained", "burnt out", "burned out",
	"low energy", "tired", "exhausted", "done", "numb", "broken", "hurt", "pain", "painful", "suffering",
	"mentally exhausted", "emotionally drained", "can’t handle this", "can’t do this anymore",
	"down", "feelsbad", "feels bad man", "bruh im sad", "ugh", "not okay", "im not okay",
	"never happy", "so low", "feeling low", "stuck", "trapped", "lost", "dark thoughts", "heavy",
	"in my feels", "in my feelings", "broken heart", "💔", "🫠", "😔", "☹️", "😞", "😟", "😩", "😫", "🥺", "😿", "😕",
}

// ClassifySentiment triggers a motivational quote reply when the message
// contains any distress term.
func ClassifySentiment(msg Message) Action {
	lower := strings.ToLower(msg.Content)
	for _, word := range sadWords {
		if strings.Contains(lower, word) {
			return Action{Kind: ActionReplyWithQuote}
		}
	}
	return none
}
