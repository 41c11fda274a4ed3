// Package filter holds the stateless message classifiers. Each classifier maps
// one inbound message to zero or one reactive action; the dispatch loop in the
// home package owns all platform side effects.
package filter

import (
	"github.com/disgoorg/snowflake/v2"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionDeleteAndReply deletes the triggering message and posts Text.
	ActionDeleteAndReply
	// ActionReply posts Text in the triggering channel.
	ActionReply
	// ActionReplyWithQuote posts a fetched motivational quote addressed to
	// the author.
	ActionReplyWithQuote
)

type Action struct {
	Kind ActionKind
	Text string
}

var none = Action{Kind: ActionNone}

// Message is the read-only view of one inbound chat message.
type Message struct {
	AuthorID  snowflake.ID
	ChannelID snowflake.ID
	Content   string
}

func (m Message) Mention() string {
	return "<@" + m.AuthorID.String() + ">"
}

// Run applies the classifiers in their fixed order: identity filter, meme
// patterns, sentiment, auto-replies. A meme match stops the remaining
// classifiers; everything before it still applies. At most one
// DeleteAndReply is ever produced per message.
func Run(msg Message, targetID snowflake.ID) []Action {
	var actions []Action

	if a := ClassifyIdentity(msg, targetID); a.Kind != ActionNone {
		actions = append(actions, a)
	}

	if a := ClassifyMeme(msg); a.Kind != ActionNone {
		return append(actions, a)
	}

	if a := ClassifySentiment(msg); a.Kind != ActionNone {
		actions = append(actions, a)
	}

	for _, a := range ClassifyAutoReplies(msg) {
		actions = append(actions, a)
	}

	return actions
}
