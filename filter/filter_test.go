package filter

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const targetID = snowflake.ID(620792701201154048)

func msg(author snowflake.ID, content string) Message {
	return Message{AuthorID: author, ChannelID: snowflake.ID(1), Content: content}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "nigga", Normalize("N I G G A"))
	assert.Equal(t, "nigga", Normalize("nigga!!!"))
	assert.Equal(t, "ngg", Normalize("n1gg4"))
	assert.Equal(t, "helloworld", Normalize("Hello, World! 🎉"))
	assert.Equal(t, "", Normalize("123 456"))
}

func TestClassifyIdentityMatchesVariants(t *testing.T) {
	// Leetspeak variants lose their digits under normalization but the
	// letter skeleton still matches a shorter banned form.
	for _, content := range []string{"nigga", "NIGGA", "nigga!!!", "n i g g a", "N I G G A", "n1gg4", "he said nigger lol", "nig"} {
		a := ClassifyIdentity(msg(targetID, content), targetID)
		require.Equal(t, ActionDeleteAndReply, a.Kind, "content %q", content)
		assert.Contains(t, a.Text, "<@620792701201154048>")
	}
}

func TestClassifyIdentityIgnoresOtherAuthors(t *testing.T) {
	a := ClassifyIdentity(msg(snowflake.ID(42), "nigga"), targetID)
	assert.Equal(t, ActionNone, a.Kind)
}

func TestClassifyIdentityCleanMessage(t *testing.T) {
	a := ClassifyIdentity(msg(targetID, "good morning everyone"), targetID)
	assert.Equal(t, ActionNone, a.Kind)
}

func TestClassifyMeme(t *testing.T) {
	for _, content := range []string{"67", "6 7", "7 6", "six seven", "SIX SEVEN", "six 7", "6 seven", "that was 6  7 fr"} {
		a := ClassifyMeme(msg(1, content))
		assert.Equal(t, ActionReply, a.Kind, "content %q", content)
		assert.Equal(t, MemeLink, a.Text)
	}
	for _, content := range []string{"667", "676", "sixty seven", "6", "7"} {
		a := ClassifyMeme(msg(1, content))
		assert.Equal(t, ActionNone, a.Kind, "content %q", content)
	}
}

func TestClassifySentiment(t *testing.T) {
	for _, content := range []string{"I feel so lonely today", "😭", "life sucks man", "i'm burnt out"} {
		a := ClassifySentiment(msg(1, content))
		assert.Equal(t, ActionReplyWithQuote, a.Kind, "content %q", content)
	}

	a := ClassifySentiment(msg(1, "great game tonight"))
	assert.Equal(t, ActionNone, a.Kind)

	// Substring matching means negation still triggers; the supportive quote
	// is harmless either way.
	a = ClassifySentiment(msg(1, "I am not sad"))
	assert.Equal(t, ActionReplyWithQuote, a.Kind)
}

func TestClassifyAutoReplies(t *testing.T) {
	actions := ClassifyAutoReplies(msg(1, "thank you so much"))
	require.Len(t, actions, 1)
	assert.Equal(t, ThankYouLink, actions[0].Text)

	actions = ClassifyAutoReplies(msg(1, "PLZ SPEED I NEED THIS"))
	require.Len(t, actions, 1)
	assert.Equal(t, SpeedLink, actions[0].Text)

	actions = ClassifyAutoReplies(msg(1, "thank you, plz speed i need this"))
	require.Len(t, actions, 2)
	assert.Equal(t, ThankYouLink, actions[0].Text)
	assert.Equal(t, SpeedLink, actions[1].Text)

	assert.Empty(t, ClassifyAutoReplies(msg(1, "thanks")))
}

func TestRunOrder(t *testing.T) {
	// Identity match plus sad word plus auto-trigger all fire in order.
	actions := Run(msg(targetID, "nigga i am so sad, thank you"), targetID)
	require.Len(t, actions, 3)
	assert.Equal(t, ActionDeleteAndReply, actions[0].Kind)
	assert.Equal(t, ActionReplyWithQuote, actions[1].Kind)
	assert.Equal(t, ActionReply, actions[2].Kind)
}

func TestRunMemeShortCircuits(t *testing.T) {
	// A meme match stops the sentiment and auto-reply classifiers.
	actions := Run(msg(1, "6 7 im so sad thank you"), targetID)
	require.Len(t, actions, 1)
	assert.Equal(t, MemeLink, actions[0].Text)
}

func TestRunCleanMessage(t *testing.T) {
	assert.Empty(t, Run(msg(1, "what time is the raid"), targetID))
}
