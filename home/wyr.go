package home

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("wyr", handleWYR)
}

var wyrQuestions = []string{
	"Would you rather be invisible or be able to fly?",
	"Would you rather have unlimited sushi for life or unlimited tacos for life?",
	"Would you rather always be 10 minutes late or always be 20 minutes early?",
	"Would you rather fight 100 duck-sized horses or 1 horse-sized duck?",
	"Would you rather know the history of every object you touch or be able to talk to animals?",
	"Would you rather never use social media again or never watch another movie or TV show?",
	"Would you rather teleport anywhere or be able to read minds?",
	"Would you rather have the ability to see 10 minutes into the future or 150 years into the future?",
	"Would you rather be forced to sing along to every song you hear or dance to every song you hear?",
	"Would you rather have a personal maid or a personal chef?",
	"Would you rather lose your sight or your memories?",
	"Would you rather always have a full phone battery or a full gas tank?",
	"Would you rather have super strength or super speed?",
	"Would you rather be able to speak all languages or be able to speak to animals?",
	"Would you rather be the funniest person in the room or the smartest?",
	"Would you rather live in a world where it pours whenever you sneeze or thunder claps whenever you laugh?",
	"Would you rather never be stuck in traffic again or never get another cold?",
	"Would you rather live without music or live without video games?",
	"Would you rather drink only water or only coffee for the rest of your life?",
	"Would you rather be an unknown superhero or a famous villain?",
	"Would you rather always step on a LEGO or always feel like you need to sneeze?",
	"Would you rather give up pizza forever or give up burgers forever?",
	"Would you rather have one real get-out-of-jail-free card or a key that opens any door?",
	"Would you rather glow bright pink every time you're embarrassed or have a loud honk whenever you're stressed?",
	"Would you rather be able to pause time or rewind time?",
	"Would you rather have to listen to only one song forever or watch only one movie forever?",
	"Would you rather be rich and lonely or poor and popular?",
	"Would you rather read the book or watch the movie?",
	"Would you rather live in space or live under the sea?",
	"Would you rather be the best player on a losing team or the worst player on a winning team?",
	"Would you rather only be able to whisper or only be able to shout?",
	"Would you rather be able to change the past or see into the future?",
	"Would you rather always have the perfect comeback or always get the last laugh?",
	"Would you rather wear wet socks for a day or wear winter gloves all day in summer?",
	"Would you rather never have to sleep or never have to eat?",
	"Would you rather find true love today or win the lottery next year?",
	"Would you rather have free international flights for life or never pay for food at restaurants?",
	"Would you rather only talk in rhymes or only talk in riddles?",
	"Would you rather have your dream job but no time for friends, or a simple job with tons of time for friends?",
	"Would you rather always feel slightly too hot or slightly too cold?",
	"Would you rather be trapped in a romantic comedy with your enemies or a horror movie with your friends?",
	"Would you rather be able to only move by skipping or only move by crawling?",
	"Would you rather never use emojis again or never watch memes again?",
	"Would you rather own a dragon or be a dragon?",
	"Would you rather travel the world for a year on a shoestring budget or stay in one country in luxury?",
	"Would you rather have a rewind button on your life or a pause button?",
	"Would you rather live with no internet or no AC/heating?",
	"Would you rather always get stuck behind slow walkers or always be stuck in traffic?",
	"Would you rather have a photographic memory or be able to forget anything you want?",
	"Would you rather only eat spicy food or only eat bland food?",
	"Would you rather never age physically or never age mentally?",
	"Would you rather always say what you're thinking or never speak again?",
	"Would you rather give up your smartphone for a week or give up sugar for a week?",
	"Would you rather be able to clone yourself once or time travel once?",
	"Would you rather be famous for something embarrassing or unknown for something meaningful?",
}

var wyrSplitRe = regexp.MustCompile(`(?i)\s+or\s+`)

// SplitWYR splits a question into its two options when it contains exactly
// one "or" separator. Questions with more than one stay unsplit.
func SplitWYR(q string) (string, string, bool) {
	if !strings.Contains(strings.ToLower(q), " or ") {
		return "", "", false
	}
	parts := wyrSplitRe.Split(q, -1)
	if len(parts) != 2 {
		return "", "", false
	}
	trim := func(s string) string { return strings.Trim(s, " ?") }
	return trim(parts[0]), trim(parts[1]), true
}

const colorBlurple = 0x5865F2

// wyrEmbed renders a splittable question as a two-option embed. Questions
// that don't split cleanly go out as plain text instead.
func wyrEmbed(q string) (discord.Embed, bool) {
	optA, optB, ok := SplitWYR(q)
	if !ok {
		return discord.Embed{}, false
	}
	return discord.Embed{
		Title:       "🤔 Would You Rather...",
		Description: fmt.Sprintf("1️⃣ %s\n2️⃣ %s", optA, optB),
		Color:       colorBlurple,
	}, true
}

func handleWYR(event *events.MessageCreate, args []string) error {
	q := wyrQuestions[rand.Intn(len(wyrQuestions))]

	builder := discord.NewMessageCreate()
	if embed, ok := wyrEmbed(q); ok {
		builder = builder.WithEmbeds(embed)
	} else {
		builder = builder.WithContent(fmt.Sprintf("🤔 %s", q))
	}

	client := event.Client()
	msg, err := client.Rest.CreateMessage(event.ChannelID, builder)
	if err != nil {
		return err
	}

	// Vote reactions are best-effort, consistent 1 and 2 either way.
	for _, emoji := range []string{"1️⃣", "2️⃣"} {
		if err := client.Rest.AddReaction(event.ChannelID, msg.ID, emoji); err != nil {
			sys.LogDebug("Failed to add reaction %s: %v", emoji, err)
		}
	}
	return nil
}
