package home

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/tryhardbot/tryhard/sys"
)

func init() {
	sys.RegisterCommand("helptryhard", handleHelp)
}

const colorGreen = 0x2ECC71

func helpFields(prefix string) []discord.EmbedField {
	return []discord.EmbedField{
		{Name: prefix + "wyr", Value: "Would You Rather — vote with 1️⃣ / 2️⃣."},
		{Name: prefix + "remindme <time> <message>", Value: fmt.Sprintf("Set a reminder. e.g. `%sremindme 1h30m take a break`", prefix)},
		{Name: prefix + "translate <lang> <text>", Value: fmt.Sprintf("Translate text to a target language. e.g. `%stranslate es good morning`", prefix)},
		{Name: prefix + "mymood", Value: "Analyze your last 20 messages and guess your mood."},
		{Name: prefix + "moodplay", Value: "AI DJ recommends EXACTLY one song based on chat vibe."},
		{Name: prefix + "poll <question> <option1> <option2> [...]", Value: "Create a poll (2–10 options)."},
		{Name: prefix + "ineedhelp", Value: "Get a motivational quote instantly."},
		{Name: prefix + "thankyou", Value: "Send a thank you gif."},
		{Name: prefix + "plzspeedineedthis", Value: "Send a Speed gif."},
		{Name: prefix + "67", Value: "Send the 6-7 gif."},
		{Name: prefix + "flip", Value: "Flip a coin (Heads or Tails)."},
		{Name: prefix + "roast @user", Value: "Send a random roast from Evil Insult API."},
		{Name: prefix + "compliment @user", Value: "Send a wholesome compliment (now with fallback)."},
		{Name: "🌞 Daily Quotes", Value: "I send a motivational quote every day at 8 AM in #general."},
		{Name: "😢 Depression Checker", Value: "If you say sad/depressed/self-harm things, I'll send you a motivational quote."},
		{Name: "🛑 Special Filter", Value: "If the configured user uses *any* version of the N-word, their message is deleted and replaced with a funny reply."},
		{Name: "😂 Auto-Triggers", Value: "Saying 'thank you' or 'plz speed i need this' will trigger funny gifs."},
	}
}

func helpEmbed(prefix string) discord.Embed {
	return discord.Embed{
		Title:       "📖 Tryhard Bot Help",
		Description: "Here are all the commands and features I support:",
		Color:       colorGreen,
		Fields:      helpFields(prefix),
	}
}

func handleHelp(event *events.MessageCreate, args []string) error {
	embed := helpEmbed(sys.GlobalConfig.Prefix)
	_, err := event.Client().Rest.CreateMessage(event.ChannelID,
		discord.NewMessageCreate().WithEmbeds(embed))
	return err
}
