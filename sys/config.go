package sys

import (
	"fmt"
	"os"
	"strconv"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
)

type Config struct {
	Token        string
	GuildID      string
	Prefix       string
	TargetUserID snowflake.ID
	DatabasePath string
	Port         string

	// LLM settings (Gemini via its OpenAI-compatible endpoint)
	AIKey     string
	AIModel   string
	AIBaseURL string

	// Daily quote schedule (fixed local time-of-day)
	DailyQuoteHour      int
	DailyQuoteUTCOffset int

	Silent bool
}

var GlobalConfig *Config

// Validate ensures the configuration is valid and meets requirements.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf(MsgConfigMissingToken)
	}

	// Basic Snowflake validation for GuildID if provided
	if c.GuildID != "" && (len(c.GuildID) < 17 || len(c.GuildID) > 20) {
		return fmt.Errorf("invalid GUILD_ID: must be a valid Snowflake")
	}

	if c.DailyQuoteHour < 0 || c.DailyQuoteHour > 23 {
		return fmt.Errorf("invalid DAILY_QUOTE_HOUR: must be 0-23")
	}

	return nil
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	token := os.Getenv("DISCORD_TOKEN")
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data.db"
	}

	prefix := os.Getenv("COMMAND_PREFIX")
	if prefix == "" {
		prefix = "!"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var targetID snowflake.ID
	if raw := os.Getenv("TARGET_USER_ID"); raw != "" {
		if id, err := snowflake.Parse(raw); err == nil {
			targetID = id
		}
	}

	aiModel := os.Getenv("AI_MODEL")
	if aiModel == "" {
		aiModel = "gemini-2.0-flash"
	}
	aiBaseURL := os.Getenv("AI_BASE_URL")
	if aiBaseURL == "" {
		aiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}

	dailyHour := 8
	if raw := os.Getenv("DAILY_QUOTE_HOUR"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil {
			dailyHour = h
		}
	}
	utcOffset := 8
	if raw := os.Getenv("DAILY_QUOTE_UTC_OFFSET"); raw != "" {
		if off, err := strconv.Atoi(raw); err == nil {
			utcOffset = off
		}
	}

	silent, _ := strconv.ParseBool(os.Getenv("SILENT"))

	cfg := &Config{
		Token:               token,
		GuildID:             os.Getenv("GUILD_ID"),
		Prefix:              prefix,
		TargetUserID:        targetID,
		DatabasePath:        fmt.Sprintf("%s?_journal_mode=WAL&_timeout=5000", dbPath),
		Port:                port,
		AIKey:               os.Getenv("GEMINI_API_KEY"),
		AIModel:             aiModel,
		AIBaseURL:           aiBaseURL,
		DailyQuoteHour:      dailyHour,
		DailyQuoteUTCOffset: utcOffset,
		Silent:              silent,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Silent {
		SetSilentMode(true)
	}

	GlobalConfig = cfg
	return cfg, nil
}
