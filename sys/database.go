package sys

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDatabase(ctx context.Context, dataSourceName string) error {
	// Explicitly reference sqlite3 driver to avoid blank identifier
	// The driver registers itself via its init() function
	_ = sqlite3.SQLiteDriver{}

	var err error
	DB, err = sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(5)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA cache_size=-2000;",
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, p := range pragmas {
		if _, err := DB.ExecContext(initCtx, p); err != nil {
			return fmt.Errorf(MsgDatabasePragmaError, p, err)
		}
	}

	tx, err := DB.BeginTx(initCtx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	tableQueries := []string{
		`CREATE TABLE IF NOT EXISTS bot_config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS message_log (
			message_id TEXT PRIMARY KEY,
			guild_id TEXT,
			channel_id TEXT NOT NULL,
			author_id TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_message_log_author ON message_log (author_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_message_log_channel ON message_log (channel_id, created_at DESC)`,
	}

	for _, q := range tableQueries {
		if _, err := tx.ExecContext(initCtx, q); err != nil {
			return fmt.Errorf(MsgDatabaseTableError, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	LogDatabase(MsgDatabaseInitSuccess)
	return nil
}

func CloseDatabase() {
	if DB != nil {
		DB.Close()
	}
}

// BotConfig helpers are used for cached bot identity and similar process state.
func GetBotConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := DB.QueryRowContext(ctx, "SELECT value FROM bot_config WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func SetBotConfig(ctx context.Context, key, value string) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO bot_config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

// --- Message capture ---
//
// Non-command chat is captured so the mood and DJ collectors can supplement
// live history fetches with messages the gateway saw before a channel scan.

type LoggedMessage struct {
	MessageID snowflake.ID
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	AuthorID  snowflake.ID
	Content   string
	CreatedAt time.Time
}

func SaveMessage(ctx context.Context, m *LoggedMessage) error {
	_, err := DB.ExecContext(ctx, `
		INSERT OR IGNORE INTO message_log (message_id, guild_id, channel_id, author_id, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.MessageID.String(), m.GuildID.String(), m.ChannelID.String(), m.AuthorID.String(), m.Content, m.CreatedAt)
	return err
}

func GetRecentUserMessages(ctx context.Context, guildID, authorID snowflake.ID, limit int) ([]*LoggedMessage, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT message_id, guild_id, channel_id, author_id, content, created_at
		FROM message_log
		WHERE guild_id = ? AND author_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		guildID.String(), authorID.String(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLoggedMessages(rows)
}

func GetRecentChannelMessages(ctx context.Context, channelID snowflake.ID, limit int) ([]*LoggedMessage, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT message_id, guild_id, channel_id, author_id, content, created_at
		FROM message_log
		WHERE channel_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		channelID.String(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLoggedMessages(rows)
}

func scanLoggedMessages(rows *sql.Rows) ([]*LoggedMessage, error) {
	var out []*LoggedMessage
	for rows.Next() {
		var m LoggedMessage
		var msgID, guildID, channelID, authorID string
		if err := rows.Scan(&msgID, &guildID, &channelID, &authorID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.MessageID, _ = snowflake.Parse(msgID)
		m.GuildID, _ = snowflake.Parse(guildID)
		m.ChannelID, _ = snowflake.Parse(channelID)
		m.AuthorID, _ = snowflake.Parse(authorID)
		out = append(out, &m)
	}
	return out, rows.Err()
}
