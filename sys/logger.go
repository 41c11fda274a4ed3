package sys

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// --- Globals & Styles ---

var (
	// Level colors
	infoColor  = color.New()
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)

	// Component colors
	databaseColor  = color.New()
	filterColor    = color.New(color.FgMagenta)
	reminderColor  = color.New(color.FgMagenta)
	dailyColor     = color.New(color.FgMagenta)
	keepAliveColor = color.New(color.FgMagenta)
	djColor        = color.New(color.FgMagenta)
	moodColor      = color.New(color.FgMagenta)
	routerColor    = color.New(color.FgCyan)

	// Global state
	DefaultTimeFormat = "15:04:05"
	IsSilent          = false
	LogToFile         = false
	Logger            *slog.Logger

	// Internal state
	logFile *os.File
	logMu   sync.Mutex
)

// --- Initialization ---

func init() {
	InitLogger(false, false)
}

// InitLogger initializes the global structured logger
func InitLogger(silent bool, saveToFile bool) {
	logMu.Lock()
	defer logMu.Unlock()

	IsSilent = silent
	LogToFile = saveToFile
	level := slog.LevelInfo
	if strings.ToLower(os.Getenv("DEBUG")) == "true" {
		level = slog.LevelDebug
	}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writer io.Writer = os.Stdout
	var err error

	if LogToFile {
		exePath, exeErr := os.Executable()
		logName := "tryhard.log"
		if exeErr == nil {
			logName = filepath.Base(exePath) + ".log"
		}

		logFile, err = os.OpenFile(logName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", logName, err)
		} else {
			writer = io.MultiWriter(os.Stdout, NewStripANSIWriter(logFile))
		}
	}

	color.NoColor = false

	handler := NewBotLogHandler(writer, &BotLogHandlerOptions{
		Silent: IsSilent,
		Level:  level,
	})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

func SetSilentMode(silent bool) {
	InitLogger(silent, LogToFile)
}

// --- Public Logging API ---

func LogInfo(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...))
}

func LogWarn(format string, v ...any) {
	slog.Warn(fmt.Sprintf(format, v...))
}

func LogError(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...))
}

func LogFatal(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	slog.Log(context.Background(), slog.LevelError+4, msg)
	panic(msg)
}

func LogDebug(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...))
}

// Component Loggers

func LogDatabase(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "database"))
}

func LogFilter(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "filter"))
}

func LogReminder(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "reminder"))
}

func LogDaily(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "daily"))
}

func LogKeepAlive(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "keepalive"))
}

func LogDJ(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "dj"))
}

func LogMood(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "mood"))
}

func LogRouter(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "router"))
}

// --- Log Handler Implementation ---

type BotLogHandlerOptions struct {
	Silent bool
	Level  slog.Leveler
}

type BotLogHandler struct {
	w    io.Writer
	opts *BotLogHandlerOptions
	mu   *sync.Mutex
}

func NewBotLogHandler(w io.Writer, opts *BotLogHandlerOptions) *BotLogHandler {
	if opts == nil {
		opts = &BotLogHandlerOptions{Level: slog.LevelInfo}
	}
	return &BotLogHandler{
		w:    w,
		opts: opts,
		mu:   &sync.Mutex{},
	}
}

func (h *BotLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.opts.Silent {
		return false
	}
	return level >= h.opts.Level.Level()
}

func (h *BotLogHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.opts.Silent {
		return nil
	}

	timeStr := time.Now().Format(DefaultTimeFormat)
	var levelStr string
	var levelColor *color.Color

	switch {
	case r.Level >= slog.LevelError+4:
		levelStr = "FATAL"
		levelColor = fatalColor
	case r.Level >= slog.LevelError:
		levelStr = "ERROR"
		levelColor = errorColor
	case r.Level >= slog.LevelWarn:
		levelStr = "WARN"
		levelColor = warnColor
	case r.Level >= slog.LevelInfo:
		levelStr = "INFO"
		levelColor = infoColor
	default:
		levelStr = "DEBUG"
		levelColor = infoColor
	}

	component := ""
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" {
			component = strings.ToUpper(a.Value.String())
			return false
		}
		return true
	})

	fmt.Fprintf(h.w, "%s", timeStr)

	if component != "" {
		if levelStr != "INFO" {
			fmt.Fprintf(h.w, " %s", levelColor.Sprintf("[%s]", levelStr))
		}
		compColor := getComponentColor(component)
		fmt.Fprintf(h.w, " %s\n", compColor.Sprintf("[%s] %s", component, r.Message))
	} else {
		fmt.Fprintf(h.w, " %s\n", levelColor.Sprintf("[%s] %s", levelStr, r.Message))
	}

	return nil
}

func (h *BotLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *BotLogHandler) WithGroup(name string) slog.Handler       { return h }

func getComponentColor(name string) *color.Color {
	switch name {
	case "DATABASE":
		return databaseColor
	case "FILTER":
		return filterColor
	case "REMINDER":
		return reminderColor
	case "DAILY":
		return dailyColor
	case "KEEPALIVE":
		return keepAliveColor
	case "DJ":
		return djColor
	case "MOOD":
		return moodColor
	case "ROUTER":
		return routerColor
	default:
		return color.New(color.FgCyan)
	}
}

// --- ANSI Stripper ---

type StripANSIWriter struct {
	w  io.Writer
	re *regexp.Regexp
}

func NewStripANSIWriter(w io.Writer) *StripANSIWriter {
	return &StripANSIWriter{
		w:  w,
		re: regexp.MustCompile(`\x1b\[[0-9;]*m`),
	}
}

func (s *StripANSIWriter) Write(p []byte) (n int, err error) {
	clean := s.re.ReplaceAll(p, []byte(""))
	_, err = s.w.Write(clean)
	return len(p), err
}

// --- Message Constants ---

const (
	// --- Infrastructure & Lifecycle ---
	MsgConfigFailedToLoad  = "Failed to load config: %v"
	MsgConfigMissingToken  = "DISCORD_TOKEN is not set in .env file"
	MsgDatabaseInitSuccess = "Database initialized successfully"
	MsgDatabaseTableError  = "Failed to create table: %w"
	MsgDatabasePragmaError = "Failed to set pragma %s: %w"
	MsgDaemonStarting      = "Starting..."
	MsgBotStarting         = "Starting %s..."
	MsgBotReady            = "%s is ready! (ID: %s) (PID: %d) (Took: %dms)"
	MsgBotShutdown         = "Shutting down %s..."
	MsgBotAlreadyRunning   = "Another instance appears to be running. Exiting to avoid duplicate messages."
	MsgBotIdentityChanged  = "Bot identity changed since last run: %s -> %s"
	MsgBotIdentitySaveFail = "Failed to cache bot identity: %v"

	// --- Router ---
	MsgRouterPanicRecovered = "Panic recovered in handler %q: %v"
	MsgRouterHandlerFailed  = "Command %q failed: %v"
	ErrRouterHandlerFailed  = "❌ Something went wrong running `%s%s`: %v"

	// --- Filters ---
	MsgFilterDeleteFailed = "Failed to delete filtered message %s: %v"
	MsgFilterReplyFailed  = "Failed to send filter reply in %s: %v"
	MsgFilterSadQuote     = "💙 Stay strong %s, here's something for you:\n> %s"

	// --- Reminder System ---
	MsgReminderScheduled    = "Scheduled reminder for user %s in %ds"
	MsgReminderSendFailed   = "Failed to deliver reminder to channel %s: %v"
	MsgReminderDelivered    = "Delivered reminder to user %s"
	MsgReminderDraining     = "Waiting for %d outstanding reminder(s)..."
	MsgReminderFire         = "🔔 Reminder for %s: %s"
	MsgReminderSet          = "⏰ Okay %s, I'll remind you in **%s**: %s"
	ErrReminderBadDuration  = "⏱️ Invalid duration. Examples: `10m`, `1h30m`, `2d4h`, `45s`"
	MsgReminderUsage        = "Usage: `%sremindme <10s|10m|2h|1d|1h30m> <message>`"

	// --- Daily Quote ---
	MsgDailyNextRun     = "Next daily quote at %s"
	MsgDailyNoChannel   = "No text channel available for the daily quote"
	MsgDailySendFailed  = "Failed to send daily quote: %v"
	MsgDailySent        = "Sent daily quote to #%s"
	MsgDailyBroadcast   = "🌞 Daily Motivation:\n> %s"

	// --- Keep-Alive ---
	MsgKeepAliveListening = "Liveness endpoint listening on :%s"
	MsgKeepAliveStopped   = "Liveness endpoint stopped: %v"
	MsgKeepAliveBody      = "✅ Tryhard Bot is alive!"

	// --- Commands ---
	MsgPollUsage          = "Usage: %spoll <question> <option1> <option2> [option3] ... (max 10 options)"
	MsgPollTooManyOptions = "You can't have more than 10 options."
	MsgTranslateUsage     = "Usage: `%stranslate <lang> <text>` e.g., `%stranslate es good morning`"
	MsgTranslateResult    = "🌍 **%s** *(auto → %s)*"
	MsgTranslateFailed    = "❌ Translation failed: %v"
	MsgFlipResult         = "🪙 The coin landed on... **%s**!"
	MsgRoastResult        = "🔥 %s, %s"
	MsgComplimentResult   = "💖 %s, %s"
	MsgINeedHelpResult    = "💡 Here's something to lift you up, %s:\n> %s"

	// --- Mood & DJ ---
	MsgMoodAnalyzing     = "🧠 Analyzing your recent messages..."
	MsgMoodNotEnough     = "😕 I couldn't find enough of your messages to analyze."
	MsgMoodResult        = "🧭 Based on your last %d messages, your mood seems to be: **%s**"
	MsgDJTriggered       = "⚡ Moodplay command triggered!"
	MsgDJCollecting      = "🔍 Collecting recent messages..."
	MsgDJThinking        = "🤖 Talking to the model..."
	MsgDJRawHeader       = "📝 Raw model output:"
	MsgDJEmptyResponse   = "⚠️ The model returned no text."
	MsgDJResult          = "🎶 Mood: **%s**\nRecommendation: **%s %s**"
	MsgDJLinkLookupMiss  = "No playable link found for %q"
)
