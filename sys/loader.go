package sys

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// safeGo runs a function in a new goroutine with panic recovery
func safeGo(f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				LogError(MsgRouterPanicRecovered, "goroutine", r)
				fmt.Printf("%s\n", debug.Stack())
			}
		}()
		f()
	}()
}

// SafeGo exposes the panic-recovering goroutine spawner to other packages.
func SafeGo(f func()) { safeGo(f) }

// --- Global State & Setup ---

var AppContext context.Context
var daemonsOnce sync.Once
var StartupTime = time.Now()

// HttpClient is a shared thread-safe client for all external API calls.
var HttpClient = &http.Client{
	Timeout: 8 * time.Second,
}

func SetAppContext(ctx context.Context) {
	AppContext = ctx
}

// --- Bot Initialization ---

// CreateClient creates and configures a disgo client
func CreateClient(ctx context.Context, cfg *Config) (*bot.Client, error) {
	client, err := disgo.New(cfg.Token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentGuildMembers,
				gateway.IntentMessageContent,
				gateway.IntentGuildMessageReactions,
			),
			gateway.WithPresenceOpts(
				gateway.WithPlayingActivity(cfg.Prefix+"helptryhard"),
				gateway.WithOnlineStatus(discord.OnlineStatusOnline),
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds, cache.FlagMembers, cache.FlagChannels),
		),
		bot.WithEventListenerFunc(onMessageCreate),
		bot.WithEventListenerFunc(onReady),
		bot.WithLogger(slog.Default()),
		bot.WithRestClientConfigOpts(
			rest.WithHTTPClient(&http.Client{
				Timeout: 60 * time.Second,
				Transport: &http.Transport{
					MaxIdleConns:        1000,
					MaxIdleConnsPerHost: 500,
					IdleConnTimeout:     90 * time.Second,
				},
			}),
		),
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// --- Command & Hook Registration ---

// CommandHandler runs one prefix command. A returned error becomes a short
// user-visible diagnostic reply; it never crashes the event loop.
type CommandHandler func(event *events.MessageCreate, args []string) error

var commandHandlers = map[string]CommandHandler{}
var messageHooks []func(event *events.MessageCreate)
var onClientReadyCallbacks []func(ctx context.Context, client *bot.Client)

// RegisterCommand maps a prefix command name (case-sensitive, exact token) to
// its handler. Called from init() in the home package.
func RegisterCommand(name string, handler CommandHandler) {
	commandHandlers[name] = handler
}

// OnMessage registers a hook that runs for every non-bot, non-self message
// before command routing. Hooks run synchronously in registration order.
func OnMessage(hook func(event *events.MessageCreate)) {
	messageHooks = append(messageHooks, hook)
}

func OnClientReady(cb func(ctx context.Context, client *bot.Client)) {
	onClientReadyCallbacks = append(onClientReadyCallbacks, cb)
}

func TriggerClientReady(ctx context.Context, client *bot.Client) {
	for _, cb := range onClientReadyCallbacks {
		cb(ctx, client)
	}
}

// --- Event Handlers ---

func onReady(event *events.Ready) {
	client := event.Client()
	botUser := event.User

	duration := time.Since(StartupTime)
	LogInfo(MsgBotReady, botUser.Username, botUser.ID.String(), os.Getpid(), duration.Milliseconds())

	safeGo(func() { cacheBotIdentity(botUser.ID.String()) })

	// Reconnects fire Ready again; StartDaemons is a no-op after the first call.
	TriggerClientReady(AppContext, client)
	StartDaemons(AppContext)
}

// cacheBotIdentity records which bot user this database belongs to, so a token
// swap against an old database file is visible in the logs.
func cacheBotIdentity(userID string) {
	if DB == nil {
		return
	}

	ctx := AppContext
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	previous, err := GetBotConfig(ctx, "bot_user_id")
	if err != nil {
		LogDatabase(MsgBotIdentitySaveFail, err)
		return
	}
	if previous != "" && previous != userID {
		LogWarn(MsgBotIdentityChanged, previous, userID)
	}
	if err := SetBotConfig(ctx, "bot_user_id", userID); err != nil {
		LogDatabase(MsgBotIdentitySaveFail, err)
	}
}

func onMessageCreate(event *events.MessageCreate) {
	if event.Message.Author.Bot || event.Message.Author.ID == event.Client().ID() {
		return
	}

	for _, hook := range messageHooks {
		hook(event)
	}

	dispatchCommand(event)
}

// dispatchCommand parses a prefixed command invocation and routes it. Unknown
// commands are ignored. Handler failures are reported to the channel, never
// propagated.
func dispatchCommand(event *events.MessageCreate) {
	prefix := "!"
	if GlobalConfig != nil {
		prefix = GlobalConfig.Prefix
	}

	content := event.Message.Content
	if !strings.HasPrefix(content, prefix) {
		return
	}

	tokens := SplitArgs(strings.TrimPrefix(content, prefix))
	if len(tokens) == 0 {
		return
	}

	name := tokens[0]
	handler, ok := commandHandlers[name]
	if !ok {
		return
	}

	args := tokens[1:]
	safeGo(func() {
		defer func() {
			if r := recover(); r != nil {
				LogError(MsgRouterPanicRecovered, name, r)
				replyCommandError(event, prefix, name, fmt.Errorf("%v", r))
			}
		}()

		if err := handler(event, args); err != nil {
			LogRouter(MsgRouterHandlerFailed, name, err)
			replyCommandError(event, prefix, name, err)
		}
	})
}

func replyCommandError(event *events.MessageCreate, prefix, name string, err error) {
	_ = SafeSend(event.Client(), event.ChannelID, fmt.Sprintf(ErrRouterHandlerFailed, prefix, name, err))
}

// --- Channel Locks ---

var channelLocks = map[snowflake.ID]*sync.Mutex{}
var channelLocksMu sync.Mutex

// ChannelLock returns the lock for a channel, creating it lazily. Locks live
// for the process lifetime; at bot scale that leak is acceptable.
func ChannelLock(channelID snowflake.ID) *sync.Mutex {
	channelLocksMu.Lock()
	defer channelLocksMu.Unlock()

	lock, ok := channelLocks[channelID]
	if !ok {
		lock = &sync.Mutex{}
		channelLocks[channelID] = lock
	}
	return lock
}

// --- Daemon System ---

type daemonEntry struct {
	starter func(ctx context.Context) (bool, func(), func())
	logger  func(format string, v ...any)
}

var registeredDaemons []daemonEntry
var activeShutdownHooks []func()
var activeShutdownMu sync.Mutex

// RegisterDaemon registers a background daemon with a logger and start function
func RegisterDaemon(logger func(format string, v ...any), starter func(ctx context.Context) (bool, func(), func())) {
	registeredDaemons = append(registeredDaemons, daemonEntry{starter: starter, logger: logger})
}

// StartDaemons starts all registered daemons. Runs at most once per process
// lifetime regardless of how many Ready events the gateway delivers.
func StartDaemons(ctx context.Context) {
	daemonsOnce.Do(func() {
		type activeDaemon struct {
			entry daemonEntry
			run   func()
		}
		var active []activeDaemon

		for _, daemon := range registeredDaemons {
			if ok, run, shutdown := daemon.starter(ctx); ok && run != nil {
				if shutdown != nil {
					activeShutdownMu.Lock()
					activeShutdownHooks = append(activeShutdownHooks, shutdown)
					activeShutdownMu.Unlock()
				}
				active = append(active, activeDaemon{daemon, run})
			}
		}

		for _, ad := range active {
			ad.entry.logger(MsgDaemonStarting)
		}

		for _, ad := range active {
			go ad.run()
		}
	})
}

// ShutdownDaemons gracefully stops all active daemons
func ShutdownDaemons(ctx context.Context) {
	activeShutdownMu.Lock()
	defer activeShutdownMu.Unlock()

	var wg sync.WaitGroup
	for _, shutdown := range activeShutdownHooks {
		if shutdown != nil {
			wg.Add(1)
			go func(s func()) {
				defer wg.Done()
				s()
			}(shutdown)
		}
	}
	wg.Wait()
}
