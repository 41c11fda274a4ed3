package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tryhardbot/tryhard/api"
	_ "github.com/tryhardbot/tryhard/home"
	"github.com/tryhardbot/tryhard/proc"
	"github.com/tryhardbot/tryhard/sys"
)

const lockPath = "/tmp/tryhard_bot.lock"

func main() {
	// Parse flags
	silent := flag.Bool("silent", false, "Disable all log output")
	flag.Parse()

	if *silent {
		sys.SetSilentMode(true)
	}

	// Single-instance guard: one process per bot token, or messages double.
	lockFile, err := acquireInstanceLock()
	if err != nil {
		fmt.Println(sys.MsgBotAlreadyRunning)
		os.Exit(0)
	}
	defer releaseInstanceLock(lockFile)

	// Shutdown on SIGINT/SIGTERM via context cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := run(ctx, *silent); err != nil {
		sys.LogFatal("%v", err)
	}
}

func acquireInstanceLock() (*os.File, error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func releaseInstanceLock(f *os.File) {
	_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	_ = f.Close()
	_ = os.Remove(lockPath)
}

func run(ctx context.Context, silent bool) error {
	sys.SetAppContext(ctx)

	// Load configuration
	cfg, err := sys.LoadConfig()
	if err != nil {
		return fmt.Errorf(sys.MsgConfigFailedToLoad, err)
	}

	// Initialize database
	if err := sys.InitDatabase(ctx, cfg.DatabasePath); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer sys.CloseDatabase()

	// Initialize the model client (nil when no key; fallbacks take over)
	api.InitLLM(cfg.AIKey, cfg.AIBaseURL, cfg.AIModel)

	// Create Discord client
	client, err := sys.CreateClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create Discord client: %w", err)
	}
	defer client.Close(context.Background())

	sys.LogInfo(sys.MsgBotStarting, "Tryhard Bot")
	if err := client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	// Daemons start from the Ready handler; block here until shutdown.
	<-ctx.Done()
	if !silent {
		fmt.Println()
	}
	sys.LogInfo(sys.MsgBotShutdown, "Tryhard Bot")

	shutdownCtx := context.Background()
	sys.ShutdownDaemons(shutdownCtx)
	proc.DrainReminders()

	return nil
}
