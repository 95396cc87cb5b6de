package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"chatbot/pkg/config"
	"chatbot/pkg/conversation"
	"chatbot/pkg/intent"
	"chatbot/pkg/logging"
	"chatbot/pkg/ui"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	configPath := flag.String("config", config.GetConfigPath(), "path to the config file")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	// CHATBOT_* overrides may come from a .env file in the working directory
	envErr := godotenv.Load()
	if errors.Is(envErr, fs.ErrNotExist) {
		envErr = nil
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	_, logFile, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	code := run(cfg, *configPath, envErr)
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
	}
	os.Exit(code)
}

// run drives the chat UI and returns the process exit code.
func run(cfg config.Config, configPath string, envErr error) int {
	if envErr != nil {
		slog.Warn("dotenv_load_failed", "error", envErr)
	}
	slog.Info("app_start",
		"config", configPath,
		"reply_delay_ms", cfg.ReplyDelayMS,
		"log_level", cfg.LogLevel,
	)

	matcher := intent.NewDefaultMatcher(time.Now)
	controller := conversation.NewController(matcher,
		conversation.WithReplyDelay(cfg.ReplyDelay()),
		conversation.WithObserver(func(msg conversation.Message) {
			slog.Debug("conversation_message_appended",
				"id", msg.ID.String(),
				"sender", msg.Sender.String(),
				"length", len(msg.Text),
			)
		}),
	)

	p := tea.NewProgram(ui.NewModel(controller, cfg))
	if _, err := p.Run(); err != nil {
		slog.Error("app_exit_error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	slog.Info("app_exit", "messages", controller.Len())
	return 0
}
