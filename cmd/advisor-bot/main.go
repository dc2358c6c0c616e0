package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"matchadvisor/internal/advisor"
	"matchadvisor/internal/footballdata"
	"matchadvisor/internal/gemini"
	"matchadvisor/internal/oddsapi"
	pkgconfig "matchadvisor/internal/pkg/config"
	"matchadvisor/internal/pkg/health"
	"matchadvisor/internal/pkg/logging"
)

const (
	defaultConfigPath    = "configs/production.yaml"
	defaultUpdateTimeout = 60
	messageLimit         = 4000 // Telegram caps messages at 4096 characters
	handleTimeout        = 90 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Advisor bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", defaultConfigPath, "Path to config file")
	flag.Parse()

	cfg, err := pkgconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	resolveSecrets(cfg)

	logging.SetupLogger(&cfg.Logging, "advisor-bot")
	slog.Info("Config loaded", "path", configPath)

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required (config telegram.token or TELEGRAM_BOT_TOKEN env)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping bot...")
		cancel()
	}()

	if cfg.Health.Port > 0 {
		health.Run(ctx, health.AddrFor(cfg.Health.Port), "advisor-bot", cfg.Health.ReadHeaderTimeout)
	}

	fixtures := footballdata.NewClient(cfg.FootballData.BaseURL, cfg.FootballData.APIToken, cfg.FootballData.Timeout)
	odds := oddsapi.NewClient(cfg.OddsAPI.BaseURL, cfg.OddsAPI.APIKey, cfg.OddsAPI.Regions, cfg.OddsAPI.Timeout)
	gen := gemini.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	adv := advisor.New(fixtures, odds, gen)

	if !gen.Configured() {
		slog.Warn("Gemini API key is not configured, analysis replies will be degraded")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	bot.Debug = false
	slog.Info("Authorized on Telegram", "account", bot.Self.UserName)

	updateTimeout := cfg.Telegram.UpdateTimeout
	if updateTimeout <= 0 {
		updateTimeout = defaultUpdateTimeout
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			slog.Info("Advisor bot stopped")
			return nil
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			handleUpdate(ctx, bot, adv, update.Message)
		}
	}
}

func resolveSecrets(cfg *pkgconfig.Config) {
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if cfg.FootballData.APIToken == "" {
		cfg.FootballData.APIToken = os.Getenv("FOOTBALL_DATA_TOKEN")
	}
	if cfg.OddsAPI.APIKey == "" {
		cfg.OddsAPI.APIKey = os.Getenv("ODDS_API_KEY")
	}
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

func handleUpdate(ctx context.Context, bot *tgbotapi.BotAPI, adv *advisor.Advisor, message *tgbotapi.Message) {
	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	if strings.HasPrefix(text, "/") {
		switch strings.ToLower(strings.Fields(text)[0]) {
		case "/start", "/help":
			sendText(bot, message.Chat.ID, helpText)
			return
		case "/matches":
			text = "list matches"
		case "/recommend":
			text = "recommend bets"
		default:
			sendText(bot, message.Chat.ID, "Unknown command. Use /help to see what I can do.")
			return
		}
	}

	typing := tgbotapi.NewChatAction(message.Chat.ID, tgbotapi.ChatTyping)
	_, _ = bot.Send(typing)

	handleCtx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	reply := adv.HandleMessage(handleCtx, text)
	sendText(bot, message.Chat.ID, reply)
}

// sendText splits replies that exceed the Telegram message limit.
func sendText(bot *tgbotapi.BotAPI, chatID int64, text string) {
	for len(text) > 0 {
		chunk := text
		if len(chunk) > messageLimit {
			cut := strings.LastIndex(chunk[:messageLimit], "\n")
			if cut <= 0 {
				cut = messageLimit
			}
			chunk = text[:cut]
		}
		text = strings.TrimPrefix(text[len(chunk):], "\n")

		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := bot.Send(msg); err != nil {
			slog.Error("Failed to send message", "chat_id", chatID, "error", err)
			return
		}
	}
}

const helpText = `⚽ Match Advisor Bot

Ask me about an upcoming football match, in English or Russian:
• "Who will win Arsenal vs Chelsea?"
• "арсенал челси прогноз"
• "recommend some bets"

Commands:
/matches - list upcoming matches (next 7 days)
/recommend - pick the most promising bets
/help - this message

I combine fixtures, bookmaker odds, head-to-head history and recent form,
then ask an AI model for the verdict. Not financial advice.`
