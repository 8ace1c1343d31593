// Package format holds the bot handlers that turn incoming lyrics into
// karaoke-ready text.
package format

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sukalov/lyricsfmt/internal/bot"
	"github.com/sukalov/lyricsfmt/internal/db"
	"github.com/sukalov/lyricsfmt/internal/logger"
	"github.com/sukalov/lyricsfmt/internal/lyrics"
	"github.com/sukalov/lyricsfmt/internal/lyrics/sources/page"
	"github.com/sukalov/lyricsfmt/internal/redis"
)

const (
	cacheTTL      = 24 * time.Hour
	maxLineLimit  = 200
	recentEntries = 5

	helpText = "пришлите текст песни — верну его с короткими строками для караоке-видео.\n\n" +
		"работает и со ссылкой на страницу с текстом.\n" +
		"команды:\n" +
		"/length N — максимальная длина строки (по умолчанию 36)\n" +
		"/recent — последние обработки"
)

// Handlers wires the lyrics processor to Telegram updates. The cache and
// history stores may be nil; the bot then simply works without them.
type Handlers struct {
	log     *logger.Logger
	cache   *redis.Manager
	history *db.Store
	pages   *page.Parser
}

func New(log *logger.Logger, cache *redis.Manager, history *db.Store) *Handlers {
	return &Handlers{
		log:     log,
		cache:   cache,
		history: history,
		pages:   page.NewParser(log),
	}
}

// CommandHandlers returns the command map for bot.Start.
func (h *Handlers) CommandHandlers() map[string]func(b *bot.Bot, update tgbotapi.Update) error {
	return map[string]func(b *bot.Bot, update tgbotapi.Update) error{
		"start":  h.startHandler,
		"help":   h.startHandler,
		"length": h.lengthHandler,
		"recent": h.recentHandler,
	}
}

// MessageHandlers returns the plain-message handlers for bot.Start.
func (h *Handlers) MessageHandlers() []func(b *bot.Bot, update tgbotapi.Update) error {
	return []func(b *bot.Bot, update tgbotapi.Update) error{
		h.lyricsHandler,
	}
}

func (h *Handlers) startHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(update.Message.Chat.ID, helpText)
}

func (h *Handlers) lengthHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	arg := strings.TrimSpace(update.Message.CommandArguments())

	if arg == "" {
		length := h.chatLineLength(chatID)
		return b.SendMessage(chatID, fmt.Sprintf("сейчас максимальная длина строки — %d", length))
	}

	length, err := strconv.Atoi(arg)
	if err != nil || length <= 0 || length > maxLineLimit {
		return b.SendMessage(chatID, fmt.Sprintf("длина должна быть числом от 1 до %d", maxLineLimit))
	}

	if h.cache == nil {
		return b.SendMessage(chatID, "настройки сейчас недоступны, используется длина 36")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.cache.SetChatLineLength(ctx, chatID, length); err != nil {
		h.log.Error(fmt.Sprintf("failed to store line length for chat %d: %v", chatID, err))
		return b.SendMessage(chatID, "не получилось сохранить настройку, попробуйте позже")
	}

	return b.SendMessage(chatID, fmt.Sprintf("ок, теперь строки не длиннее %d символов", length))
}

func (h *Handlers) recentHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	if h.history == nil {
		return b.SendMessage(chatID, "история сейчас недоступна")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := h.history.Recent(ctx, chatID, recentEntries)
	if err != nil {
		h.log.Error(fmt.Sprintf("failed to load history for chat %d: %v", chatID, err))
		return b.SendMessage(chatID, "не получилось загрузить историю")
	}
	if len(entries) == 0 {
		return b.SendMessage(chatID, "вы ещё ничего не обрабатывали")
	}

	var message strings.Builder
	message.WriteString("последние обработки:\n\n")
	for idx, entry := range entries {
		message.WriteString(fmt.Sprintf(
			"%d. %s\n   строк: %d → %d, длина %d\n",
			idx+1, entry.Title, entry.InputLines, entry.OutputLines, entry.MaxLineLength,
		))
	}
	return b.SendMessage(chatID, message.String())
}

// lyricsHandler is the main flow: raw lyrics (or a URL to them) in,
// karaoke-ready lyrics out.
func (h *Handlers) lyricsHandler(b *bot.Bot, update tgbotapi.Update) error {
	if update.Message.IsCommand() {
		return nil
	}
	text := update.Message.Text
	if strings.TrimSpace(text) == "" {
		return nil
	}
	chatID := update.Message.Chat.ID

	if page.IsURL(strings.TrimSpace(text)) {
		result, err := h.pages.Fetch(strings.TrimSpace(text))
		if err != nil {
			return b.SendMessage(chatID, "не получилось достать текст по этой ссылке")
		}
		text = result.Text
	}

	length := h.chatLineLength(chatID)
	processed, err := h.processWithCache(text, length)
	if err != nil {
		h.log.Error(fmt.Sprintf("processing failed for chat %d: %v", chatID, err))
		return b.SendMessage(chatID, "произошла ошибка при обработке")
	}

	h.recordRun(chatID, text, processed)

	return b.SendPreformatted(chatID, processed.Text)
}

func (h *Handlers) processWithCache(text string, length int) (*lyrics.Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := redis.CacheKey(text, length)
	if h.cache != nil {
		cached, err := h.cache.GetCached(ctx, key)
		if err != nil {
			h.log.Error(fmt.Sprintf("cache lookup failed: %v", err))
		} else if cached != "" {
			h.log.Debug("serving processed lyrics from cache")
			return &lyrics.Result{
				Text:          cached,
				OutputLines:   strings.Count(cached, "\n") + 1,
				MaxLineLength: length,
				ProcessedAt:   time.Now(),
			}, nil
		}
	}

	processor, err := lyrics.NewProcessor(lyrics.Config{MaxLineLength: length, Debug: h.log.DebugEnabled()}, h.log)
	if err != nil {
		return nil, err
	}
	result := processor.Process(text)

	if h.cache != nil {
		if err := h.cache.SetCached(ctx, key, result.Text, cacheTTL); err != nil {
			h.log.Error(fmt.Sprintf("cache store failed: %v", err))
		}
	}
	return result, nil
}

func (h *Handlers) chatLineLength(chatID int64) int {
	if h.cache == nil {
		return lyrics.DefaultMaxLineLength
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	length, err := h.cache.ChatLineLength(ctx, chatID)
	if err != nil {
		h.log.Error(fmt.Sprintf("failed to load line length for chat %d: %v", chatID, err))
		return lyrics.DefaultMaxLineLength
	}
	if length <= 0 {
		return lyrics.DefaultMaxLineLength
	}
	return length
}

func (h *Handlers) recordRun(chatID int64, input string, result *lyrics.Result) {
	if h.history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entry := db.Entry{
		ChatID:        chatID,
		Title:         titleOf(input),
		InputLines:    result.InputLines,
		OutputLines:   result.OutputLines,
		MaxLineLength: result.MaxLineLength,
		ProcessedAt:   result.ProcessedAt,
	}
	if err := h.history.AddEntry(ctx, entry); err != nil {
		h.log.Error(fmt.Sprintf("failed to record history for chat %d: %v", chatID, err))
	}
}

// titleOf picks the first non-empty line as a human-readable run title.
func titleOf(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			r := []rune(line)
			if len(r) > 64 {
				return string(r[:64])
			}
			return line
		}
	}
	return "(без названия)"
}
