package bot

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot represents a configurable Telegram bot
type Bot struct {
	Client     *tgbotapi.BotAPI
	updateChan tgbotapi.UpdatesChannel
	stopChan   chan struct{}
	name       string
	mu         sync.Mutex
}

// New creates a new bot instance
func New(name, token string) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updateChan := botClient.GetUpdatesChan(updateConfig)

	return &Bot{
		Client:     botClient,
		updateChan: updateChan,
		stopChan:   make(chan struct{}),
		name:       name,
	}, nil
}

// Start begins processing updates with custom handlers
func (b *Bot) Start(
	commandHandlers map[string]func(b *Bot, update tgbotapi.Update) error,
	messageHandlers []func(b *Bot, update tgbotapi.Update) error,
) {
	log.Printf("[%s] authorized on account %s", b.name, b.Client.Self.UserName)

	for {
		select {
		case update := <-b.updateChan:
			go b.processUpdate(update, commandHandlers, messageHandlers)
		case <-b.stopChan:
			return
		}
	}
}

func (b *Bot) processUpdate(
	update tgbotapi.Update,
	commandHandlers map[string]func(b *Bot, update tgbotapi.Update) error,
	messageHandlers []func(b *Bot, update tgbotapi.Update) error,
) {
	if update.Message == nil {
		return
	}

	if update.Message.IsCommand() {
		if handler, exists := commandHandlers[update.Message.Command()]; exists {
			if err := handler(b, update); err != nil {
				log.Printf("[%s] command handler error: %v", b.name, err)
			}
			return
		}
	}

	for _, handler := range messageHandlers {
		if err := handler(b, update); err != nil {
			log.Printf("[%s] message handler error: %v", b.name, err)
		}
	}
}

// Stop halts the bot
func (b *Bot) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopChan <- struct{}{}
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.Client.Send(msg)
	return err
}

// SendPreformatted wraps the text in a code block so Telegram keeps the line
// breaks exactly as processed.
func (b *Bot) SendPreformatted(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, "```\n"+text+"\n```")
	msg.ParseMode = "Markdown"
	_, err := b.Client.Send(msg)
	return err
}
