package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// BotClient is anything that can deliver a log line to a Telegram chat.
type BotClient interface {
	SendMessage(chatID int64, text string) error
}

// Logger writes leveled, timestamped lines to an io.Writer and optionally
// forwards them to a Telegram channel. A nil *Logger is valid and silent, so
// callers never have to guard their log statements.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	debug     bool
	client    BotClient
	channelID int64
}

func New(out io.Writer, debug bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, debug: debug}
}

// WithChannel returns a logger that also forwards every line to the given
// Telegram channel.
func (l *Logger) WithChannel(client BotClient, channelID int64) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{out: l.out, debug: l.debug, client: client, channelID: channelID}
}

// DebugEnabled reports whether debug-level lines are emitted.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.debug
}

func (l *Logger) Info(message string) {
	l.send("ℹ️ INFO", message)
}

func (l *Logger) Error(message string) {
	l.send("❌ ERROR", message)
}

func (l *Logger) Success(message string) {
	l.send("✅ SUCCESS", message)
}

func (l *Logger) Debug(message string) {
	if !l.DebugEnabled() {
		return
	}
	l.send("🔍 DEBUG", message)
}

func (l *Logger) send(prefix, message string) {
	if l == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] %s %s", timestamp, prefix, message)

	l.mu.Lock()
	fmt.Fprintln(l.out, logMessage)
	l.mu.Unlock()

	if l.client != nil {
		go func() {
			if err := l.client.SendMessage(l.channelID, logMessage); err != nil {
				l.mu.Lock()
				fmt.Fprintf(l.out, "failed to send log to channel: %v\n", err)
				l.mu.Unlock()
			}
		}()
	}
}
