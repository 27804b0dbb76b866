package notify

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Level classifies a notification for the ambient surface.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is one short-lived, human-readable status notification.
type Message struct {
	Level Level
	Text  string
}

// Notifier is the ambient notification surface consumed by the view layer.
// Implementations must never block the calling mutation; delivery is
// fire-and-forget and messages may be dropped.
type Notifier interface {
	Successf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LogNotifier writes notifications to the application logger.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n *LogNotifier) Successf(format string, args ...interface{}) {
	if n.Logger != nil {
		n.Logger.WithField("notify", LevelSuccess).Info(fmt.Sprintf(format, args...))
	}
}

func (n *LogNotifier) Errorf(format string, args ...interface{}) {
	if n.Logger != nil {
		n.Logger.WithField("notify", LevelError).Warn(fmt.Sprintf(format, args...))
	}
}

// ChannelNotifier buffers notifications for a UI consumer. When the buffer
// is full the message is dropped rather than blocking the mutation.
type ChannelNotifier struct {
	ch chan Message
}

func NewChannelNotifier(buffer int) *ChannelNotifier {
	if buffer <= 0 {
		buffer = 16
	}
	return &ChannelNotifier{ch: make(chan Message, buffer)}
}

// Messages returns the receive side for the UI consumer.
func (n *ChannelNotifier) Messages() <-chan Message { return n.ch }

func (n *ChannelNotifier) Successf(format string, args ...interface{}) {
	n.push(Message{Level: LevelSuccess, Text: fmt.Sprintf(format, args...)})
}

func (n *ChannelNotifier) Errorf(format string, args ...interface{}) {
	n.push(Message{Level: LevelError, Text: fmt.Sprintf(format, args...)})
}

func (n *ChannelNotifier) push(m Message) {
	select {
	case n.ch <- m:
	default: // consumer is behind, drop
	}
}

// Nop discards every notification. Useful in tests.
type Nop struct{}

func (Nop) Successf(string, ...interface{}) {}
func (Nop) Errorf(string, ...interface{})   {}
