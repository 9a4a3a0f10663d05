package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/domain"
)

// Notifier displays transient messages to the customer. Fire and forget.
type Notifier interface {
	Notify(n domain.Notification)
}

// Success builds a success notification stamped with the current time
func Success(message string) domain.Notification {
	return domain.Notification{Severity: domain.SeveritySuccess, Message: message, CreatedAt: time.Now()}
}

// Error builds an error notification stamped with the current time
func Error(message string) domain.Notification {
	return domain.Notification{Severity: domain.SeverityError, Message: message, CreatedAt: time.Now()}
}

// DefaultInboxSize is the number of undelivered notifications kept per session
const DefaultInboxSize = 32

// Inbox queues notifications until the front-end drains them. When full the
// oldest notification is dropped.
type Inbox struct {
	mu      sync.Mutex
	size    int
	pending []domain.Notification
}

// NewInbox creates an inbox holding at most size notifications
func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Inbox{size: size}
}

func (i *Inbox) Notify(n domain.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.pending) == i.size {
		i.pending = i.pending[1:]
	}
	i.pending = append(i.pending, n)
}

// Drain returns pending notifications in arrival order and empties the inbox
func (i *Inbox) Drain() []domain.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := i.pending
	i.pending = nil
	if out == nil {
		return []domain.Notification{}
	}
	return out
}

// Len returns the number of pending notifications
func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.pending)
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLogger creates a notifier that writes every notification to the log
func NewLogger(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Notify(n domain.Notification) {
	fields := []zap.Field{
		zap.String("severity", string(n.Severity)),
		zap.String("message", n.Message),
	}
	if n.Severity == domain.SeverityError {
		l.logger.Warn("Notification", fields...)
		return
	}
	l.logger.Info("Notification", fields...)
}

// Multi fans a notification out to every notifier in order
type Multi []Notifier

func (m Multi) Notify(n domain.Notification) {
	for _, notifier := range m {
		notifier.Notify(n)
	}
}

// Discard drops every notification
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(domain.Notification) {}
