package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/domain"
	"github.com/ykvlv/medication-reminder/internal/reminder"
)

// Pending state keys used in conversational flows.
const (
	pendingAdd = "await_add_text"
)

// Callback data prefixes.
const (
	cbTaken = "taken:"
)

var errNoChat = errors.New("telegram: no chat bound, send /start first")

// Router wires Telegram updates to handlers and holds minimal in-memory state.
type Router struct {
	bot    *tgbotapi.BotAPI
	log    *zap.Logger
	svc    *reminder.Service
	chatID int64            // chat that receives reminders, 0 until bound
	state  map[int64]string // chatID -> pending state
	mu     sync.RWMutex
}

// NewRouter creates a new Telegram router. With chatID == 0 the first chat
// that sends /start becomes the reminder recipient.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, svc *reminder.Service, chatID int64) *Router {
	return &Router{
		bot:    bot,
		log:    log,
		svc:    svc,
		chatID: chatID,
		state:  make(map[int64]string),
	}
}

// bind makes chatID the reminder recipient if no chat is bound yet. The
// binding is permanent for the life of the process.
func (r *Router) bind(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.chatID != 0 {
		return
	}
	r.chatID = chatID
	r.log.Info("reminder chat bound", zap.Int64("chatID", chatID))
}

func (r *Router) recipient() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chatID
}

// allowed reports whether chatID may manage medications. Only the bound
// chat may, so nothing is allowed before the first /start.
func (r *Router) allowed(chatID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chatID != 0 && r.chatID == chatID
}

// setPending sets a pending state for a chat (non-persistent, in-memory).
func (r *Router) setPending(chatID int64, s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state[chatID] = s
}

// getPending returns current pending state for a chat.
func (r *Router) getPending(chatID int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state[chatID]
}

// clearPending clears a pending state for a chat.
func (r *Router) clearPending(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.state, chatID)
}

// HandleUpdate routes a single update to appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil {
		msg := upd.Message
		chatID := msg.Chat.ID
		text := strings.TrimSpace(msg.Text)
		cmd, args := splitCommand(text)
		if cmd == "/start" {
			r.bind(chatID)
		}
		if !r.allowed(chatID) {
			r.log.Warn("ignoring message from foreign chat", zap.Int64("chatID", chatID))
			return
		}

		switch cmd {
		case "/start":
			r.handleStart(ctx, chatID)
		case "/help":
			r.sendText(chatID, helpText)
		case "/list":
			r.handleList(ctx, chatID)
		case "/add":
			r.handleAdd(ctx, chatID, args)
		case "/taken":
			r.handleTaken(ctx, chatID, args)
		case "/delete":
			r.handleDelete(ctx, chatID, args)
		default:
			// Free-form text used in the /add flow
			r.handleFreeForm(ctx, chatID, text)
		}
		return
	}

	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		if cb.Message == nil || !r.allowed(cb.Message.Chat.ID) {
			return
		}
		chatID := cb.Message.Chat.ID

		switch {
		case strings.HasPrefix(cb.Data, cbTaken):
			id, day, err := parseTakenData(strings.TrimPrefix(cb.Data, cbTaken))
			if err != nil {
				r.log.Warn("bad taken callback", zap.String("data", cb.Data), zap.Error(err))
				_ = r.answerCallback(cb.ID, "This button is outdated")
				return
			}
			r.handleTakenCallback(ctx, chatID, id, day, cb.ID)
		default:
			// Unknown callback: ignore silently
		}
	}
}

// NotifyDue sends a due reminder with a "taken" button to the bound chat.
// The button carries day so that a late tap acknowledges the reminder's own
// day. This makes Router satisfy scheduler.Notifier.
func (r *Router) NotifyDue(_ context.Context, med domain.Medication, day domain.Date) error {
	chatID := r.recipient()
	if chatID == 0 {
		return errNoChat
	}
	msg := tgbotapi.NewMessage(chatID, dueText(med))
	msg.ReplyMarkup = takenKeyboard(med.ID, day)
	_, err := r.bot.Send(msg)
	return err
}

// parseTakenData splits "<id>:<YYYY-MM-DD>" from a taken button.
func parseTakenData(data string) (string, domain.Date, error) {
	i := strings.LastIndexByte(data, ':')
	if i <= 0 {
		return "", domain.Date{}, fmt.Errorf("missing day in %q", data)
	}
	day, err := domain.ParseDate(data[i+1:])
	if err != nil {
		return "", domain.Date{}, err
	}
	return data[:i], day, nil
}

// splitCommand separates "/cmd@bot args" into "/cmd" and "args".
func splitCommand(text string) (cmd, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd, args, _ = strings.Cut(text, " ")
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(args)
}
