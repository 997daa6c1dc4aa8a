package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/domain"
	"github.com/ykvlv/medication-reminder/internal/store"
)

// --- Generic helpers ---

func (r *Router) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = mainMenuKeyboard()
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Warn("send failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}

func (r *Router) answerCallback(id, text string) error {
	_, err := r.bot.Request(tgbotapi.NewCallback(id, text))
	return err
}

// userError turns a service error into a reply for the chat.
func (r *Router) userError(chatID int64, op string, err error) {
	switch {
	case domain.IsValidationError(err):
		r.sendText(chatID, "⚠️ "+err.Error())
	case errors.Is(err, store.ErrNotFound):
		r.sendText(chatID, "No medication with that id. Use /list to see ids.")
	default:
		r.log.Error(op+" failed", zap.Error(err))
		r.sendText(chatID, "Something went wrong. Please try again later.")
	}
}

// --- Core commands ---

func (r *Router) handleStart(_ context.Context, chatID int64) {
	r.sendText(chatID, startText)
}

func (r *Router) handleList(ctx context.Context, chatID int64) {
	items, err := r.svc.Overview(ctx)
	if err != nil {
		r.userError(chatID, "overview", err)
		return
	}
	r.sendText(chatID, listText(items))
}

// --- Add flow ---

func (r *Router) handleAdd(ctx context.Context, chatID int64, args string) {
	if args == "" {
		r.setPending(chatID, pendingAdd)
		r.sendText(chatID, addPromptText)
		return
	}
	r.addFromText(ctx, chatID, args)
}

func (r *Router) addFromText(ctx context.Context, chatID int64, text string) {
	in, err := parseAddArgs(text)
	if err != nil {
		r.sendText(chatID, "⚠️ "+err.Error()+"\n\n"+addPromptText)
		return
	}
	m, err := r.svc.Add(ctx, in)
	if err != nil {
		r.userError(chatID, "add", err)
		return
	}
	r.sendText(chatID, "Added ✅\n\n"+medicationText(*m))
}

// --- Free-form dispatcher ---

func (r *Router) handleFreeForm(ctx context.Context, chatID int64, text string) {
	switch r.getPending(chatID) {
	case pendingAdd:
		r.clearPending(chatID)
		r.addFromText(ctx, chatID, text)
	default:
		// No pending flow: ignore free-form message
	}
}

// --- Acknowledge / delete ---

func (r *Router) handleTaken(ctx context.Context, chatID int64, id string) {
	if id == "" {
		r.sendText(chatID, "Usage: /taken <id>")
		return
	}
	m, err := r.svc.AcknowledgeToday(ctx, id)
	if err != nil {
		r.userError(chatID, "acknowledge", err)
		return
	}
	r.sendText(chatID, "Marked as taken today: "+m.Name)
}

// handleTakenCallback acknowledges the day the reminder was sent for, which
// is not necessarily today.
func (r *Router) handleTakenCallback(ctx context.Context, chatID int64, id string, day domain.Date, cbID string) {
	err := r.svc.Acknowledge(ctx, id, day)
	var m *domain.Medication
	if err == nil {
		m, err = r.svc.Get(ctx, id)
	}
	if err != nil {
		_ = r.answerCallback(cbID, "Could not save")
		r.userError(chatID, "acknowledge", err)
		return
	}
	_ = r.answerCallback(cbID, "Taken ✅")
	r.sendText(chatID, "Marked as taken on "+day.Display()+": "+m.Name)
}

func (r *Router) handleDelete(ctx context.Context, chatID int64, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		r.sendText(chatID, "Usage: /delete <id>")
		return
	}
	if err := r.svc.Delete(ctx, id); err != nil {
		r.userError(chatID, "delete", err)
		return
	}
	r.sendText(chatID, "Deleted.")
}
