package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ykvlv/medication-reminder/internal/domain"
	"github.com/ykvlv/medication-reminder/internal/reminder"
)

// UI texts in English
const (
	startText = "👋 I am a medication reminder bot.\n\n" +
		"Add a medication with a daily time and I will ping you at that minute. " +
		"Tap ✅ Taken under a reminder to mark today's dose.\n\n" +
		"Use /help to see all commands."
	helpText = "Commands:\n" +
		"/list – all medications with today's state\n" +
		"/add HH:MM Name [YYYY-MM-DD] [Nd] – add a medication\n" +
		"/taken <id> – mark today's dose as taken\n" +
		"/delete <id> – remove a medication\n" +
		"/help – this message"
	addPromptText = "Send the medication as:\nHH:MM Name [YYYY-MM-DD] [Nd]\n\n" +
		"Example: 08:30 Vitamin D 2025-05-01 30d"
	emptyListText = "No medications yet. Use /add to create one."
)

var stateBadges = map[domain.DoseState]string{
	domain.DoseInactive:     "⏸",
	domain.DosePending:      "⏳",
	domain.DoseDue:          "🔔",
	domain.DoseOverdue:      "⚠️",
	domain.DoseAcknowledged: "✅",
}

// mainMenuKeyboard builds the persistent reply keyboard.
func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/list"),
			tgbotapi.NewKeyboardButton("/add"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/help"),
		),
	)
}

// takenKeyboard is attached to every due reminder. The callback data is
// "taken:<id>:<YYYY-MM-DD>" and fits Telegram's 64-byte limit for UUID ids.
func takenKeyboard(id string, day domain.Date) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Taken", cbTaken+id+":"+day.String()),
		),
	)
}

func dueText(m domain.Medication) string {
	s := fmt.Sprintf("💊 Time to take %s (%s)", m.Name, m.Time.Display())
	if m.FrequencyDescription != "" {
		s += "\n" + m.FrequencyDescription
	}
	return s
}

// medicationText renders one medication with its schedule.
func medicationText(m domain.Medication) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s\n", m.Name, m.Time.Display())
	fmt.Fprintf(&b, "Start: %s · %s\n", m.StartDate.Display(), domain.DurationText(m))
	if m.DurationIgnored() {
		b.WriteString("No start date, so the course length is not applied\n")
	}
	fmt.Fprintf(&b, "id: %s", m.ID)
	return b.String()
}

func itemText(it reminder.Item) string {
	badge := stateBadges[it.State]
	s := fmt.Sprintf("%s %s", badge, medicationText(it.Medication))
	if it.Overdue {
		s += "\nOverdue: not taken yet today"
	}
	if it.Status != domain.StatusActive {
		s += "\nCourse: " + string(it.Status)
	}
	return s
}

func listText(items []reminder.Item) string {
	if len(items) == 0 {
		return emptyListText
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, itemText(it))
	}
	return "💊 Your medications:\n\n" + strings.Join(parts, "\n\n")
}
