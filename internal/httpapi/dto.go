package httpapi

import (
	"time"

	"github.com/ykvlv/medication-reminder/internal/domain"
	"github.com/ykvlv/medication-reminder/internal/reminder"
)

type medicationDTO struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Time                 string    `json:"time"`
	TimeDisplay          string    `json:"timeDisplay"`
	StartDate            string    `json:"startDate,omitempty"`
	StartDateDisplay     string    `json:"startDateDisplay"`
	DurationDays         int       `json:"durationDays"`
	DurationText         string    `json:"durationText"`
	DurationIgnored      bool      `json:"durationIgnored,omitempty"`
	LastNotified         string    `json:"lastNotified,omitempty"`
	FrequencyDescription string    `json:"frequencyDescription,omitempty"`
	OriginalInput        string    `json:"originalInput,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

type itemDTO struct {
	medicationDTO
	State   domain.DoseState `json:"state"`
	Status  domain.Status    `json:"status"`
	Overdue bool             `json:"overdue"`
}

// medicationRequest is the body accepted by create and update.
type medicationRequest struct {
	Name                 string `json:"name"`
	Time                 string `json:"time"`
	StartDate            string `json:"startDate"`
	DurationDays         int    `json:"durationDays"`
	FrequencyDescription string `json:"frequencyDescription"`
	OriginalInput        string `json:"originalInput"`
}

func (r medicationRequest) input() domain.Input {
	return domain.Input{
		Name:                 r.Name,
		Time:                 r.Time,
		StartDate:            r.StartDate,
		DurationDays:         r.DurationDays,
		FrequencyDescription: r.FrequencyDescription,
		OriginalInput:        r.OriginalInput,
	}
}

type markNotifiedRequest struct {
	MedicationID string `json:"medicationId"`
	Date         string `json:"date"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toMedicationDTO(m domain.Medication) medicationDTO {
	return medicationDTO{
		ID:                   m.ID,
		Name:                 m.Name,
		Time:                 m.Time.String(),
		TimeDisplay:          m.Time.Display(),
		StartDate:            m.StartDate.String(),
		StartDateDisplay:     m.StartDate.Display(),
		DurationDays:         m.DurationDays,
		DurationText:         domain.DurationText(m),
		DurationIgnored:      m.DurationIgnored(),
		LastNotified:         m.LastNotified.String(),
		FrequencyDescription: m.FrequencyDescription,
		OriginalInput:        m.OriginalInput,
		CreatedAt:            m.CreatedAt,
	}
}

func toMedicationDTOs(ms []domain.Medication) []medicationDTO {
	out := make([]medicationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMedicationDTO(m))
	}
	return out
}

func toItemDTO(it reminder.Item) itemDTO {
	return itemDTO{
		medicationDTO: toMedicationDTO(it.Medication),
		State:         it.State,
		Status:        it.Status,
		Overdue:       it.Overdue,
	}
}
