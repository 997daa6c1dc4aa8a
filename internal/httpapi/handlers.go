package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/domain"
	"github.com/ykvlv/medication-reminder/internal/reminder"
	"github.com/ykvlv/medication-reminder/internal/store"
)

// Handler serves the medication and reminder-check endpoints.
type Handler struct {
	svc *reminder.Service
	log *zap.Logger
}

func NewHandler(svc *reminder.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// --- Medications ---

func (h *Handler) ListMedications(c *gin.Context) {
	items, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]itemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	c.JSON(http.StatusOK, gin.H{"medications": out})
}

func (h *Handler) GetMedication(c *gin.Context) {
	m, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toItemDTO(h.svc.Classify(*m)))
}

func (h *Handler) CreateMedication(c *gin.Context) {
	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	m, err := h.svc.Add(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMedicationDTO(*m))
}

func (h *Handler) UpdateMedication(c *gin.Context) {
	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	m, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toMedicationDTO(*m))
}

func (h *Handler) DeleteMedication(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Reminder checks ---

// CheckReminders returns the due set for the current minute. The optional
// date and time query parameters evaluate another instant instead.
func (h *Handler) CheckReminders(c *gin.Context) {
	now := h.svc.Now()
	day, at := domain.DateOf(now), domain.ClockOf(now)

	if q := c.Query("date"); q != "" {
		d, err := domain.ParseDate(q)
		if err != nil {
			h.fail(c, err)
			return
		}
		day = d
	}
	if q := c.Query("time"); q != "" {
		t, err := domain.ParseClock(q)
		if err != nil {
			h.fail(c, err)
			return
		}
		at = t
	}

	due, err := h.svc.Due(c.Request.Context(), day, at)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":           day.String(),
		"time":           at.String(),
		"dueMedications": toMedicationDTOs(due),
	})
}

// MarkNotified records a delivered reminder. The day defaults to today.
func (h *Handler) MarkNotified(c *gin.Context) {
	var req markNotifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if req.MedicationID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "medicationId is required")
		return
	}

	day := domain.DateOf(h.svc.Now())
	if req.Date != "" {
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			h.fail(c, err)
			return
		}
		day = d
	}

	ctx := c.Request.Context()
	if err := h.svc.Acknowledge(ctx, req.MedicationID, day); err != nil {
		h.fail(c, err)
		return
	}
	m, err := h.svc.Get(ctx, req.MedicationID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "medication": toMedicationDTO(*m)})
}

// fail maps service errors onto HTTP responses.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "not_found", "medication not found")
	default:
		h.log.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, errorResponse{Error: errType, Message: message})
}
