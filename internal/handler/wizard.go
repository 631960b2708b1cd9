package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/onlypets/go-petstore-api/internal/dto"
	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/store"
	"github.com/onlypets/go-petstore-api/internal/wizard"
)

// WizardHandler owns the live wizard sessions. Each session wraps one wizard
// with its own lock: wizard navigation is not concurrency-safe by itself.
type WizardHandler struct {
	st *store.Store

	mu       sync.Mutex
	sessions map[string]*wizardSession
}

type wizardSession struct {
	mu sync.Mutex
	w  *wizard.Wizard
}

func NewWizardHandler(st *store.Store) *WizardHandler {
	return &WizardHandler{st: st, sessions: make(map[string]*wizardSession)}
}

func (h *WizardHandler) Start(c *gin.Context) {
	var req dto.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := wizard.New(h.st, wizard.Kind(req.Kind), req.ItemID)
	if err != nil {
		if errors.Is(err, wizard.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = &wizardSession{w: w}
	h.mu.Unlock()

	c.JSON(http.StatusCreated, toWizardResponse(id, w))
}

func (h *WizardHandler) Get(c *gin.Context) {
	h.withSession(c, func(id string, w *wizard.Wizard) {
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

// ApplyFields stages form values for the current step.
func (h *WizardHandler) ApplyFields(c *gin.Context) {
	var req dto.WizardFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.withSession(c, func(id string, w *wizard.Wizard) {
		w.Apply(wizard.Fields{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			AdoptionReason:  req.AdoptionReason,
			HomeEnvironment: req.HomeEnvironment,
			PetName:         req.PetName,
			PetBreed:        req.PetBreed,
			SpecialNotes:    req.SpecialNotes,
		})
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

func (h *WizardHandler) Next(c *gin.Context) {
	h.withSession(c, func(id string, w *wizard.Wizard) {
		if err := w.Next(); err != nil {
			h.respondWizardError(c, id, w, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

func (h *WizardHandler) Back(c *gin.Context) {
	h.withSession(c, func(id string, w *wizard.Wizard) {
		w.Back()
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

func (h *WizardHandler) SelectDate(c *gin.Context) {
	var req dto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.withSession(c, func(id string, w *wizard.Wizard) {
		if err := w.SelectDate(req.Date); err != nil {
			h.respondWizardError(c, id, w, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

func (h *WizardHandler) SelectSlot(c *gin.Context) {
	var req dto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.withSession(c, func(id string, w *wizard.Wizard) {
		if err := w.SelectSlot(model.TimeSlot(req.Slot)); err != nil {
			h.respondWizardError(c, id, w, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

func (h *WizardHandler) NextMonth(c *gin.Context) {
	h.withSession(c, func(id string, w *wizard.Wizard) {
		w.NextMonth()
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

func (h *WizardHandler) PrevMonth(c *gin.Context) {
	h.withSession(c, func(id string, w *wizard.Wizard) {
		w.PrevMonth()
		c.JSON(http.StatusOK, toWizardResponse(id, w))
	})
}

func (h *WizardHandler) withSession(c *gin.Context, fn func(id string, w *wizard.Wizard)) {
	id := c.Param("id")
	h.mu.Lock()
	sess, ok := h.sessions[id]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard not found"})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(id, sess.w)
}

func (h *WizardHandler) respondWizardError(c *gin.Context, id string, w *wizard.Wizard, err error) {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "wizard": toWizardResponse(id, w)})
	case errors.Is(err, wizard.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "time slot is already booked"})
	case errors.Is(err, wizard.ErrPastDate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "date is in the past"})
	case errors.Is(err, wizard.ErrNoSchedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": "adoption flow has no schedule"})
	case errors.Is(err, wizard.ErrFinished):
		c.JSON(http.StatusConflict, gin.H{"error": "wizard already completed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func toWizardResponse(id string, w *wizard.Wizard) dto.WizardResponse {
	steps := make([]string, 0, len(w.Steps()))
	for _, s := range w.Steps() {
		steps = append(steps, string(s))
	}

	draft := w.Draft()
	resp := dto.WizardResponse{
		ID:          id,
		Kind:        string(w.Kind()),
		ItemID:      w.ItemID(),
		ItemName:    w.ItemName(),
		Steps:       steps,
		StepIndex:   w.StepIndex(),
		CurrentStep: string(w.CurrentStep()),
		Completed:   w.Completed(),
		Draft: dto.DraftResponse{
			Name:            draft.Name,
			Email:           draft.Email,
			Phone:           draft.Phone,
			AdoptionReason:  draft.AdoptionReason,
			HomeEnvironment: draft.HomeEnvironment,
			AppointmentDate: draft.AppointmentDate,
			AppointmentTime: string(draft.AppointmentTime),
			PetName:         draft.PetName,
			PetBreed:        draft.PetBreed,
			SpecialNotes:    draft.SpecialNotes,
		},
	}

	if w.Kind() == wizard.KindService {
		resp.Month = w.Month().Format("2006-01")
		days := w.Days()
		resp.Days = make([]dto.DayResponse, 0, len(days))
		for _, d := range days {
			resp.Days = append(resp.Days, dto.DayResponse{Date: d.Date, Selectable: d.Selectable})
		}
	}
	return resp
}
