package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"rootline-backend/application/services"
	"rootline-backend/domain/herbs"
	"rootline-backend/pkg/common"
	pkgerrors "rootline-backend/pkg/errors"
	"rootline-backend/pkg/utils"
)

// maxIntakeBodyBytes bounds the intake request body.
const maxIntakeBodyBytes = 64 * 1024

// IntakeHandler handles wellness intake HTTP requests
type IntakeHandler struct {
	intake *services.IntakeService
	logger *zap.Logger
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intake *services.IntakeService, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{
		intake: intake,
		logger: logger,
	}
}

// IntakeRequest represents the request body for intake submissions. The
// matcher itself tolerates empty text, but a plan generation needs at least
// the symptoms to say anything useful.
type IntakeRequest struct {
	Symptoms     string   `json:"symptoms" validate:"required,min=2,max=2000"`
	Goals        string   `json:"goals,omitempty" validate:"omitempty,max=2000"`
	Restrictions string   `json:"restrictions,omitempty" validate:"omitempty,max=1000"`
	Traditions   []string `json:"traditions,omitempty" validate:"omitempty,max=3,dive,oneof=african_diaspora ayurvedic tcm"`
}

// MatchPreviewRequest represents the request body for the live match
// preview. Every field is optional; an empty query simply matches nothing.
type MatchPreviewRequest struct {
	Symptoms     string   `json:"symptoms,omitempty" validate:"omitempty,max=2000"`
	Goals        string   `json:"goals,omitempty" validate:"omitempty,max=2000"`
	Restrictions string   `json:"restrictions,omitempty" validate:"omitempty,max=1000"`
	Traditions   []string `json:"traditions,omitempty" validate:"omitempty,max=3,dive,oneof=african_diaspora ayurvedic tcm"`
}

// GeneratePlan handles POST /intake
func (h *IntakeHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req IntakeRequest
	if err := common.ParseJSONBody(r, &req, maxIntakeBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest,
			"Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError,
			"Validation error: "+err.Error())
		return
	}

	traditions, err := parseTraditions(req.Traditions)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	plan, err := h.intake.GeneratePlan(r.Context(), services.IntakeRequest{
		Symptoms:     req.Symptoms,
		Goals:        req.Goals,
		Restrictions: req.Restrictions,
		Traditions:   traditions,
	})
	if err != nil {
		h.logger.Error("Failed to generate wellness plan", zap.Error(err))
		if appErr := pkgerrors.GetAppError(err); appErr != nil && appErr.HTTPStatus >= 500 {
			common.RespondError(w, http.StatusBadGateway, common.StandardErrorCodes.UpstreamError,
				"Plan generation failed")
			return
		}
		common.RespondError(w, http.StatusInternalServerError, common.StandardErrorCodes.InternalError,
			"Plan generation failed")
		return
	}

	common.RespondJSON(w, http.StatusOK, plan)
}

// MatchPreview handles POST /match
func (h *IntakeHandler) MatchPreview(w http.ResponseWriter, r *http.Request) {
	var req MatchPreviewRequest
	if err := common.ParseJSONBody(r, &req, maxIntakeBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest,
			"Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError,
			"Validation error: "+err.Error())
		return
	}

	traditions, err := parseTraditions(req.Traditions)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	result := h.intake.Match(services.IntakeRequest{
		Symptoms:     req.Symptoms,
		Goals:        req.Goals,
		Restrictions: req.Restrictions,
		Traditions:   traditions,
	})

	common.RespondJSON(w, http.StatusOK, result)
}

// parseTraditions converts validated wire values into domain enums.
func parseTraditions(values []string) ([]herbs.Tradition, error) {
	traditions := make([]herbs.Tradition, 0, len(values))
	for _, v := range values {
		t, err := herbs.ParseTradition(v)
		if err != nil {
			return nil, err
		}
		traditions = append(traditions, t)
	}
	return traditions, nil
}
