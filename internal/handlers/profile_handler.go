package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"PROFILEHUB_BACK-END/internal/dto"
	"PROFILEHUB_BACK-END/internal/middleware"
	"PROFILEHUB_BACK-END/internal/models"
	"PROFILEHUB_BACK-END/internal/store"
	"PROFILEHUB_BACK-END/internal/utils"
	"PROFILEHUB_BACK-END/internal/validation"
)

// ProfileHandler serves /api/profile for the authenticated user.
type ProfileHandler struct {
	store store.ProfileStore
	log   *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(st store.ProfileStore, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{store: st, log: log}
}

// Handle dispatches /api/profile by method.
func (h *ProfileHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetMe(w, r)
	case http.MethodPost:
		h.CreateOrUpdate(w, r)
	case http.MethodPut:
		h.Update(w, r)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, dto.CodeMethodNotAllowed, "only GET, POST, PUT are allowed")
	}
}

// GetMe godoc
// @Summary      Get my profile
// @Description  Return the authenticated user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, dto.CodeAuthRequired, "missing user in context")
		return
	}

	p, err := h.store.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, dto.CodeProfileNotFound, "Profile not found")
			return
		}
		h.internalError(w, "profile read failed", userID.String(), err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profileToResponse(p))
}

// CreateOrUpdate godoc
// @Summary      Create or update my profile
// @Description  Insert a profile row for the authenticated user, or merge the provided fields into the existing one
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileRequest  true  "Profile payload"
// @Success      200      {object}  dto.ProfileResponse "existing row merged"
// @Success      201      {object}  dto.ProfileResponse "new row created"
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profile [post]
func (h *ProfileHandler) CreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, dto.CodeAuthRequired, "missing user in context")
		return
	}

	changes, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	p, created, err := h.store.Upsert(r.Context(), userID, changes)
	if err != nil {
		h.internalError(w, "profile upsert failed", userID.String(), err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSONResponse(w, status, profileToResponse(p))
}

// Update godoc
// @Summary      Update my profile
// @Description  Merge the provided fields into an existing profile; fails when no profile exists yet
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileRequest  true  "Profile update payload"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, dto.CodeAuthRequired, "missing user in context")
		return
	}

	changes, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	p, err := h.store.Update(r.Context(), userID, changes)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, dto.CodeProfileNotFound, "Profile not found")
			return
		}
		h.internalError(w, "profile update failed", userID.String(), err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profileToResponse(p))
}

// parseBody decodes and validates a profile payload. On any failure it writes
// the error response itself and returns ok=false. The first failing validator
// wins; absent fields are skipped, not errors.
func (h *ProfileHandler) parseBody(w http.ResponseWriter, r *http.Request) (store.ProfileChanges, bool) {
	var changes store.ProfileChanges

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidRequestBody, "failed to read request body")
		return changes, false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	// 1) ห้าม client ส่ง user id มาเอง — reject both spellings before
	// looking at anything else
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidRequestBody, err.Error())
		return changes, false
	}
	for _, key := range []string{"userId", "user_id"} {
		if _, found := raw[key]; found {
			utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeUserIDNotAllowed, "user id cannot be set from the request body")
			return changes, false
		}
	}

	var req dto.ProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidRequestBody, err.Error())
		return changes, false
	}

	// 2) validate provided fields, first failure short-circuits. A zero or
	// empty value counts as "not provided" — it is neither validated nor
	// merged, so a client cannot clear a field this way.
	if req.Age != nil && *req.Age != 0 {
		if !validation.IsValidAge(*req.Age) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidAge, "age must be an integer between 1 and 150")
			return changes, false
		}
		changes.Age = req.Age
	}
	if provided(req.DateOfBirth) {
		if !validation.IsValidDateString(*req.DateOfBirth) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidDateOfBirth, "dateOfBirth must be a dash-separated calendar date")
			return changes, false
		}
		changes.DateOfBirth = parseBirthDate(*req.DateOfBirth)
	}
	if provided(req.Phone) {
		if !validation.IsValidPhoneNumber(*req.Phone) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidPhone, "phone must be an international-dialable number")
			return changes, false
		}
		changes.Phone = req.Phone
	}
	if provided(req.CountryCode) {
		if !validation.IsValidCountryCode(*req.CountryCode) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidCountryCode, "countryCode must be + followed by 1-4 digits")
			return changes, false
		}
		changes.CountryCode = req.CountryCode
	}
	changes.Country = nullable(req.Country)
	changes.State = nullable(req.State)
	changes.City = nullable(req.City)

	return changes, true
}

// internalError hides the cause from the client and keeps it in the log.
func (h *ProfileHandler) internalError(w http.ResponseWriter, msg, userID string, err error) {
	h.log.Error(msg, zap.String("user_id", userID), zap.Error(err))
	utils.WriteErrorResponse(w, http.StatusInternalServerError, dto.CodeInternalError, "unexpected error, please try again later")
}

func profileToResponse(p *models.UserProfile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID.String(),
		Age:         p.Age,
		Phone:       p.Phone,
		CountryCode: p.CountryCode,
		Country:     p.Country,
		State:       p.State,
		City:        p.City,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.DateOfBirth != nil {
		// ส่งเป็น "YYYY-MM-DD"
		bd := p.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &bd
	}
	return resp
}

// parseBirthDate assumes s already passed IsValidDateString and keeps only
// the date component.
func parseBirthDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339, s)
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// ---------- helpers ----------

func provided(p *string) bool {
	return p != nil && *p != ""
}

func nullable(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
