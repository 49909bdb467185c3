package controllers

import (
	"log/slog"
	"net/http"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/delivery/http/middleware"
	"codecamp/internal/domain"
)

// SpeakerListResponse is the envelope for GET /api/events/{codeCampID}/speakers.
type SpeakerListResponse struct {
	Content []*domain.SpeakerInfo  `json:"Content"`
	Errors  []helpers.ServiceError `json:"Errors"`
}

// SpeakerResponse is the envelope for endpoints returning a single speaker profile.
type SpeakerResponse struct {
	Content *domain.SpeakerInfo    `json:"Content"`
	Errors  []helpers.ServiceError `json:"Errors"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerInfoService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerInfoService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSpeakers godoc
// @Summary List speaker profiles of an event
// @Tags speakers
// @Produce json
// @Param codeCampID path int true "Event id"
// @Success 200 {object} controllers.SpeakerListResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	codeCampID, err := helpers.PathInt(r, "codeCampID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	speakers, err := c.Service.ListSpeakers(r.Context(), codeCampID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, speakers)
}

// GetSpeaker godoc
// @Summary Get a speaker profile
// @Tags speakers
// @Produce json
// @Param codeCampID path int true "Event id"
// @Param itemID path int true "Speaker profile id"
// @Success 200 {object} controllers.SpeakerResponse "Errors[0].Code none_found when missing"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/speakers/{itemID} [get]
func (c *SpeakerController) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	ids, ok := helpers.PathInts(w, r, "codeCampID", "itemID")
	if !ok {
		return
	}
	sp, err := c.Service.GetSpeaker(r.Context(), ids[1], ids[0])
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, sp)
}

// GetSpeakerByRegistration godoc
// @Summary Get the speaker profile of a registration
// @Description Returns the oldest profile when a registration submitted more than one.
// @Tags speakers
// @Produce json
// @Param codeCampID path int true "Event id"
// @Param registrationID path int true "Registration id"
// @Success 200 {object} controllers.SpeakerResponse "Errors[0].Code none_found when missing"
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/registrations/{registrationID}/speaker [get]
func (c *SpeakerController) GetSpeakerByRegistration(w http.ResponseWriter, r *http.Request) {
	ids, ok := helpers.PathInts(w, r, "codeCampID", "registrationID")
	if !ok {
		return
	}
	sp, err := c.Service.GetSpeakerByRegistration(r.Context(), ids[0], ids[1])
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, sp)
}

// CreateSpeaker godoc
// @Summary Submit a speaker profile
// @Description Any signed-in caller may submit. The caller is recorded as the profile's author.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param codeCampID path int true "Event id"
// @Param speaker body domain.SpeakerInfo true "Speaker profile"
// @Success 200 {object} controllers.SpeakerResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/speakers [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	codeCampID, err := helpers.PathInt(r, "codeCampID")
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var sp domain.SpeakerInfo
	if !helpers.DecodeAndValidate(w, r, &sp) {
		return
	}
	sp.CodeCampID = codeCampID
	caller := middleware.CallerFromContext(r.Context())
	if err := c.Service.CreateSpeaker(r.Context(), caller, moduleID, &sp); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, &sp)
}

// UpdateSpeaker godoc
// @Summary Update a speaker profile
// @Description Module editors and the profile's author may update it.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param codeCampID path int true "Event id"
// @Param itemID path int true "Speaker profile id"
// @Param speaker body domain.SpeakerInfo true "Speaker profile"
// @Success 200 {object} controllers.SuccessResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/speakers/{itemID} [post]
func (c *SpeakerController) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	ids, ok := helpers.PathInts(w, r, "codeCampID", "itemID")
	if !ok {
		return
	}
	caller := middleware.CallerFromContext(r.Context())
	if !c.authorize(w, r, caller, moduleID, ids[1], ids[0]) {
		return
	}
	var sp domain.SpeakerInfo
	if !helpers.DecodeAndValidate(w, r, &sp) {
		return
	}
	sp.CodeCampID, sp.ItemID = ids[0], ids[1]
	if err := c.Service.UpdateSpeaker(r.Context(), caller, moduleID, &sp); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, helpers.ContentSuccess)
}

// DeleteSpeaker godoc
// @Summary Delete a speaker profile
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param X-Module-Id header int true "Module id"
// @Param X-CSRF-Token header string true "Token from /api/csrf-token"
// @Param codeCampID path int true "Event id"
// @Param itemID path int true "Speaker profile id"
// @Success 200 {object} controllers.SuccessResponse
// @Failure 400 {object} helpers.ServiceResponse "Errors[0].Code: bad_request"
// @Failure 401 {object} helpers.ServiceResponse "Errors[0].Code: unauthorized"
// @Failure 403 {object} helpers.ServiceResponse "Errors[0].Code: forbidden"
// @Failure 500 {object} helpers.ServiceResponse "Errors[0].Code: internal_error"
// @Router /api/events/{codeCampID}/speakers/{itemID} [delete]
func (c *SpeakerController) DeleteSpeaker(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := moduleScope(w, r)
	if !ok {
		return
	}
	ids, ok := helpers.PathInts(w, r, "codeCampID", "itemID")
	if !ok {
		return
	}
	caller := middleware.CallerFromContext(r.Context())
	if !c.authorize(w, r, caller, moduleID, ids[1], ids[0]) {
		return
	}
	if err := c.Service.DeleteSpeaker(r.Context(), moduleID, ids[1], ids[0]); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteContent(w, helpers.ContentSuccess)
}

func (c *SpeakerController) authorize(w http.ResponseWriter, r *http.Request, caller domain.Caller, moduleID, itemID, codeCampID int) bool {
	allowed, err := c.Service.CanEditSpeaker(r.Context(), caller, moduleID, itemID, codeCampID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return false
	}
	if !allowed {
		deny(w, caller, domain.SpeakerInfoEntityName)
		return false
	}
	return true
}
