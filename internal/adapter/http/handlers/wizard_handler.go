package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "monhajj/internal/adapter/http/dto/request"
	response "monhajj/internal/adapter/http/dto/response"
	"monhajj/internal/domain/pricing"
	"monhajj/internal/domain/wizard"
	"monhajj/internal/usecase"
	"monhajj/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
)

// WizardHandler drives booking wizards. Every route answers with the full
// wizard state so the browser can redraw the current step from it.
type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// CreateWizard godoc
// @Summary      Start a booking wizard
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Param        wizard  body      request.CreateWizardRequest  false  "Flow (package or room)"
// @Success      201     {object}  response.WizardResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /wizards [post]
func (h *WizardHandler) CreateWizard(c *gin.Context) {
	var payload request.CreateWizardRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
			return
		}
	}

	w, err := h.usecase.Start(c.Request.Context(), payload.ResolveFlow())
	if err != nil {
		h.fail(c, w, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWizard(w))
}

// GetWizard godoc
// @Summary      Get a booking wizard
// @Tags         wizards
// @Produce      json
// @Param        id   path      string  true  "Wizard ID"
// @Success      200  {object}  response.WizardResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /wizards/{id} [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	w, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, w, err)
}

// SelectOffering godoc
// @Summary      Select the offering
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Wizard ID"
// @Param        offering body      request.SelectOfferingRequest  true  "Offering"
// @Success      200      {object}  response.WizardResponse
// @Failure      409      {object}  response.WizardResponse
// @Router       /wizards/{id}/offering [put]
func (h *WizardHandler) SelectOffering(c *gin.Context) {
	var payload request.SelectOfferingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	w, err := h.usecase.SelectOffering(c.Request.Context(), c.Param("id"), payload.OfferingID)
	h.respond(c, w, err)
}

// SelectRoomType godoc
// @Summary      Select the room type (room flow)
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Wizard ID"
// @Param        room  body      request.SelectRoomTypeRequest  true  "Room type"
// @Success      200   {object}  response.WizardResponse
// @Failure      409   {object}  response.WizardResponse
// @Router       /wizards/{id}/room-type [put]
func (h *WizardHandler) SelectRoomType(c *gin.Context) {
	var payload request.SelectRoomTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	w, err := h.usecase.SelectRoomType(c.Request.Context(), c.Param("id"), payload.ResolveRoomType())
	h.respond(c, w, err)
}

// SetTravelers godoc
// @Summary      Set the number of travelers
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Param        id         path      string                       true  "Wizard ID"
// @Param        travelers  body      request.SetTravelersRequest  true  "Traveler count"
// @Success      200        {object}  response.WizardResponse
// @Failure      422        {object}  response.WizardResponse
// @Router       /wizards/{id}/travelers [put]
func (h *WizardHandler) SetTravelers(c *gin.Context) {
	var payload request.SetTravelersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	w, err := h.usecase.SetNumberOfPeople(c.Request.Context(), c.Param("id"), payload.NumberOfPeople)
	h.respond(c, w, err)
}

// UpdateClient godoc
// @Summary      Replace one traveler record
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Wizard ID"
// @Param        index   path      int                          true  "Traveler index (0-based)"
// @Param        client  body      request.ClientRecordRequest  true  "Traveler"
// @Success      200     {object}  response.WizardResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /wizards/{id}/clients/{index} [put]
func (h *WizardHandler) UpdateClient(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	var payload request.ClientRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	w, err := h.usecase.UpdateClient(c.Request.Context(), c.Param("id"), index, payload.ToEntity())
	h.respond(c, w, err)
}

// SelectPaymentOption godoc
// @Summary      Select the deposit fraction
// @Tags         wizards
// @Accept       json
// @Produce      json
// @Param        id      path      string                        true  "Wizard ID"
// @Param        option  body      request.PaymentOptionRequest  true  "Deposit fraction"
// @Success      200     {object}  response.WizardResponse
// @Failure      422     {object}  response.WizardResponse
// @Router       /wizards/{id}/payment-option [put]
func (h *WizardHandler) SelectPaymentOption(c *gin.Context) {
	var payload request.PaymentOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	w, err := h.usecase.SelectPaymentOption(c.Request.Context(), c.Param("id"), payload.Fraction)
	h.respond(c, w, err)
}

// Advance godoc
// @Summary      Validate the current step and move forward
// @Description  Leaving the payment step submits the booking; the receipt carries the payment client secret.
// @Tags         wizards
// @Produce      json
// @Param        id   path      string  true  "Wizard ID"
// @Success      200  {object}  response.WizardResponse
// @Failure      402  {object}  response.WizardResponse
// @Failure      422  {object}  response.WizardResponse
// @Router       /wizards/{id}/advance [post]
func (h *WizardHandler) Advance(c *gin.Context) {
	w, err := h.usecase.Advance(c.Request.Context(), c.Param("id"))
	h.respond(c, w, err)
}

// Retreat godoc
// @Summary      Go back one step
// @Tags         wizards
// @Produce      json
// @Param        id   path      string  true  "Wizard ID"
// @Success      200  {object}  response.WizardResponse
// @Failure      409  {object}  response.WizardResponse
// @Router       /wizards/{id}/retreat [post]
func (h *WizardHandler) Retreat(c *gin.Context) {
	w, err := h.usecase.Retreat(c.Request.Context(), c.Param("id"))
	h.respond(c, w, err)
}

func (h *WizardHandler) respond(c *gin.Context, w *wizard.Wizard, err error) {
	if err != nil {
		h.fail(c, w, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWizard(w))
}

// fail answers with the wizard state when the command was rejected by the
// wizard itself, and with a bare error otherwise.
func (h *WizardHandler) fail(c *gin.Context, w *wizard.Wizard, err error) {
	appErr := mapWizardError(err)
	if w != nil && appErr.HTTPStatus < http.StatusInternalServerError {
		c.JSON(appErr.HTTPStatus, response.FromWizard(w).WithError(appErr.ToHTTPError()))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapWizardError(err error) *pkg.AppError {
	if ve, ok := pkg.IsValidationError(err); ok {
		return pkg.NewDomainError("VALIDATION_FAILED", ve.Message, err, http.StatusUnprocessableEntity).WithDetails(ve.Details...)
	}
	var se *wizard.SubmissionError
	if errors.As(err, &se) {
		return pkg.NewDomainError("SUBMISSION_FAILED", se.Message, err, http.StatusPaymentRequired)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidWizardID), errors.Is(err, usecase.ErrInvalidOfferingID),
		errors.Is(err, wizard.ErrUnknownFlow), errors.Is(err, wizard.ErrClientIndexOutOfRange),
		errors.Is(err, pricing.ErrUnknownRoomType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWizardNotFound):
		return pkg.NewDomainErrorSimple("WIZARD_NOT_FOUND", "Booking wizard not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferingNotFound):
		return pkg.NewDomainErrorSimple("OFFERING_NOT_FOUND", "Offering not found", http.StatusNotFound)
	case errors.Is(err, wizard.ErrStepLocked):
		return pkg.NewDomainErrorSimple("STEP_LOCKED", "This field cannot be changed on the current step", http.StatusConflict)
	case errors.Is(err, wizard.ErrAtFirstStep):
		return pkg.NewDomainErrorSimple("AT_FIRST_STEP", "Already on the first step", http.StatusConflict)
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "Booking already submitted", http.StatusConflict)
	case errors.Is(err, wizard.ErrRoomTypeNotSupported):
		return pkg.NewDomainErrorSimple("ROOM_TYPE_NOT_SUPPORTED", "Room types are not part of this booking flow", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
