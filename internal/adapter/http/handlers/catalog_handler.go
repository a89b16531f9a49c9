package handlers

import (
	"errors"
	"net/http"

	request "monhajj/internal/adapter/http/dto/request"
	response "monhajj/internal/adapter/http/dto/response"
	"monhajj/internal/usecase"
	"monhajj/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// CatalogHandler serves the offering catalog and the price resolver.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListOfferings godoc
// @Summary      List offerings
// @Tags         catalog
// @Produce      json
// @Param        travel_type  query     string  false  "hajj or omra"
// @Success      200          {array}   response.OfferingResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /offerings [get]
func (h *CatalogHandler) ListOfferings(c *gin.Context) {
	items, err := h.usecase.ListOfferings(c.Request.Context(), c.Query("travel_type"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOfferings(items))
}

// GetOffering godoc
// @Summary      Get an offering
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Offering ID"
// @Success      200  {object}  response.OfferingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /offerings/{id} [get]
func (h *CatalogHandler) GetOffering(c *gin.Context) {
	o, err := h.usecase.GetOffering(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOffering(o))
}

// ListRoomTypes godoc
// @Summary      List room types
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.RoomTypeResponse
// @Router       /room-types [get]
func (h *CatalogHandler) ListRoomTypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRoomOptions(h.usecase.RoomTypes(c.Request.Context())))
}

// CreateQuote godoc
// @Summary      Price a trip
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        quote  body      request.QuoteRequest  true  "Quote request"
// @Success      200    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *CatalogHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Quote(c.Request.Context(), payload.ToPricingRequest())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTravelType), errors.Is(err, usecase.ErrInvalidOfferingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteRequest):
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", "Invalid quote payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferingNotFound):
		return pkg.NewDomainErrorSimple("OFFERING_NOT_FOUND", "Offering not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
