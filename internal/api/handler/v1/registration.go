package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agusvaldes/popup-api/internal/api/handler/v1/request"
	"github.com/agusvaldes/popup-api/internal/api/handler/v1/response"
	"github.com/agusvaldes/popup-api/internal/config"
	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/service"
)

type RegistrationService interface {
	FormStatus(ctx context.Context, eventID uint) (domain.FormStatus, error)
	Register(ctx context.Context, registration domain.Registration) (domain.Registration, error)
}

type RegistrationHandler struct {
	activeEventID uint
	svc           RegistrationService
}

func NewRegistrationHandler(conf *config.EventsConfig, svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		activeEventID: conf.ActiveID,
		svc:           svc,
	}
}

// HandleGetFormStatus godoc
// @Summary      Get the active event's form status
// @Description  Reports whether registration is closed and the effective ticket cap
// @Tags         registrations
// @Produce      json
// @Success      200  {object}  response.FormStatus
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /form-status [get]
func (h *RegistrationHandler) HandleGetFormStatus(ctx *gin.Context) {
	status, err := h.svc.FormStatus(ctx.Request.Context(), h.activeEventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Evento no encontrado"))
			return
		}

		err = fmt.Errorf("HandleGetFormStatus -> h.svc.FormStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.FormStatus{
		Closed:     status.Closed,
		MaxTickets: status.MaxTickets,
	})
}

// HandleSubmitRegistration godoc
// @Summary      Submit a registration for an event
// @Description  Validates the attendee details, applies capacity, duplicate-email and per-IP limits, then records the registration
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        input  body      request.SubmitRegistrationRequest  true  "Registration details"
// @Success      200    {object}  response.RegistrationCreated
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /registrations [post]
func (h *RegistrationHandler) HandleSubmitRegistration(ctx *gin.Context) {
	var req request.SubmitRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration := domain.Registration{
		EventID:        req.EventID,
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Gender:         req.Gender,
		TicketQuantity: req.TicketQuantity,
		IPAddress:      clientIP(ctx.Request),
	}

	created, err := h.svc.Register(ctx.Request.Context(), registration)
	if err != nil {
		var quotaErr *service.IPQuotaExceededError

		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("Evento no encontrado"))
		case errors.Is(err, service.ErrFormClosed):
			response.RenderErr(ctx, response.NewErr(http.StatusBadRequest, "Lo sentimos, se alcanzó el límite de inscripciones"))
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			response.RenderErr(ctx, response.NewErr(http.StatusBadRequest, "Este email ya está registrado"))
		case errors.As(err, &quotaErr):
			msg := fmt.Sprintf("Se alcanzó el límite de %d inscripciones por dirección IP", quotaErr.Limit)
			response.RenderErr(ctx, response.NewErr(http.StatusBadRequest, msg))
		default:
			err = fmt.Errorf("HandleSubmitRegistration -> h.svc.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.RegistrationCreated{
		Success: true,
		Message: "¡Inscripción exitosa!",
		Data: response.RegistrationData{
			Name:           created.Name,
			Surname:        created.Surname,
			Email:          created.Email,
			Gender:         created.Gender,
			TicketQuantity: created.TicketQuantity,
		},
	})
}
