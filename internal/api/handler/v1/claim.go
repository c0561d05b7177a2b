package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agusvaldes/popup-api/internal/api/handler/v1/request"
	"github.com/agusvaldes/popup-api/internal/api/handler/v1/response"
	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/service"
)

type ClaimService interface {
	LookupOrder(ctx context.Context, orderRef, email string) (domain.OrderLookup, error)
	SaveClaim(ctx context.Context, orderID, email string, quantity int) (domain.Claim, error)
}

type ClaimHandler struct {
	svc ClaimService
}

func NewClaimHandler(svc ClaimService) *ClaimHandler {
	return &ClaimHandler{
		svc: svc,
	}
}

// HandleLookupOrder godoc
// @Summary      Look up an order for the add-on claim flow
// @Description  Finds the order's ticket lines, keeps the ones eligible for this flow and reports whether the order already claimed its add-on tickets
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        input  body      request.LookupOrderRequest  true  "Order reference and purchase email"
// @Success      200    {object}  response.OrderLookup
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /orders/lookup [post]
func (h *ClaimHandler) HandleLookupOrder(ctx *gin.Context) {
	var req request.LookupOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.LookupOrder(ctx.Request.Context(), req.TCKID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.RenderErr(ctx, response.ErrNotFound("No se encontró una orden con ese número y email"))
		case errors.Is(err, service.ErrNoEligibleTickets):
			response.RenderErr(ctx, response.NewErr(http.StatusBadRequest, "Esta orden no tiene tickets válidos para el after"))
		default:
			err = fmt.Errorf("HandleLookupOrder -> h.svc.LookupOrder -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	if result.AlreadyRegistered {
		ctx.JSON(http.StatusOK, response.OrderAlreadyRegistered{
			AlreadyRegistered:  true,
			Message:            "Esta orden ya fue registrada para el after",
			RegisteredQuantity: result.RegisteredQuantity,
		})
		return
	}

	tickets := make([]response.OrderTicket, len(result.Tickets))
	for i, t := range result.Tickets {
		tickets[i] = response.OrderTicket{
			OrderID:  t.OrderID,
			TicketID: t.TicketID,
			Email:    t.Email,
			ETID:     t.ETID,
		}
	}

	ctx.JSON(http.StatusOK, response.OrderLookup{
		Tickets:           tickets,
		TotalTickets:      result.TotalTickets,
		AlreadyRegistered: false,
	})
}

// HandleSaveClaim godoc
// @Summary      Claim add-on tickets for an order
// @Description  Records the one-time claim of add-on tickets for an order; an order can never be claimed twice
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveClaimRequest  true  "Order, email and chosen quantity"
// @Success      200    {object}  response.ClaimSaved
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /orders/claim [post]
func (h *ClaimHandler) HandleSaveClaim(ctx *gin.Context) {
	var req request.SaveClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if *req.Quantity < 0 {
		response.RenderErr(ctx, response.NewErr(http.StatusBadRequest, "La cantidad de tickets no puede ser negativa"))
		return
	}
	if *req.Quantity == 0 {
		response.RenderErr(ctx, response.NewErr(http.StatusBadRequest, "Debes seleccionar al menos un ticket"))
		return
	}

	claim, err := h.svc.SaveClaim(ctx.Request.Context(), req.OrderID, req.Email, *req.Quantity)
	if err != nil {
		// A lost race against a concurrent claim surfaces here as a
		// generic failure; the lookup path is where the friendly
		// already-claimed answer comes from.
		err = fmt.Errorf("HandleSaveClaim -> h.svc.SaveClaim -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ClaimSaved{
		Success:  true,
		Message:  "Tu ticket fue registrado con éxito",
		OrderID:  claim.OrderID,
		Email:    claim.Email,
		Quantity: claim.Quantity,
	})
}
