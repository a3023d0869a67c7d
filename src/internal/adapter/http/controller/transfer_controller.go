package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type TransferController struct {
	service service_interfaces.TransferService
}

func NewTransferController(service service_interfaces.TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/transfers", c.transfer)
	})
}

func (c *TransferController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferFundsRequest
	if err := decodeBody(w, r, &req); err != nil {
		logError(r, err, "invalid request body")
		respond(w, r, bodyStatus(err), commons.ErrorFrom[models.TransferFundsResponse]("invalid request body", err), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.TransferFunds(r.Context(), req)
	if err != nil {
		logError(r, err, response.Message)
		respond(w, r, statusFor(response.Message), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}
