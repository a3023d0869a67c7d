package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/usecase/service_interfaces"
	"github.com/api-sage/bank-account/src/internal/usecase/services"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 16

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/accounts", c.openAccount)
		r.Get("/accounts", c.listAccounts)
		r.Get("/accounts/{accountNumber}", c.getAccount)
		r.Post("/accounts/{accountNumber}/deposit", c.depositFunds)
		r.Post("/accounts/{accountNumber}/withdraw", c.withdrawFunds)
	})
}

func (c *AccountController) openAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.OpenAccountRequest
	if err := decodeBody(w, r, &req); err != nil {
		logError(r, err, "invalid request body")
		respond(w, r, bodyStatus(err), commons.ErrorFrom[models.AccountResponse]("invalid request body", err), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.OpenAccount(r.Context(), req)
	if err != nil {
		logError(r, err, response.Message)
		respond(w, r, statusFor(response.Message), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetAccount(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		logError(r, err, response.Message)
		respond(w, r, statusFor(response.Message), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListAccounts(r.Context())
	if err != nil {
		logError(r, err, response.Message)
		respond(w, r, statusFor(response.Message), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) depositFunds(w http.ResponseWriter, r *http.Request) {
	c.changeBalance(w, r, c.service.DepositFunds)
}

func (c *AccountController) withdrawFunds(w http.ResponseWriter, r *http.Request) {
	c.changeBalance(w, r, c.service.WithdrawFunds)
}

func (c *AccountController) changeBalance(
	w http.ResponseWriter,
	r *http.Request,
	apply func(context.Context, models.AmountRequest) (commons.Response[models.BalanceChangeResponse], error),
) {
	start := time.Now()

	var req models.AmountRequest
	if err := decodeBody(w, r, &req); err != nil {
		logError(r, err, "invalid request body")
		respond(w, r, bodyStatus(err), commons.ErrorFrom[models.BalanceChangeResponse]("invalid request body", err), start)
		return
	}
	req.AccountNumber = chi.URLParam(r, "accountNumber")
	logRequest(r, req)

	response, err := apply(r.Context(), req)
	if err != nil {
		logError(r, err, response.Message)
		respond(w, r, statusFor(response.Message), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// statusFor maps a service failure message to its HTTP status.
func statusFor(message string) int {
	switch message {
	case services.MessageValidationFailed:
		return http.StatusBadRequest
	case services.MessageAccountNotFound, services.MessageDebitNotFound, services.MessageCreditNotFound:
		return http.StatusNotFound
	case services.MessageAccountExists:
		return http.StatusConflict
	case services.MessageInsufficientBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, r *http.Request, status int, payload any, start time.Time) {
	writeJSON(w, status, payload)
	logResponse(r, status, payload, start)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
