package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"afriledger/internal/core"
	"afriledger/internal/http/handler/middleware"
	"afriledger/internal/http/payload"
	"afriledger/internal/repository"

	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /afri/authenticate"
	SendMoney         = "POST /afri/send"
	GetBalance        = "GET /afri/balance"
	GetHistory        = "GET /afri/history"
	Fund              = "POST /afri/fund"
	SetDepositAddress = "PUT /afri/deposit-address"
)

const authTokenHeader = "AUTH_TOKEN"

type LedgerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	ledger           LedgerService
}

func NewLedgerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, ledgerService LedgerService) *LedgerHandler {
	return &LedgerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		ledger:           ledgerService,
	}
}

func (h *LedgerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.ledger.Authenticate(r.Context(), authPayload.ToCoreAuthMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrAccountNotFound) || errors.Is(err, core.ErrIncorrectPIN) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleSendMoney(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, SendMoney, requestId)
	if !ok {
		return
	}

	var sendPayload payload.SendRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &sendPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Transfer failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SendMoney,
			"request_id", requestId)
		return
	}

	amount, ok := new(big.Int).SetString(sendPayload.Amount, 10)
	if !ok {
		h.respond(w, Response{
			Message: "Transfer failed",
			Error:   "amount must be a base-10 integer",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	transferID, err := h.ledger.SendMoney(r.Context(), token, sendPayload.RecipientPhone, amount)
	if err != nil {
		resp := Response{
			Message: "Transfer failed",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInsufficientBalance):
			httpCode = http.StatusUnprocessableEntity
			resp.Error = err.Error()
		case errors.Is(err, core.ErrRecipientNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, core.ErrInvalidAmount):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrAccountNotFound):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("transfer failed",
			"error", err,
			"handler", SendMoney,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"transferId": transferID,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, GetBalance, requestId)
	if !ok {
		return
	}

	balance, err := h.ledger.GetBalance(r.Context(), token)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   fmt.Errorf("get balance: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get balance",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"balance": balance.String(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, GetHistory, requestId)
	if !ok {
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			h.respond(w, Response{
				Message: "Request failed",
				Error:   fmt.Errorf("parse limit parameter: %w", err).Error(),
			}, http.StatusBadRequest,
				requestId)
			return
		}
		limit = parsed
	}

	records, err := h.ledger.GetHistory(r.Context(), token, limit)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve history",
			Error:   fmt.Errorf("get history: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get history",
			"error", err,
			"handler", GetHistory,
			"request_id", requestId)
		return
	}

	resp := map[string][]repository.Transaction{
		"transactions": records,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleFund(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, Fund, requestId)
	if !ok {
		return
	}

	var fundPayload payload.FundRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &fundPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Funding failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Fund,
			"request_id", requestId)
		return
	}

	amount, ok := new(big.Int).SetString(fundPayload.Amount, 10)
	if !ok {
		h.respond(w, Response{
			Message: "Funding failed",
			Error:   "amount must be a base-10 integer",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	funding := core.FiatFunding{
		Amount:      amount,
		Currency:    fundPayload.Currency,
		Method:      fundPayload.Method,
		ExternalRef: fundPayload.ExternalRef,
	}

	record, err := h.ledger.FundFromFiat(r.Context(), token, funding)
	if err != nil {
		resp := Response{
			Message: "Funding failed",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrUnsupportedCurrency):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrInvalidAmount):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrAccountNotFound):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("funding failed",
			"error", err,
			"handler", Fund,
			"request_id", requestId)
		return
	}

	resp := map[string]repository.Transaction{
		"transaction": record,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleSetDepositAddress(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, SetDepositAddress, requestId)
	if !ok {
		return
	}

	var addressPayload payload.DepositAddressRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &addressPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update deposit address",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SetDepositAddress,
			"request_id", requestId)
		return
	}

	err = h.ledger.SetDepositAddress(r.Context(), token, addressPayload.Address)
	if err != nil {
		resp := Response{
			Message: "Could not update deposit address",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrAccountNotFound) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to set deposit address",
			"error", err,
			"handler", SetDepositAddress,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"depositAddress": addressPayload.Address,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LedgerHandler) authToken(w http.ResponseWriter, r *http.Request, handlerName, requestId string) (string, bool) {
	token := r.Header.Get(authTokenHeader)
	if token == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   authTokenHeader + " header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing auth token header", "handler", handlerName, "request_id", requestId)
		return "", false
	}
	return token, true
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

func (h *LedgerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
