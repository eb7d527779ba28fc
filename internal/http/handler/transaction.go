package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"txlens/internal/core"
	"txlens/internal/http/handler/middleware"
	"txlens/internal/http/payload"

	"go.uber.org/zap"
)

// Route paths, relative to the configured API prefix.
var (
	GetTransaction     = "/transaction/{txHash}"
	AnalyzeTransaction = "/analyzeTransaction"
	Health             = "/health"
)

const (
	invalidTxHashDetail = "Invalid transaction hash. Must be 64 hexadecimal characters."
	simulatedMessage    = "Transaction data retrieved (simulated for demo purposes)"
)

type TransactionHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	lens             TransactionService
}

func NewTransactionHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{
		logs:             logger,
		requestValidator: requestValidator,
		lens:             transactionService,
	}
}

func (h *TransactionHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	txRequest := payload.TransactionRequest{
		TxHash: r.PathValue("txHash"),
	}
	if err := txRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Detail:  invalidTxHashDetail,
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate transaction hash",
			"error", err,
			"tx_hash", txRequest.TxHash,
			"handler", GetTransaction,
			"request_id", requestId)
		return
	}

	tx, err := h.lens.GetTransaction(r.Context(), txRequest.TxHash)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve transaction",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrMalformedIdentifier) {
			httpCode = http.StatusBadRequest
			resp.Detail = invalidTxHashDetail
		} else {
			resp.Detail = fmt.Sprintf("Error fetching transaction: %s", err)
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get transaction",
			"error", err,
			"tx_hash", txRequest.TxHash,
			"handler", GetTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction retrieved",
		"tx_hash", tx.Hash,
		"handler", GetTransaction,
		"request_id", requestId)

	h.respond(w, Response{
		Success: true,
		Data:    tx,
		Message: simulatedMessage,
	}, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleAnalyzeTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var analyzeRequest payload.AnalyzeTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &analyzeRequest); err != nil {
		h.respond(w, Response{
			Message: "Could not analyze transaction",
			Detail:  fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AnalyzeTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("analysis request received",
		"tx_hash", analyzeRequest.TxHash,
		"wallet_address", analyzeRequest.WalletAddress,
		"handler", AnalyzeTransaction,
		"request_id", requestId)

	result, err := h.lens.AnalyzeTransaction(r.Context(), analyzeRequest.ToMessage())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not analyze transaction",
			Detail:  fmt.Sprintf("Error analyzing transaction: %s", err),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to analyze transaction",
			"error", err,
			"handler", AnalyzeTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *TransactionHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
