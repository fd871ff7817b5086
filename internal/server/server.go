// Package server exposes the budget summary and payoff calculations over a
// small JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/household-budget/internal/budget"
	"github.com/iwvelando/household-budget/internal/config"
	"github.com/iwvelando/household-budget/internal/payoff"
	"github.com/iwvelando/household-budget/pkg/constants"
	"github.com/iwvelando/household-budget/pkg/validation"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the budget API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Budget summary endpoint (YAML config upload)
	mux.HandleFunc("/api/summary", h.handleSummary)

	// Credit card payoff simulation endpoint
	mux.HandleFunc("/api/payoff", h.handlePayoff)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type summaryResponse struct {
	Summaries []budget.PersonSummary `json:"summaries"`
	OneTime   []budget.OneTimeEntry  `json:"oneTime,omitempty"`
	Currency  string                 `json:"currency"`
	Warnings  []string               `json:"warnings,omitempty"`
	Duration  string                 `json:"duration"`
}

type payoffRequest struct {
	Balance        float64 `json:"balance"`
	APRPercent     float64 `json:"apr"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	FractionDigits *int    `json:"fractionDigits,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	conf, err := config.ParseConfiguration(body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err))
		return
	}

	warnings := conf.ValidateConfiguration()

	people, expenses, settings, err := conf.BudgetRecords()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summaries, err := budget.Summarize(people, expenses, settings, conf.Currency.FractionDigits)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, summaryResponse{
		Summaries: summaries,
		OneTime:   budget.OneTimeEntries(expenses),
		Currency:  conf.Currency.Code,
		Warnings:  warnings,
		Duration:  time.Since(start).String(),
	})
}

func (h *handler) handlePayoff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	var request payoffRequest
	if err := json.Unmarshal(body, &request); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	fractionDigits := constants.DefaultFractionDigits
	if request.FractionDigits != nil {
		fractionDigits = *request.FractionDigits
	}
	if err := validation.ValidateFractionDigits(fractionDigits); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := payoff.Compute(request.Balance, request.APRPercent, request.MonthlyPayment, fractionDigits)
	if err != nil {
		if errors.Is(err, payoff.ErrInvalidInput) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err))
		return nil, false
	}
	return body, true
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.logger.Debug("request failed",
		zap.String("op", "server.respondError"),
		zap.Int("status", status),
		zap.String("error", message),
	)
	h.respondJSON(w, status, errorResponse{Error: message})
}
