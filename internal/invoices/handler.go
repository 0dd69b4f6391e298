package invoices

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sarmini1/biztime/internal/platform/httpx"
	"github.com/sarmini1/biztime/internal/shared"
)

// Handler manages /invoices endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers invoice routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type listResponse struct {
	Invoices []ListItem `json:"invoices"`
}

type itemResponse struct {
	Invoice any `json:"invoice"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list invoices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Invoices: invoices})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	// Mirror of the update-path guard: a body carrying an id is invalid
	// even on a read.
	if err := rejectBodyID(r); err != nil {
		httpx.RespondError(w, err)
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse{Invoice: detail})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreateInvoiceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	invoice, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create invoice", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, itemResponse{Invoice: invoice})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var input UpdateInvoiceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	invoice, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.logger.Error("update invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse{Invoice: invoice})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.StatusResponse{Status: "deleted"})
}

func invoiceID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, shared.BadRequestf("invalid invoice id")
	}
	return id, nil
}

func rejectBodyID(r *http.Request) error {
	if r.Body == nil {
		return nil
	}
	var probe struct {
		ID *int64 `json:"id"`
	}
	err := httpx.DecodeJSON(r, &probe)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil && probe.ID != nil {
		return shared.BadRequestf("invoice id may not be supplied in the body")
	}
	return nil
}
