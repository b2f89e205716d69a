// Package resource serves a storage.ResourceStore as the REST "lists"
// collection: GET/POST /lists and GET/PATCH/DELETE /lists/{id}.
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Handler is the REST backend for shopping lists.
type Handler struct {
	store      storage.ResourceStore
	afterWrite func(context.Context) error
	mux        *http.ServeMux
}

// Option configures a Handler.
type Option func(*Handler)

// WithAfterWrite registers fn to run after every successful create, patch
// or delete. A failing fn is logged; the write itself has already
// succeeded.
func WithAfterWrite(fn func(context.Context) error) Option {
	return func(h *Handler) {
		h.afterWrite = fn
	}
}

// NewHandler creates a Handler backed by store.
func NewHandler(store storage.ResourceStore, opts ...Option) *Handler {
	h := &Handler{store: store, mux: http.NewServeMux()}
	for _, opt := range opts {
		opt(h)
	}
	h.mux.HandleFunc("GET /lists", h.list)
	h.mux.HandleFunc("POST /lists", h.create)
	h.mux.HandleFunc("GET /lists/{id}", h.get)
	h.mux.HandleFunc("PATCH /lists/{id}", h.patch)
	h.mux.HandleFunc("DELETE /lists/{id}", h.delete)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.FetchAll(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	l, err := h.store.FetchOne(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var l models.ShoppingList
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&l); err != nil {
		http.Error(w, "invalid list body", http.StatusBadRequest)
		return
	}
	if l.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	if l.Members == nil {
		l.Members = []models.Member{}
	}
	if l.Items == nil {
		l.Items = []models.Item{}
	}

	if err := h.store.Create(r.Context(), l); err != nil {
		h.fail(w, r, err)
		return
	}
	slog.Info("List created", "list_id", l.ID, "owner", l.Owner)
	h.written(r)
	writeJSON(w, http.StatusCreated, l)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var p storage.Patch
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&p); err != nil {
		http.Error(w, "invalid patch body", http.StatusBadRequest)
		return
	}

	if err := h.store.Patch(r.Context(), id, p); err != nil {
		h.fail(w, r, err)
		return
	}
	l, err := h.store.FetchOne(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	slog.Info("List patched", "list_id", id)
	h.written(r)
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	slog.Info("List deleted", "list_id", id)
	h.written(r)
	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) written(r *http.Request) {
	if h.afterWrite == nil {
		return
	}
	if err := h.afterWrite(r.Context()); err != nil {
		slog.Warn("After-write hook failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("Resource request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}
