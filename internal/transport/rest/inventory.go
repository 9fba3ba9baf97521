package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/carla-io/inventory-backend/internal/domain"
	"github.com/carla-io/inventory-backend/internal/service/inventory"
)

// inventoryService defines the minimal interface needed by InventoryHandler.
type inventoryService interface {
	Create(ctx context.Context, input inventory.CreateComponentInput) (*domain.Component, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Component, error)
	List(ctx context.Context) ([]domain.Component, error)
	LowStock(ctx context.Context) ([]domain.Component, error)
	ByCategory(ctx context.Context, category string) ([]domain.Component, error)
	Search(ctx context.Context, query string) ([]domain.Component, error)
	Update(ctx context.Context, id uuid.UUID, input inventory.UpdateComponentInput) (*domain.Component, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryHandler serves the component CRUD and search endpoints.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type createComponentRequest struct {
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	Stock          inventory.Quantity `json:"stock"`
	MinStock       inventory.Quantity `json:"min_stock"`
	Specifications string             `json:"specifications"`
	Supplier       string             `json:"supplier"`
}

type updateComponentRequest struct {
	Name           *string            `json:"name"`
	Category       *string            `json:"category"`
	Stock          inventory.Quantity `json:"stock"`
	MinStock       inventory.Quantity `json:"min_stock"`
	Specifications *string            `json:"specifications"`
	Supplier       *string            `json:"supplier"`
}

type componentResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Stock          int       `json:"stock"`
	MinStock       int       `json:"min_stock"`
	Specifications string    `json:"specifications"`
	Supplier       string    `json:"supplier"`
	Status         string    `json:"status"`
	DateAdded      time.Time `json:"date_added"`
	LastUpdated    time.Time `json:"last_updated"`
}

// Create handles POST /add-electronics.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), inventory.CreateComponentInput{
		Name:           req.Name,
		Category:       req.Category,
		Stock:          req.Stock,
		MinStock:       req.MinStock,
		Specifications: req.Specifications,
		Supplier:       req.Supplier,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Electronics component added successfully",
		"electronics": toComponentResponse(created),
	})
}

// List handles GET /all-items.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	components, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":       len(components),
		"electronics": toComponentResponses(components),
	})
}

// Get handles GET /items/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	component, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toComponentResponse(component))
}

// Update handles PUT /items/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, inventory.UpdateComponentInput{
		Name:           req.Name,
		Category:       req.Category,
		Stock:          req.Stock,
		MinStock:       req.MinStock,
		Specifications: req.Specifications,
		Supplier:       req.Supplier,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Component updated successfully",
		"electronics": toComponentResponse(updated),
	})
}

// Delete handles DELETE /items/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Component deleted successfully",
		"deleted_id": id.String(),
	})
}

// LowStock handles GET /low-stock.
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	components, err := h.svc.LowStock(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":           len(components),
		"low_stock_items": toComponentResponses(components),
	})
}

// ByCategory handles GET /category/{category}.
func (h *InventoryHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	components, err := h.svc.ByCategory(r.Context(), category)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"count":    len(components),
		"items":    toComponentResponses(components),
	})
}

// Search handles GET /search?q=.
func (h *InventoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	results, err := h.svc.Search(r.Context(), query)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"count":   len(results),
		"results": toComponentResponses(results),
	})
}

// parseID extracts and validates the {id} path segment.
func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}

func toComponentResponse(c *domain.Component) componentResponse {
	return componentResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Category:       c.Category.String(),
		Stock:          c.Stock,
		MinStock:       c.MinStock,
		Specifications: c.Specifications,
		Supplier:       c.Supplier,
		Status:         c.Status.String(),
		DateAdded:      c.DateAdded,
		LastUpdated:    c.LastUpdated,
	}
}

func toComponentResponses(components []domain.Component) []componentResponse {
	out := make([]componentResponse, len(components))
	for i := range components {
		out[i] = toComponentResponse(&components[i])
	}
	return out
}
