package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"

	database "itemserver/database"
	"itemserver/models"
)

const storeTimeout = 5 * time.Second

const invalidBodyMsg = "Error: Invalid request body"

// ItemStore is the part of database.ItemRepository the API needs
type ItemStore interface {
	InsertOneItem(ctx context.Context, req models.InsertItemRequest) (primitive.ObjectID, error)
	FindOneItem(ctx context.Context, id primitive.ObjectID) (models.Item, error)
}

type InsertItemResponse struct {
	ID string `json:"_id"`
}

type API struct {
	router *chi.Mux
	store  ItemStore
	ping   func(ctx context.Context) error
	logger *log.Logger
}

// New builds the item API. ping backs the health check, database.Ping in production.
func New(store ItemStore, ping func(ctx context.Context) error, logger *log.Logger) *API {
	if logger == nil {
		logger = log.Default()
	}

	api := &API{
		router: chi.NewRouter(),
		store:  store,
		ping:   ping,
		logger: logger,
	}
	api.routes()

	return api
}

func (api *API) Router() http.Handler {
	return api.router
}

func (api *API) routes() {
	api.router.Use(
		middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: api.logger, NoColor: true}),
		middleware.Recoverer,
		standardHeaders,
	)

	api.router.Get("/health", api.HealthHandler)
	api.router.Post("/items", api.InsertItemHandler)
	api.router.Get("/items/{id}", api.FindItemHandler)
}

func AddStandardHeaders(writer http.ResponseWriter) {
	headers := map[string]string{
		"Server":                      "ItemServer",
		"Access-Control-Allow-Origin": "*",
	}

	for key, value := range headers {
		writer.Header().Set(key, value)
	}
}

func standardHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddStandardHeaders(w)
		next.ServeHTTP(w, r)
	})
}

// JSON helper methods to not repeat the same code in every handler

// Sends a JSON response with the given status code and payload.
func (api *API) sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		api.logger.Printf("ERROR: could not write json response: %v", err)
	}
}

// Sends an error response with the given status code and message.
func (api *API) sendError(w http.ResponseWriter, statusCode int, message string) {
	api.sendJSON(w, statusCode, map[string]string{"error": message})
}

// Sends the caller-facing message of an item error, picking the status from its kind.
func (api *API) sendItemError(w http.ResponseWriter, err error) {
	var itemErr *database.ItemError
	if !errors.As(err, &itemErr) {
		api.logger.Printf("ERROR: unexpected store error: %v", err)
		api.sendError(w, http.StatusInternalServerError, "Error: Internal server error")
		return
	}

	api.sendError(w, statusForItemError(err), itemErr.Error())
}

func statusForItemError(err error) int {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Handles the health check endpoint to verify if the database is reachable.
// If the DB has gone down this returns 503 Service Unavailable so clients know the service is not operational.
func (api *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if api.ping == nil {
		api.sendError(w, http.StatusServiceUnavailable, "database is not available")
		return
	}

	if err := api.ping(ctx); err != nil {
		api.logger.Printf("ERROR: health check failed: %v", err)
		api.sendError(w, http.StatusServiceUnavailable, "database is not available")
		return
	}

	api.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (api *API) InsertItemHandler(w http.ResponseWriter, r *http.Request) {
	var req models.InsertItemRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		api.sendError(w, http.StatusBadRequest, invalidBodyMsg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	id, err := api.store.InsertOneItem(ctx, req)
	if err != nil {
		api.sendItemError(w, err)
		return
	}

	api.sendJSON(w, http.StatusCreated, InsertItemResponse{ID: id.Hex()})
}

func (api *API) FindItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := database.ParseItemID(chi.URLParam(r, "id"))
	if err != nil {
		api.sendItemError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	item, err := api.store.FindOneItem(ctx, id)
	if err != nil {
		api.sendItemError(w, err)
		return
	}

	api.sendJSON(w, http.StatusOK, item)
}
