package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cityscout/explorer-service/internal/db/records"
	"cityscout/explorer-service/internal/providers"
	"cityscout/explorer-service/internal/service"
)

// genericFailure is the only detail a caller ever sees for upstream or store
// errors; specifics stay in the logs.
const genericFailure = "Sorry, something went wrong"

type ExplorerHandler struct {
	explorer service.ExplorerService
	timeout  time.Duration
}

func NewExplorerHandler(explorer service.ExplorerService, timeout time.Duration) *ExplorerHandler {
	return &ExplorerHandler{
		explorer: explorer,
		timeout:  timeout,
	}
}

func (h *ExplorerHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/location", h.GetLocation)
	r.Get("/weather", h.GetWeather)
	r.Get("/meetups", h.GetMeetups)
	r.Get("/yelp", h.GetPointsOfInterest)
	r.Get("/trails", h.GetTrails)
	r.Get("/movies", h.GetMovies)
	return r
}

func (h *ExplorerHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("data")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'data' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	loc, err := h.explorer.Location(ctx, query)
	if err != nil {
		if errors.Is(err, providers.ErrNoData) {
			respondWithError(w, http.StatusNotFound, "no data for that location")
			return
		}
		log.Error().Err(err).Str("query", query).Msg("failed to resolve location")
		respondWithError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	respondWithJSON(w, http.StatusOK, loc)
}

func (h *ExplorerHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	serveEntries(h, w, r, "weather", h.explorer.Weather)
}

func (h *ExplorerHandler) GetMeetups(w http.ResponseWriter, r *http.Request) {
	serveEntries(h, w, r, "meetups", h.explorer.Meetups)
}

func (h *ExplorerHandler) GetPointsOfInterest(w http.ResponseWriter, r *http.Request) {
	serveEntries(h, w, r, "yelps", h.explorer.PointsOfInterest)
}

func (h *ExplorerHandler) GetTrails(w http.ResponseWriter, r *http.Request) {
	serveEntries(h, w, r, "trails", h.explorer.Trails)
}

func (h *ExplorerHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	serveEntries(h, w, r, "movies", h.explorer.Movies)
}

// serveEntries is the shared handler body for every per-location category:
// decode the location from the request, fetch-or-cache, respond with the set.
func serveEntries[E any](
	h *ExplorerHandler,
	w http.ResponseWriter,
	r *http.Request,
	category string,
	get func(context.Context, records.Location) ([]E, error),
) {
	loc, ok := locationParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	entries, err := get(ctx, loc)
	if err != nil {
		log.Error().Err(err).Str("category", category).Uint("location_id", loc.ID).
			Msg("failed to get entries")
		respondWithError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

// locationParam decodes the 'data' query param, which legacy clients send as
// the JSON of the location record they got back from /location.
func locationParam(w http.ResponseWriter, r *http.Request) (records.Location, bool) {
	data := r.URL.Query().Get("data")
	if data == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'data' is required")
		return records.Location{}, false
	}

	var loc records.Location
	if err := json.Unmarshal([]byte(data), &loc); err != nil || loc.ID == 0 {
		respondWithError(w, http.StatusBadRequest, "parameter 'data' must be a location record with an id")
		return records.Location{}, false
	}

	return loc, true
}
