package controllers

import (
	"errors"
	"net/http"
	"sld/internal/models"
	"sld/internal/providers"
	"sld/internal/services"
	"strconv"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger       providers.Logger
	store        services.RankedStoreServiceInterface
	resetService services.ResetServiceInterface
	cache        providers.CacheProviderInterface
}

func NewApiController(
	logger providers.Logger,
	store services.RankedStoreServiceInterface,
	resetService services.ResetServiceInterface,
	cache providers.CacheProviderInterface,
) *ApiController {
	return &ApiController{
		logger:       logger,
		store:        store,
		resetService: resetService,
		cache:        cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// statusForError maps service errors onto HTTP statuses: bad input is the
// caller's fault, an unreachable store is ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidMode),
		errors.Is(err, services.ErrInvalidInterval),
		errors.Is(err, services.ErrInvalidConfigValue):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (ac *ApiController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s failed: %s", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeError(w, r, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// SubmitScore accepts a score submission. The response is always 200 with a
// structured result; rejection reasons travel in the result message.
func (ac *ApiController) SubmitScore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var sub models.ScoreSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	result := ac.store.SubmitScore(r.Context(), &sub)
	writeJSON(w, http.StatusOK, result)
}

func leaderboardOptions(r *http.Request) services.LeaderboardOptions {
	opts := services.LeaderboardOptions{UserID: r.URL.Query().Get("userId")}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		opts.Limit = limit
	}
	if historical, err := strconv.ParseBool(r.URL.Query().Get("historical")); err == nil {
		opts.IncludeHistorical = historical
	}
	return opts
}

func (ac *ApiController) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode, ok := models.ParseMode(r.URL.Query().Get("mode"))
	if !ok {
		ac.writeError(w, r, services.ErrInvalidMode)
		return
	}
	opts := leaderboardOptions(r)
	cacheKey := "lb:" + mode.String() + ":" + r.URL.RawQuery
	ac.serveFromCacheOrCompute(w, r, cacheKey, func() (any, error) {
		return ac.store.GetLeaderboard(r.Context(), mode, opts)
	})
}

func (ac *ApiController) GetAllLeaderboards(w http.ResponseWriter, r *http.Request) {
	opts := leaderboardOptions(r)
	ac.serveFromCacheOrCompute(w, r, "lbs:"+r.URL.RawQuery, func() (any, error) {
		return ac.store.GetAllLeaderboards(r.Context(), opts)
	})
}

func (ac *ApiController) GetUserRank(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId is required"})
		return
	}
	mode, ok := models.ParseMode(r.URL.Query().Get("mode"))
	if !ok {
		ac.writeError(w, r, services.ErrInvalidMode)
		return
	}

	var specificScore *int64
	if raw := r.URL.Query().Get("score"); raw != "" {
		score, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "score must be an integer"})
			return
		}
		specificScore = &score
	}

	rank, err := ac.store.GetUserRank(r.Context(), userID, mode, specificScore)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	if rank == nil {
		writeJSON(w, http.StatusOK, map[string]any{"ranked": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ranked": true, "rank": rank})
}

type manualResetRequest struct {
	Modes     []models.Mode `json:"modes,omitempty"`
	Announce  *bool         `json:"announce,omitempty"`
	Immediate *bool         `json:"immediate,omitempty"`
}

// TriggerManualReset runs an administrative reset. Immediate defaults to
// true; a non-immediate call only confirms the scheduled registration.
func (ac *ApiController) TriggerManualReset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req manualResetRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}
	opts := services.ManualResetOptions{
		Modes:     req.Modes,
		Announce:  req.Announce,
		Immediate: req.Immediate == nil || *req.Immediate,
	}
	result, err := ac.resetService.TriggerManualReset(r.Context(), opts)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (ac *ApiController) PreviewResetResults(w http.ResponseWriter, r *http.Request) {
	preview, err := ac.resetService.PreviewResetResults(r.Context())
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (ac *ApiController) UpdateResetSchedule(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var patch models.ConfigPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	sched, err := ac.resetService.UpdateResetSchedule(r.Context(), &patch)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

func (ac *ApiController) GetResetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := ac.resetService.GetResetStatus(r.Context())
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
