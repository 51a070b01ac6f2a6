package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/api/ws"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/grading"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/ingest"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/report"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/store"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/logger"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/redis"
)

const seasonSummaryCacheKey = "season_summary"
const seasonSummaryTTL = 5 * time.Minute

// GradesHandler serves graded film data and the ingest trigger.
type GradesHandler struct {
	repo   *store.Repository
	cache  *redis.Cache
	engine *grading.Engine
	reader *ingest.Reader
	hub    *ws.Hub
	logger *logger.Logger
}

// NewGradesHandler creates a new grades handler
func NewGradesHandler(
	repo *store.Repository,
	cache *redis.Cache,
	engine *grading.Engine,
	reader *ingest.Reader,
	hub *ws.Hub,
	log *logger.Logger,
) *GradesHandler {
	return &GradesHandler{
		repo:   repo,
		cache:  cache,
		engine: engine,
		reader: reader,
		hub:    hub,
		logger: log,
	}
}

// GetWeek returns all graded rows for a week
// GET /api/grades/{week}
func (h *GradesHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	week := mux.Vars(r)["week"]

	records, err := h.repo.GetWeek(r.Context(), week)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load week")
		writeError(w, http.StatusInternalServerError, "failed to load week")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"week":    week,
		"count":   len(records),
		"records": records,
	})
}

// GetPlayer returns a player's season rows plus the season rollup
// GET /api/players/{player}
func (h *GradesHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player := mux.Vars(r)["player"]

	records, err := h.repo.GetPlayerSeason(r.Context(), player)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load player season")
		writeError(w, http.StatusInternalServerError, "failed to load player")
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "player not found")
		return
	}

	rollups := report.SeasonRollups(records)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"player":  player,
		"rollup":  rollups[0],
		"records": records,
	})
}

// GetSeasonSummary returns the cached season rollup for every player
// GET /api/season/summary
func (h *GradesHandler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	var rollups []contracts.SeasonRollup

	err := h.cache.GetOrSet(r.Context(), seasonSummaryCacheKey, &rollups, seasonSummaryTTL, func() (interface{}, error) {
		records, err := h.repo.GetSeason(r.Context())
		if err != nil {
			return nil, err
		}
		return report.SeasonRollups(records), nil
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to build season summary")
		writeError(w, http.StatusInternalServerError, "failed to build season summary")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"players": len(rollups),
		"rollups": rollups,
	})
}

// Ingest accepts a weekly film CSV, grades it, persists each week and
// broadcasts the graded rows to dashboard clients
// POST /api/ingest (multipart field "file")
func (h *GradesHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	records, err := h.reader.Read(file)
	if err != nil {
		// Missing required columns is a client error, reported verbatim
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	graded := h.engine.GradeAll(records)

	byWeek := make(map[string][]contracts.GradedRecord)
	for _, g := range graded {
		byWeek[g.Week] = append(byWeek[g.Week], g)
	}

	for week, rows := range byWeek {
		if err := h.repo.SaveWeek(r.Context(), week, rows); err != nil {
			h.logger.WithError(err).WithField("week", week).Error("Failed to save week")
			writeError(w, http.StatusInternalServerError, "failed to save graded records")
			return
		}
	}

	// Season summary is stale now
	if err := h.cache.Delete(r.Context(), seasonSummaryCacheKey); err != nil {
		h.logger.WithError(err).Warn("Failed to invalidate season summary cache")
	}

	if h.hub != nil {
		h.hub.Broadcast(map[string]interface{}{
			"event":   "graded",
			"weeks":   len(byWeek),
			"records": graded,
		})
	}

	h.logger.WithFields(map[string]interface{}{
		"rows":  len(graded),
		"weeks": len(byWeek),
	}).Info("Ingested and graded film CSV")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":  len(graded),
		"weeks": len(byWeek),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
