package api

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"resume-extract/internal/cv"
	"resume-extract/internal/experience"
	"resume-extract/internal/storage"
)

type API struct {
	db             *storage.DB
	cvParser       *cv.Parser
	cvFetcher      *cv.Fetcher
	extractor      *experience.Extractor
	reprocessQueue chan ReprocessJob // Background queue for async re-extraction
}

func NewAPI(db *storage.DB) *API {
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	cvParser := cv.NewParser(uploadsDir)

	return &API{
		db:             db,
		cvParser:       cvParser,
		cvFetcher:      cv.NewFetcher(cvParser, 30*time.Second),
		extractor:      experience.NewExtractor(),
		reprocessQueue: make(chan ReprocessJob, 100),
	}
}

// SearchHandler searches stored positions
// @Summary Search positions
// @Description Search extracted employment positions by employer, title or location
// @Tags positions
// @Produce json
// @Param employer query string false "Employer name (partial match)"
// @Param title query string false "Job title (partial match)"
// @Param location query string false "Location (partial match)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /positions/search [get]
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	criteria := &storage.PositionCriteria{
		Employer: r.URL.Query().Get("employer"),
		JobTitle: r.URL.Query().Get("title"),
		Location: r.URL.Query().Get("location"),
	}

	positions, err := a.db.SearchPositions(r.Context(), criteria)
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"total":     len(positions),
		"positions": positions,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
