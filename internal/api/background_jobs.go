package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ReprocessJob re-runs the extraction pipeline over a stored CV's text,
// replacing its positions. Queued when the pipeline improves and old CVs
// should pick up the new heuristics.
type ReprocessJob struct {
	CVFileID  int64
	Timestamp time.Time
}

// StartBackgroundWorkers initializes background job workers
func (a *API) StartBackgroundWorkers() {
	go a.reprocessWorker()

	log.Println("[BackgroundJobs] Workers started (CV reprocessing)")
}

// reprocessWorker processes re-extraction jobs from the queue
func (a *API) reprocessWorker() {
	log.Println("[ReprocessWorker] Started")

	for job := range a.reprocessQueue {
		log.Printf("[ReprocessWorker] Processing CV %d", job.CVFileID)

		ctx := context.Background()

		text, err := a.db.GetCVText(ctx, job.CVFileID)
		if err != nil {
			log.Printf("[ReprocessWorker] Failed to load CV %d: %v", job.CVFileID, err)
			continue
		}

		result := a.extractor.Extract(text)

		if err := a.db.DeletePositionsForCV(ctx, job.CVFileID); err != nil {
			log.Printf("[ReprocessWorker] Failed to clear positions for CV %d: %v", job.CVFileID, err)
			continue
		}
		saved := 0
		for _, p := range result.Positions {
			if _, err := a.db.SavePosition(ctx, toStoredPosition(job.CVFileID, p)); err != nil {
				log.Printf("[ReprocessWorker] Failed to save position for CV %d: %v", job.CVFileID, err)
				continue
			}
			saved++
		}
		if err := a.db.UpdateCVSummary(ctx, job.CVFileID, result.TotalExperienceMonths, result.CurrentJobRole); err != nil {
			log.Printf("[ReprocessWorker] Failed to save summary for CV %d: %v", job.CVFileID, err)
		}

		duration := time.Since(job.Timestamp)
		log.Printf("[ReprocessWorker] Completed CV %d: %d positions, %d months (took %v)",
			job.CVFileID, saved, result.TotalExperienceMonths, duration)
	}
}

// QueueReprocessJob enqueues a CV for background re-extraction. Returns
// false when the queue is full.
func (a *API) QueueReprocessJob(cvID int64) bool {
	select {
	case a.reprocessQueue <- ReprocessJob{CVFileID: cvID, Timestamp: time.Now()}:
		return true
	default:
		return false
	}
}

// CVReprocessHandler queues a CV for background re-extraction
// @Summary Reprocess a CV
// @Description Queue a stored CV for background re-extraction of its employment history
// @Tags cv
// @Accept json
// @Produce json
// @Param request body map[string]int64 true "JSON body with a cv_id field"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cv/reprocess [post]
func (a *API) CVReprocessHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		CVID int64 `json:"cv_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CVID <= 0 {
		http.Error(w, "invalid request body, expected {\"cv_id\": ...}", http.StatusBadRequest)
		return
	}

	if !a.QueueReprocessJob(req.CVID) {
		http.Error(w, "reprocess queue full, try again later", http.StatusServiceUnavailable)
		return
	}

	log.Printf("Queued CV %d for background re-extraction", req.CVID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"cv_id":  req.CVID,
		"status": "queued",
	})
}
