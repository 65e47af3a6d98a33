package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"resume-extract/internal/cv"
	"resume-extract/internal/experience"
	"resume-extract/internal/storage"
)

// CVUploadHandler handles CV file uploads and extraction
// @Summary Upload and parse CV
// @Description Upload a CV file (PDF/DOCX/TXT) and extract its employment history
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV file (PDF, DOCX or TXT)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cv/upload [post]
func (a *API) CVUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !cv.SupportedType(header.Filename) {
		http.Error(w, "invalid file type (supported: PDF, DOCX, DOC, RTF, ODT, TXT)", http.StatusBadRequest)
		return
	}

	parsed, err := a.cvParser.ParseFile(header.Filename, file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse CV: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("CV parsed: %s (%d bytes text)", parsed.Filename, len(parsed.FullText))

	a.processAndRespond(w, r, parsed, startTime)
}

// CVFetchHandler downloads a CV by URL and extracts it
// @Summary Fetch and parse CV from URL
// @Description Download a CV from a URL and extract its employment history
// @Tags cv
// @Accept json
// @Produce json
// @Param request body map[string]string true "JSON body with a url field"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cv/fetch [post]
func (a *API) CVFetchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "invalid request body, expected {\"url\": ...}", http.StatusBadRequest)
		return
	}

	parsed, err := a.cvFetcher.Fetch(req.URL)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to fetch CV: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("CV fetched from URL: %s (%d bytes text)", parsed.Filename, len(parsed.FullText))

	a.processAndRespond(w, r, parsed, startTime)
}

// processAndRespond runs the extraction pipeline on a parsed CV, persists
// the results, and writes the JSON response.
func (a *API) processAndRespond(w http.ResponseWriter, r *http.Request, parsed *cv.ParsedResume, startTime time.Time) {
	cvID, err := a.db.SaveCVFile(r.Context(), parsed.Filename,
		parsed.StoredAs, parsed.FileType, parsed.FullText, parsed.FileSize)
	if err != nil {
		log.Printf("Failed to save CV: %v", err)
		http.Error(w, "failed to save CV", http.StatusInternalServerError)
		return
	}

	log.Printf("CV saved to database with ID: %d", cvID)

	// Extract employment history (heuristic pipeline, never fails)
	result := a.extractor.Extract(parsed.FullText)
	log.Printf("Extracted %d positions, %d months total experience",
		len(result.Positions), result.TotalExperienceMonths)

	for _, p := range result.Positions {
		if _, err := a.db.SavePosition(r.Context(), toStoredPosition(cvID, p)); err != nil {
			log.Printf("Failed to save position %q: %v", p.JobTitle, err)
		}
	}
	if err := a.db.UpdateCVSummary(r.Context(), cvID, result.TotalExperienceMonths, result.CurrentJobRole); err != nil {
		log.Printf("Failed to save CV summary: %v", err)
	}

	processingTime := time.Since(startTime).Milliseconds()

	response := map[string]interface{}{
		"cv_id":                   cvID,
		"filename":                parsed.Filename,
		"file_type":               parsed.FileType,
		"file_size":               parsed.FileSize,
		"text_length":             len(parsed.FullText),
		"positions":               result.Positions,
		"total_experience_months": result.TotalExperienceMonths,
		"current_job_role":        result.CurrentJobRole,
		"processing_time_ms":      processingTime,
	}

	log.Printf("Sending response for CV %d (processing time: %dms)", cvID, processingTime)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}

// CVPositionsHandler lists the stored positions of one CV
// @Summary List CV positions
// @Description List the employment positions extracted from a stored CV
// @Tags cv
// @Produce json
// @Param id query int true "CV file ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cv/positions [get]
func (a *API) CVPositionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cvID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid or missing id parameter", http.StatusBadRequest)
		return
	}

	positions, err := a.db.ListPositionsForCV(r.Context(), cvID)
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"cv_id":     cvID,
		"total":     len(positions),
		"positions": positions,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// PopularEmployersHandler returns the most common employers
// @Summary Get popular employers
// @Description Get the employers appearing on the most CVs
// @Tags stats
// @Produce json
// @Param limit query int false "Limit results" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /stats/employers [get]
func (a *API) PopularEmployersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	stats, err := a.db.PopularEmployers(r.Context(), limit)
	if err != nil {
		log.Printf("Query error: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"total":     len(stats),
		"employers": stats,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// toStoredPosition flattens an extracted Position into its storage row.
func toStoredPosition(cvID int64, p experience.Position) *storage.StoredPosition {
	sp := &storage.StoredPosition{
		CVFileID:       cvID,
		JobTitle:       p.JobTitle,
		Employer:       p.Employer,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		StartYear:      p.Start.Year,
		StartMonth:     p.Start.Month,
		EndYear:        p.End.Year,
		EndMonth:       p.End.Month,
		IsCurrent:      p.IsCurrent,
		Description:    p.Description,
		EmploymentType: p.EmploymentType,
	}
	if p.Location != nil {
		sp.Municipality = p.Location.Municipality
		sp.Region = p.Location.Region
	}
	return sp
}
