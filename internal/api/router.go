package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// CV endpoints
	mux.HandleFunc("/api/cv/upload", a.CVUploadHandler)
	mux.HandleFunc("/api/cv/fetch", a.CVFetchHandler)
	mux.HandleFunc("/api/cv/positions", a.CVPositionsHandler)
	mux.HandleFunc("/api/cv/reprocess", a.CVReprocessHandler)

	// Position search & stats
	mux.HandleFunc("/api/positions/search", a.SearchHandler)
	mux.HandleFunc("/api/stats/employers", a.PopularEmployersHandler)

	return mux
}
