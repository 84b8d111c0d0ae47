package http

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/employee-directory/internal/directory"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// ServiceName is reported by the health endpoint and used for tracing.
const ServiceName = "employee-directory"

// SetupRouter initializes all routes for the application
func SetupRouter(handler *directory.Handler, metrics MetricsRecorder, allowedOrigins []string) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware(ServiceName))
	r.Use(CORSMiddleware(allowedOrigins))
	if metrics != nil {
		r.Use(MetricsMiddleware(metrics))
	}

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"employee-directory"}`))
	}).Methods("GET")

	// Directory page and its JSON projection
	r.HandleFunc("/", handler.Page).Methods("GET")
	r.HandleFunc("/api/users", handler.ListUsers).Methods("GET", "OPTIONS")

	return r
}
