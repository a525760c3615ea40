// Command api serves the goodness-of-fit calculator as a headless JSON
// endpoint, without templates or uploads.
package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"gofit/domain/gof"
	"gofit/internal/config"
	"gofit/internal/errors"
)

type testRequest struct {
	Rows  []gof.Observation `json:"rows"`
	Alpha float64           `json:"alpha"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	calculator := gof.NewCalculator()
	router.Post("/api/v1/goodness-of-fit", func(w http.ResponseWriter, r *http.Request) {
		var req testRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		alpha := req.Alpha
		if alpha == 0 {
			alpha = appConfig.Test.DefaultAlpha
		}

		result, err := calculator.Compute(req.Rows, gof.TestConfig{Alpha: alpha})
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": err.Error(),
				"code":  errors.GetCode(err),
			})
			return
		}

		writeJSON(w, http.StatusOK, result)
	})

	log.Printf("Starting goodness-of-fit API on port %s", appConfig.Server.Port)
	if err := http.ListenAndServe(":"+appConfig.Server.Port, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
