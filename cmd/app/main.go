package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"salesdash/config"
	"salesdash/handlers"
	"salesdash/repository"
	"salesdash/service"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	ctx := context.Background()

	cfg := config.LoadConfigOrPanic()

	db := config.InitDB(ctx, cfg)
	defer func() { _ = db.Close() }()

	repoImpl := repository.NewPostgresRepository(db)

	svc := service.NewService(repoImpl, cfg.JWTSecret)

	h := handlers.NewHandler(svc, cfg.JWTSecret, cfg.MaxUploadBytes)

	r := mux.NewRouter()
	r.HandleFunc("/api/register", h.RegisterHandler).Methods("POST")
	r.HandleFunc("/api/login", h.LoginHandler).Methods("POST")
	r.HandleFunc("/api/logout", h.JWTMiddleware(h.LogoutHandler)).Methods("POST")
	r.HandleFunc("/api/profile", h.JWTMiddleware(h.ProfileHandler)).Methods("GET")
	r.HandleFunc("/api/dashboard", h.JWTMiddleware(h.DashboardHandler)).Methods("GET")
	r.HandleFunc("/api/analytics", h.JWTMiddleware(h.AnalyticsHandler)).Methods("GET")
	r.HandleFunc("/api/sales/upload", h.JWTMiddleware(h.UploadHandler)).Methods("POST")
	r.HandleFunc("/api/sales/report", h.JWTMiddleware(h.ReportHandler)).Methods("GET")
	r.HandleFunc("/api/uploads", h.JWTMiddleware(h.UploadsHandler)).Methods("GET")
	r.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("Добро пожаловать в Sales Dashboard API")); err != nil {
			logger.Error().Err(err).Msg("Ошибка при записи ответа")
		}
	}).Methods("GET")

	srv := http.Server{
		Handler:      handlers.LogMiddleware(r),
		Addr:         ":" + cfg.ServerPort,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	logger.Info().Str("port", cfg.ServerPort).Msg("Сервер запущен")
	if err := srv.ListenAndServe(); err != nil {
		_ = db.Close()
		logger.Fatal().Err(err).Msg("Сервер остановлен")
	}
}
