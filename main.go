package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"Darcy/internal/auth"
	exporttool "Darcy/internal/calc/export"
	importer "Darcy/internal/calc/importer"
	permeability "Darcy/internal/calc/permeability"
	pss "Darcy/internal/calc/pss"
	ranking "Darcy/internal/calc/ranking"
	report "Darcy/internal/calc/report"
	sensitivity "Darcy/internal/calc/sensitivity"
	"Darcy/internal/repo"
	"Darcy/internal/well"
)

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB) {
	store := repo.NewPostgres(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		slog.Error("TOKEN_KEY environment variable is not set")
		os.Exit(1)
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.Middleware)

	api.HandleFunc("/login", authEnv.Login).Methods("POST")
	api.HandleFunc("/register", authEnv.Register).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(authEnv.Middleware)

	permH := &permeability.Handler{}
	pssH := &pss.Handler{}
	sweepH := &sensitivity.Handler{}
	rankH := &ranking.Handler{}
	reportH := &report.Handler{}
	exportH := &exporttool.Handler{}
	importH := &importer.Handler{}
	wellH := &well.Handler{Repo: store}

	secureAPI.HandleFunc("/tools/permeability/calc", permH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/permeability/pss", pssH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/sensitivity/sweep", sweepH.Sweep).Methods("POST")
	secureAPI.HandleFunc("/tools/sensitivity/rank", rankH.Rank).Methods("POST")
	secureAPI.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureAPI.HandleFunc("/tools/export/xlsx", exportH.Xlsx).Methods("POST")
	secureAPI.HandleFunc("/tools/import/xlsx", importH.Xlsx).Methods("POST")

	secureAPI.HandleFunc("/wells", wellH.List).Methods("GET")
	secureAPI.HandleFunc("/wells", wellH.Create).Methods("POST")
	secureAPI.HandleFunc("/wells/{id:[0-9]+}", wellH.Get).Methods("GET")
	secureAPI.HandleFunc("/wells/{id:[0-9]+}", wellH.Update).Methods("PUT")
	secureAPI.HandleFunc("/wells/{id:[0-9]+}", wellH.Delete).Methods("DELETE")
}

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file, relying on environment")
	}

	db, err := repo.OpenDB()
	if err != nil {
		slog.Error("database unavailable", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	HandleList(router, db)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: CORS(router),
	}

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
