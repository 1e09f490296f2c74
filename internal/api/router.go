package api

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/rohits-web03/shopdrive/docs"
	"github.com/rohits-web03/shopdrive/internal/api/handlers"
	"github.com/rohits-web03/shopdrive/internal/api/middleware"
	"github.com/rohits-web03/shopdrive/internal/config"
)

func SetupRouter(cfg config.Config, h *handlers.Handler, logger *zap.Logger) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("GET /files", h.ListFiles)
	protectedMux.HandleFunc("POST /files", h.UploadFile)
	protectedMux.HandleFunc("POST /files/bulk-delete", h.BulkDelete)
	protectedMux.HandleFunc("POST /files/bulk-move", h.BulkMove)
	protectedMux.HandleFunc("GET /files/{id}", h.GetFile)
	protectedMux.HandleFunc("GET /files/{id}/download", h.DownloadFile)
	protectedMux.HandleFunc("PATCH /files/{id}/folder", h.MoveFile)
	protectedMux.HandleFunc("DELETE /files/{id}", h.DeleteFile)

	protectedMux.HandleFunc("GET /folders", h.ListFolders)
	protectedMux.HandleFunc("POST /folders", h.CreateFolder)
	protectedMux.HandleFunc("GET /folders/{id}", h.GetFolder)
	protectedMux.HandleFunc("PATCH /folders/{id}", h.RenameFolder)
	protectedMux.HandleFunc("DELETE /folders/{id}", h.DeleteFolder)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.Auth(cfg.JWTSecret)(protectedMux),
		),
	)

	logger.Info("router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(logger)(handler)
	return handler
}
