package handlers

import (
	"encoding/json"
	"net/http"

	errors "github.com/Laisky/errors/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rohits-web03/shopdrive/internal/api/middleware"
	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/services"
	"github.com/rohits-web03/shopdrive/internal/utils"
)

const defaultMaxUploadSize = 100 << 20 // 100 MB

// Handler serves the file manager over HTTP for the shop resolved by the
// auth middleware.
type Handler struct {
	files         *services.FileManager
	logger        *zap.Logger
	maxUploadSize int64
}

func New(files *services.FileManager, logger *zap.Logger, maxUploadSize int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}
	return &Handler{
		files:         files,
		logger:        logger.Named("handlers"),
		maxUploadSize: maxUploadSize,
	}
}

func shopOf(r *http.Request) string {
	return middleware.ShopFromContext(r.Context())
}

func statusOf(err error) int {
	typed, ok := common.AsError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch typed.Kind {
	case common.KindValidation:
		return http.StatusBadRequest
	case common.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method), zap.String("path", r.URL.Path),
			zap.String("shop", shopOf(r)), zap.Error(err))
	}
	utils.JSONResponse(w, status, utils.Payload{
		Success: false,
		Message: common.PublicMessage(err),
	})
}

func badRequest(w http.ResponseWriter, message string) {
	utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
		Success: false,
		Message: message,
	})
}

func success(w http.ResponseWriter, status int, message string, data any) {
	utils.JSONResponse(w, status, utils.Payload{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// pathID parses the {id} wildcard.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, common.Validation("Invalid id")
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return common.Wrap(common.KindValidation, errors.Wrap(err, "decode body"), "Invalid request body")
	}
	return nil
}
