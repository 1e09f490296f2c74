package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rohits-web03/shopdrive/internal/services"
)

type bulkDeleteRequest struct {
	Items []services.BulkItem `json:"items"`
}

type bulkMoveRequest struct {
	IDs      []uuid.UUID `json:"ids"`
	FolderID *uuid.UUID  `json:"folderId"`
}

// POST /api/v1/files/bulk-delete
// BulkDelete godoc
// @Summary Delete several files and folders
// @Description Each item is processed independently; the result lists the outcome per item.
// @Tags Files
// @Accept json
// @Produce json
// @Param body body bulkDeleteRequest true "Items to delete"
// @Success 200 {object} utils.Payload{data=services.BulkResult}
// @Failure 400 {object} utils.Payload
// @Router /api/v1/files/bulk-delete [post]
func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.files.BulkDelete(r.Context(), shopOf(r), req.Items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "Bulk delete completed", res)
}

// POST /api/v1/files/bulk-move
// BulkMove godoc
// @Summary Move several files into one folder
// @Description folderId null moves the files to the root.
// @Tags Files
// @Accept json
// @Produce json
// @Param body body bulkMoveRequest true "Files and target folder"
// @Success 200 {object} utils.Payload{data=services.BulkResult}
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload "Target folder not found"
// @Router /api/v1/files/bulk-move [post]
func (h *Handler) BulkMove(w http.ResponseWriter, r *http.Request) {
	var req bulkMoveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.files.BulkMove(r.Context(), shopOf(r), req.IDs, req.FolderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "Bulk move completed", res)
}
