package handlers

import (
	"net/http"

	"github.com/rohits-web03/shopdrive/internal/repositories"
)

type folderRequest struct {
	Name string `json:"name"`
}

// GET /api/v1/folders
// ListFolders godoc
// @Summary List folders with file counts
// @Tags Folders
// @Produce json
// @Param sort query string false "createdAt, updatedAt or name"
// @Param order query string false "asc or desc"
// @Success 200 {object} utils.Payload{data=[]models.FolderSummary}
// @Failure 400 {object} utils.Payload
// @Router /api/v1/folders [get]
func (h *Handler) ListFolders(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	folders, err := h.files.ListFolders(r.Context(), shopOf(r), repositories.FolderQuery{
		SortBy: params.Get("sort"),
		Order:  params.Get("order"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "Folders retrieved successfully", folders)
}

// POST /api/v1/folders
// CreateFolder godoc
// @Summary Create a folder
// @Tags Folders
// @Accept json
// @Produce json
// @Param body body folderRequest true "Folder name"
// @Success 201 {object} utils.Payload{data=models.Folder}
// @Failure 400 {object} utils.Payload
// @Router /api/v1/folders [post]
func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	folder, err := h.files.CreateFolder(r.Context(), shopOf(r), req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusCreated, "Folder created successfully", folder)
}

// GET /api/v1/folders/{id}
// GetFolder godoc
// @Summary Get a folder and its files
// @Tags Folders
// @Produce json
// @Param id path string true "Folder id"
// @Success 200 {object} utils.Payload{data=models.Folder}
// @Failure 404 {object} utils.Payload
// @Router /api/v1/folders/{id} [get]
func (h *Handler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	folder, err := h.files.GetFolder(r.Context(), shopOf(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "Folder retrieved successfully", folder)
}

// PATCH /api/v1/folders/{id}
// RenameFolder godoc
// @Summary Rename a folder
// @Tags Folders
// @Accept json
// @Produce json
// @Param id path string true "Folder id"
// @Param body body folderRequest true "New name"
// @Success 200 {object} utils.Payload{data=models.Folder}
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/folders/{id} [patch]
func (h *Handler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req folderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	folder, err := h.files.RenameFolder(r.Context(), shopOf(r), id, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "Folder renamed successfully", folder)
}

// DELETE /api/v1/folders/{id}
// DeleteFolder godoc
// @Summary Delete a folder and every file in it
// @Tags Folders
// @Produce json
// @Param id path string true "Folder id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/folders/{id} [delete]
func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.files.DeleteFolder(r.Context(), shopOf(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "Folder deleted successfully", nil)
}
