package handlers

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	errors "github.com/Laisky/errors/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/repositories"
	"github.com/rohits-web03/shopdrive/internal/services"
	"github.com/rohits-web03/shopdrive/internal/utils"
)

// GET /api/v1/files
// ListFiles godoc
// @Summary List the shop's files
// @Description Lists all files, the files of one folder, or root files only, with optional search, MIME filter and sorting.
// @Tags Files
// @Produce json
// @Param folder query string false "Folder id, or \"root\" for files outside any folder"
// @Param q query string false "Case-insensitive search on the original file name"
// @Param mime query string false "MIME type prefix, e.g. image/"
// @Param sort query string false "createdAt, updatedAt, name or size"
// @Param order query string false "asc or desc"
// @Success 200 {object} utils.Payload{data=[]models.File}
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := repositories.FileQuery{
		Search:     params.Get("q"),
		MimePrefix: params.Get("mime"),
		SortBy:     params.Get("sort"),
		Order:      params.Get("order"),
	}
	switch folder := params.Get("folder"); folder {
	case "":
	case "root":
		q.Scope = repositories.RootOnly
	default:
		id, err := uuid.Parse(folder)
		if err != nil {
			badRequest(w, "Invalid folder id")
			return
		}
		q.Scope = repositories.InFolder
		q.FolderID = id
	}

	files, err := h.files.ListFiles(r.Context(), shopOf(r), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "Files retrieved successfully", files)
}

// POST /api/v1/files
// UploadFile godoc
// @Summary Upload a file
// @Description Stores one file for the shop, optionally inside a folder.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param folderId formData string false "Target folder id"
// @Success 201 {object} utils.Payload{data=models.File}
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload "Folder not found"
// @Failure 413 {object} utils.Payload
// @Failure 500 {object} utils.Payload
// @Router /api/v1/files [post]
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONResponse(w, http.StatusRequestEntityTooLarge, utils.Payload{
				Success: false,
				Message: "File exceeds the " + strconv.FormatInt(h.maxUploadSize>>20, 10) + " MB limit",
			})
			return
		}
		badRequest(w, "Invalid file upload form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	src, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "No file provided")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		h.writeError(w, r, common.IO(err, "Failed to read upload"))
		return
	}

	in := services.UploadInput{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Data:         data,
	}
	if raw := strings.TrimSpace(r.FormValue("folderId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(w, "Invalid folder id")
			return
		}
		in.FolderID = &id
	}

	file, err := h.files.Upload(r.Context(), shopOf(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusCreated, "File uploaded successfully", file)
}

// GET /api/v1/files/{id}
// GetFile godoc
// @Summary Get file metadata
// @Tags Files
// @Produce json
// @Param id path string true "File id"
// @Success 200 {object} utils.Payload{data=models.File}
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id} [get]
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	file, err := h.files.GetFile(r.Context(), shopOf(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "File retrieved successfully", file)
}

// GET /api/v1/files/{id}/download
// DownloadFile godoc
// @Summary Download a file
// @Description Streams the stored bytes as an attachment named after the original file.
// @Tags Files
// @Produce octet-stream
// @Param id path string true "File id"
// @Success 200 {file} file
// @Failure 404 {object} utils.Payload "File not found"
// @Router /api/v1/files/{id}/download [get]
func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dl, err := h.files.Download(r.Context(), shopOf(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", dl.File.MimeType)
	w.Header().Set("Content-Disposition", contentDisposition(dl.File.OriginalName))
	w.Header().Set("Content-Length", strconv.Itoa(len(dl.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(dl.Content); err != nil {
		h.logger.Warn("download interrupted", zap.Stringer("file_id", id), zap.Error(err))
	}
}

func contentDisposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

type moveRequest struct {
	FolderID *uuid.UUID `json:"folderId"`
}

// PATCH /api/v1/files/{id}/folder
// MoveFile godoc
// @Summary Move a file
// @Description Moves the file into a folder, or to the root when folderId is null.
// @Tags Files
// @Accept json
// @Produce json
// @Param id path string true "File id"
// @Param body body moveRequest true "Target folder"
// @Success 200 {object} utils.Payload{data=models.File}
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id}/folder [patch]
func (h *Handler) MoveFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	file, err := h.files.MoveFile(r.Context(), shopOf(r), id, req.FolderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "File moved successfully", file)
}

// DELETE /api/v1/files/{id}
// DeleteFile godoc
// @Summary Delete a file
// @Tags Files
// @Produce json
// @Param id path string true "File id"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id} [delete]
func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.files.DeleteFile(r.Context(), shopOf(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	success(w, http.StatusOK, "File deleted successfully", nil)
}
