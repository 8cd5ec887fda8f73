package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/farouk24967/dashbord-genrator/internal/workspace"
)

// UploadLogo handles PUT /api/workspaces/{workspaceID}/logo. The raw image
// body replaces any previously stored logo; the old one is released.
func (h *WorkspaceHandler) UploadLogo(maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := h.lookup(w, r)
		if !ok {
			return
		}

		contentType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			http.Error(w, "logo must be an image", http.StatusUnsupportedMediaType)
			return
		}

		body := http.MaxBytesReader(w, r.Body, maxBytes)
		data, err := io.ReadAll(body)
		if err != nil {
			http.Error(w, "logo too large", http.StatusRequestEntityTooLarge)
			return
		}
		if len(data) == 0 {
			http.Error(w, "empty logo body", http.StatusBadRequest)
			return
		}

		ws.SetLogo(workspace.Logo{ContentType: contentType, Data: data})
		h.logger.Info("logo stored", "workspace_id", ws.ID, "bytes", len(data))
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetLogo handles GET /api/workspaces/{workspaceID}/logo.
func (h *WorkspaceHandler) GetLogo(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	logo, found := ws.Logo()
	if !found {
		http.Error(w, "no logo uploaded", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", logo.ContentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(logo.Data)
}

// DeleteLogo handles DELETE /api/workspaces/{workspaceID}/logo.
func (h *WorkspaceHandler) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	ws.RemoveLogo()
	w.WriteHeader(http.StatusNoContent)
}
