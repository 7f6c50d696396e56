package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxUploadBytes caps hero/industry images. They are stored inline as
// data URIs inside the content slots, so a big upload bloats every
// subsequent save of that slot.
const maxUploadBytes = 5 << 20

// UploadHandler converts a user-selected image file into a base64 data
// URI. The store treats image fields as opaque strings, so this is the
// only place that knows an "image" might be a file at all.
type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

type UploadResponse struct {
	DataURI string `json:"dataUri"`
}

func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "file is not an image")
		return
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s",
		contentType, base64.StdEncoding.EncodeToString(data))

	writeJSON(w, http.StatusOK, UploadResponse{DataURI: dataURI})
}
