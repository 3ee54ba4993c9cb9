package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"m3u-channel-curator/logger"
)

// ExportHTTPHandler serves one generated output document from disk.
// Access can be gated with CREDENTIALS ("user:pass|user:pass:2026-01-02"
// with optional expiry date; empty or "none" disables auth).
type ExportHTTPHandler struct {
	logger      logger.Logger
	filePath    string
	contentType string
}

func NewM3UHTTPHandler(logger logger.Logger, filePath string) *ExportHTTPHandler {
	return &ExportHTTPHandler{
		logger:      logger,
		filePath:    filePath,
		contentType: "audio/x-mpegurl",
	}
}

func NewCatalogHTTPHandler(logger logger.Logger, filePath string) *ExportHTTPHandler {
	return &ExportHTTPHandler{
		logger:      logger,
		filePath:    filePath,
		contentType: "application/json",
	}
}

func (h *ExportHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if !h.handleAuth(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	if _, err := os.Stat(h.filePath); err != nil {
		http.Error(w, "No generated output found.", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", h.contentType)
	http.ServeFile(w, r, h.filePath)
}

func (h *ExportHTTPHandler) handleAuth(r *http.Request) bool {
	credentials := os.Getenv("CREDENTIALS")
	if credentials == "" || strings.ToLower(credentials) == "none" {
		// No authentication required.
		return true
	}

	creds := h.parseCredentials(credentials)
	user, pass := r.URL.Query().Get("username"), r.URL.Query().Get("password")
	if user == "" || pass == "" {
		return false
	}

	for _, cred := range creds {
		if strings.EqualFold(user, cred[0]) && strings.EqualFold(pass, cred[1]) {
			return true
		}
	}
	return false
}

func (h *ExportHTTPHandler) parseCredentials(raw string) [][]string {
	var result [][]string
	for _, item := range strings.Split(raw, "|") {
		cred := strings.Split(item, ":")
		if len(cred) == 3 {
			if d, err := time.ParseInLocation(time.DateOnly, cred[2], time.Local); err != nil {
				h.logger.Warnf("invalid credential format: %s", item)
				continue
			} else if time.Now().After(d) {
				h.logger.Debugf("Credential expired: %s", item)
				continue
			}
			result = append(result, cred[:2])
		} else {
			result = append(result, cred)
		}
	}
	return result
}
