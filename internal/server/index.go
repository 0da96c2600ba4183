package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/postalsys/toc/internal/logging"
	"github.com/postalsys/toc/internal/server/assets"
	"github.com/postalsys/toc/internal/sizefmt"
	"github.com/postalsys/toc/internal/tarhash"
	"github.com/postalsys/toc/internal/wordpass"
)

const indexPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>toc</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<div class="box">
<h1>toc</h1>
<p>Short-lived, end-to-end encrypted file transfer. The server never
sees your passphrase or plaintext.</p>
<p>Use the <code>toc</code> CLI to send and receive files.</p>
</div>
</body>
</html>
`

// handleIndex serves the splash page at "/" and 404s everything else
// that fell through to the root handler.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPageTemplate)
}

// handleHealthz reports liveness for load balancers and orchestrators.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// uploadPageData feeds the embedded upload.html.tmpl template.
type uploadPageData struct {
	Identifier  string
	Filename    string
	SizeHuman   string
	ExpiresAt   string
	DownloadURL string
}

// handleUploadPage implements the content-negotiated "GET /{id}/"
// route: a browser (one that sends "text/html" in its Accept header)
// gets an HTML page describing the upload, with a download link;
// anything else (the toc CLI, curl, wget) gets the same raw,
// range-servable ciphertext stream as "GET /d/{id}".
func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	id, err := wordpass.Parse(idStr)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	key := tarhash.Derive(id.String(), s.cfg.General.TarSalt)

	entry, err := s.awaitFinished(r, key)
	if err != nil {
		writePollError(w, r, err)
		return
	}

	if !wantsHTML(r) {
		s.serveBlob(w, r, idStr, key, entry)
		return
	}

	data := uploadPageData{
		Identifier:  idStr,
		Filename:    entry.Filename,
		SizeHuman:   sizefmt.Format(entry.Size),
		ExpiresAt:   time.Unix(entry.DeleteAt, 0).UTC().Format(time.RFC1123),
		DownloadURL: "/d/" + idStr,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := assets.Templates.ExecuteTemplate(w, "upload.html.tmpl", data); err != nil {
		s.log.Error("render upload page", logging.KeyError, err)
	}
}

// wantsHTML reports whether r's Accept header prefers an HTML
// response over a raw byte stream. A request with no Accept header
// at all (the toc CLI never sets one) is treated as not wanting
// HTML.
func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return accept != "" && strings.Contains(accept, "text/html")
}
