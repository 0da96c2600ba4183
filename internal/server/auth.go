package server

import (
	"net/http"
	"strings"
)

// authenticate extracts a bearer token from r and returns the
// matching username, or ("", false) if the token is missing or
// doesn't match any configured user.
func (s *Server) authenticate(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	for _, u := range s.cfg.Users {
		if u.Token == token {
			return u.Username, true
		}
	}
	return "", false
}

func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := s.authenticate(r)
	if !ok {
		s.metrics.RecordAuthFailure()
		w.Header().Set("WWW-Authenticate", `Bearer realm="toc"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return username, true
}
