// Package api implements the HTTP handlers of the kakeibo emulator.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the kakeibo error body: {"error": message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// AuthMiddleware validates the static bearer API key.
func AuthMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] != apiKey {
				writeError(w, http.StatusUnauthorized, "無効な API キーです。")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// pageParams extracts page/per_page query parameters with defaults.
func pageParams(r *http.Request, defaultPerPage int) (page, perPage int) {
	page = 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	perPage = defaultPerPage
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && v > 0 {
		perPage = v
	}
	return page, perPage
}

// paginate returns the half-open index range for one page of n items.
func paginate(n, page, perPage int) (start, end int) {
	start = (page - 1) * perPage
	if start > n {
		start = n
	}
	end = start + perPage
	if end > n {
		end = n
	}
	return start, end
}
