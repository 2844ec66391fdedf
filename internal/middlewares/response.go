package middlewares

import (
	"encoding/json"
	"net/http"
)

func writeError(w http.ResponseWriter, status int, key, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{key: message})
}
