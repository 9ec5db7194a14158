package xhttp

import (
	"net/http"

	go_json "github.com/goccy/go-json"
)

// WriteJSON encodes data with the given status. Encoding failures are
// swallowed; the status line is already on the wire by then.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Error(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
