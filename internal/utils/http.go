package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const contentTypeJSON = "application/json; charset=utf-8"

// WriteJSON writes data as a JSON response with the given status code and an
// exact Content-Length. On a marshaling error nothing but a 500 is written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("marshal JSON response: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", contentTypeJSON)
	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(statusCode)

	return w.Write(body)
}
