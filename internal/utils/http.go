package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess wraps data into a successful [models.Response] envelope.
//
//	utils.WriteSuccess(w, job, "job created", http.StatusCreated)
func WriteSuccess(w http.ResponseWriter, data any, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Data: data, Message: message}, statusCode)
}

// WriteError writes a failed [models.Response] envelope with the given message.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: false, Message: message}, statusCode)
}
