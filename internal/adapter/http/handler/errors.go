package handler

import "net/http"

const internalErrorMessage = "the server encountered a problem and could not process your request"

// errorResponse writes {"error": message}. If even that cannot be encoded
// the client only gets the status.
func errorResponse(w http.ResponseWriter, status int, message any) {
	if err := writeJSON(w, status, envelope{"error": message}, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serviceErrorResponse answers with the status GetCode picks for err. Messages
// of 5xx errors stay in the logs.
func serviceErrorResponse(w http.ResponseWriter, err error) {
	code := GetCode(err)
	if code >= http.StatusInternalServerError {
		internalErrorResponse(w)
		return
	}
	errorResponse(w, code, err.Error())
}

// failedValidationResponse writes 422 with one message per rejected field.
func failedValidationResponse(w http.ResponseWriter, errors map[string]string) {
	errorResponse(w, http.StatusUnprocessableEntity, errors)
}

func badRequestResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusBadRequest, message)
}

func internalErrorResponse(w http.ResponseWriter) {
	errorResponse(w, http.StatusInternalServerError, internalErrorMessage)
}
