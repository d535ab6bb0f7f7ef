package http

import (
	"encoding/json"
	"net/http"

	fossilApiLog "fossil-api/pkg/logger"
)

type CustomError struct {
	CustomErrCode string `json:"customErrCode"`
	Message       string `json:"message"`
}

func WriteHttpErrorAndLog(w http.ResponseWriter, message string, code int, err error) {
	fossilApiLog.Logger.Error(message, "error", err)
	http.Error(w, message, code)
}

func WriteCustomErrorAndLog(w http.ResponseWriter, message string, code int, customErrCode string, err error) {
	if code >= http.StatusInternalServerError {
		fossilApiLog.Logger.Error(message, "error", err)
	} else {
		fossilApiLog.Logger.Warn(message, "error", err, "code", code)
	}
	customErr := &CustomError{
		CustomErrCode: customErrCode,
		Message:       message,
	}

	response, err := json.Marshal(customErr)
	if err != nil {
		WriteHttpErrorAndLog(w, "Failed to marshal response", http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func WriteResponseEntity(w http.ResponseWriter, entity interface{}) {
	WriteResponseEntityWithCode(w, http.StatusOK, entity)
}

// WriteResponseEntityWithCode is for the few routes that answer a body together with a non 200 code,
// e.g. the empty message list returned alongside a 404.
func WriteResponseEntityWithCode(w http.ResponseWriter, code int, entity interface{}) {
	response, err := json.Marshal(entity)
	if err != nil {
		WriteHttpErrorAndLog(w, "Failed to write entity due to json marshal failed", http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func ParseJsonBody[T any](r *http.Request, t *T) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(t)
	if err != nil {
		return err
	}
	return nil
}

func GetCommonHttpHeader(additionalHeader map[string][]string) map[string][]string {
	headers := map[string][]string{
		"Content-Type": {"application/json"},
	}
	for k, v := range additionalHeader {
		headers[k] = v
	}
	return headers
}
