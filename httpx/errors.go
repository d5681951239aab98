package httpx

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/rvledder/inspecto/apperr"
	"github.com/rvledder/inspecto/log"
)

// WriteError renders err as a JSON {"error": ...} body with the status
// matching its taxonomy kind. Domain errors are logged at DEBUG with the
// operation code; anything else is a store error, logged at ERROR and
// reported as a 500 with the generic fallback message.
func WriteError(w http.ResponseWriter, r *http.Request, code string, fallback string, err error) {
	var status int
	switch apperr.KindOf(err) {
	case apperr.KindInvalid:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	default:
		log.Errorf("%s: %s", code, err)
		writeJSONError(w, r, http.StatusInternalServerError, fallback)
		return
	}

	log.Debugf("%s: %s", code, err)
	writeJSONError(w, r, status, err.Error())
}

// WriteBadRequest reports a malformed request body without involving the
// service layer.
func WriteBadRequest(w http.ResponseWriter, r *http.Request, code string, msg string) {
	log.Debug(code)
	writeJSONError(w, r, http.StatusBadRequest, msg)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}
