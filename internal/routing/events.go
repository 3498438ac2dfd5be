package routing

import (
	"encoding/json"
	"net/http"

	"github.com/SystemBuilders/noticeboard/internal/boardservice"
)

// EventRequest is the body of a request enqueueing an event.
type EventRequest struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Author string `json:"author"`
}

func enqueue(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := checkFields(req.Title, req.Date, req.Author); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, err := b.EnqueueEvent(req.Title, req.Date, req.Author)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func listEvents(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	writeJSON(w, http.StatusOK, b.Events())
}

func peek(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	rec, err := b.PeekEvent()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func dequeue(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	rec, err := b.DequeueEvent()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
