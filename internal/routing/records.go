package routing

import (
	"encoding/json"
	"net/http"

	"github.com/SystemBuilders/noticeboard/internal/board"
	"github.com/SystemBuilders/noticeboard/internal/boardservice"
	"github.com/gorilla/mux"
)

// RecordRequest is the body of a request creating a record.
type RecordRequest struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Author string `json:"author"`
}

// UpdateRequest is the body of a request updating a record.
type UpdateRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// add wraps the board Add function and creates a clean HTTP service.
func add(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	kind, err := board.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := checkFields(req.Title, req.Date, req.Author); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, err := b.Add(kind, req.Title, req.Date, req.Author)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func listAll(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	writeJSON(w, http.StatusOK, b.All())
}

func find(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	rec, err := b.Find(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func update(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := checkFields(req.Title, req.Date); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, err := b.Update(mux.Vars(r)["id"], req.Title, req.Date)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func remove(w http.ResponseWriter, r *http.Request, b boardservice.Board) {
	rec, err := b.Remove(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
