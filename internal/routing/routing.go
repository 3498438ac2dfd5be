package routing

import (
	"net/http"

	"github.com/SystemBuilders/noticeboard/internal/boardservice"
	"github.com/gorilla/mux"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(b boardservice.Board, r *mux.Router) *mux.Router {
	r.HandleFunc("/records", makeAddHandler(b)).Methods(http.MethodPost)
	r.HandleFunc("/records", makeListAllHandler(b)).Methods(http.MethodGet)
	r.HandleFunc("/records/{id}", makeFindHandler(b)).Methods(http.MethodGet)
	r.HandleFunc("/records/{id}", makeUpdateHandler(b)).Methods(http.MethodPut)
	r.HandleFunc("/records/{id}", makeRemoveHandler(b)).Methods(http.MethodDelete)

	r.HandleFunc("/events", makeEnqueueHandler(b)).Methods(http.MethodPost)
	r.HandleFunc("/events", makeListEventsHandler(b)).Methods(http.MethodGet)
	r.HandleFunc("/events/front", makePeekHandler(b)).Methods(http.MethodGet)
	r.HandleFunc("/events/front", makeDequeueHandler(b)).Methods(http.MethodDelete)
	return r
}

func makeAddHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		add(w, r, b)
	}
}

func makeListAllHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listAll(w, r, b)
	}
}

func makeFindHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		find(w, r, b)
	}
}

func makeUpdateHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		update(w, r, b)
	}
}

func makeRemoveHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remove(w, r, b)
	}
}

func makeEnqueueHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enqueue(w, r, b)
	}
}

func makeListEventsHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listEvents(w, r, b)
	}
}

func makePeekHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		peek(w, r, b)
	}
}

func makeDequeueHandler(b boardservice.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dequeue(w, r, b)
	}
}
