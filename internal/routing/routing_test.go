package routing

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SystemBuilders/noticeboard/internal/board"
	"github.com/SystemBuilders/noticeboard/internal/boardservice"
	"github.com/SystemBuilders/noticeboard/internal/idgen"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	sb := boardservice.NewSafeBoard(zerolog.Nop(), idgen.NewSequence("N-"))
	srv := httptest.NewServer(SetupRouting(sb, mux.NewRouter()))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeRecord(t *testing.T, data []byte) board.Record {
	t.Helper()
	var rec board.Record
	require.NoError(t, json.Unmarshal(data, &rec))
	return rec
}

func decodeRecords(t *testing.T, data []byte) []board.Record {
	t.Helper()
	var recs []board.Record
	require.NoError(t, json.Unmarshal(data, &recs))
	return recs
}

func TestRouting(t *testing.T) {
	srv := newTestServer(t)

	status, data := do(t, srv, http.MethodGet, "/records", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(data))

	status, data = do(t, srv, http.MethodPost, "/records", RecordRequest{
		Kind: "announcement", Title: "Exam schedule", Date: "2024-01-01", Author: "Admin",
	})
	require.Equal(t, http.StatusCreated, status)
	a1 := decodeRecord(t, data)
	assert.Equal(t, "N-1", a1.ID)

	status, data = do(t, srv, http.MethodPost, "/events", EventRequest{
		Title: "Sports Day", Date: "2024-02-01", Author: "Admin",
	})
	require.Equal(t, http.StatusCreated, status)
	v1 := decodeRecord(t, data)
	assert.Equal(t, board.Event, v1.Kind)

	status, data = do(t, srv, http.MethodPost, "/records", RecordRequest{
		Kind: "event", Title: "Science Fair", Date: "2024-03-01", Author: "Teacher",
	})
	require.Equal(t, http.StatusCreated, status)
	v2 := decodeRecord(t, data)

	_, data = do(t, srv, http.MethodGet, "/records", nil)
	assert.Equal(t, []board.Record{a1, v1, v2}, decodeRecords(t, data))

	_, data = do(t, srv, http.MethodGet, "/events", nil)
	assert.Equal(t, []board.Record{v1, v2}, decodeRecords(t, data))

	status, data = do(t, srv, http.MethodGet, "/events/front", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, v1, decodeRecord(t, data))

	status, data = do(t, srv, http.MethodPut, "/records/"+a1.ID, UpdateRequest{Title: "Exams moved", Date: "2024-01-08"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Exams moved", decodeRecord(t, data).Title)

	status, data = do(t, srv, http.MethodGet, "/records/"+a1.ID, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2024-01-08", decodeRecord(t, data).Date)

	status, data = do(t, srv, http.MethodDelete, "/events/front", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, v1, decodeRecord(t, data))

	status, data = do(t, srv, http.MethodDelete, "/records/"+v2.ID, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, v2, decodeRecord(t, data))

	status, data = do(t, srv, http.MethodDelete, "/events/front", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.JSONEq(t, `{"error":"event queue is empty"}`, string(data))

	_, data = do(t, srv, http.MethodGet, "/events", nil)
	assert.JSONEq(t, `[]`, string(data))
}

func TestRouting_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"find missing", http.MethodGet, "/records/missing", nil, http.StatusNotFound},
		{"remove missing", http.MethodDelete, "/records/missing", nil, http.StatusNotFound},
		{"update missing", http.MethodPut, "/records/missing", UpdateRequest{Title: "t", Date: "d"}, http.StatusNotFound},
		{"update empty title", http.MethodPut, "/records/missing", UpdateRequest{Date: "d"}, http.StatusBadRequest},
		{"peek empty", http.MethodGet, "/events/front", nil, http.StatusConflict},
		{"unknown kind", http.MethodPost, "/records", RecordRequest{Kind: "memo", Title: "t", Date: "d", Author: "a"}, http.StatusBadRequest},
		{"empty author", http.MethodPost, "/events", EventRequest{Title: "t", Date: "d"}, http.StatusBadRequest},
		{"bad body", http.MethodPost, "/events", "not an object", http.StatusBadRequest},
		{"wrong method", http.MethodPatch, "/records", nil, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, status)
		})
	}

	_, data := do(t, srv, http.MethodGet, "/records", nil)
	assert.JSONEq(t, `[]`, string(data))
}
