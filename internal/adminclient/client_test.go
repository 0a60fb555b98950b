package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"planora/internal/dto"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := zerolog.Nop()
	return NewWithHTTPClient(srv.URL, srv.Client(), &log)
}

func writeOK(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(dto.Response{Status: "ok", Data: data})
}

func writeError(w http.ResponseWriter, status int, code, desc string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Response{Status: "error", Error: &dto.Error{Code: code, Desc: desc}})
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, dto.EventNotFound, "Event not found")
	}))

	err := c.get(context.Background(), "/v1/events/99", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != dto.EventNotFound || apiErr.Desc != "Event not found" {
		t.Errorf("got code=%q desc=%q", apiErr.Code, apiErr.Desc)
	}
	if apiErr.Error() != "Event not found" {
		t.Errorf("Error() = %q, want the description", apiErr.Error())
	}
}

func TestClientErrorWithoutEnvelopeBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))

	err := c.get(context.Background(), "/v1/events", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != dto.ServiceUnavailable {
		t.Errorf("code = %q, want %q", apiErr.Code, dto.ServiceUnavailable)
	}
}

func TestListOptionsQuery(t *testing.T) {
	q := ListOptions{Page: 2, PageSize: 25, Status: "Suspended"}.query()
	if got := q.Encode(); got != "page=2&pageSize=25&status=Suspended" {
		t.Errorf("query = %q", got)
	}

	if got := (ListOptions{}).query().Encode(); got != "" {
		t.Errorf("zero options produced query %q", got)
	}
}

func TestProgressReaderReportsPercentages(t *testing.T) {
	var reports []int
	body := make([]byte, 1000)
	p := &progressReader{
		r:      &chunkReader{data: body, chunk: 250},
		total:  int64(len(body)),
		report: func(pct int) { reports = append(reports, pct) },
	}

	buf := make([]byte, 4096)
	for {
		if _, err := p.Read(buf); err != nil {
			break
		}
	}

	want := []int{25, 50, 75, 100}
	if len(reports) != len(want) {
		t.Fatalf("reports = %v, want %v", reports, want)
	}
	for i := range want {
		if reports[i] != want[i] {
			t.Errorf("reports[%d] = %d, want %d", i, reports[i], want[i])
		}
	}
}

type chunkReader struct {
	data  []byte
	chunk int
	off   int
}

func (r *chunkReader) Read(b []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, errDone
	}
	n := r.chunk
	if n > len(r.data)-r.off {
		n = len(r.data) - r.off
	}
	if n > len(b) {
		n = len(b)
	}
	copy(b, r.data[r.off:r.off+n])
	r.off += n
	return n, nil
}

var errDone = errors.New("done")
