package handler

import (
	"net/http"
	"testing"

	"github.com/orderhub/order-api/internal/core/ports"
)

type stubDispatcher struct {
	enqueued []ports.StatusEventInput
}

func (d *stubDispatcher) Enqueue(event ports.StatusEventInput) {
	d.enqueued = append(d.enqueued, event)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.StatusEventInput) {
	d.enqueued = append(d.enqueued, events...)
}

func TestEventHandler_Receive_Accepted(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	_, c, rec := newTestContext(t, http.MethodPost, "/api/v1/events",
		`{"order_id":7,"status":"shipped","timestamp":"2026-03-01T10:00:00Z","source":"courier_app"}`)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued event, got %d", len(dispatcher.enqueued))
	}
	if dispatcher.enqueued[0].OrderID != 7 || dispatcher.enqueued[0].Status != "shipped" {
		t.Fatalf("unexpected event: %+v", dispatcher.enqueued[0])
	}
}

func TestEventHandler_Receive_UnknownStatusRejected(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	e, c, rec := newTestContext(t, http.MethodPost, "/api/v1/events",
		`{"order_id":7,"status":"vanished","timestamp":"2026-03-01T10:00:00Z","source":"courier_app"}`)

	if err := h.Receive(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatal("invalid event must not be enqueued")
	}
}

func TestEventHandler_Receive_WithLocation(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	_, c, _ := newTestContext(t, http.MethodPost, "/api/v1/events",
		`{"order_id":7,"status":"delivered","timestamp":"2026-03-01T10:00:00Z","source":"courier_app","location":{"lat":50.45,"lng":30.52}}`)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if dispatcher.enqueued[0].Location == nil || dispatcher.enqueued[0].Location.Lat != 50.45 {
		t.Fatalf("location not forwarded: %+v", dispatcher.enqueued[0].Location)
	}
}

func TestEventHandler_ReceiveBatch_Accepted(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	_, c, rec := newTestContext(t, http.MethodPost, "/api/v1/events/batch",
		`[{"order_id":7,"status":"paid","timestamp":"2026-03-01T10:00:00Z","source":"payment_gateway"},
		  {"order_id":8,"status":"shipped","timestamp":"2026-03-01T10:05:00Z","source":"warehouse"}]`)

	if err := h.ReceiveBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 2 {
		t.Fatalf("expected 2 enqueued events, got %d", len(dispatcher.enqueued))
	}
}

func TestEventHandler_ReceiveBatch_EmptyRejected(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	e, c, rec := newTestContext(t, http.MethodPost, "/api/v1/events/batch", `[]`)

	if err := h.ReceiveBatch(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatal("empty batch must not enqueue anything")
	}
}

func TestEventHandler_ReceiveBatch_OneBadEventRejectsWholeBatch(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewEventHandler(dispatcher)

	e, c, rec := newTestContext(t, http.MethodPost, "/api/v1/events/batch",
		`[{"order_id":7,"status":"paid","timestamp":"2026-03-01T10:00:00Z","source":"payment_gateway"},
		  {"order_id":0,"status":"paid","timestamp":"2026-03-01T10:05:00Z","source":"payment_gateway"}]`)

	if err := h.ReceiveBatch(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatal("a batch with an invalid event must not be partially enqueued")
	}
}
