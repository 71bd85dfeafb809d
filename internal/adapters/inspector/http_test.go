package inspector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.Handler) (*Client, func()) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv.Close
}

func TestActiveWindow(t *testing.T) {
	client, cleanup := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/active-window" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"main.go - editor","process":"code"}`))
	}))
	defer cleanup()

	obs, ok, err := client.ActiveWindow(context.Background())
	if err != nil {
		t.Fatalf("ActiveWindow failed: %v", err)
	}
	if !ok {
		t.Fatal("expected an active window")
	}
	if obs.Process != "code" || obs.Title != "main.go - editor" {
		t.Errorf("unexpected observation: %+v", obs)
	}
}

func TestActiveWindowNoFocus(t *testing.T) {
	client, cleanup := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer cleanup()

	_, ok, err := client.ActiveWindow(context.Background())
	if err != nil {
		t.Fatalf("ActiveWindow failed: %v", err)
	}
	if ok {
		t.Error("expected no active window on 204")
	}
}

func TestActiveWindowServerError(t *testing.T) {
	client, cleanup := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer cleanup()

	_, _, err := client.ActiveWindow(context.Background())
	if err == nil {
		t.Error("expected an error on 500")
	}
}

func TestVisibleWindows(t *testing.T) {
	client, cleanup := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/visible-windows" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"editor","process":"code"},{"title":"browser","process":"chrome"}]`))
	}))
	defer cleanup()

	snapshot, err := client.VisibleWindows(context.Background())
	if err != nil {
		t.Fatalf("VisibleWindows failed: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(snapshot))
	}
	if snapshot[1].Process != "chrome" {
		t.Errorf("unexpected snapshot: %+v", snapshot)
	}
}

func TestInitPosition(t *testing.T) {
	var gotMethod string
	client, cleanup := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer cleanup()

	if err := client.InitPosition(context.Background()); err != nil {
		t.Fatalf("InitPosition failed: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
}
