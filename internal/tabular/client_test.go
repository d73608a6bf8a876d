package tabular

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestListRecordsFollowsPagination(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer auth, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("offset") == "" {
			fmt.Fprint(w, `{"records":[{"id":"rec1","fields":{"Title":"First"}}],"offset":"page2"}`)
			return
		}
		if got := r.URL.Query().Get("offset"); got != "page2" {
			t.Errorf("unexpected offset %q", got)
		}
		fmt.Fprint(w, `{"records":[{"id":"rec2","fields":{"Title":"Second"}}]}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))
	records, err := client.ListRecords(context.Background(), "Signals")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records across pages, got %d", len(records))
	}
	if records[0].ID != "rec1" || records[1].ID != "rec2" {
		t.Errorf("records out of order: %s %s", records[0].ID, records[1].ID)
	}
	if calls != 2 {
		t.Errorf("expected 2 page requests, got %d", calls)
	}
}

func TestGetPageRetriesWithBackoff(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "upstream hiccup", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"records":[{"id":"rec1","fields":{}}]}`)
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithRetry(3, time.Millisecond),
	)

	records, err := client.ListRecords(context.Background(), "Signals")
	if err != nil {
		t.Fatalf("expected retries to succeed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestGetPageExhaustsRetryBudget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "still down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithRetry(2, time.Millisecond),
	)

	_, err := client.ListRecords(context.Background(), "Signals")
	if err == nil {
		t.Fatalf("expected error after retry exhaustion")
	}
	if !strings.Contains(err.Error(), "3 attempts failed") {
		t.Errorf("error should report the attempt budget, got %v", err)
	}
}

func TestListRecordsRequiresCredentials(t *testing.T) {
	if _, err := NewClient("").ListRecords(context.Background(), "Signals"); err == nil {
		t.Errorf("missing API key should fail fast")
	}
	if _, err := NewClient("key").ListRecords(context.Background(), ""); err == nil {
		t.Errorf("missing table should fail fast")
	}
}
