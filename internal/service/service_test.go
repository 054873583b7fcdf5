package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/creditline/internal/customers"
	"github.com/mmynk/creditline/internal/records"
	"github.com/mmynk/creditline/internal/reminder"
	"github.com/mmynk/creditline/internal/storage/sqlite"
	"github.com/mmynk/creditline/pkg/api/apiconnect"
)

// recordingNotifier collects reminders instead of delivering them.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []reminder.Reminder
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, r reminder.Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, r)
	return nil
}

type testClients struct {
	records   apiconnect.RecordServiceClient
	customers apiconnect.CustomerServiceClient
	notifier  *recordingNotifier
	server    *httptest.Server
}

// setupTestServer creates a test server backed by a temporary SQLite database
func setupTestServer(t *testing.T) (*testClients, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "creditline-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	slot, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create slot: %v", err)
	}

	recordStore := records.New(slot)
	notifier := &recordingNotifier{}

	recordPath, recordHandler := apiconnect.NewRecordServiceHandler(NewRecordService(recordStore))
	customerPath, customerHandler := apiconnect.NewCustomerServiceHandler(NewCustomerService(customers.New(slot), notifier))

	mux := http.NewServeMux()
	mux.Handle(recordPath, recordHandler)
	mux.Handle(customerPath, customerHandler)
	mux.Handle(ExportPath, NewExportHandler(recordStore))

	server := httptest.NewServer(mux)

	clients := &testClients{
		records:   apiconnect.NewRecordServiceClient(http.DefaultClient, server.URL),
		customers: apiconnect.NewCustomerServiceClient(http.DefaultClient, server.URL),
		notifier:  notifier,
		server:    server,
	}

	cleanup := func() {
		server.Close()
		slot.Close()
		os.Remove(tmpFile.Name())
	}

	return clients, cleanup
}

// assertCode fails the test unless err is a Connect error with the given code.
func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("Expected connect.Error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("Expected code %v, got %v (%v)", want, connectErr.Code(), err)
	}
}

func strPtr(s string) *string {
	return &s
}
