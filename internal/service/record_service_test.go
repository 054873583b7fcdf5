package service

import (
	"context"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/creditline/internal/models"
	"github.com/mmynk/creditline/internal/records"
	"github.com/mmynk/creditline/internal/storage/memory"
	"github.com/mmynk/creditline/pkg/api"
)

func createRecord(t *testing.T, c *testClients, apt, amount string) *api.Record {
	t.Helper()
	resp, err := c.records.CreateRecord(context.Background(), connect.NewRequest(&api.CreateRecordRequest{
		Apartment: apt,
		Amount:    amount,
	}))
	if err != nil {
		t.Fatalf("CreateRecord(%s, %s) failed: %v", apt, amount, err)
	}
	return resp.Msg.Record
}

func TestCreateRecord(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("stores a pending record with breakdown", func(t *testing.T) {
		rec := createRecord(t, c, "12034", "1500.50")

		if rec.Id == "" {
			t.Error("Expected record ID to be set")
		}
		if rec.Status != "pending" {
			t.Errorf("Expected status pending, got %s", rec.Status)
		}
		if !rec.Amount.Equal(decimal.RequireFromString("1500.50")) {
			t.Errorf("Expected amount 1500.50, got %s", rec.Amount)
		}
		want := api.Breakdown{Tower: "12", Floor: "03", Unit: "4"}
		if rec.Breakdown != want {
			t.Errorf("Expected breakdown %+v, got %+v", want, rec.Breakdown)
		}
		if rec.CreatedAt.IsZero() {
			t.Error("Expected created_at to be set")
		}
	})

	t.Run("reports an existing record for the same apartment", func(t *testing.T) {
		first := createRecord(t, c, "55501", "100")

		resp, err := c.records.CreateRecord(ctx, connect.NewRequest(&api.CreateRecordRequest{
			Apartment: "55501",
			Amount:    "200",
		}))
		if err != nil {
			t.Fatalf("CreateRecord failed: %v", err)
		}
		if resp.Msg.Existing == nil {
			t.Fatal("Expected existing record to be reported")
		}
		if resp.Msg.Existing.Id != first.Id {
			t.Errorf("Expected existing %s, got %s", first.Id, resp.Msg.Existing.Id)
		}
		if resp.Msg.Record.Id == first.Id {
			t.Error("Expected a new record to be inserted")
		}
	})

	invalid := []struct {
		name      string
		apartment string
		amount    string
	}{
		{"empty apartment", "", "100"},
		{"short apartment", "123", "100"},
		{"non-digit apartment", "12a45", "100"},
		{"empty amount", "12345", ""},
		{"zero amount", "12345", "0"},
		{"negative amount", "12345", "-5"},
		{"garbage amount", "12345", "12abc"},
	}
	for _, tc := range invalid {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := c.records.CreateRecord(ctx, connect.NewRequest(&api.CreateRecordRequest{
				Apartment: tc.apartment,
				Amount:    tc.amount,
			}))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestListRecords(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	createRecord(t, c, "10101", "500")
	createRecord(t, c, "20202", "1500")
	createRecord(t, c, "10305", "250.25")

	t.Run("returns all records with total and count", func(t *testing.T) {
		resp, err := c.records.ListRecords(ctx, connect.NewRequest(&api.ListRecordsRequest{}))
		if err != nil {
			t.Fatalf("ListRecords failed: %v", err)
		}
		if resp.Msg.Count != 3 || len(resp.Msg.Records) != 3 {
			t.Fatalf("Expected 3 records, got count=%d len=%d", resp.Msg.Count, len(resp.Msg.Records))
		}
		if !resp.Msg.Total.Equal(decimal.RequireFromString("2250.25")) {
			t.Errorf("Expected total 2250.25, got %s", resp.Msg.Total)
		}
		if resp.Msg.Records[0].Apartment != "10101" {
			t.Errorf("Expected insertion order, first is %s", resp.Msg.Records[0].Apartment)
		}
	})

	t.Run("search filters records but not the total", func(t *testing.T) {
		resp, err := c.records.ListRecords(ctx, connect.NewRequest(&api.ListRecordsRequest{Search: "101"}))
		if err != nil {
			t.Fatalf("ListRecords failed: %v", err)
		}
		if resp.Msg.Count != 1 || resp.Msg.Records[0].Apartment != "10101" {
			t.Fatalf("Expected only 10101, got %+v", resp.Msg.Records)
		}
		if !resp.Msg.Total.Equal(decimal.RequireFromString("2250.25")) {
			t.Errorf("Expected total over all records, got %s", resp.Msg.Total)
		}
	})

	t.Run("sorts by amount descending", func(t *testing.T) {
		resp, err := c.records.ListRecords(ctx, connect.NewRequest(&api.ListRecordsRequest{
			SortBy:     "amount",
			Descending: true,
		}))
		if err != nil {
			t.Fatalf("ListRecords failed: %v", err)
		}
		got := []string{}
		for _, r := range resp.Msg.Records {
			got = append(got, r.Apartment)
		}
		want := []string{"20202", "10101", "10305"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		_, err := c.records.ListRecords(ctx, connect.NewRequest(&api.ListRecordsRequest{SortBy: "colour"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestUpdateRecord(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()
	rec := createRecord(t, c, "30303", "700")

	t.Run("updates only supplied fields", func(t *testing.T) {
		resp, err := c.records.UpdateRecord(ctx, connect.NewRequest(&api.UpdateRecordRequest{
			Id:     rec.Id,
			Amount: strPtr("900"),
		}))
		if err != nil {
			t.Fatalf("UpdateRecord failed: %v", err)
		}
		got := resp.Msg.Record
		if !got.Amount.Equal(decimal.NewFromInt(900)) {
			t.Errorf("Expected amount 900, got %s", got.Amount)
		}
		if got.Apartment != "30303" || got.Status != "pending" {
			t.Errorf("Expected other fields unchanged, got %+v", got)
		}
		if !got.CreatedAt.Equal(rec.CreatedAt) {
			t.Errorf("Expected created_at unchanged, got %v want %v", got.CreatedAt, rec.CreatedAt)
		}
	})

	t.Run("unknown id is NotFound", func(t *testing.T) {
		_, err := c.records.UpdateRecord(ctx, connect.NewRequest(&api.UpdateRecordRequest{
			Id:     "apt_missing",
			Amount: strPtr("1"),
		}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := c.records.UpdateRecord(ctx, connect.NewRequest(&api.UpdateRecordRequest{
			Id:     rec.Id,
			Status: strPtr("cancelled"),
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("rejects empty patch", func(t *testing.T) {
		_, err := c.records.UpdateRecord(ctx, connect.NewRequest(&api.UpdateRecordRequest{Id: rec.Id}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("rejects invalid apartment", func(t *testing.T) {
		_, err := c.records.UpdateRecord(ctx, connect.NewRequest(&api.UpdateRecordRequest{
			Id:        rec.Id,
			Apartment: strPtr("99"),
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("MarkPaid sets status paid", func(t *testing.T) {
		resp, err := c.records.MarkPaid(ctx, connect.NewRequest(&api.MarkPaidRequest{Id: rec.Id}))
		if err != nil {
			t.Fatalf("MarkPaid failed: %v", err)
		}
		if resp.Msg.Record.Status != "paid" {
			t.Errorf("Expected status paid, got %s", resp.Msg.Record.Status)
		}
	})

	t.Run("MarkPaid unknown id is NotFound", func(t *testing.T) {
		_, err := c.records.MarkPaid(ctx, connect.NewRequest(&api.MarkPaidRequest{Id: "apt_missing"}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestDeleteAndReplaceRecord(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("delete reports whether a record was removed", func(t *testing.T) {
		rec := createRecord(t, c, "40404", "10")

		resp, err := c.records.DeleteRecord(ctx, connect.NewRequest(&api.DeleteRecordRequest{Id: rec.Id}))
		if err != nil {
			t.Fatalf("DeleteRecord failed: %v", err)
		}
		if !resp.Msg.Deleted {
			t.Error("Expected deleted=true")
		}

		resp, err = c.records.DeleteRecord(ctx, connect.NewRequest(&api.DeleteRecordRequest{Id: rec.Id}))
		if err != nil {
			t.Fatalf("DeleteRecord of missing id should not fail: %v", err)
		}
		if resp.Msg.Deleted {
			t.Error("Expected deleted=false for missing id")
		}
	})

	t.Run("replace swaps the record", func(t *testing.T) {
		old := createRecord(t, c, "50505", "100")

		resp, err := c.records.ReplaceRecord(ctx, connect.NewRequest(&api.ReplaceRecordRequest{
			Id:        old.Id,
			Apartment: "50505",
			Amount:    "350",
		}))
		if err != nil {
			t.Fatalf("ReplaceRecord failed: %v", err)
		}
		if !resp.Msg.PreviousRemoved {
			t.Error("Expected previous record to be removed")
		}
		if resp.Msg.Record.Id == old.Id {
			t.Error("Expected a new id")
		}

		found, err := c.records.FindRecord(ctx, connect.NewRequest(&api.FindRecordRequest{Apartment: "50505"}))
		if err != nil {
			t.Fatalf("FindRecord failed: %v", err)
		}
		if !found.Msg.Found || found.Msg.Record.Id != resp.Msg.Record.Id {
			t.Errorf("Expected only the replacement to remain, got %+v", found.Msg)
		}
		if !found.Msg.Record.Amount.Equal(decimal.NewFromInt(350)) {
			t.Errorf("Expected amount 350, got %s", found.Msg.Record.Amount)
		}
	})

	t.Run("replace validates before deleting", func(t *testing.T) {
		old := createRecord(t, c, "60606", "100")

		_, err := c.records.ReplaceRecord(ctx, connect.NewRequest(&api.ReplaceRecordRequest{
			Id:        old.Id,
			Apartment: "60606",
			Amount:    "abc",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)

		found, err := c.records.FindRecord(ctx, connect.NewRequest(&api.FindRecordRequest{Apartment: "60606"}))
		if err != nil {
			t.Fatalf("FindRecord failed: %v", err)
		}
		if !found.Msg.Found || found.Msg.Record.Id != old.Id {
			t.Error("Expected original record to survive a rejected replace")
		}
	})
}

func TestGetTotalAndFind(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("empty store totals zero", func(t *testing.T) {
		resp, err := c.records.GetTotal(ctx, connect.NewRequest(&api.GetTotalRequest{}))
		if err != nil {
			t.Fatalf("GetTotal failed: %v", err)
		}
		if !resp.Msg.Total.IsZero() || resp.Msg.Count != 0 {
			t.Errorf("Expected zero total and count, got %s / %d", resp.Msg.Total, resp.Msg.Count)
		}
	})

	createRecord(t, c, "70707", "0.1")
	createRecord(t, c, "80808", "0.2")

	t.Run("total is exact", func(t *testing.T) {
		resp, err := c.records.GetTotal(ctx, connect.NewRequest(&api.GetTotalRequest{}))
		if err != nil {
			t.Fatalf("GetTotal failed: %v", err)
		}
		if !resp.Msg.Total.Equal(decimal.RequireFromString("0.3")) {
			t.Errorf("Expected total 0.3, got %s", resp.Msg.Total)
		}
		if resp.Msg.Count != 2 {
			t.Errorf("Expected count 2, got %d", resp.Msg.Count)
		}
	})

	t.Run("find missing apartment", func(t *testing.T) {
		resp, err := c.records.FindRecord(ctx, connect.NewRequest(&api.FindRecordRequest{Apartment: "00000"}))
		if err != nil {
			t.Fatalf("FindRecord failed: %v", err)
		}
		if resp.Msg.Found || resp.Msg.Record != nil {
			t.Errorf("Expected not found, got %+v", resp.Msg)
		}
	})
}

func TestParseApartment(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		input string
		want  api.Breakdown
		valid bool
	}{
		{"12034", api.Breakdown{Tower: "12", Floor: "03", Unit: "4"}, true},
		{"123", api.Breakdown{Tower: "12", Floor: "3", Unit: ""}, false},
		{"", api.Breakdown{}, false},
		{"1234567", api.Breakdown{Tower: "12", Floor: "34", Unit: "56"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			resp, err := c.records.ParseApartment(context.Background(), connect.NewRequest(&api.ParseApartmentRequest{Apartment: tc.input}))
			if err != nil {
				t.Fatalf("ParseApartment failed: %v", err)
			}
			if resp.Msg.Breakdown != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, resp.Msg.Breakdown)
			}
			if resp.Msg.Valid != tc.valid {
				t.Errorf("Expected valid=%v, got %v (%s)", tc.valid, resp.Msg.Valid, resp.Msg.Reason)
			}
			if !tc.valid && resp.Msg.Reason == "" {
				t.Error("Expected a reason for an invalid apartment")
			}
		})
	}
}

// countingStore counts reads so tests can check that a listing and its total
// come from one snapshot.
type countingStore struct {
	*records.Store
	mu    sync.Mutex
	lists int
}

func (s *countingStore) List(ctx context.Context) ([]models.Record, error) {
	s.mu.Lock()
	s.lists++
	s.mu.Unlock()
	return s.Store.List(ctx)
}

func TestTotalsComeFromSingleRead(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{Store: records.New(memory.New())}
	for apt, amount := range map[string]string{"10101": "100.50", "20202": "250", "30303": "0.25"} {
		if _, err := store.Insert(ctx, apt, amount); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	svc := NewRecordService(store)
	want := decimal.RequireFromString("350.75")

	t.Run("ListRecords", func(t *testing.T) {
		store.lists = 0
		resp, err := svc.ListRecords(ctx, connect.NewRequest(&api.ListRecordsRequest{Search: "101"}))
		if err != nil {
			t.Fatalf("ListRecords failed: %v", err)
		}
		if store.lists != 1 {
			t.Errorf("Expected 1 store read, got %d", store.lists)
		}
		if resp.Msg.Count != 1 {
			t.Errorf("Expected 1 filtered record, got %d", resp.Msg.Count)
		}
		if !resp.Msg.Total.Equal(want) {
			t.Errorf("Expected total %s over all records, got %s", want, resp.Msg.Total)
		}
	})

	t.Run("GetTotal", func(t *testing.T) {
		store.lists = 0
		resp, err := svc.GetTotal(ctx, connect.NewRequest(&api.GetTotalRequest{}))
		if err != nil {
			t.Fatalf("GetTotal failed: %v", err)
		}
		if store.lists != 1 {
			t.Errorf("Expected 1 store read, got %d", store.lists)
		}
		if !resp.Msg.Total.Equal(want) || resp.Msg.Count != 3 {
			t.Errorf("Expected %s over 3 records, got %s over %d", want, resp.Msg.Total, resp.Msg.Count)
		}
	})
}
