package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/creditline/internal/apartment"
	"github.com/mmynk/creditline/internal/calculator"
	"github.com/mmynk/creditline/internal/models"
	"github.com/mmynk/creditline/internal/records"
	"github.com/mmynk/creditline/pkg/api"
	"github.com/mmynk/creditline/pkg/api/apiconnect"
)

// RecordStore is the record storage the RecordService depends on.
type RecordStore interface {
	List(ctx context.Context) ([]models.Record, error)
	Insert(ctx context.Context, apartment string, amount string) (models.Record, error)
	UpdateByID(ctx context.Context, id string, patch models.RecordPatch) (models.Record, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindByApartment(ctx context.Context, apartment string) (models.Record, bool, error)
}

var _ RecordStore = (*records.Store)(nil)

// RecordService implements the Connect RecordService.
// Request fields are validated strictly here before they reach the store,
// which itself parses leniently.
type RecordService struct {
	apiconnect.UnimplementedRecordServiceHandler
	store RecordStore
}

// NewRecordService creates a new RecordService with the given storage backend.
func NewRecordService(store RecordStore) *RecordService {
	return &RecordService{store: store}
}

// validateEntry applies the form rules to an apartment/amount pair.
func validateEntry(apt, amount string) error {
	if err := apartment.Validate(apt); err != nil {
		return err
	}
	return calculator.ValidateAmount(amount)
}

// ListRecords returns the records matching the request, plus the total over
// all records. Both come from a single read of the store.
func (s *RecordService) ListRecords(ctx context.Context, req *connect.Request[api.ListRecordsRequest]) (*connect.Response[api.ListRecordsResponse], error) {
	slog.Info("ListRecords request received",
		"search", req.Msg.Search,
		"sort_by", req.Msg.SortBy,
		"descending", req.Msg.Descending,
	)

	sortBy, err := records.ParseSortKey(req.Msg.SortBy)
	if err != nil {
		return nil, toConnectError(fmt.Errorf("%w: %v", errInvalidArgument, err))
	}

	all, err := s.store.List(ctx)
	if err != nil {
		slog.Error("ListRecords failed", "error", err)
		return nil, toConnectError(err)
	}
	total := calculator.SumRecords(all)

	q := records.Query{Search: req.Msg.Search, SortBy: sortBy, Descending: req.Msg.Descending}
	listed := q.Apply(all)

	slog.Info("ListRecords successful", "count", len(listed), "stored", len(all))

	return connect.NewResponse(&api.ListRecordsResponse{
		Records: toAPIRecords(listed),
		Total:   total,
		Count:   len(listed),
	}), nil
}

// CreateRecord validates and stores a new pending record. An earlier record
// for the same apartment is reported but does not block the insert.
func (s *RecordService) CreateRecord(ctx context.Context, req *connect.Request[api.CreateRecordRequest]) (*connect.Response[api.CreateRecordResponse], error) {
	slog.Info("CreateRecord request received", "apartment", req.Msg.Apartment, "amount", req.Msg.Amount)

	if err := validateEntry(req.Msg.Apartment, req.Msg.Amount); err != nil {
		slog.Warn("CreateRecord rejected", "error", err)
		return nil, toConnectError(err)
	}

	apt := strings.TrimSpace(req.Msg.Apartment)
	existing, found, err := s.store.FindByApartment(ctx, apt)
	if err != nil {
		slog.Error("CreateRecord failed - duplicate lookup", "error", err)
		return nil, toConnectError(err)
	}

	record, err := s.store.Insert(ctx, apt, strings.TrimSpace(req.Msg.Amount))
	if err != nil {
		slog.Error("CreateRecord failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Record created", "record_id", record.ID, "duplicate", found)

	resp := &api.CreateRecordResponse{Record: toAPIRecord(record)}
	if found {
		resp.Existing = toAPIRecord(existing)
	}
	return connect.NewResponse(resp), nil
}

// UpdateRecord applies a partial update to an existing record.
func (s *RecordService) UpdateRecord(ctx context.Context, req *connect.Request[api.UpdateRecordRequest]) (*connect.Response[api.UpdateRecordResponse], error) {
	slog.Info("UpdateRecord request received", "record_id", req.Msg.Id)

	patch, err := recordPatch(req.Msg)
	if err != nil {
		slog.Warn("UpdateRecord rejected", "record_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	record, err := s.store.UpdateByID(ctx, req.Msg.Id, patch)
	if err != nil {
		slog.Error("UpdateRecord failed", "record_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Record updated", "record_id", record.ID, "status", record.Status)

	return connect.NewResponse(&api.UpdateRecordResponse{Record: toAPIRecord(record)}), nil
}

// recordPatch converts an update request into a typed patch, validating
// every supplied field.
func recordPatch(msg *api.UpdateRecordRequest) (models.RecordPatch, error) {
	var patch models.RecordPatch
	if msg.Id == "" {
		return patch, fmt.Errorf("%w: id required", errInvalidArgument)
	}

	if msg.Apartment != nil {
		if err := apartment.Validate(*msg.Apartment); err != nil {
			return patch, err
		}
		apt := strings.TrimSpace(*msg.Apartment)
		patch.Apartment = &apt
	}
	if msg.Amount != nil {
		if err := calculator.ValidateAmount(*msg.Amount); err != nil {
			return patch, err
		}
		amount := calculator.ParseAmountLenient(*msg.Amount)
		patch.Amount = &amount
	}
	if msg.Status != nil {
		status := models.RecordStatus(*msg.Status)
		if !status.Valid() {
			return patch, fmt.Errorf("%w: unknown status %q", errInvalidArgument, *msg.Status)
		}
		patch.Status = &status
	}
	if patch.IsEmpty() {
		return patch, fmt.Errorf("%w: no fields to update", errInvalidArgument)
	}
	return patch, nil
}

// MarkPaid moves a record to the paid status.
func (s *RecordService) MarkPaid(ctx context.Context, req *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error) {
	slog.Info("MarkPaid request received", "record_id", req.Msg.Id)

	paid := models.StatusPaid
	record, err := s.store.UpdateByID(ctx, req.Msg.Id, models.RecordPatch{Status: &paid})
	if err != nil {
		slog.Error("MarkPaid failed", "record_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Record marked paid", "record_id", record.ID)

	return connect.NewResponse(&api.MarkPaidResponse{Record: toAPIRecord(record)}), nil
}

// DeleteRecord removes a record. Deleting an unknown id is not an error; the
// response reports deleted=false.
func (s *RecordService) DeleteRecord(ctx context.Context, req *connect.Request[api.DeleteRecordRequest]) (*connect.Response[api.DeleteRecordResponse], error) {
	slog.Info("DeleteRecord request received", "record_id", req.Msg.Id)

	deleted, err := s.store.DeleteByID(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("DeleteRecord failed", "record_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("DeleteRecord finished", "record_id", req.Msg.Id, "deleted", deleted)

	return connect.NewResponse(&api.DeleteRecordResponse{Deleted: deleted}), nil
}

// ReplaceRecord deletes the record Id and inserts a fresh one. It is used
// when a user re-enters the amount for an apartment that already has a
// record.
func (s *RecordService) ReplaceRecord(ctx context.Context, req *connect.Request[api.ReplaceRecordRequest]) (*connect.Response[api.ReplaceRecordResponse], error) {
	slog.Info("ReplaceRecord request received",
		"record_id", req.Msg.Id,
		"apartment", req.Msg.Apartment,
		"amount", req.Msg.Amount,
	)

	if req.Msg.Id == "" {
		return nil, toConnectError(fmt.Errorf("%w: id required", errInvalidArgument))
	}
	if err := validateEntry(req.Msg.Apartment, req.Msg.Amount); err != nil {
		slog.Warn("ReplaceRecord rejected", "error", err)
		return nil, toConnectError(err)
	}

	removed, err := s.store.DeleteByID(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("ReplaceRecord failed - delete", "record_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	record, err := s.store.Insert(ctx, strings.TrimSpace(req.Msg.Apartment), strings.TrimSpace(req.Msg.Amount))
	if err != nil {
		slog.Error("ReplaceRecord failed - insert", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Record replaced", "previous_id", req.Msg.Id, "record_id", record.ID, "previous_removed", removed)

	return connect.NewResponse(&api.ReplaceRecordResponse{
		Record:          toAPIRecord(record),
		PreviousRemoved: removed,
	}), nil
}

// GetTotal returns the sum over all stored records.
func (s *RecordService) GetTotal(ctx context.Context, req *connect.Request[api.GetTotalRequest]) (*connect.Response[api.GetTotalResponse], error) {
	all, err := s.store.List(ctx)
	if err != nil {
		slog.Error("GetTotal failed", "error", err)
		return nil, toConnectError(err)
	}
	total := calculator.SumRecords(all)

	slog.Debug("GetTotal successful", "total", total.String(), "count", len(all))

	return connect.NewResponse(&api.GetTotalResponse{Total: total, Count: len(all)}), nil
}

// FindRecord looks up the first record for an apartment.
func (s *RecordService) FindRecord(ctx context.Context, req *connect.Request[api.FindRecordRequest]) (*connect.Response[api.FindRecordResponse], error) {
	slog.Info("FindRecord request received", "apartment", req.Msg.Apartment)

	record, found, err := s.store.FindByApartment(ctx, req.Msg.Apartment)
	if err != nil {
		slog.Error("FindRecord failed", "apartment", req.Msg.Apartment, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.FindRecordResponse{Found: found}
	if found {
		resp.Record = toAPIRecord(record)
	}
	return connect.NewResponse(resp), nil
}

// ParseApartment decodes an apartment number and reports whether it would
// pass form validation. Decoding never fails.
func (s *RecordService) ParseApartment(ctx context.Context, req *connect.Request[api.ParseApartmentRequest]) (*connect.Response[api.ParseApartmentResponse], error) {
	resp := &api.ParseApartmentResponse{
		Breakdown: toAPIBreakdown(apartment.Parse(req.Msg.Apartment)),
		Valid:     true,
	}
	if err := apartment.Validate(req.Msg.Apartment); err != nil {
		resp.Valid = false
		resp.Reason = err.Error()
	}
	return connect.NewResponse(resp), nil
}
