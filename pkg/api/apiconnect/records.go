package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/creditline/pkg/api"
)

// RecordServiceName is the fully-qualified name of the RecordService.
const RecordServiceName = "creditline.v1.RecordService"

// Procedure paths of the RecordService.
const (
	RecordServiceListRecordsProcedure    = "/creditline.v1.RecordService/ListRecords"
	RecordServiceCreateRecordProcedure   = "/creditline.v1.RecordService/CreateRecord"
	RecordServiceUpdateRecordProcedure   = "/creditline.v1.RecordService/UpdateRecord"
	RecordServiceMarkPaidProcedure       = "/creditline.v1.RecordService/MarkPaid"
	RecordServiceDeleteRecordProcedure   = "/creditline.v1.RecordService/DeleteRecord"
	RecordServiceReplaceRecordProcedure  = "/creditline.v1.RecordService/ReplaceRecord"
	RecordServiceGetTotalProcedure       = "/creditline.v1.RecordService/GetTotal"
	RecordServiceFindRecordProcedure     = "/creditline.v1.RecordService/FindRecord"
	RecordServiceParseApartmentProcedure = "/creditline.v1.RecordService/ParseApartment"
)

// RecordServiceHandler is implemented by the server side of the RecordService.
// It manages apartment records and their running total.
type RecordServiceHandler interface {
	ListRecords(context.Context, *connect.Request[api.ListRecordsRequest]) (*connect.Response[api.ListRecordsResponse], error)
	CreateRecord(context.Context, *connect.Request[api.CreateRecordRequest]) (*connect.Response[api.CreateRecordResponse], error)
	UpdateRecord(context.Context, *connect.Request[api.UpdateRecordRequest]) (*connect.Response[api.UpdateRecordResponse], error)
	MarkPaid(context.Context, *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error)
	DeleteRecord(context.Context, *connect.Request[api.DeleteRecordRequest]) (*connect.Response[api.DeleteRecordResponse], error)
	ReplaceRecord(context.Context, *connect.Request[api.ReplaceRecordRequest]) (*connect.Response[api.ReplaceRecordResponse], error)
	GetTotal(context.Context, *connect.Request[api.GetTotalRequest]) (*connect.Response[api.GetTotalResponse], error)
	FindRecord(context.Context, *connect.Request[api.FindRecordRequest]) (*connect.Response[api.FindRecordResponse], error)
	ParseApartment(context.Context, *connect.Request[api.ParseApartmentRequest]) (*connect.Response[api.ParseApartmentResponse], error)
}

// NewRecordServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewRecordServiceHandler(svc RecordServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(RecordServiceListRecordsProcedure, connect.NewUnaryHandler(RecordServiceListRecordsProcedure, svc.ListRecords, opts...))
	mux.Handle(RecordServiceCreateRecordProcedure, connect.NewUnaryHandler(RecordServiceCreateRecordProcedure, svc.CreateRecord, opts...))
	mux.Handle(RecordServiceUpdateRecordProcedure, connect.NewUnaryHandler(RecordServiceUpdateRecordProcedure, svc.UpdateRecord, opts...))
	mux.Handle(RecordServiceMarkPaidProcedure, connect.NewUnaryHandler(RecordServiceMarkPaidProcedure, svc.MarkPaid, opts...))
	mux.Handle(RecordServiceDeleteRecordProcedure, connect.NewUnaryHandler(RecordServiceDeleteRecordProcedure, svc.DeleteRecord, opts...))
	mux.Handle(RecordServiceReplaceRecordProcedure, connect.NewUnaryHandler(RecordServiceReplaceRecordProcedure, svc.ReplaceRecord, opts...))
	mux.Handle(RecordServiceGetTotalProcedure, connect.NewUnaryHandler(RecordServiceGetTotalProcedure, svc.GetTotal, opts...))
	mux.Handle(RecordServiceFindRecordProcedure, connect.NewUnaryHandler(RecordServiceFindRecordProcedure, svc.FindRecord, opts...))
	mux.Handle(RecordServiceParseApartmentProcedure, connect.NewUnaryHandler(RecordServiceParseApartmentProcedure, svc.ParseApartment, opts...))
	return "/" + RecordServiceName + "/", mux
}

// UnimplementedRecordServiceHandler returns CodeUnimplemented from every method.
type UnimplementedRecordServiceHandler struct{}

func (UnimplementedRecordServiceHandler) ListRecords(context.Context, *connect.Request[api.ListRecordsRequest]) (*connect.Response[api.ListRecordsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.ListRecords is not implemented"))
}

func (UnimplementedRecordServiceHandler) CreateRecord(context.Context, *connect.Request[api.CreateRecordRequest]) (*connect.Response[api.CreateRecordResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.CreateRecord is not implemented"))
}

func (UnimplementedRecordServiceHandler) UpdateRecord(context.Context, *connect.Request[api.UpdateRecordRequest]) (*connect.Response[api.UpdateRecordResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.UpdateRecord is not implemented"))
}

func (UnimplementedRecordServiceHandler) MarkPaid(context.Context, *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.MarkPaid is not implemented"))
}

func (UnimplementedRecordServiceHandler) DeleteRecord(context.Context, *connect.Request[api.DeleteRecordRequest]) (*connect.Response[api.DeleteRecordResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.DeleteRecord is not implemented"))
}

func (UnimplementedRecordServiceHandler) ReplaceRecord(context.Context, *connect.Request[api.ReplaceRecordRequest]) (*connect.Response[api.ReplaceRecordResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.ReplaceRecord is not implemented"))
}

func (UnimplementedRecordServiceHandler) GetTotal(context.Context, *connect.Request[api.GetTotalRequest]) (*connect.Response[api.GetTotalResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.GetTotal is not implemented"))
}

func (UnimplementedRecordServiceHandler) FindRecord(context.Context, *connect.Request[api.FindRecordRequest]) (*connect.Response[api.FindRecordResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.FindRecord is not implemented"))
}

func (UnimplementedRecordServiceHandler) ParseApartment(context.Context, *connect.Request[api.ParseApartmentRequest]) (*connect.Response[api.ParseApartmentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.RecordService.ParseApartment is not implemented"))
}

// RecordServiceClient is a client for the RecordService.
type RecordServiceClient interface {
	ListRecords(context.Context, *connect.Request[api.ListRecordsRequest]) (*connect.Response[api.ListRecordsResponse], error)
	CreateRecord(context.Context, *connect.Request[api.CreateRecordRequest]) (*connect.Response[api.CreateRecordResponse], error)
	UpdateRecord(context.Context, *connect.Request[api.UpdateRecordRequest]) (*connect.Response[api.UpdateRecordResponse], error)
	MarkPaid(context.Context, *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error)
	DeleteRecord(context.Context, *connect.Request[api.DeleteRecordRequest]) (*connect.Response[api.DeleteRecordResponse], error)
	ReplaceRecord(context.Context, *connect.Request[api.ReplaceRecordRequest]) (*connect.Response[api.ReplaceRecordResponse], error)
	GetTotal(context.Context, *connect.Request[api.GetTotalRequest]) (*connect.Response[api.GetTotalResponse], error)
	FindRecord(context.Context, *connect.Request[api.FindRecordRequest]) (*connect.Response[api.FindRecordResponse], error)
	ParseApartment(context.Context, *connect.Request[api.ParseApartmentRequest]) (*connect.Response[api.ParseApartmentResponse], error)
}

type recordServiceClient struct {
	listRecords    *connect.Client[api.ListRecordsRequest, api.ListRecordsResponse]
	createRecord   *connect.Client[api.CreateRecordRequest, api.CreateRecordResponse]
	updateRecord   *connect.Client[api.UpdateRecordRequest, api.UpdateRecordResponse]
	markPaid       *connect.Client[api.MarkPaidRequest, api.MarkPaidResponse]
	deleteRecord   *connect.Client[api.DeleteRecordRequest, api.DeleteRecordResponse]
	replaceRecord  *connect.Client[api.ReplaceRecordRequest, api.ReplaceRecordResponse]
	getTotal       *connect.Client[api.GetTotalRequest, api.GetTotalResponse]
	findRecord     *connect.Client[api.FindRecordRequest, api.FindRecordResponse]
	parseApartment *connect.Client[api.ParseApartmentRequest, api.ParseApartmentResponse]
}

// NewRecordServiceClient returns a client for the RecordService served at baseURL
// (for example, http://localhost:8080).
func NewRecordServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RecordServiceClient {
	opts = clientOptions(opts)
	return &recordServiceClient{
		listRecords:    connect.NewClient[api.ListRecordsRequest, api.ListRecordsResponse](httpClient, baseURL+RecordServiceListRecordsProcedure, opts...),
		createRecord:   connect.NewClient[api.CreateRecordRequest, api.CreateRecordResponse](httpClient, baseURL+RecordServiceCreateRecordProcedure, opts...),
		updateRecord:   connect.NewClient[api.UpdateRecordRequest, api.UpdateRecordResponse](httpClient, baseURL+RecordServiceUpdateRecordProcedure, opts...),
		markPaid:       connect.NewClient[api.MarkPaidRequest, api.MarkPaidResponse](httpClient, baseURL+RecordServiceMarkPaidProcedure, opts...),
		deleteRecord:   connect.NewClient[api.DeleteRecordRequest, api.DeleteRecordResponse](httpClient, baseURL+RecordServiceDeleteRecordProcedure, opts...),
		replaceRecord:  connect.NewClient[api.ReplaceRecordRequest, api.ReplaceRecordResponse](httpClient, baseURL+RecordServiceReplaceRecordProcedure, opts...),
		getTotal:       connect.NewClient[api.GetTotalRequest, api.GetTotalResponse](httpClient, baseURL+RecordServiceGetTotalProcedure, opts...),
		findRecord:     connect.NewClient[api.FindRecordRequest, api.FindRecordResponse](httpClient, baseURL+RecordServiceFindRecordProcedure, opts...),
		parseApartment: connect.NewClient[api.ParseApartmentRequest, api.ParseApartmentResponse](httpClient, baseURL+RecordServiceParseApartmentProcedure, opts...),
	}
}

func (c *recordServiceClient) ListRecords(ctx context.Context, req *connect.Request[api.ListRecordsRequest]) (*connect.Response[api.ListRecordsResponse], error) {
	return c.listRecords.CallUnary(ctx, req)
}

func (c *recordServiceClient) CreateRecord(ctx context.Context, req *connect.Request[api.CreateRecordRequest]) (*connect.Response[api.CreateRecordResponse], error) {
	return c.createRecord.CallUnary(ctx, req)
}

func (c *recordServiceClient) UpdateRecord(ctx context.Context, req *connect.Request[api.UpdateRecordRequest]) (*connect.Response[api.UpdateRecordResponse], error) {
	return c.updateRecord.CallUnary(ctx, req)
}

func (c *recordServiceClient) MarkPaid(ctx context.Context, req *connect.Request[api.MarkPaidRequest]) (*connect.Response[api.MarkPaidResponse], error) {
	return c.markPaid.CallUnary(ctx, req)
}

func (c *recordServiceClient) DeleteRecord(ctx context.Context, req *connect.Request[api.DeleteRecordRequest]) (*connect.Response[api.DeleteRecordResponse], error) {
	return c.deleteRecord.CallUnary(ctx, req)
}

func (c *recordServiceClient) ReplaceRecord(ctx context.Context, req *connect.Request[api.ReplaceRecordRequest]) (*connect.Response[api.ReplaceRecordResponse], error) {
	return c.replaceRecord.CallUnary(ctx, req)
}

func (c *recordServiceClient) GetTotal(ctx context.Context, req *connect.Request[api.GetTotalRequest]) (*connect.Response[api.GetTotalResponse], error) {
	return c.getTotal.CallUnary(ctx, req)
}

func (c *recordServiceClient) FindRecord(ctx context.Context, req *connect.Request[api.FindRecordRequest]) (*connect.Response[api.FindRecordResponse], error) {
	return c.findRecord.CallUnary(ctx, req)
}

func (c *recordServiceClient) ParseApartment(ctx context.Context, req *connect.Request[api.ParseApartmentRequest]) (*connect.Response[api.ParseApartmentResponse], error) {
	return c.parseApartment.CallUnary(ctx, req)
}
