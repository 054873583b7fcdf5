package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/creditline/pkg/api"
)

// CustomerServiceName is the fully-qualified name of the CustomerService.
const CustomerServiceName = "creditline.v1.CustomerService"

// Procedure paths of the CustomerService.
const (
	CustomerServiceListCustomersProcedure    = "/creditline.v1.CustomerService/ListCustomers"
	CustomerServiceGetCustomerProcedure      = "/creditline.v1.CustomerService/GetCustomer"
	CustomerServiceCreateCustomerProcedure   = "/creditline.v1.CustomerService/CreateCustomer"
	CustomerServiceUpdateCustomerProcedure   = "/creditline.v1.CustomerService/UpdateCustomer"
	CustomerServiceDeleteCustomerProcedure   = "/creditline.v1.CustomerService/DeleteCustomer"
	CustomerServiceListTransactionsProcedure = "/creditline.v1.CustomerService/ListTransactions"
	CustomerServiceAddTransactionProcedure   = "/creditline.v1.CustomerService/AddTransaction"
	CustomerServiceSendReminderProcedure     = "/creditline.v1.CustomerService/SendReminder"
)

// CustomerServiceHandler is implemented by the server side of the CustomerService.
// It manages customers, their transactions and payment reminders.
type CustomerServiceHandler interface {
	ListCustomers(context.Context, *connect.Request[api.ListCustomersRequest]) (*connect.Response[api.ListCustomersResponse], error)
	GetCustomer(context.Context, *connect.Request[api.GetCustomerRequest]) (*connect.Response[api.GetCustomerResponse], error)
	CreateCustomer(context.Context, *connect.Request[api.CreateCustomerRequest]) (*connect.Response[api.CreateCustomerResponse], error)
	UpdateCustomer(context.Context, *connect.Request[api.UpdateCustomerRequest]) (*connect.Response[api.UpdateCustomerResponse], error)
	DeleteCustomer(context.Context, *connect.Request[api.DeleteCustomerRequest]) (*connect.Response[api.DeleteCustomerResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	SendReminder(context.Context, *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error)
}

// NewCustomerServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewCustomerServiceHandler(svc CustomerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(CustomerServiceListCustomersProcedure, connect.NewUnaryHandler(CustomerServiceListCustomersProcedure, svc.ListCustomers, opts...))
	mux.Handle(CustomerServiceGetCustomerProcedure, connect.NewUnaryHandler(CustomerServiceGetCustomerProcedure, svc.GetCustomer, opts...))
	mux.Handle(CustomerServiceCreateCustomerProcedure, connect.NewUnaryHandler(CustomerServiceCreateCustomerProcedure, svc.CreateCustomer, opts...))
	mux.Handle(CustomerServiceUpdateCustomerProcedure, connect.NewUnaryHandler(CustomerServiceUpdateCustomerProcedure, svc.UpdateCustomer, opts...))
	mux.Handle(CustomerServiceDeleteCustomerProcedure, connect.NewUnaryHandler(CustomerServiceDeleteCustomerProcedure, svc.DeleteCustomer, opts...))
	mux.Handle(CustomerServiceListTransactionsProcedure, connect.NewUnaryHandler(CustomerServiceListTransactionsProcedure, svc.ListTransactions, opts...))
	mux.Handle(CustomerServiceAddTransactionProcedure, connect.NewUnaryHandler(CustomerServiceAddTransactionProcedure, svc.AddTransaction, opts...))
	mux.Handle(CustomerServiceSendReminderProcedure, connect.NewUnaryHandler(CustomerServiceSendReminderProcedure, svc.SendReminder, opts...))
	return "/" + CustomerServiceName + "/", mux
}

// UnimplementedCustomerServiceHandler returns CodeUnimplemented from every method.
type UnimplementedCustomerServiceHandler struct{}

func (UnimplementedCustomerServiceHandler) ListCustomers(context.Context, *connect.Request[api.ListCustomersRequest]) (*connect.Response[api.ListCustomersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.ListCustomers is not implemented"))
}

func (UnimplementedCustomerServiceHandler) GetCustomer(context.Context, *connect.Request[api.GetCustomerRequest]) (*connect.Response[api.GetCustomerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.GetCustomer is not implemented"))
}

func (UnimplementedCustomerServiceHandler) CreateCustomer(context.Context, *connect.Request[api.CreateCustomerRequest]) (*connect.Response[api.CreateCustomerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.CreateCustomer is not implemented"))
}

func (UnimplementedCustomerServiceHandler) UpdateCustomer(context.Context, *connect.Request[api.UpdateCustomerRequest]) (*connect.Response[api.UpdateCustomerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.UpdateCustomer is not implemented"))
}

func (UnimplementedCustomerServiceHandler) DeleteCustomer(context.Context, *connect.Request[api.DeleteCustomerRequest]) (*connect.Response[api.DeleteCustomerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.DeleteCustomer is not implemented"))
}

func (UnimplementedCustomerServiceHandler) ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.ListTransactions is not implemented"))
}

func (UnimplementedCustomerServiceHandler) AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.AddTransaction is not implemented"))
}

func (UnimplementedCustomerServiceHandler) SendReminder(context.Context, *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("creditline.v1.CustomerService.SendReminder is not implemented"))
}

// CustomerServiceClient is a client for the CustomerService.
type CustomerServiceClient interface {
	ListCustomers(context.Context, *connect.Request[api.ListCustomersRequest]) (*connect.Response[api.ListCustomersResponse], error)
	GetCustomer(context.Context, *connect.Request[api.GetCustomerRequest]) (*connect.Response[api.GetCustomerResponse], error)
	CreateCustomer(context.Context, *connect.Request[api.CreateCustomerRequest]) (*connect.Response[api.CreateCustomerResponse], error)
	UpdateCustomer(context.Context, *connect.Request[api.UpdateCustomerRequest]) (*connect.Response[api.UpdateCustomerResponse], error)
	DeleteCustomer(context.Context, *connect.Request[api.DeleteCustomerRequest]) (*connect.Response[api.DeleteCustomerResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	SendReminder(context.Context, *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error)
}

type customerServiceClient struct {
	listCustomers    *connect.Client[api.ListCustomersRequest, api.ListCustomersResponse]
	getCustomer      *connect.Client[api.GetCustomerRequest, api.GetCustomerResponse]
	createCustomer   *connect.Client[api.CreateCustomerRequest, api.CreateCustomerResponse]
	updateCustomer   *connect.Client[api.UpdateCustomerRequest, api.UpdateCustomerResponse]
	deleteCustomer   *connect.Client[api.DeleteCustomerRequest, api.DeleteCustomerResponse]
	listTransactions *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	addTransaction   *connect.Client[api.AddTransactionRequest, api.AddTransactionResponse]
	sendReminder     *connect.Client[api.SendReminderRequest, api.SendReminderResponse]
}

// NewCustomerServiceClient returns a client for the CustomerService served at baseURL
// (for example, http://localhost:8080).
func NewCustomerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CustomerServiceClient {
	opts = clientOptions(opts)
	return &customerServiceClient{
		listCustomers:    connect.NewClient[api.ListCustomersRequest, api.ListCustomersResponse](httpClient, baseURL+CustomerServiceListCustomersProcedure, opts...),
		getCustomer:      connect.NewClient[api.GetCustomerRequest, api.GetCustomerResponse](httpClient, baseURL+CustomerServiceGetCustomerProcedure, opts...),
		createCustomer:   connect.NewClient[api.CreateCustomerRequest, api.CreateCustomerResponse](httpClient, baseURL+CustomerServiceCreateCustomerProcedure, opts...),
		updateCustomer:   connect.NewClient[api.UpdateCustomerRequest, api.UpdateCustomerResponse](httpClient, baseURL+CustomerServiceUpdateCustomerProcedure, opts...),
		deleteCustomer:   connect.NewClient[api.DeleteCustomerRequest, api.DeleteCustomerResponse](httpClient, baseURL+CustomerServiceDeleteCustomerProcedure, opts...),
		listTransactions: connect.NewClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL+CustomerServiceListTransactionsProcedure, opts...),
		addTransaction:   connect.NewClient[api.AddTransactionRequest, api.AddTransactionResponse](httpClient, baseURL+CustomerServiceAddTransactionProcedure, opts...),
		sendReminder:     connect.NewClient[api.SendReminderRequest, api.SendReminderResponse](httpClient, baseURL+CustomerServiceSendReminderProcedure, opts...),
	}
}

func (c *customerServiceClient) ListCustomers(ctx context.Context, req *connect.Request[api.ListCustomersRequest]) (*connect.Response[api.ListCustomersResponse], error) {
	return c.listCustomers.CallUnary(ctx, req)
}

func (c *customerServiceClient) GetCustomer(ctx context.Context, req *connect.Request[api.GetCustomerRequest]) (*connect.Response[api.GetCustomerResponse], error) {
	return c.getCustomer.CallUnary(ctx, req)
}

func (c *customerServiceClient) CreateCustomer(ctx context.Context, req *connect.Request[api.CreateCustomerRequest]) (*connect.Response[api.CreateCustomerResponse], error) {
	return c.createCustomer.CallUnary(ctx, req)
}

func (c *customerServiceClient) UpdateCustomer(ctx context.Context, req *connect.Request[api.UpdateCustomerRequest]) (*connect.Response[api.UpdateCustomerResponse], error) {
	return c.updateCustomer.CallUnary(ctx, req)
}

func (c *customerServiceClient) DeleteCustomer(ctx context.Context, req *connect.Request[api.DeleteCustomerRequest]) (*connect.Response[api.DeleteCustomerResponse], error) {
	return c.deleteCustomer.CallUnary(ctx, req)
}

func (c *customerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *customerServiceClient) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	return c.addTransaction.CallUnary(ctx, req)
}

func (c *customerServiceClient) SendReminder(ctx context.Context, req *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error) {
	return c.sendReminder.CallUnary(ctx, req)
}
