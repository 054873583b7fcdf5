package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/creditline/internal/calculator"
	"github.com/mmynk/creditline/internal/customers"
	"github.com/mmynk/creditline/internal/models"
	"github.com/mmynk/creditline/internal/reminder"
	"github.com/mmynk/creditline/pkg/api"
	"github.com/mmynk/creditline/pkg/api/apiconnect"
)

// CustomerStore is the customer storage the CustomerService depends on.
type CustomerStore interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id string) (models.Customer, error)
	Add(ctx context.Context, form models.CustomerForm) (models.Customer, error)
	Update(ctx context.Context, id string, patch models.CustomerPatch) (models.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
	Transactions(ctx context.Context, customerID string) ([]models.Transaction, error)
	AddTransaction(ctx context.Context, customerID string, txType models.TransactionType, amount decimal.Decimal, notes string) (models.Transaction, error)
}

var _ CustomerStore = (*customers.Store)(nil)

// CustomerService implements the Connect CustomerService.
type CustomerService struct {
	apiconnect.UnimplementedCustomerServiceHandler
	store    CustomerStore
	notifier reminder.Notifier
}

// NewCustomerService creates a CustomerService. Reminders are handed to
// notifier.
func NewCustomerService(store CustomerStore, notifier reminder.Notifier) *CustomerService {
	return &CustomerService{store: store, notifier: notifier}
}

// parseAmountDue reads an optional opening balance. Empty means zero;
// anything else must be a plain non-negative number.
func parseAmountDue(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := calculator.ParseAmount(s)
	if err != nil {
		return decimal.Zero, &customers.FormError{Fields: map[string]string{
			"amount_due": "Amount due must be a non-negative number",
		}}
	}
	return d, nil
}

// ListCustomers returns all customers.
func (s *CustomerService) ListCustomers(ctx context.Context, req *connect.Request[api.ListCustomersRequest]) (*connect.Response[api.ListCustomersResponse], error) {
	list, err := s.store.List(ctx)
	if err != nil {
		slog.Error("ListCustomers failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Customer, len(list))
	for i, c := range list {
		out[i] = toAPICustomer(c)
	}

	slog.Debug("ListCustomers successful", "count", len(out))

	return connect.NewResponse(&api.ListCustomersResponse{Customers: out}), nil
}

// GetCustomer returns one customer.
func (s *CustomerService) GetCustomer(ctx context.Context, req *connect.Request[api.GetCustomerRequest]) (*connect.Response[api.GetCustomerResponse], error) {
	c, err := s.store.Get(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("GetCustomer failed", "customer_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetCustomerResponse{Customer: toAPICustomer(c)}), nil
}

// CreateCustomer validates the form and stores a new customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *connect.Request[api.CreateCustomerRequest]) (*connect.Response[api.CreateCustomerResponse], error) {
	slog.Info("CreateCustomer request received",
		"name", req.Msg.Name,
		"apartment_number", req.Msg.ApartmentNumber,
	)

	due, err := parseAmountDue(req.Msg.AmountDue)
	if err != nil {
		return nil, toConnectError(err)
	}
	form := models.CustomerForm{
		Name:            strings.TrimSpace(req.Msg.Name),
		ApartmentNumber: strings.TrimSpace(req.Msg.ApartmentNumber),
		PhoneNumber:     strings.TrimSpace(req.Msg.PhoneNumber),
		AmountDue:       due,
	}
	if err := customers.ValidateForm(form); err != nil {
		slog.Warn("CreateCustomer rejected", "error", err)
		return nil, toConnectError(err)
	}

	c, err := s.store.Add(ctx, form)
	if err != nil {
		slog.Error("CreateCustomer failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Customer created", "customer_id", c.ID)

	return connect.NewResponse(&api.CreateCustomerResponse{Customer: toAPICustomer(c)}), nil
}

// UpdateCustomer applies a partial update. The merged customer must still
// pass form validation.
func (s *CustomerService) UpdateCustomer(ctx context.Context, req *connect.Request[api.UpdateCustomerRequest]) (*connect.Response[api.UpdateCustomerResponse], error) {
	slog.Info("UpdateCustomer request received", "customer_id", req.Msg.Id)

	current, err := s.store.Get(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("UpdateCustomer failed", "customer_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	patch := models.CustomerPatch{
		Name:            trimmed(req.Msg.Name),
		ApartmentNumber: trimmed(req.Msg.ApartmentNumber),
		PhoneNumber:     trimmed(req.Msg.PhoneNumber),
	}
	if req.Msg.AmountDue != nil {
		due, err := parseAmountDue(*req.Msg.AmountDue)
		if err != nil {
			return nil, toConnectError(err)
		}
		patch.AmountDue = &due
	}

	merged := patch.Apply(current)
	if err := customers.ValidateForm(models.CustomerForm{
		Name:            merged.Name,
		ApartmentNumber: merged.ApartmentNumber,
		PhoneNumber:     merged.PhoneNumber,
		AmountDue:       merged.AmountDue,
	}); err != nil {
		slog.Warn("UpdateCustomer rejected", "customer_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	c, err := s.store.Update(ctx, req.Msg.Id, patch)
	if err != nil {
		slog.Error("UpdateCustomer failed", "customer_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Customer updated", "customer_id", c.ID)

	return connect.NewResponse(&api.UpdateCustomerResponse{Customer: toAPICustomer(c)}), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// DeleteCustomer removes a customer and its transactions.
func (s *CustomerService) DeleteCustomer(ctx context.Context, req *connect.Request[api.DeleteCustomerRequest]) (*connect.Response[api.DeleteCustomerResponse], error) {
	slog.Info("DeleteCustomer request received", "customer_id", req.Msg.Id)

	deleted, err := s.store.Delete(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("DeleteCustomer failed", "customer_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("DeleteCustomer finished", "customer_id", req.Msg.Id, "deleted", deleted)

	return connect.NewResponse(&api.DeleteCustomerResponse{Deleted: deleted}), nil
}

// ListTransactions returns a customer's transactions, newest first.
func (s *CustomerService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	if _, err := s.store.Get(ctx, req.Msg.CustomerId); err != nil {
		return nil, toConnectError(err)
	}

	txs, err := s.store.Transactions(ctx, req.Msg.CustomerId)
	if err != nil {
		slog.Error("ListTransactions failed", "customer_id", req.Msg.CustomerId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = toAPITransaction(tx)
	}
	return connect.NewResponse(&api.ListTransactionsResponse{Transactions: out}), nil
}

// AddTransaction records a purchase or payment and returns the customer with
// the adjusted balance.
func (s *CustomerService) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	slog.Info("AddTransaction request received",
		"customer_id", req.Msg.CustomerId,
		"type", req.Msg.Type,
		"amount", req.Msg.Amount,
	)

	if err := calculator.ValidateAmount(req.Msg.Amount); err != nil {
		slog.Warn("AddTransaction rejected", "error", err)
		return nil, toConnectError(err)
	}
	amount := calculator.ParseAmountLenient(req.Msg.Amount)

	tx, err := s.store.AddTransaction(ctx, req.Msg.CustomerId, models.TransactionType(req.Msg.Type), amount, strings.TrimSpace(req.Msg.Notes))
	if err != nil {
		slog.Error("AddTransaction failed", "customer_id", req.Msg.CustomerId, "error", err)
		return nil, toConnectError(err)
	}

	c, err := s.store.Get(ctx, req.Msg.CustomerId)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Transaction recorded",
		"transaction_id", tx.ID,
		"customer_id", c.ID,
		"amount_due", c.AmountDue.String(),
	)

	return connect.NewResponse(&api.AddTransactionResponse{
		Transaction: toAPITransaction(tx),
		Customer:    toAPICustomer(c),
	}), nil
}

// SendReminder composes a payment reminder and hands it to the notifier.
// Customers with nothing due are not reminded.
func (s *CustomerService) SendReminder(ctx context.Context, req *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error) {
	slog.Info("SendReminder request received", "customer_id", req.Msg.CustomerId)

	c, err := s.store.Get(ctx, req.Msg.CustomerId)
	if err != nil {
		slog.Error("SendReminder failed", "customer_id", req.Msg.CustomerId, "error", err)
		return nil, toConnectError(err)
	}

	r := reminder.Compose(c, req.Msg.Message)
	if calculator.StatusOf(c.AmountDue) == calculator.StatusPaid {
		slog.Info("SendReminder skipped - nothing due", "customer_id", c.ID)
		return connect.NewResponse(&api.SendReminderResponse{Sent: false, Preview: r.Message}), nil
	}

	if err := s.notifier.Send(ctx, r); err != nil {
		slog.Error("SendReminder failed - notifier", "customer_id", c.ID, "error", err)
		return nil, toConnectError(fmt.Errorf("send reminder: %w", err))
	}

	return connect.NewResponse(&api.SendReminderResponse{Sent: true, Preview: r.Message}), nil
}
