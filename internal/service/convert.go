package service

import (
	"github.com/mmynk/creditline/internal/apartment"
	"github.com/mmynk/creditline/internal/calculator"
	"github.com/mmynk/creditline/internal/models"
	"github.com/mmynk/creditline/pkg/api"
)

func toAPIBreakdown(b apartment.Breakdown) api.Breakdown {
	return api.Breakdown{Tower: b.Tower, Floor: b.Floor, Unit: b.Unit}
}

func toAPIRecord(r models.Record) *api.Record {
	return &api.Record{
		Id:        r.ID,
		Apartment: r.Apartment,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
		Status:    string(r.Status),
		Breakdown: toAPIBreakdown(apartment.Parse(r.Apartment)),
	}
}

func toAPIRecords(records []models.Record) []*api.Record {
	out := make([]*api.Record, len(records))
	for i, r := range records {
		out[i] = toAPIRecord(r)
	}
	return out
}

func toAPICustomer(c models.Customer) *api.Customer {
	status := calculator.StatusOf(c.AmountDue)
	return &api.Customer{
		Id:              c.ID,
		Name:            c.Name,
		ApartmentNumber: c.ApartmentNumber,
		PhoneNumber:     c.PhoneNumber,
		AmountDue:       c.AmountDue,
		StatusLabel:     status.Label(),
		StatusClass:     status.Class(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toAPITransaction(tx models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:         tx.ID,
		CustomerId: tx.CustomerID,
		Amount:     tx.Amount,
		Type:       string(tx.Type),
		Notes:      tx.Notes,
		CreatedAt:  tx.CreatedAt,
	}
}
