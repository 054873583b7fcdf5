// Command seed fills the configured store with random apartment records,
// customers and their purchases and payments for demos and local
// development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/creditline/internal/apartment"
	"github.com/mmynk/creditline/internal/config"
	"github.com/mmynk/creditline/internal/customers"
	"github.com/mmynk/creditline/internal/models"
	"github.com/mmynk/creditline/internal/records"
	"github.com/mmynk/creditline/internal/storage/backend"
	"github.com/mmynk/creditline/pkg/logging"
)

var names = []string{
	"Aarav Sharma", "Priya Patel", "Rohan Iyer", "Ananya Reddy", "Vikram Singh",
	"Meera Nair", "Arjun Mehta", "Kavya Rao", "Siddharth Gupta", "Divya Menon",
	"Rahul Verma", "Sneha Kulkarni", "Karan Malhotra", "Isha Joshi", "Aditya Bose",
}

func main() {
	count := flag.Int("n", 20, "number of apartment records to insert")
	customerCount := flag.Int("customers", 10, "number of customers to insert")
	txPerCustomer := flag.Int("transactions", 4, "maximum transactions per customer")
	maxAmount := flag.Int("max", 10000, "upper bound for random amounts")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if *count < 0 || *customerCount < 0 || *txPerCustomer < 0 || *maxAmount <= 0 {
		slog.Error("Counts must not be negative and -max must be positive",
			"n", *count, "customers", *customerCount, "transactions", *txPerCustomer, "max", *maxAmount)
		os.Exit(1)
	}

	ctx := context.Background()
	slot, err := backend.Open(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer slot.Close()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(*seed, *seed>>1))

	if err := seedRecords(ctx, records.New(slot), r, *count, *maxAmount); err != nil {
		slog.Error("Seeding records failed", "error", err)
		os.Exit(1)
	}
	txs, err := seedCustomers(ctx, customers.New(slot), r, *customerCount, *txPerCustomer, *maxAmount)
	if err != nil {
		slog.Error("Seeding customers failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Seeding finished",
		"records", *count,
		"customers", *customerCount,
		"transactions", txs,
		"seed", *seed,
	)
}

// randomAmount returns an amount in [1, maxAmount] with two decimal places.
func randomAmount(r *rand.Rand, maxAmount int) decimal.Decimal {
	limit := int64(maxAmount) * 100
	cents := r.Int64N(limit) + 100
	if cents > limit {
		cents = limit
	}
	return decimal.New(cents, -2)
}

// seedRecords inserts n records with random apartments and amounts in
// [1, maxAmount].
func seedRecords(ctx context.Context, store *records.Store, r *rand.Rand, n, maxAmount int) error {
	for range n {
		if _, err := store.InsertAmount(ctx, apartment.Random(r), randomAmount(r, maxAmount)); err != nil {
			return err
		}
	}
	return nil
}

// seedCustomers inserts n customers with a zero opening balance and up to
// maxTx transactions each. The first transaction is always a purchase and a
// payment never exceeds the balance due. It returns the number of
// transactions recorded.
func seedCustomers(ctx context.Context, store *customers.Store, r *rand.Rand, n, maxTx, maxAmount int) (int, error) {
	recorded := 0
	for i := range n {
		form := models.CustomerForm{
			Name:            names[i%len(names)],
			ApartmentNumber: apartment.Random(r),
			PhoneNumber:     customers.RandomPhone(r),
			AmountDue:       decimal.Zero,
		}
		if i >= len(names) {
			form.Name = fmt.Sprintf("%s %d", form.Name, i/len(names)+1)
		}
		if err := customers.ValidateForm(form); err != nil {
			return recorded, err
		}
		c, err := store.Add(ctx, form)
		if err != nil {
			return recorded, err
		}

		due := decimal.Zero
		for j := range r.IntN(maxTx + 1) {
			txType := models.TransactionPurchase
			amount := randomAmount(r, maxAmount)
			if j > 0 && due.IsPositive() && r.IntN(3) == 0 {
				txType = models.TransactionPayment
				if amount.GreaterThan(due) {
					amount = due
				}
			}
			tx, err := store.AddTransaction(ctx, c.ID, txType, amount, "")
			if err != nil {
				return recorded, err
			}
			due = due.Add(tx.Delta())
			recorded++
		}
	}
	return recorded, nil
}
