// Package models defines the core domain models for the credit line ledger.
//
// # Models
//
//   - Record: an apartment/amount entry with a pending or paid status
//   - Customer: a resident with a running balance
//   - Transaction: a purchase or payment against a customer
//
// Partial updates use patch structs whose fields are all pointers; a nil
// field means "leave unchanged". Identity fields (ID, CreatedAt) are never
// part of a patch.
//
// Amounts are decimals (github.com/shopspring/decimal) so that sums of
// currency values stay exact. Models carry JSON tags because whole
// collections are serialized into a single storage slot.
package models
