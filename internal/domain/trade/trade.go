// Package trade models executed trades as immutable transaction records
// collected in an append-only ledger.
package trade

import (
	"iter"
	"time"

	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/Ddemon26/recordkit/internal/domain/record"
	"github.com/Ddemon26/recordkit/internal/domain/values"
)

var shape = record.MustShape("Transaction",
	record.Field{Name: "ID", Kind: record.KindString},
	record.Field{Name: "Item", Kind: record.KindString},
	record.Field{Name: "Price", Kind: record.KindInt},
	record.Field{Name: "ExecutedAt", Kind: record.KindTime},
)

// Shape returns the Transaction record shape.
func Shape() *record.Shape { return shape }

// Transaction is one executed trade. Once recorded it never changes;
// corrections are new transactions.
type Transaction struct {
	rec record.Record
}

// NewTransaction creates a transaction with a fresh random ID.
func NewTransaction(item string, price int64, executedAt time.Time) Transaction {
	return Transaction{rec: record.MustNew(shape,
		record.String(values.NewTransactionID().String()),
		record.String(item),
		record.Int(price),
		record.NewTime(executedAt),
	)}
}

// FromRecord wraps an existing Transaction-shaped record.
func FromRecord(r record.Record) (Transaction, error) {
	if err := r.Conforms(shape); err != nil {
		return Transaction{}, err
	}
	return Transaction{rec: r}, nil
}

// ID returns the transaction identifier.
func (t Transaction) ID() (values.TransactionID, error) {
	return values.ParseTransactionID(string(t.rec.MustGet("ID").(record.String)))
}

// Item returns the traded item name.
func (t Transaction) Item() string { return string(t.rec.MustGet("Item").(record.String)) }

// Price returns the agreed price in gold.
func (t Transaction) Price() int64 { return int64(t.rec.MustGet("Price").(record.Int)) }

// ExecutedAt returns the execution timestamp.
func (t Transaction) ExecutedAt() time.Time {
	return t.rec.MustGet("ExecutedAt").(record.Time).Std()
}

// Record returns the underlying record.
func (t Transaction) Record() record.Record { return t.rec }

// Equals reports structural equality.
func (t Transaction) Equals(other Transaction) bool { return t.rec.Equals(other.rec) }

// String renders the transaction.
func (t Transaction) String() string { return t.rec.String() }

// Ledger is the append-only trade history. Entries keep their insertion
// order and are never removed.
type Ledger struct {
	log *collection.Log[Transaction]
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{log: collection.NewLog[Transaction]()}
}

// Record appends a transaction and returns its ledger index.
func (l *Ledger) Record(tx Transaction) int {
	return l.log.Append(tx)
}

// At returns the transaction at a ledger index.
func (l *Ledger) At(index int) (Transaction, error) {
	return l.log.At(index)
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return l.log.Len() }

// All iterates (index, transaction) pairs in insertion order.
func (l *Ledger) All() iter.Seq2[int, Transaction] {
	return l.log.All()
}

// Volume sums the prices of every recorded transaction.
func (l *Ledger) Volume() int64 {
	var total int64
	for _, tx := range l.log.All() {
		total += tx.Price()
	}
	return total
}
