package btctrack

import (
	"iter"
	"sort"
)

// Ledger represents the canonical set of imported transactions.
//
// In a Ledger transactions are always in chronological order, and every
// transaction ID appears at most once: appending a transaction whose ID is
// already present is silently ignored, which makes re-importing an export
// file idempotent.
type Ledger struct {
	transactions []Transaction
	index        map[string]struct{} // transaction IDs already present
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]struct{})}
}

// Append adds transactions to the ledger, skipping any whose ID is already
// present. It returns the number of transactions actually added.
func (l *Ledger) Append(txs ...Transaction) (added int) {
	for _, tx := range txs {
		if _, dup := l.index[tx.ID]; dup {
			continue
		}
		l.index[tx.ID] = struct{}{}
		l.transactions = append(l.transactions, tx)
		added++
	}
	l.stableSort()
	return added
}

// Has reports whether a transaction with this ID has already been imported.
func (l *Ledger) Has(id string) bool {
	_, ok := l.index[id]
	return ok
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// All returns a copy of all transactions in chronological order.
func (l *Ledger) All() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// BTC returns the bitcoin-denominated transactions in chronological order.
func (l *Ledger) BTC() []Transaction {
	var out []Transaction
	for _, tx := range l.transactions {
		if tx.IsBTC() {
			out = append(out, tx)
		}
	}
	return out
}

// stableSort keeps the ledger chronological. Pending transactions
// (timestamp 0) naturally sort first; ties keep their insertion order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Timestamp < l.transactions[j].Timestamp
	})
}
