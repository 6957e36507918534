package btctrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// this file handles the ledger on-wire format used by collaborators to
// persist the canonical transaction set. It is a JSONL file, one
// transaction object per line, human readable and easy to diff or merge.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the ledger to 'w' in the JSONL format, one
// transaction per line, chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTransaction appends a single transaction line to 'w'.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot marshal transaction %q: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write transaction %q: %w", tx.ID, err)
	}
	return nil
}

// DecodeLedger reads a JSONL stream of transactions from 'r' and returns a
// sorted, deduplicated Ledger. Empty lines are skipped.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(data, &tx); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %d: %w", line, err)
		}
		if tx.ID == "" {
			return nil, fmt.Errorf("ledger line %d: transaction has no id", line)
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}
