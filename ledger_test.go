package btctrack

import "testing"

func TestLedgerAppendDeduplicates(t *testing.T) {
	ledger := NewLedger()

	added := ledger.Append(
		btcTx("a1", 1000, 100_000, CatBuy, 50),
		btcTx("a2", 2000, 200_000, CatBuy, 100),
	)
	if added != 2 {
		t.Fatalf("Append() = %d, want 2", added)
	}

	// Re-importing the same records must be a no-op.
	added = ledger.Append(
		btcTx("a1", 1000, 100_000, CatBuy, 50),
		btcTx("a3", 3000, 300_000, CatBuy, 150),
	)
	if added != 1 {
		t.Errorf("Append() = %d, want 1 (a1 is a duplicate)", added)
	}
	if ledger.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ledger.Len())
	}
	if !ledger.Has("a1") || ledger.Has("a4") {
		t.Error("Has() does not reflect the ledger content")
	}
}

func TestLedgerChronologicalOrder(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		btcTx("late", 3000, 1, CatBuy, 1),
		btcTx("early", 1000, 1, CatBuy, 1),
		btcTx("mid", 2000, 1, CatBuy, 1),
	)

	var ids []string
	for tx := range ledger.Transactions() {
		ids = append(ids, tx.ID)
	}
	want := []string{"early", "mid", "late"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestLedgerPendingSortsFirst(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		btcTx("settled", 1000, 1, CatBuy, 1),
		btcTx("pending", 0, 1, CatBuy, 1),
	)

	all := ledger.All()
	if all[0].ID != "pending" {
		t.Errorf("first transaction = %q, want the pending one", all[0].ID)
	}
}

func TestLedgerBTC(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		btcTx("b1", 1000, 100_000, CatBuy, 50),
		Transaction{ID: "f1", Timestamp: 2000, AmountSats: 10_000, Category: CatTransferIn, Currency: "EUR"},
	)

	btc := ledger.BTC()
	if len(btc) != 1 || btc[0].ID != "b1" {
		t.Errorf("BTC() = %v, want only b1", btc)
	}
}
