package btctrack

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		sats     int64
		want     Role
	}{
		{"buy inbound", CatBuy, 100_000, RoleAcquisition},
		{"income inbound", CatIncome, 1, RoleAcquisition},
		{"mining inbound", CatMining, 50, RoleAcquisition},
		{"trading gain inbound", CatTradingGain, 9918, RoleAcquisition},
		{"lending income inbound", CatLendingIncome, 10, RoleAcquisition},

		{"sell outbound", CatSell, -100_000, RoleDisposal},
		{"food outbound", CatFood, -2_000, RoleDisposal},
		{"shopping outbound", CatShopping, -2_000, RoleDisposal},
		{"utilities outbound", CatUtilities, -2_000, RoleDisposal},
		{"trading loss outbound", CatTradingLoss, -5_000, RoleDisposal},
		{"liquidation outbound", CatLiquidation, -5_000, RoleDisposal},

		// Gift follows the transaction sign.
		{"gift received", CatGift, 10_000, RoleAcquisition},
		{"gift given", CatGift, -10_000, RoleDisposal},
		{"gift zero", CatGift, 0, RoleExcluded},

		// A category on the wrong side of zero is excluded, not flipped.
		{"buy outbound", CatBuy, -100_000, RoleExcluded},
		{"sell inbound", CatSell, 100_000, RoleExcluded},
		{"income outbound", CatIncome, -1, RoleExcluded},
		{"trading loss inbound", CatTradingLoss, 5_000, RoleExcluded},

		{"transfer in", CatTransferIn, 100_000, RoleExcluded},
		{"transfer out", CatTransferOut, -100_000, RoleExcluded},
		{"receive loan", CatReceiveLoan, 100_000, RoleExcluded},
		{"repay loan", CatRepayLoan, -100_000, RoleExcluded},
		{"uncategorized", CatUncategorized, 100_000, RoleExcluded},
		{"empty category inbound", Category(""), 100_000, RoleExcluded},
		{"payment outbound", CatPayment, -5_000, RoleExcluded},
		{"unknown category", Category("Hodling"), 100_000, RoleExcluded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.category, tt.sats); got != tt.want {
				t.Errorf("Classify(%q, %d) = %s, want %s", tt.category, tt.sats, got, tt.want)
			}
		})
	}
}

func TestRoleString(t *testing.T) {
	if got := RoleAcquisition.String(); got != "acquisition" {
		t.Errorf("RoleAcquisition.String() = %q", got)
	}
	if got := RoleDisposal.String(); got != "disposal" {
		t.Errorf("RoleDisposal.String() = %q", got)
	}
	if got := RoleExcluded.String(); got != "excluded" {
		t.Errorf("RoleExcluded.String() = %q", got)
	}
}
