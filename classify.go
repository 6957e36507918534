package btctrack

// Role is the accounting role of a transaction in the P&L computation.
type Role int

const (
	// RoleExcluded transactions take no part in P&L (transfers, loans,
	// uncategorized records).
	RoleExcluded Role = iota
	// RoleAcquisition transactions establish cost basis.
	RoleAcquisition
	// RoleDisposal transactions consume cost basis and realize P&L.
	RoleDisposal
)

func (r Role) String() string {
	switch r {
	case RoleAcquisition:
		return "acquisition"
	case RoleDisposal:
		return "disposal"
	default:
		return "excluded"
	}
}

// acquisitionCategories establish cost basis when the amount is inbound.
var acquisitionCategories = map[Category]bool{
	CatBuy:           true,
	CatIncome:        true,
	CatMining:        true,
	CatTradingGain:   true,
	CatLendingIncome: true,
}

// disposalCategories realize P&L when the amount is outbound.
var disposalCategories = map[Category]bool{
	CatSell:        true,
	CatFood:        true,
	CatUtilities:   true,
	CatShopping:    true,
	CatTradingLoss: true,
	CatLiquidation: true,
}

// excludedCategories never take part in P&L, whatever the sign.
var excludedCategories = map[Category]bool{
	CatTransferIn:    true,
	CatTransferOut:   true,
	CatReceiveLoan:   true,
	CatRepayLoan:     true,
	CatUncategorized: true,
}

// Classify returns the accounting role of a transaction given its category
// and signed amount.
//
// Gift is the one category whose role depends on the transaction sign: a
// received gift is an acquisition, a given one a disposal. It is handled as
// an explicit branch rather than a table entry so the exception stays
// visible. For every other category the role is fixed by the tables above,
// guarded by the amount sign: a category from the acquisition set with an
// outbound amount (or vice versa) is excluded rather than misclassified.
func Classify(c Category, amountSats int64) Role {
	if c == "" {
		c = CatUncategorized
	}
	if excludedCategories[c] {
		return RoleExcluded
	}
	if c == CatGift {
		switch {
		case amountSats > 0:
			return RoleAcquisition
		case amountSats < 0:
			return RoleDisposal
		default:
			return RoleExcluded
		}
	}
	if amountSats > 0 && acquisitionCategories[c] {
		return RoleAcquisition
	}
	if amountSats < 0 && disposalCategories[c] {
		return RoleDisposal
	}
	return RoleExcluded
}
