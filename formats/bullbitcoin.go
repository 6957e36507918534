package formats

import (
	"fmt"

	"github.com/hmlb/btctrack"
	"github.com/shopspring/decimal"
)

// bullBitcoin parses the Bull Bitcoin brokerage order export.
//
// Only settled orders count: anything not "Completed" is skipped without
// comment. Buy/Sell orders move BTC against EUR; Funding and Withdraw move
// EUR itself, recorded in minor units so they never mix with sats.
type bullBitcoin struct{}

func (bullBitcoin) Name() string { return "Bull Bitcoin" }

func (bullBitcoin) Detect(headers []string) bool {
	return hasHeaders(headers, "order_number", "order_type", "order_id", "payin_amount", "payout_amount")
}

// isBTCLike reports whether the asset code is bitcoin on any layer the
// brokerage settles on (on-chain or Liquid).
func isBTCLike(code string) bool {
	return code == "BTC" || code == "LBTC"
}

func (bullBitcoin) Parse(headers []string, rows [][]string) Result {
	var res Result

	idx := struct {
		orderType, orderSubtype, orderID    int
		payinAmount, payinCurrency          int
		payoutAmount, payoutCurrency        int
		orderStatus, createdAt, completedAt int
		transactionID                       int
	}{
		orderType:      headerIndex(headers, "order_type"),
		orderSubtype:   headerIndex(headers, "order_subtype"),
		orderID:        headerIndex(headers, "order_id"),
		payinAmount:    headerIndex(headers, "payin_amount"),
		payinCurrency:  headerIndex(headers, "payin_currency"),
		payoutAmount:   headerIndex(headers, "payout_amount"),
		payoutCurrency: headerIndex(headers, "payout_currency"),
		orderStatus:    headerIndex(headers, "order_status"),
		createdAt:      headerIndex(headers, "created_at (utc)"),
		completedAt:    headerIndex(headers, "completed_at (utc)"),
		transactionID:  headerIndex(headers, "transaction_id"),
	}

	for i, row := range rows {
		rowNum := i + 1
		if emptyRow(row) {
			continue
		}
		capture(rowNum, &res, func() {
			if cell(row, idx.orderStatus) != "Completed" {
				return
			}

			orderID := cell(row, idx.orderID)
			if orderID == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Missing Order ID", rowNum))
				return
			}

			// settlement time when available, order creation otherwise
			dateStr := cell(row, idx.completedAt)
			if dateStr == "" {
				dateStr = cell(row, idx.createdAt)
			}
			if dateStr == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Missing date", rowNum))
				return
			}
			timestamp, err := parseTimestamp(dateStr)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid date format %q", rowNum, dateStr))
				return
			}

			payinAmount, _ := parseDecimal(cell(row, idx.payinAmount))
			payinCurrency := cell(row, idx.payinCurrency)
			payoutAmount, _ := parseDecimal(cell(row, idx.payoutAmount))
			payoutCurrency := cell(row, idx.payoutCurrency)

			var amountSats int64
			var fiatValue decimal.NullDecimal
			fiatCurrency := "EUR"
			currency := btctrack.CurrencyBTC
			var category btctrack.Category

			switch orderType := cell(row, idx.orderType); orderType {
			case "Buy Bitcoin":
				if !isBTCLike(payoutCurrency) {
					res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Unexpected payout currency %q", rowNum, payoutCurrency))
					return
				}
				amountSats = btcToSats(payoutAmount)
				fiatValue = decimal.NullDecimal{Decimal: payinAmount, Valid: true} // EUR spent
				category = btctrack.CatBuy

			case "Sell Bitcoin", "Fiat Payment":
				if !isBTCLike(payinCurrency) {
					res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Unexpected payin currency %q", rowNum, payinCurrency))
					return
				}
				amountSats = -btcToSats(payinAmount)
				fiatValue = decimal.NullDecimal{Decimal: payoutAmount.Neg(), Valid: true} // EUR received, sign mirrors the amount
				category = btctrack.CatSell

			case "Funding":
				if payoutCurrency != "EUR" {
					return
				}
				amountSats = minorUnits(payoutAmount, payoutCurrency)
				fiatValue = decimal.NullDecimal{Decimal: payoutAmount, Valid: true}
				category = btctrack.CatTransferIn
				currency = payoutCurrency

			case "Withdraw":
				if payinCurrency != "EUR" {
					return
				}
				amountSats = -minorUnits(payinAmount, payinCurrency)
				fiatValue = decimal.NullDecimal{Decimal: payinAmount.Neg(), Valid: true}
				category = btctrack.CatTransferOut
				currency = payinCurrency

			default:
				// other order types carry no balance change worth keeping
				return
			}

			if amountSats == 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Zero amount, skipping", rowNum))
				return
			}

			sourceID := cell(row, idx.transactionID)
			if sourceID == "" {
				sourceID = orderID
			}

			res.Transactions = append(res.Transactions, btctrack.Transaction{
				ID:           "bullbitcoin-" + orderID,
				Timestamp:    timestamp,
				AmountSats:   amountSats,
				Category:     category,
				Note:         cell(row, idx.orderSubtype),
				FiatValue:    fiatValue,
				FiatCurrency: fiatCurrency,
				Currency:     currency,
				SourceType:   "bullbitcoin",
				SourceID:     sourceID,
			})
		})
	}
	return res
}
