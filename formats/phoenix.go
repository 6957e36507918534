package formats

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/hmlb/btctrack"
	"github.com/shopspring/decimal"
)

// phoenix parses the Phoenix lightning wallet export.
//
// Amounts come in milli-sats and are rounded to sats. The total fee is the
// on-chain mining fee (already in sats) plus the service fee (milli-sats).
// Fiat columns carry strings of the form "12.34 EUR".
type phoenix struct{}

func (phoenix) Name() string { return "Phoenix Wallet" }

func (phoenix) Detect(headers []string) bool {
	return hasHeaders(headers, "date", "id", "type", "amount_msat", "payment_hash")
}

var (
	// signed "<number> <CCY>" as written in the amount_fiat column
	phoenixFiatPattern = regexp.MustCompile(`^(-?[\d.]+)\s*([A-Z]{3})$`)
	// unsigned variant used by the fee columns
	phoenixFeeFiatPattern = regexp.MustCompile(`^([\d.]+)\s*([A-Z]{3})$`)
)

func (phoenix) Parse(headers []string, rows [][]string) Result {
	var res Result

	idx := struct {
		date, id, typ, amountMsat, amountFiat int
		miningFeeSat, miningFeeFiat           int
		serviceFeeMsat, serviceFeeFiat        int
		paymentHash, txID, description        int
	}{
		date:           headerIndex(headers, "date"),
		id:             headerIndex(headers, "id"),
		typ:            headerIndex(headers, "type"),
		amountMsat:     headerIndex(headers, "amount_msat"),
		amountFiat:     headerIndex(headers, "amount_fiat"),
		miningFeeSat:   headerIndex(headers, "mining_fee_sat"),
		miningFeeFiat:  headerIndex(headers, "mining_fee_fiat"),
		serviceFeeMsat: headerIndex(headers, "service_fee_msat"),
		serviceFeeFiat: headerIndex(headers, "service_fee_fiat"),
		paymentHash:    headerIndex(headers, "payment_hash"),
		txID:           headerIndex(headers, "tx_id"),
		description:    headerIndex(headers, "description"),
	}

	for i, row := range rows {
		rowNum := i + 1
		if emptyRow(row) {
			continue
		}
		capture(rowNum, &res, func() {
			dateStr := cell(row, idx.date)
			if dateStr == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Missing date", rowNum))
				return
			}
			timestamp, err := parseTimestamp(dateStr)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid date format %q", rowNum, dateStr))
				return
			}

			amountStr := cell(row, idx.amountMsat)
			amountMsat, err := strconv.ParseInt(amountStr, 10, 64)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid amount %q", rowNum, amountStr))
				return
			}
			amountSats := msatToSat(amountMsat)

			feeSats := parseInt64(cell(row, idx.miningFeeSat)) + msatToSat(parseInt64(cell(row, idx.serviceFeeMsat)))

			var feeFiat decimal.NullDecimal
			var feeFiatCurrency string
			totalFeeFiat := decimal.Zero
			for _, c := range []int{idx.miningFeeFiat, idx.serviceFeeFiat} {
				if m := phoenixFeeFiatPattern.FindStringSubmatch(cell(row, c)); m != nil {
					if v, ok := parseDecimal(m[1]); ok {
						totalFeeFiat = totalFeeFiat.Add(v)
						feeFiatCurrency = m[2]
					}
				}
			}
			if totalFeeFiat.IsPositive() {
				feeFiat = decimal.NullDecimal{Decimal: totalFeeFiat, Valid: true}
			} else {
				feeFiatCurrency = ""
			}

			var fiatValue decimal.NullDecimal
			var fiatCurrency string
			if m := phoenixFiatPattern.FindStringSubmatch(cell(row, idx.amountFiat)); m != nil {
				if v, ok := parseDecimal(m[1]); ok {
					// the fiat column is unsigned, mirror the amount sign
					if amountSats < 0 && v.IsPositive() {
						v = v.Neg()
					}
					fiatValue = decimal.NullDecimal{Decimal: v, Valid: true}
					fiatCurrency = m[2]
				}
			}

			var category btctrack.Category
			switch txType := cell(row, idx.typ); txType {
			case "swap_in":
				category = btctrack.CatTransferIn
			case "swap_out":
				category = btctrack.CatTransferOut
			case "lightning_sent":
				category = btctrack.CatPayment
			case "lightning_received":
				category = btctrack.CatIncome
			default:
				category = btctrack.CatUncategorized
				res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Unknown transaction type %q", rowNum, txType))
			}

			// dedup id: payment hash for lightning, chain tx id for swaps,
			// the wallet's internal id as last resort
			sourceID := cell(row, idx.paymentHash)
			if sourceID == "" {
				sourceID = cell(row, idx.txID)
			}
			if sourceID == "" {
				sourceID = cell(row, idx.id)
			}

			res.Transactions = append(res.Transactions, btctrack.Transaction{
				ID:              "phoenix-" + sourceID,
				Timestamp:       timestamp,
				AmountSats:      amountSats,
				FeeSats:         feeSats,
				FeeFiat:         feeFiat,
				FeeFiatCurrency: feeFiatCurrency,
				Category:        category,
				Note:            cell(row, idx.description),
				FiatValue:       fiatValue,
				FiatCurrency:    fiatCurrency,
				Currency:        btctrack.CurrencyBTC,
				SourceType:      "phoenix",
				SourceID:        sourceID,
			})
		})
	}
	return res
}
