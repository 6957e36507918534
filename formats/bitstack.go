package formats

import (
	"fmt"
	"strings"

	"github.com/hmlb/btctrack"
	"github.com/shopspring/decimal"
)

// bitstack parses the Bitstack custodial ledger export.
//
// The export mixes trades, deposits and withdrawals in one sheet, with the
// historical unit price reported alongside each leg. Fees can be charged in
// BTC or in fiat, and land in different fields of the canonical record
// accordingly.
type bitstack struct{}

func (bitstack) Name() string { return "Bitstack" }

func (bitstack) Detect(headers []string) bool {
	return hasHeaders(headers, "type", "date", "received amount", "sent amount", "external id")
}

func (bitstack) Parse(headers []string, rows [][]string) Result {
	var res Result

	idx := struct {
		typ, date                  int
		receivedAmount, sentAmount int
		fee, feeCurrency           int
		description                int
		priceReceived, priceSent   int
		txHash, externalID         int
	}{
		typ:            headerIndex(headers, "type"),
		date:           headerIndex(headers, "date"),
		receivedAmount: headerIndex(headers, "received amount"),
		sentAmount:     headerIndex(headers, "sent amount"),
		fee:            headerIndex(headers, "fee"),
		feeCurrency:    headerIndex(headers, "currency or token fee"),
		description:    headerIndex(headers, "description"),
		priceReceived:  headerIndex(headers, "token price of the amount received"),
		priceSent:      headerIndex(headers, "token price of the amount sent"),
		txHash:         headerIndex(headers, "transaction hash"),
		externalID:     headerIndex(headers, "external id"),
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

			externalID := cell(row, idx.externalID)
			if externalID == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Missing External ID", rowNum))
				return
			}

			txType := cell(row, idx.typ)
			description := cell(row, idx.description)

			var feeSats int64
			var feeFiat decimal.NullDecimal
			var feeFiatCurrency string
			feeAmount, _ := parseDecimal(cell(row, idx.fee))
			feeCurrency := cell(row, idx.feeCurrency)
			if feeAmount.IsPositive() && feeCurrency != "" {
				if feeCurrency == btctrack.CurrencyBTC {
					feeSats = btcToSats(feeAmount)
				} else {
					feeFiat = decimal.NullDecimal{Decimal: feeAmount, Valid: true}
					feeFiatCurrency = feeCurrency
				}
			}

			var amountSats int64
			var fiatValue decimal.NullDecimal
			var fiatCurrency string
			var category btctrack.Category

			switch txType {
			case "Trade":
				// buying BTC with fiat: the fiat cost is the amount sent
				// plus any fiat fee
				received, ok := parseDecimal(cell(row, idx.receivedAmount))
				if !ok || !received.IsPositive() {
					res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid received amount", rowNum))
					return
				}
				amountSats = btcToSats(received)
				sent, _ := parseDecimal(cell(row, idx.sentAmount))
				cost := sent
				if feeFiat.Valid {
					cost = cost.Add(feeFiat.Decimal)
				}
				fiatValue = decimal.NullDecimal{Decimal: cost, Valid: true}
				fiatCurrency = "EUR"
				category = btctrack.CatBuy

			case "Deposit":
				received, ok := parseDecimal(cell(row, idx.receivedAmount))
				if !ok || !received.IsPositive() {
					res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid received amount", rowNum))
					return
				}
				amountSats = btcToSats(received)
				if price, ok := parseDecimal(cell(row, idx.priceReceived)); ok && price.IsPositive() {
					fiatValue = decimal.NullDecimal{Decimal: received.Mul(price), Valid: true}
					fiatCurrency = "EUR"
				}
				switch desc := strings.ToLower(description); {
				case strings.Contains(desc, "referral"):
					category = btctrack.CatIncome
				case strings.Contains(desc, "gift"):
					category = btctrack.CatGift
				default:
					category = btctrack.CatIncome
				}

			case "Withdrawal":
				sent, ok := parseDecimal(cell(row, idx.sentAmount))
				if !ok || !sent.IsPositive() {
					res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid sent amount", rowNum))
					return
				}
				amountSats = -btcToSats(sent)
				if price, ok := parseDecimal(cell(row, idx.priceSent)); ok && price.IsPositive() {
					fiatValue = decimal.NullDecimal{Decimal: sent.Mul(price).Neg(), Valid: true}
					fiatCurrency = "EUR"
				}
				category = btctrack.CatTransferOut

			default:
				res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Unknown transaction type %q", rowNum, txType))
				return
			}

			sourceID := cell(row, idx.txHash)
			if sourceID == "" {
				sourceID = externalID
			}

			res.Transactions = append(res.Transactions, btctrack.Transaction{
				ID:              "bitstack-" + externalID,
				Timestamp:       timestamp,
				AmountSats:      amountSats,
				FeeSats:         feeSats,
				FeeFiat:         feeFiat,
				FeeFiatCurrency: feeFiatCurrency,
				Category:        category,
				Note:            description,
				FiatValue:       fiatValue,
				FiatCurrency:    fiatCurrency,
				Currency:        btctrack.CurrencyBTC,
				SourceType:      "bitstack",
				SourceID:        sourceID,
			})
		})
	}
	return res
}
