package formats

import (
	"fmt"

	"github.com/hmlb/btctrack"
)

// LN Markets settles derivatives P&L in sats, so each closed position
// becomes one Trading Gain or Trading Loss transaction. Futures and options
// exports share most columns but differ on fee semantics: the futures
// amount is the P&L net of all fees, while the options amount is the raw
// P&L with fees reported separately. The asymmetry comes from the platform
// itself and is preserved.

// columnMap indexes a row by lower-cased header name.
type columnMap map[string]int

func newColumnMap(headers []string) columnMap {
	m := make(columnMap, len(headers))
	for i, h := range headers {
		m[normalizeHeader(h)] = i
	}
	return m
}

func (m columnMap) get(row []string, key string) string {
	i, ok := m[key]
	if !ok {
		return ""
	}
	return cell(row, i)
}

type lnFutures struct{}

func (lnFutures) Name() string { return "LN Markets Futures" }

func (lnFutures) Detect(headers []string) bool {
	return hasHeaders(headers, "leverage", "sumFundingFees", "exitPrice", "entryPrice", "pl", "closedAt")
}

func (lnFutures) Parse(headers []string, rows [][]string) Result {
	var res Result
	cols := newColumnMap(headers)

	for i, row := range rows {
		rowNum := i + 1
		if emptyRow(row) {
			continue
		}
		capture(rowNum, &res, func() {
			id := cols.get(row, "id")
			canceled := cols.get(row, "canceled") == "true"
			closed := cols.get(row, "closed") == "true"

			pl := parseInt64(cols.get(row, "pl"))
			openingFee := parseInt64(cols.get(row, "openingfee"))
			closingFee := parseInt64(cols.get(row, "closingfee"))
			// funding can be negative: a net funding credit
			fundingFees := parseInt64(cols.get(row, "sumfundingfees"))

			totalFees := openingFee + closingFee + fundingFees
			// the reported pl is gross of fees; net them all out once here
			netPnL := pl - openingFee - closingFee - fundingFees

			// positions that never traded leave nothing to account for
			if (canceled || !closed) && netPnL == 0 && totalFees == 0 {
				return
			}

			closedAt := cols.get(row, "closedat")
			if closedAt == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Missing closedAt date, skipping", rowNum))
				return
			}
			timestamp, err := parseTimestamp(closedAt)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid date format %q", rowNum, closedAt))
				return
			}

			category := btctrack.CatTradingGain
			if netPnL < 0 {
				category = btctrack.CatTradingLoss
			}

			// only a net-positive fee burden is worth reporting
			var feeSats int64
			if totalFees > 0 {
				feeSats = totalFees
			}

			res.Transactions = append(res.Transactions, btctrack.Transaction{
				ID:         "lnm-futures-" + id,
				Timestamp:  timestamp,
				AmountSats: netPnL,
				FeeSats:    feeSats,
				Category:   category,
				Note:       futuresNote(cols, row),
				Currency:   btctrack.CurrencyBTC,
				SourceType: "lnmarkets-futures",
				SourceID:   id,
			})
		})
	}
	return res
}

func futuresNote(cols columnMap, row []string) string {
	side := "Short"
	if cols.get(row, "side") == "buy" {
		side = "Long"
	}
	quantity := cols.get(row, "quantity")
	if quantity == "" {
		quantity = "0"
	}
	leverage := cols.get(row, "leverage")
	if leverage == "" {
		leverage = "1"
	}
	entry := cols.get(row, "entryprice")
	if entry == "" {
		entry = cols.get(row, "price")
	}
	if entry == "" {
		entry = "0"
	}
	exit := "N/A"
	if e := cols.get(row, "exitprice"); e != "" && e != "null" {
		exit = "$" + groupNumber(e)
	}
	return fmt.Sprintf("Futures %s %sUSD @%sx | Entry: $%s Exit: %s",
		side, quantity, leverage, groupNumber(entry), exit)
}

type lnOptions struct{}

func (lnOptions) Name() string { return "LN Markets Options" }

func (lnOptions) Detect(headers []string) bool {
	return hasHeaders(headers, "strike", "expiry", "exercised", "volatility", "pl", "closedAt")
}

func (lnOptions) Parse(headers []string, rows [][]string) Result {
	var res Result
	cols := newColumnMap(headers)

	for i, row := range rows {
		rowNum := i + 1
		if emptyRow(row) {
			continue
		}
		capture(rowNum, &res, func() {
			id := cols.get(row, "id")

			pl := parseInt64(cols.get(row, "pl"))
			openingFee := parseInt64(cols.get(row, "openingfee"))
			closingFee := parseInt64(cols.get(row, "closingfee"))
			// unlike futures, fees are NOT netted into the amount here
			totalFees := openingFee + closingFee

			if pl == 0 && totalFees == 0 {
				return
			}

			closedAt := cols.get(row, "closedat")
			if closedAt == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf("Row %d: Missing closedAt date, skipping", rowNum))
				return
			}
			timestamp, err := parseTimestamp(closedAt)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: Invalid date format %q", rowNum, closedAt))
				return
			}

			category := btctrack.CatTradingGain
			if pl < 0 {
				category = btctrack.CatTradingLoss
			}

			res.Transactions = append(res.Transactions, btctrack.Transaction{
				ID:         "lnm-options-" + id,
				Timestamp:  timestamp,
				AmountSats: pl,
				FeeSats:    totalFees,
				Category:   category,
				Note:       optionsNote(cols, row),
				Currency:   btctrack.CurrencyBTC,
				SourceType: "lnmarkets-options",
				SourceID:   id,
			})
		})
	}
	return res
}

func optionsNote(cols columnMap, row []string) string {
	side := "Sell"
	if cols.get(row, "side") == "b" {
		side = "Buy"
	}
	typ := "Put"
	if cols.get(row, "type") == "c" {
		typ = "Call"
	}
	status := "Closed"
	switch {
	case cols.get(row, "expired") == "true":
		status = "Expired"
	case cols.get(row, "exercised") == "true":
		status = "Exercised"
	}
	quantity := cols.get(row, "quantity")
	if quantity == "" {
		quantity = "0"
	}
	strike := cols.get(row, "strike")
	if strike == "" {
		strike = "0"
	}
	premium := parseInt64(cols.get(row, "margin"))
	return fmt.Sprintf("Option %s %s $%s %sUSD | Premium: %s sats | %s",
		side, typ, groupNumber(strike), quantity, groupInt(premium), status)
}
