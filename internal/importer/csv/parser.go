// Package csv parses bank statement exports into spend records.
// Statements rarely start with the data table, so the parser scans for
// a header row naming the date, description and amount columns and
// reads rows from there, skipping footers and malformed lines.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/transaction"
)

var headerNames = map[string]string{
	"date":        "date",
	"data mov.":   "date",
	"recipient":   "recipient",
	"payee":       "recipient",
	"description": "recipient",
	"descrição":   "recipient",
	"amount":      "amount",
	"montante":    "amount",
}

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding statement: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // statements mix metadata and data rows
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	var params []transaction.CreateParams

	idxDate, idxRecipient, idxAmount := -1, -1, -1
	headerFound := false

	for _, row := range rows {
		if !headerFound {
			for i, col := range row {
				switch headerNames[strings.ToLower(strings.TrimSpace(col))] {
				case "date":
					idxDate = i
				case "recipient":
					idxRecipient = i
				case "amount":
					idxAmount = i
				}
			}

			// Date and amount are enough to treat this row as the header.
			if idxDate != -1 && idxAmount != -1 {
				headerFound = true
			} else {
				idxDate, idxRecipient, idxAmount = -1, -1, -1
			}

			continue
		}

		maxIdx := max(idxDate, max(idxRecipient, idxAmount))
		if len(row) <= maxIdx {
			continue
		}

		date, ok := parseDate(strings.TrimSpace(row[idxDate]))
		if !ok {
			// Probably a footer or summary row.
			continue
		}

		recipient := ""
		if idxRecipient != -1 {
			recipient = strings.TrimSpace(row[idxRecipient])
		}

		if recipient == "" {
			continue
		}

		amount, err := parseAmount(strings.TrimSpace(row[idxAmount]))
		if err != nil {
			continue
		}

		// Only debits become spend records; credit rows are not
		// expressible as envelope transactions.
		if !amount.IsNegative() {
			continue
		}

		params = append(params, transaction.CreateParams{
			Amount:    amount.Neg(),
			Recipient: recipient,
			Date:      date,
		})
	}

	if !headerFound {
		return nil, fmt.Errorf("no statement header found")
	}

	return params, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount accepts both "1.234,56" and "1,234.56" style amounts.
// Whichever separator appears last is the decimal separator.
func parseAmount(s string) (decimal.Decimal, error) {
	if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	return decimal.NewFromString(s)
}
