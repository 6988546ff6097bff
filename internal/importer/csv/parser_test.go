package csv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statementcsv "github.com/clutch42/envelope-budget/internal/importer/csv"
)

func TestParse_Statement(t *testing.T) {
	input := strings.Join([]string{
		"Account statement",
		"Account;PT50 0000 0000 0000 0000 0000 0",
		"",
		"Date;Description;Amount;Balance",
		"2026-03-01;SUPERMARKET LISBOA;-42.17;957.83",
		"2026-03-03;SALARY;1500.00;2457.83",
		"2026-03-05;PHARMACY;-8.30;2449.53",
		"Total;;-50.47;",
	}, "\n")

	parser := statementcsv.NewParser()

	params, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "SUPERMARKET LISBOA", params[0].Recipient)
	assert.True(t, params[0].Amount.Equal(decimal.RequireFromString("42.17")))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), params[0].Date)

	assert.Equal(t, "PHARMACY", params[1].Recipient)
	assert.True(t, params[1].Amount.Equal(decimal.RequireFromString("8.30")))
}

func TestParse_PortugueseStatement(t *testing.T) {
	input := strings.Join([]string{
		"Data Mov.;Descrição;Montante",
		"01-03-2026;FARMÁCIA CENTRAL;-1.234,56",
		"02-03-2026;TRANSFERÊNCIA RECEBIDA;200,00",
	}, "\n")

	parser := statementcsv.NewParser()

	params, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "FARMÁCIA CENTRAL", params[0].Recipient)
	assert.True(t, params[0].Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), params[0].Date)
}

func TestParse_SkipsRowsWithoutRecipient(t *testing.T) {
	input := strings.Join([]string{
		"Date;Description;Amount",
		"2026-03-01;;-10.00",
		"2026-03-02;CAFE;-2.50",
	}, "\n")

	parser := statementcsv.NewParser()

	params, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "CAFE", params[0].Recipient)
}

func TestParse_NoHeader(t *testing.T) {
	input := strings.Join([]string{
		"just some text",
		"more text;with;columns",
	}, "\n")

	parser := statementcsv.NewParser()

	_, err := parser.Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	parser := statementcsv.NewParser()

	_, err := parser.Parse(strings.NewReader(""))
	assert.Error(t, err)
}
