package importer

import (
	"io"

	"github.com/clutch42/envelope-budget/internal/transaction"
)

type Format string

const (
	FormatStatement Format = "statement"
)

// Parser turns a bank statement into spend records. The envelope to
// debit is chosen by the caller, not the file.
type Parser interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
