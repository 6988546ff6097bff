package importer

import (
	"fmt"
	"io"

	statementcsv "github.com/clutch42/envelope-budget/internal/importer/csv"
	"github.com/clutch42/envelope-budget/internal/transaction"
)

type Service struct {
	statementParser Parser
}

func NewService() *Service {
	return &Service{
		statementParser: statementcsv.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	var parser Parser

	switch format {
	case FormatStatement:
		parser = s.statementParser
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return parser.Parse(r)
}
