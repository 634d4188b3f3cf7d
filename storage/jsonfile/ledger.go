package jsonfile

import "github.com/trezcool/darasa/core/records"

type ledgerRepository struct {
	path string
}

var _ records.LedgerRepository = (*ledgerRepository)(nil)

func NewLedgerRepository(path string) records.LedgerRepository {
	return &ledgerRepository{path: path}
}

func (repo *ledgerRepository) Load() (records.Ledger, error) {
	var ledger records.Ledger
	if err := readDoc(repo.path, &ledger); err != nil {
		return records.Ledger{}, err
	}
	return ledger, nil
}

func (repo *ledgerRepository) Save(ledger records.Ledger) error {
	return writeDoc(repo.path, ledger)
}
