// Package inmemdb provides in-memory document repositories, used by tests and
// dummy deployments. Values are deep-copied through a JSON round-trip so
// callers never share state with the repository, mirroring file persistence.
package inmemdb

import (
	"encoding/json"
	"sync"

	"github.com/trezcool/darasa/core/records"
)

func deepCopy(src, dst interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

type credentialsRepository struct {
	mutex sync.RWMutex
	doc   records.Credentials
	saved bool
}

var _ records.CredentialsRepository = (*credentialsRepository)(nil)

func NewCredentialsRepository() records.CredentialsRepository {
	return &credentialsRepository{}
}

func (repo *credentialsRepository) Load() (records.Credentials, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	if !repo.saved {
		return nil, records.ErrNoData
	}
	var creds records.Credentials
	if err := deepCopy(repo.doc, &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func (repo *credentialsRepository) Save(creds records.Credentials) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	var cpy records.Credentials
	if err := deepCopy(creds, &cpy); err != nil {
		return err
	}
	repo.doc = cpy
	repo.saved = true
	return nil
}

type courseRepository struct {
	mutex sync.RWMutex
	doc   records.Catalog
	saved bool
}

var _ records.CatalogRepository = (*courseRepository)(nil)

func NewCourseRepository() records.CatalogRepository {
	return &courseRepository{}
}

func (repo *courseRepository) Load() (records.Catalog, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	if !repo.saved {
		return nil, records.ErrNoData
	}
	var catalog records.Catalog
	if err := deepCopy(repo.doc, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (repo *courseRepository) Save(catalog records.Catalog) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	var cpy records.Catalog
	if err := deepCopy(catalog, &cpy); err != nil {
		return err
	}
	repo.doc = cpy
	repo.saved = true
	return nil
}

type ledgerRepository struct {
	mutex sync.RWMutex
	doc   records.Ledger
	saved bool
}

var _ records.LedgerRepository = (*ledgerRepository)(nil)

func NewLedgerRepository() records.LedgerRepository {
	return &ledgerRepository{}
}

func (repo *ledgerRepository) Load() (records.Ledger, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	if !repo.saved {
		return records.Ledger{}, records.ErrNoData
	}
	var ledger records.Ledger
	if err := deepCopy(repo.doc, &ledger); err != nil {
		return records.Ledger{}, err
	}
	return ledger, nil
}

func (repo *ledgerRepository) Save(ledger records.Ledger) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	var cpy records.Ledger
	if err := deepCopy(ledger, &cpy); err != nil {
		return err
	}
	repo.doc = cpy
	repo.saved = true
	return nil
}
