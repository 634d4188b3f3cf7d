package jsonfile

import "github.com/trezcool/darasa/core/records"

type credentialsRepository struct {
	path string
}

var _ records.CredentialsRepository = (*credentialsRepository)(nil)

func NewCredentialsRepository(path string) records.CredentialsRepository {
	return &credentialsRepository{path: path}
}

func (repo *credentialsRepository) Load() (records.Credentials, error) {
	var creds records.Credentials
	if err := readDoc(repo.path, &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func (repo *credentialsRepository) Save(creds records.Credentials) error {
	return writeDoc(repo.path, creds)
}
