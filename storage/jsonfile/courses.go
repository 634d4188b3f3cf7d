package jsonfile

import "github.com/trezcool/darasa/core/records"

type courseRepository struct {
	path string
}

var _ records.CatalogRepository = (*courseRepository)(nil)

func NewCourseRepository(path string) records.CatalogRepository {
	return &courseRepository{path: path}
}

func (repo *courseRepository) Load() (records.Catalog, error) {
	var catalog records.Catalog
	if err := readDoc(repo.path, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (repo *courseRepository) Save(catalog records.Catalog) error {
	return writeDoc(repo.path, catalog)
}
