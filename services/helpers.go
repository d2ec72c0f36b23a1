package services

import (
	"strings"

	"hotel-api/domain"
	"hotel-api/models"

	"gorm.io/gorm"
)

// applyContainsFilters ANDs a substring match per filter. Keys are column
// names that already passed the per-resource allow-list, so interpolating
// them is safe.
func applyContainsFilters(q *gorm.DB, filters map[string]string) *gorm.DB {
	for column, value := range filters {
		q = q.Where(column+" LIKE ?", "%"+value+"%")
	}
	return q
}

// paginate counts the filtered set and fetches one page of it. Preloads are
// applied to the page fetch only, never to the count.
func paginate[T any](q *gorm.DB, preloads []string, page, perPage int) (*models.Page[T], error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	fetch := q
	for _, preload := range preloads {
		fetch = fetch.Preload(preload)
	}

	items := make([]T, 0, perPage)
	if err := fetch.Limit(perPage).Offset((page - 1) * perPage).Find(&items).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	return &models.Page[T]{
		Data:        items,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}, nil
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// duplicateError converts a unique-index violation into a field-level
// validation error. The offending field is recognized from the key name in
// the driver message; fields lists the entity's unique columns.
func duplicateError(err error, fields ...string) error {
	if err == nil || !isDuplicateErr(err) {
		return err
	}
	field := fields[0]
	for _, f := range fields {
		if strings.Contains(err.Error(), f) {
			field = f
			break
		}
	}
	return domain.ValidationError{Fields: map[string][]string{field: {"has already been taken"}}}
}

func isForeignKeyErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "foreign key constraint")
}
