package repository

import (
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listStatement prepares the select for a list query: every embed is preloaded with only
// its projected columns and the base rows are ordered by the validated column.
func listStatement(db *gorm.DB, table schema.Table, q entity.ListQuery) (*gorm.DB, error) {
	if err := table.ValidateListQuery(q); err != nil {
		return nil, err
	}

	tx := db
	for _, name := range q.Embeds {
		rel, _ := table.Relation(name)
		columns := rel.Columns
		tx = tx.Preload(rel.Path, func(db *gorm.DB) *gorm.DB {
			return db.Select(columns)
		})
	}

	return tx.Order(clause.OrderByColumn{
		Column: clause.Column{Table: table.Name, Name: q.OrderColumn},
		Desc:   q.Direction == entity.Descending,
	}), nil
}

func fetchList[T any](db *gorm.DB, table schema.Table, q entity.ListQuery) ([]T, error) {
	tx, err := listStatement(db, table, q)
	if err != nil {
		return nil, err
	}

	rows := []T{}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
