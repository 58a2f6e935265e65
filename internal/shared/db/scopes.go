package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/shared/query"
)

// Paginate applies LIMIT/OFFSET from a page filter.
//
//	db.Scopes(db.Paginate(filter.PageFilter)).Find(&rows)
func Paginate(p query.PageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit())
	}
}

// CreatedBetween restricts column to [from, to). Zero bounds are ignored.
func CreatedBetween(column string, from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			db = db.Where(column+" >= ?", from)
		}
		if !to.IsZero() {
			db = db.Where(column+" < ?", to)
		}
		return db
	}
}
