// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// Paginate is a GORM scope applying LIMIT/OFFSET from 1-based page numbers.
// A non-positive page size disables pagination.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.Paginate(page, pageSize)).Find(&results)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
