package repository

import (
	"strings"

	"gorm.io/gorm"
)

// likePattern builds a substring pattern matched against LOWER(column).
func likePattern(keyword string) string {
	return "%" + strings.ToLower(keyword) + "%"
}

// updateAll writes every column of model except created_at, so cleared fields
// are persisted too.
func updateAll(tx *gorm.DB, table interface{}, id interface{}, model interface{}) *gorm.DB {
	return tx.Model(table).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(model)
}
