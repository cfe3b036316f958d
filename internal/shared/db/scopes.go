package db

import (
	"gorm.io/gorm"
)

// NotDeleted filters out rows flagged with is_deleted. Robots are never hard
// deleted, so every robot read goes through this scope.
//
//	db.Model(&models.RobotModel{}).Scopes(db.NotDeleted()).Where("org_id = ?", orgID).Count(&n)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_deleted = ?", false)
	}
}

// Paginate applies limit/offset for a 1-based page. A non-positive page size
// leaves the query unbounded.
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
