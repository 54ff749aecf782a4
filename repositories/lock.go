package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WithRowLock sorguya SELECT ... FOR UPDATE kilidi ekler.
// SQLite satır kilidi sözdizimini desteklemez; orada bağlantı zaten
// tek yazarlı olduğu için kilitsiz devam edilir.
func WithRowLock(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
