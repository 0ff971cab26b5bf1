package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// resolveTable runs a table name through the connection's naming strategy,
// so raw SQL fragments stay valid when a table prefix is configured.
func resolveTable(db *gorm.DB, name string) string {
	return db.NamingStrategy.TableName(name)
}

func joinCodiItems(db *gorm.DB) string {
	links := resolveTable(db, "codi_items")
	items := resolveTable(db, "items")
	return fmt.Sprintf("JOIN %s ON %s.items_id = %s.id", links, links, items)
}
