package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func dbWithPrefix(prefix string) *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{
		NamingStrategy: schema.NamingStrategy{TablePrefix: prefix},
	}}
}

func TestResolveTableAppliesPrefix(t *testing.T) {
	db := dbWithPrefix("fl_")

	assert.Equal(t, "fl_codi_items", resolveTable(db, "codi_items"))
	assert.Equal(t, "fl_items", resolveTable(db, "items"))
}

func TestResolveTableWithoutPrefix(t *testing.T) {
	db := dbWithPrefix("")

	assert.Equal(t, "codi_items", resolveTable(db, "codi_items"))
	assert.Equal(t, "items", resolveTable(db, "items"))
}

func TestJoinCodiItemsUsesResolvedNames(t *testing.T) {
	assert.Equal(t,
		"JOIN fl_codi_items ON fl_codi_items.items_id = fl_items.id",
		joinCodiItems(dbWithPrefix("fl_")))
	assert.Equal(t,
		"JOIN codi_items ON codi_items.items_id = items.id",
		joinCodiItems(dbWithPrefix("")))
}
