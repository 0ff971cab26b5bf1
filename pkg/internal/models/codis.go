package models

type Codi struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`

	UserID uint `json:"user_id"`
	User   User `json:"user"`

	Photos []Photo    `json:"photos" gorm:"foreignKey:CodiID"`
	Links  []CodiItem `json:"links" gorm:"foreignKey:CodiID"`
}

// CodiItem links an outfit to a catalog item. Items are shared across
// outfits, so the row only carries identities plus the position the item
// takes inside the outfit.
type CodiItem struct {
	CodiID       uint `json:"codi_id" gorm:"primaryKey;autoIncrement:false"`
	ItemsID      uint `json:"items_id" gorm:"primaryKey;autoIncrement:false"`
	DisplayOrder int  `json:"display_order"`

	Items Items `json:"items"`
}
