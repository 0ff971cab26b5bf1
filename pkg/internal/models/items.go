package models

import "gorm.io/datatypes"

type Items struct {
	BaseModel

	Name      string `json:"name"`
	BrandName string `json:"brand_name"`
	Price     int64  `json:"price"`
	Size      string `json:"size"`

	// Loose catalog attributes (fabric, season, color and whatever else a
	// brand ships in its feed) kept as a JSON column.
	Attributes datatypes.JSONMap `json:"attributes"`

	Photos []Photo `json:"photos" gorm:"foreignKey:ItemsID"`
}
