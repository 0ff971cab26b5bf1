package models

type Order struct {
	BaseModel

	Serial string `json:"serial" gorm:"uniqueIndex"`

	UserID uint `json:"user_id"`
	User   User `json:"user"`

	TotalPrice    int64 `json:"total_price"`
	TotalQuantity int   `json:"total_quantity"`

	Address ShippingAddress `json:"address" gorm:"foreignKey:OrderID"`
}

type ShippingAddress struct {
	BaseModel

	OrderID uint `json:"order_id"`

	Receiver      string `json:"receiver"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	AddressDetail string `json:"address_detail"`
	ZipCode       string `json:"zip_code"`
	Message       string `json:"message"`
}

// OrderHistory is one ordered line. Rows are append-only; the item name and
// price are snapshotted at order time so later catalog edits do not rewrite
// past orders.
type OrderHistory struct {
	BaseModel

	OrderID uint `json:"order_id"`
	UserID  uint `json:"user_id"`
	ItemsID uint `json:"items_id"`

	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}
