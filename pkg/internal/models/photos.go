package models

const (
	PhotoUsageProfile = "profile"
	PhotoUsageCodi    = "codi"
	PhotoUsageItem    = "item"
)

// Photo stores the picture payload inline as base64. Exactly one of the
// owner keys is set, matching the Usage tag.
type Photo struct {
	BaseModel

	Usage   string `json:"usage"`
	Payload string `json:"payload"`
	IsCover bool   `json:"is_cover"`

	UserID  *uint `json:"user_id"`
	CodiID  *uint `json:"codi_id"`
	ItemsID *uint `json:"items_id"`
}
