package model

// swagger:model Tag
type Tag struct {
	UUIDBase
	Name  string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:20" json:"color,omitempty"`
}

func (Tag) TableName() string {
	return "tags"
}
