package model

// swagger:model Category
type Category struct {
	UUIDBase
	Name        string      `gorm:"size:100;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	ParentID    *string     `gorm:"index;type:varchar(36)" json:"parentId"`
	SortOrder   int         `gorm:"default:0" json:"sortOrder"`
	Children    []*Category `gorm:"-" json:"children,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
