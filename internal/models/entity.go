package models

import (
	"time"
)

// Entity is a persisted metadata element. The typed attributes handlers care
// about live in the Properties JSON bag; the columns hold only what the
// repository itself needs for lookup and ordering.
type Entity struct {
	GUID          string `gorm:"primaryKey;type:char(36)"`
	TypeGUID      string `gorm:"type:char(36);not null"`
	TypeName      string `gorm:"size:128;not null;index"`
	QualifiedName string `gorm:"size:255;index"`
	Properties    PropertyMap
	CreatedBy     string `gorm:"size:255;not null"`
	UpdatedBy     string `gorm:"size:255"`
	Version       uint64 `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Classifications []Classification `gorm:"foreignKey:EntityGUID;references:GUID;constraint:OnDelete:CASCADE"`
}

// Relationship is a directed, typed link between two entities. End1 is the
// anchor end for attachment-style relationship types.
type Relationship struct {
	GUID       string `gorm:"primaryKey;type:char(36)"`
	TypeGUID   string `gorm:"type:char(36);not null"`
	TypeName   string `gorm:"size:128;not null;index"`
	End1GUID   string `gorm:"type:char(36);not null;index:idx_rel_end1_type"`
	End2GUID   string `gorm:"type:char(36);not null;index"`
	Properties PropertyMap
	CreatedBy  string `gorm:"size:255;not null"`
	Version    uint64 `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Classification is a named property bag attached to an entity. At most one
// classification of a given name exists per entity.
type Classification struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	EntityGUID string `gorm:"type:char(36);not null;index:idx_cls_entity_name,unique"`
	TypeGUID   string `gorm:"type:char(36);not null"`
	Name       string `gorm:"size:128;not null;index:idx_cls_entity_name,unique"`
	Properties PropertyMap
	CreatedBy  string `gorm:"size:255;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name for Entity
func (Entity) TableName() string {
	return "metadata_entities"
}

// TableName overrides the table name for Relationship
func (Relationship) TableName() string {
	return "metadata_relationships"
}

// TableName overrides the table name for Classification
func (Classification) TableName() string {
	return "metadata_classifications"
}
