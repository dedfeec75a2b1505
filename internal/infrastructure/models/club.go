package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"clubs.backend/internal/domain/entities"
)

// LinkList stores the ordered club links as a single JSON column so the
// display order survives round trips without a join table.
type LinkList []entities.Link

func (l LinkList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LinkList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = LinkList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for LinkList: %T", src)
	}
}

type Club struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsActive           bool      `gorm:"not null;default:true"`
	Slug               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title              string    `gorm:"type:varchar(255);not null"`
	ShortDescription   string    `gorm:"type:text"`
	Description        string    `gorm:"type:text"`
	LogoFileID         *string   `gorm:"type:varchar(255)"`
	Type               string    `gorm:"type:varchar(50);not null"`
	LeaderInnohassleID *string   `gorm:"type:varchar(255);index"`
	Links              LinkList  `gorm:"type:jsonb"`
	SportID            *string   `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
