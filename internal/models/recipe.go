package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringArray stores an ordered list of strings as a JSONB column.
type StringArray []string

// Value implements the driver.Valuer interface.
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a dish shared by a user. AuthorID is set at creation and never
// changed afterwards.
type Recipe struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string      `gorm:"size:255;not null" json:"title"`
	ImageURL      string      `gorm:"size:512" json:"imageUrl"`
	Duration      int         `gorm:"not null" json:"duration"`
	Description   string      `gorm:"type:text" json:"description"`
	Ingredients   StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps         StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	IsGlutenFree  bool        `json:"isGlutenFree"`
	IsVegan       bool        `json:"isVegan"`
	IsVegetarian  bool        `json:"isVegetarian"`
	IsLactoseFree bool        `json:"isLactoseFree"`
	AuthorID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"authorId"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Author     *User      `gorm:"foreignKey:AuthorID" json:"-"`
	Categories []Category `gorm:"many2many:recipe_categories" json:"categories"`
}

// BeforeCreate assigns an ID when the caller did not.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
