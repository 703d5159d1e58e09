package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// JSONMap stores a free-form JSON object in a single column.
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSONMap: unsupported type %T", value)
	}

	return json.Unmarshal(data, m)
}

// StringList stores a JSON string array in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// SiteSettings is the singleton row driving global site chrome. SocialMedia
// holds platform→URL pairs, SectionVisibility section→bool toggles.
type SiteSettings struct {
	gorm.Model
	SiteName          string  `json:"siteName"`
	SiteTitle         string  `json:"siteTitle"`
	Description       string  `json:"description"`
	Logo              string  `json:"logo"`
	PrimaryColor      string  `json:"primaryColor"`
	SecondaryColor    string  `json:"secondaryColor"`
	FooterText        string  `json:"footerText"`
	SocialMedia       JSONMap `json:"socialMedia" gorm:"type:jsonb"`
	SectionVisibility JSONMap `json:"sectionVisibility" gorm:"type:jsonb"`
}
