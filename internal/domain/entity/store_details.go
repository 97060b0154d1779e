package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Keys of the persisted store identity record.
const (
	KeyStoreName     = "storeName"
	KeyStoreAddress  = "storeAddress"
	KeyStoreSubtitle = "storeSubtitle"
	KeyJurisdiction  = "jurisdiction"
	KeyDLNumber      = "dlNumber"
	KeyGSTNumber     = "gstNumber"
)

// StoreFieldKeys lists the store identity keys in form order.
var StoreFieldKeys = []string{
	KeyStoreName,
	KeyStoreAddress,
	KeyStoreSubtitle,
	KeyJurisdiction,
	KeyDLNumber,
	KeyGSTNumber,
}

// StoreDetails is the store identity printed in every bill header.
// Values are stored exactly as given.
type StoreDetails struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	StoreName     string    `gorm:"size:255" json:"storeName"`
	StoreAddress  string    `gorm:"type:text" json:"storeAddress"`
	StoreSubtitle string    `gorm:"size:255" json:"storeSubtitle"`
	Jurisdiction  string    `gorm:"size:100" json:"jurisdiction"`
	DLNumber      string    `gorm:"size:100" json:"dlNumber"`
	GSTNumber     string    `gorm:"size:50" json:"gstNumber"`
	UpdatedAt     time.Time `json:"-"`
}

// BeforeCreate generates a UUID before creating the record
func (s *StoreDetails) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreDetails model
func (StoreDetails) TableName() string {
	return "store_details"
}

// ToMap flattens the details into the persisted key/value form.
func (s StoreDetails) ToMap() map[string]string {
	return map[string]string{
		KeyStoreName:     s.StoreName,
		KeyStoreAddress:  s.StoreAddress,
		KeyStoreSubtitle: s.StoreSubtitle,
		KeyJurisdiction:  s.Jurisdiction,
		KeyDLNumber:      s.DLNumber,
		KeyGSTNumber:     s.GSTNumber,
	}
}

// ApplyMap overwrites the fields present in m. Unknown keys are ignored.
func (s *StoreDetails) ApplyMap(m map[string]string) {
	for k, v := range m {
		if p := s.field(k); p != nil {
			*p = v
		}
	}
}

// Field returns the value stored under key and whether the key is known.
func (s *StoreDetails) Field(key string) (string, bool) {
	p := s.field(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

func (s *StoreDetails) field(key string) *string {
	switch key {
	case KeyStoreName:
		return &s.StoreName
	case KeyStoreAddress:
		return &s.StoreAddress
	case KeyStoreSubtitle:
		return &s.StoreSubtitle
	case KeyJurisdiction:
		return &s.Jurisdiction
	case KeyDLNumber:
		return &s.DLNumber
	case KeyGSTNumber:
		return &s.GSTNumber
	}
	return nil
}
