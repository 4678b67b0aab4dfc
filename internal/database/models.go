package database

import (
	"time"

	"github.com/AlexTLDR/phonenorm/internal/phone"
)

// Contact is a person of the directory with up to two phone numbers,
// stored in their serialized canonical form.
type Contact struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	OfficePhone *phone.Number `json:"officePhone,omitempty"`
	MobilePhone *phone.Number `json:"mobilePhone,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
