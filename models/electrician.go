package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ElectricianAwaitingApproval = "Awaiting Approval"
	ElectricianApproved         = "Approved"
	ElectricianSuspended        = "Suspended"
)

var ElectricianStatuses = []string{
	ElectricianAwaitingApproval,
	ElectricianApproved,
	ElectricianSuspended,
}

type Electrician struct {
	ID                string    `json:"_id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	CPF               string    `json:"cpf"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Address           string    `json:"address"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	DocumentURL       string    `json:"documentUrl,omitempty"`
	Experience        string    `json:"experience,omitempty"`
	Status            string    `json:"status"`
	Rating            float64   `json:"rating"`
	JoinDate          string    `json:"joinDate,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (e *Electrician) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = ElectricianAwaitingApproval
	}
	return nil
}

// Validate checks required fields and enum constraints before insert.
func (e *Electrician) Validate() error {
	switch {
	case e.Name == "":
		return requiredError("name")
	case e.CPF == "":
		return requiredError("cpf")
	case e.Phone == "":
		return requiredError("phone")
	case e.Email == "":
		return requiredError("email")
	case e.Address == "":
		return requiredError("address")
	}
	if e.Status != "" && !inEnum(e.Status, ElectricianStatuses) {
		return enumError("status", ElectricianStatuses)
	}
	return nil
}

var electricianFields = map[string]fieldSpec{
	"name":              {column: "name"},
	"cpf":               {column: "cpf"},
	"phone":             {column: "phone"},
	"email":             {column: "email"},
	"address":           {column: "address"},
	"profilePictureUrl": {column: "profile_picture_url"},
	"documentUrl":       {column: "document_url"},
	"experience":        {column: "experience"},
	"status":            {column: "status", enum: ElectricianStatuses},
	"rating":            {column: "rating"},
	"joinDate":          {column: "join_date"},
}

// ElectricianUpdate filters a request body down to writable columns.
func ElectricianUpdate(body map[string]any) (map[string]any, error) {
	return buildUpdate(body, electricianFields)
}
