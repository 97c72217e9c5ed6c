package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID        string    `json:"_id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	JoinDate  string    `json:"joinDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (cl *Client) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == "" {
		cl.ID = uuid.NewString()
	}
	return nil
}

func (cl *Client) Validate() error {
	switch {
	case cl.Name == "":
		return requiredError("name")
	case cl.Email == "":
		return requiredError("email")
	case cl.Phone == "":
		return requiredError("phone")
	case cl.Address == "":
		return requiredError("address")
	}
	return nil
}

var clientFields = map[string]fieldSpec{
	"name":     {column: "name"},
	"email":    {column: "email"},
	"phone":    {column: "phone"},
	"address":  {column: "address"},
	"joinDate": {column: "join_date"},
}

func ClientUpdate(body map[string]any) (map[string]any, error) {
	return buildUpdate(body, clientFields)
}
