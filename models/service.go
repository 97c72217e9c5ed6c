package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ServiceTypeEmergency = "Emergency"
	ServiceTypeScheduled = "Scheduled"
)

var ServiceTypes = []string{ServiceTypeEmergency, ServiceTypeScheduled}

const (
	ServiceRequested  = "Requested"
	ServiceAccepted   = "Accepted"
	ServiceInProgress = "InProgress"
	ServiceCompleted  = "Completed"
	ServiceCancelled  = "Cancelled"
)

var ServiceStatuses = []string{
	ServiceRequested,
	ServiceAccepted,
	ServiceInProgress,
	ServiceCompleted,
	ServiceCancelled,
}

const (
	SenderClient      = "client"
	SenderElectrician = "electrician"
)

var ChatSenders = []string{SenderClient, SenderElectrician}

// ChatMessage is an embedded chat entry. Entries carry no identifier of their
// own; order within the array is the conversation order.
type ChatMessage struct {
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Service struct {
	ID                 string         `json:"_id" gorm:"primaryKey"`
	ClientName         string         `json:"clientName"`
	ElectricianID      string         `json:"electricianId,omitempty"`
	ElectricianName    string         `json:"electricianName,omitempty"`
	ServiceType        string         `json:"serviceType"`
	Address            string         `json:"address"`
	Status             string         `json:"status"`
	Date               string         `json:"date"`
	Value              float64        `json:"value"`
	Eta                *float64       `json:"eta,omitempty"`
	CEP                string         `json:"cep,omitempty"`
	ReferencePoint     string         `json:"referencePoint,omitempty"`
	Location           datatypes.JSON `json:"location,omitempty"`
	Chat               datatypes.JSON `json:"chat"`
	ClientRating       *float64       `json:"clientRating,omitempty"`
	ElectricianRating  *float64       `json:"electricianRating,omitempty"`
	ServiceDescription string         `json:"serviceDescription,omitempty"`
	ServiceNotes       string         `json:"serviceNotes,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if len(s.Chat) == 0 {
		s.Chat = datatypes.JSON([]byte("[]"))
	}
	return nil
}

func (s *Service) Validate() error {
	switch {
	case s.ClientName == "":
		return requiredError("clientName")
	case s.ServiceType == "":
		return requiredError("serviceType")
	case s.Address == "":
		return requiredError("address")
	case s.Status == "":
		return requiredError("status")
	case s.Date == "":
		return requiredError("date")
	}
	if !inEnum(s.ServiceType, ServiceTypes) {
		return enumError("serviceType", ServiceTypes)
	}
	if !inEnum(s.Status, ServiceStatuses) {
		return enumError("status", ServiceStatuses)
	}
	if err := validateLocation(s.Location); err != nil {
		return err
	}
	return validateChat(s.Chat)
}

func validateLocation(raw datatypes.JSON) error {
	if len(raw) == 0 {
		return nil
	}
	var loc Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return errors.New("location must be an object with lat and lon")
	}
	return nil
}

// validateChat checks every embedded entry; the array itself is free-form JSON
// in the store, so shape is enforced here.
func validateChat(raw datatypes.JSON) error {
	if len(raw) == 0 {
		return nil
	}
	var chat []ChatMessage
	if err := json.Unmarshal(raw, &chat); err != nil {
		return errors.New("chat must be an array of {sender, message, timestamp} entries")
	}
	for _, entry := range chat {
		if !inEnum(entry.Sender, ChatSenders) {
			return enumError("chat sender", ChatSenders)
		}
		if entry.Message == "" {
			return requiredError("chat message")
		}
		if entry.Timestamp == "" {
			return requiredError("chat timestamp")
		}
	}
	return nil
}

var serviceFields = map[string]fieldSpec{
	"clientName":         {column: "client_name"},
	"electricianId":      {column: "electrician_id"},
	"electricianName":    {column: "electrician_name"},
	"serviceType":        {column: "service_type", enum: ServiceTypes},
	"address":            {column: "address"},
	"status":             {column: "status", enum: ServiceStatuses},
	"date":               {column: "date"},
	"value":              {column: "value"},
	"eta":                {column: "eta"},
	"cep":                {column: "cep"},
	"referencePoint":     {column: "reference_point"},
	"location":           {column: "location", asJSON: true},
	"chat":               {column: "chat", asJSON: true},
	"clientRating":       {column: "client_rating"},
	"electricianRating":  {column: "electrician_rating"},
	"serviceDescription": {column: "service_description"},
	"serviceNotes":       {column: "service_notes"},
}

// ServiceUpdate filters a request body down to writable columns. The chat
// array is replaced wholesale and re-validated entry by entry.
func ServiceUpdate(body map[string]any) (map[string]any, error) {
	update, err := buildUpdate(body, serviceFields)
	if err != nil {
		return nil, err
	}
	if raw, ok := update["chat"].(datatypes.JSON); ok {
		if err := validateChat(raw); err != nil {
			return nil, err
		}
	}
	if raw, ok := update["location"].(datatypes.JSON); ok {
		if err := validateLocation(raw); err != nil {
			return nil, err
		}
	}
	return update, nil
}
