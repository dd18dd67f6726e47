package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a CRM customer record.
type Customer struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID              primitive.ObjectID `bson:"companyId" json:"companyId"`
	Name                   string             `bson:"name,omitempty" json:"name,omitempty"`
	Email                  string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone                  string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address                string             `bson:"address,omitempty" json:"address,omitempty"`
	Company                string             `bson:"company,omitempty" json:"company,omitempty"`
	Website                string             `bson:"website,omitempty" json:"website,omitempty"`
	Industry               string             `bson:"industry,omitempty" json:"industry,omitempty"`
	Status                 string             `bson:"status,omitempty" json:"status,omitempty"`
	CustomerType           string             `bson:"customerType,omitempty" json:"customerType,omitempty"`
	DateOfBirth            time.Time          `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender                 string             `bson:"gender,omitempty" json:"gender,omitempty"`
	PreferredContactMethod string             `bson:"preferredContactMethod,omitempty" json:"preferredContactMethod,omitempty"`
	LastContacted          time.Time          `bson:"lastContacted,omitempty" json:"lastContacted,omitempty"`
	CustomerSince          time.Time          `bson:"customerSince,omitempty" json:"customerSince,omitempty"`
	Contacts               []ContactPerson    `bson:"contacts,omitempty" json:"contacts,omitempty"`
	Notes                  string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy              primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy              primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

type ContactPerson struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Position string `bson:"position,omitempty" json:"position,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
}
