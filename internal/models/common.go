// Package models holds the typed business records stored per tenant
// collection. Field sets mirror the ERP backend schemas; every reference to
// another record is an ObjectID resolved at presentation time.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment is a stored file reference shared by several record types.
type Attachment struct {
	FileName string `bson:"fileName,omitempty" json:"fileName,omitempty"`
	FileURL  string `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
}

// Signer is one entry in a signature chain (budgets, procurements).
type Signer struct {
	EmployeeID primitive.ObjectID `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Order      int                `bson:"order,omitempty" json:"order,omitempty"`
	HasSigned  bool               `bson:"hasSigned,omitempty" json:"hasSigned,omitempty"`
}

// Approval is a recorded sign-off on a budget.
type Approval struct {
	ApprovedBy primitive.ObjectID `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	ApprovedAt time.Time          `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	Comment    string             `bson:"comment,omitempty" json:"comment,omitempty"`
}
