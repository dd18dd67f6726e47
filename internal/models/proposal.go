package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProcurementProposal is a purchase request awaiting approval.
type ProcurementProposal struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID            primitive.ObjectID `bson:"companyId" json:"companyId"`
	Title                string             `bson:"title,omitempty" json:"title,omitempty"`
	Description          string             `bson:"description,omitempty" json:"description,omitempty"`
	Items                []ProcurementItem  `bson:"items,omitempty" json:"items,omitempty"`
	TotalEstimatedCost   float64            `bson:"totalEstimatedCost,omitempty" json:"totalEstimatedCost,omitempty"`
	Status               string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedBy            primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	RequestedDate        time.Time          `bson:"requestedDate,omitempty" json:"requestedDate,omitempty"`
	ExpectedDeliveryDate time.Time          `bson:"expectedDeliveryDate,omitempty" json:"expectedDeliveryDate,omitempty"`
	Notes                string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Attachments          []Attachment       `bson:"attachments,omitempty" json:"attachments,omitempty"`
}
