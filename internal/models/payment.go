package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a subscription plan payment.
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID   primitive.ObjectID `bson:"companyId" json:"companyId"`
	PlanName    string             `bson:"planName,omitempty" json:"planName,omitempty"`
	Amount      float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency    string             `bson:"currency,omitempty" json:"currency,omitempty"`
	PaymentDate time.Time          `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	StartDate   time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Refunded    bool               `bson:"refunded,omitempty" json:"refunded,omitempty"`
	SessionID   string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
}
