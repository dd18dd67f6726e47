package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerOrder is a sales order placed by a customer.
type CustomerOrder struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID      primitive.ObjectID `bson:"companyId" json:"companyId"`
	Customer       primitive.ObjectID `bson:"customer,omitempty" json:"customer,omitempty"`
	OrderDate      time.Time          `bson:"orderDate,omitempty" json:"orderDate,omitempty"`
	DeliveryDate   time.Time          `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	Items          []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	GlobalDiscount float64            `bson:"globalDiscount,omitempty" json:"globalDiscount,omitempty"`
	OrderTotal     float64            `bson:"orderTotal,omitempty" json:"orderTotal,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

type OrderItem struct {
	Product    primitive.ObjectID `bson:"product,omitempty" json:"product,omitempty"`
	Quantity   float64            `bson:"quantity,omitempty" json:"quantity,omitempty"`
	UnitPrice  float64            `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	Discount   float64            `bson:"discount,omitempty" json:"discount,omitempty"`
	TotalPrice float64            `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
}
