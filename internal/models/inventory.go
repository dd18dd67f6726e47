package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inventory is the stock record for one product.
type Inventory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID       primitive.ObjectID `bson:"companyId" json:"companyId"`
	ProductID       primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	Quantity        float64            `bson:"quantity,omitempty" json:"quantity,omitempty"`
	MinStockLevel   float64            `bson:"minStockLevel,omitempty" json:"minStockLevel,omitempty"`
	ReorderQuantity float64            `bson:"reorderQuantity,omitempty" json:"reorderQuantity,omitempty"`
	BatchNumber     string             `bson:"batchNumber,omitempty" json:"batchNumber,omitempty"`
	ExpirationDate  time.Time          `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
	ShelfLocation   string             `bson:"shelfLocation,omitempty" json:"shelfLocation,omitempty"`
	LastOrderDate   time.Time          `bson:"lastOrderDate,omitempty" json:"lastOrderDate,omitempty"`
}
