package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Procurement is a purchase order sent to a supplier. Field casing follows
// the stored documents, which mix PascalCase and camelCase.
type Procurement struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID          primitive.ObjectID `bson:"companyId" json:"companyId"`
	PurchaseOrder      string             `bson:"PurchaseOrder,omitempty" json:"PurchaseOrder,omitempty"`
	SupplierID         primitive.ObjectID `bson:"supplierId,omitempty" json:"supplierId,omitempty"`
	SupplierName       string             `bson:"supplierName,omitempty" json:"supplierName,omitempty"`
	Products           []ProcurementItem  `bson:"products,omitempty" json:"products,omitempty"`
	PaymentMethod      string             `bson:"PaymentMethod,omitempty" json:"PaymentMethod,omitempty"`
	PaymentTerms       string             `bson:"PaymentTerms,omitempty" json:"PaymentTerms,omitempty"`
	DeliveryAddress    string             `bson:"DeliveryAddress,omitempty" json:"DeliveryAddress,omitempty"`
	ShippingMethod     string             `bson:"ShippingMethod,omitempty" json:"ShippingMethod,omitempty"`
	PurchaseDate       time.Time          `bson:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	DeliveryDate       time.Time          `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	OrderStatus        string             `bson:"orderStatus,omitempty" json:"orderStatus,omitempty"`
	ApprovalStatus     string             `bson:"approvalStatus,omitempty" json:"approvalStatus,omitempty"`
	PaymentStatus      string             `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	ShippingCost       float64            `bson:"shippingCost,omitempty" json:"shippingCost,omitempty"`
	Currency           string             `bson:"currency,omitempty" json:"currency,omitempty"`
	RequiresCustoms    bool               `bson:"requiresCustoms,omitempty" json:"requiresCustoms,omitempty"`
	WarrantyExpiration time.Time          `bson:"warrantyExpiration,omitempty" json:"warrantyExpiration,omitempty"`
	ReceivedDate       time.Time          `bson:"receivedDate,omitempty" json:"receivedDate,omitempty"`
	TotalCost          float64            `bson:"totalCost,omitempty" json:"totalCost,omitempty"`
	SummaryProcurement string             `bson:"summeryProcurement,omitempty" json:"summeryProcurement,omitempty"`
	CurrentSignatures  int                `bson:"currentSignatures,omitempty" json:"currentSignatures,omitempty"`
	CurrentSignerIndex int                `bson:"currentSignerIndex,omitempty" json:"currentSignerIndex,omitempty"`
	Signers            []Signer           `bson:"signers,omitempty" json:"signers,omitempty"`
	Status             string             `bson:"status,omitempty" json:"status,omitempty"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

type ProcurementItem struct {
	ProductID   primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Quantity    float64            `bson:"quantity,omitempty" json:"quantity,omitempty"`
	UnitPrice   float64            `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	Total       float64            `bson:"total,omitempty" json:"total,omitempty"`
}
