package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Supplier is a vendor record. Field casing follows the stored documents.
type Supplier struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID           primitive.ObjectID `bson:"companyId" json:"companyId"`
	SupplierName        string             `bson:"SupplierName,omitempty" json:"SupplierName,omitempty"`
	Contact             string             `bson:"Contact,omitempty" json:"Contact,omitempty"`
	Phone               string             `bson:"Phone,omitempty" json:"Phone,omitempty"`
	Email               string             `bson:"Email,omitempty" json:"Email,omitempty"`
	Address             string             `bson:"Address,omitempty" json:"Address,omitempty"`
	BankAccount         string             `bson:"BankAccount,omitempty" json:"BankAccount,omitempty"`
	Rating              []float64          `bson:"Rating,omitempty" json:"Rating,omitempty"`
	BaseCurrency        string             `bson:"baseCurrency,omitempty" json:"baseCurrency,omitempty"`
	IsActive            bool               `bson:"IsActive,omitempty" json:"IsActive,omitempty"`
	ConfirmationAccount string             `bson:"ConfirmationAccount,omitempty" json:"ConfirmationAccount,omitempty"`
	Attachments         []Attachment       `bson:"attachments,omitempty" json:"attachments,omitempty"`
	ProductsSupplied    []SuppliedProduct  `bson:"ProductsSupplied,omitempty" json:"ProductsSupplied,omitempty"`
}

type SuppliedProduct struct {
	ProductID   primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
}
