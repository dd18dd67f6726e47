package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog product.
type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID          primitive.ObjectID `bson:"companyId" json:"companyId"`
	ProductName        string             `bson:"productName,omitempty" json:"productName,omitempty"`
	SKU                string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Barcode            string             `bson:"barcode,omitempty" json:"barcode,omitempty"`
	ProductDescription string             `bson:"productDescription,omitempty" json:"productDescription,omitempty"`
	UnitPrice          float64            `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	Category           string             `bson:"category,omitempty" json:"category,omitempty"`
	SupplierID         primitive.ObjectID `bson:"supplierId,omitempty" json:"supplierId,omitempty"`
	SupplierName       string             `bson:"supplierName,omitempty" json:"supplierName,omitempty"`
	Length             float64            `bson:"length,omitempty" json:"length,omitempty"`
	Width              float64            `bson:"width,omitempty" json:"width,omitempty"`
	Height             float64            `bson:"height,omitempty" json:"height,omitempty"`
	Volume             float64            `bson:"volume,omitempty" json:"volume,omitempty"`
	ProductImage       string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	Attachments        []Attachment       `bson:"attachments,omitempty" json:"attachments,omitempty"`
	ProductType        string             `bson:"productType,omitempty" json:"productType,omitempty"`
}
