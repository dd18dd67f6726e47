package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Budget is a department or project budget with its signature chain.
type Budget struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID               primitive.ObjectID `bson:"companyId" json:"companyId"`
	DepartmentOrProjectName string             `bson:"departmentOrProjectName,omitempty" json:"departmentOrProjectName,omitempty"`
	DepartmentID            primitive.ObjectID `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	ProjectID               primitive.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Amount                  float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	SpentAmount             float64            `bson:"spentAmount,omitempty" json:"spentAmount,omitempty"`
	Currency                string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Period                  string             `bson:"period,omitempty" json:"period,omitempty"`
	StartDate               time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate                 time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status                  string             `bson:"status,omitempty" json:"status,omitempty"`
	Categories              []BudgetCategory   `bson:"categories,omitempty" json:"categories,omitempty"`
	Items                   []BudgetItem       `bson:"items,omitempty" json:"items,omitempty"`
	Notes                   string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy               primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy               primitive.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	Approvals               []Approval         `bson:"approvals,omitempty" json:"approvals,omitempty"`
	CurrentSignatures       int                `bson:"currentSignatures,omitempty" json:"currentSignatures,omitempty"`
	CurrentSignerIndex      int                `bson:"currentSignerIndex,omitempty" json:"currentSignerIndex,omitempty"`
	Signers                 []Signer           `bson:"signers,omitempty" json:"signers,omitempty"`
}

type BudgetCategory struct {
	Name            string  `bson:"name,omitempty" json:"name,omitempty"`
	AllocatedAmount float64 `bson:"allocatedAmount,omitempty" json:"allocatedAmount,omitempty"`
}

type BudgetItem struct {
	ProductID  primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	Quantity   float64            `bson:"quantity,omitempty" json:"quantity,omitempty"`
	UnitPrice  float64            `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	TotalPrice float64            `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
}
