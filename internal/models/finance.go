package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction type constants used by the finances handler.
const (
	TransactionIncome  = "Income"
	TransactionExpense = "Expense"
)

// Finance is a single income or expense transaction. PartyID points at an
// employee or a supplier depending on RecordType.
type Finance struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID              primitive.ObjectID `bson:"companyId" json:"companyId"`
	TransactionType        string             `bson:"transactionType,omitempty" json:"transactionType,omitempty"`
	TransactionDate        time.Time          `bson:"transactionDate,omitempty" json:"transactionDate,omitempty"`
	TransactionAmount      float64            `bson:"transactionAmount,omitempty" json:"transactionAmount,omitempty"`
	TransactionCurrency    string             `bson:"transactionCurrency,omitempty" json:"transactionCurrency,omitempty"`
	TransactionDescription string             `bson:"transactionDescription,omitempty" json:"transactionDescription,omitempty"`
	Category               string             `bson:"category,omitempty" json:"category,omitempty"`
	BankAccount            string             `bson:"bankAccount,omitempty" json:"bankAccount,omitempty"`
	TransactionStatus      string             `bson:"transactionStatus,omitempty" json:"transactionStatus,omitempty"`
	RecordType             string             `bson:"recordType,omitempty" json:"recordType,omitempty"`
	PartyID                primitive.ObjectID `bson:"partyId,omitempty" json:"partyId,omitempty"`
	AttachmentURL          []string           `bson:"attachmentURL,omitempty" json:"attachmentURL,omitempty"`
	InvoiceNumber          string             `bson:"invoiceNumber,omitempty" json:"invoiceNumber,omitempty"`
	OtherDetails           string             `bson:"otherDetails,omitempty" json:"otherDetails,omitempty"`
}
