// Package store abstracts the tenant document database. Handlers build bson
// filters and decode into typed records; the Mongo implementation bounds
// every call with the configured query timeout.
package store

import (
	"context"
)

// Collection names as stored in the database.
const (
	CollBudgets            = "budgets"
	CollCustomerOrders     = "customerorders"
	CollCustomers          = "customers"
	CollDepartments        = "departments"
	CollEmployees          = "employees"
	CollEvents             = "events"
	CollFinances           = "finances"
	CollInventories        = "inventories"
	CollPayments           = "payments"
	CollPerformanceReviews = "performancereviews"
	CollProcurements       = "procurements"
	CollProposals          = "procurementproposals"
	CollProducts           = "products"
	CollProductTrees       = "producttrees"
	CollProjects           = "projects"
	CollSuppliers          = "suppliers"
	CollTasks              = "tasks"
)

// CorpusCollections lists every collection loaded into the similarity corpus.
var CorpusCollections = []string{
	CollBudgets, CollCustomerOrders, CollCustomers, CollDepartments,
	CollEmployees, CollEvents, CollFinances, CollInventories, CollPayments,
	CollPerformanceReviews, CollProcurements, CollProposals, CollProducts,
	CollProductTrees, CollProjects, CollSuppliers, CollTasks,
}

// Store is the read-only query surface of the document database.
type Store interface {
	// Find decodes every document matching filter into out, a pointer to a
	// slice of records.
	Find(ctx context.Context, collection string, filter interface{}, out interface{}) error

	// FindOne decodes the first document matching filter into out. The bool
	// reports whether a document was found; absence is not an error.
	FindOne(ctx context.Context, collection string, filter interface{}, out interface{}) (bool, error)

	// FindRaw returns matching documents as generic maps, used for corpus
	// serialization where no typed record applies.
	FindRaw(ctx context.Context, collection string, filter interface{}) ([]map[string]interface{}, error)
}
