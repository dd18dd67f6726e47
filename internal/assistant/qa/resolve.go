package qa

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

// Name resolvers turn ObjectID references into display names. Lookups are
// scoped to the asking company, so a reference into another tenant's data
// resolves to the unknown sentinel instead of leaking a name. Resolver
// failures degrade to the sentinel as well; they never fail the answer.

func (e *Engine) employeeName(ctx context.Context, companyID, id primitive.ObjectID) string {
	if id.IsZero() {
		return unknown
	}
	var emp models.Employee
	found, err := e.store.FindOne(ctx, store.CollEmployees, bson.M{"_id": id, "companyId": companyID}, &emp)
	if err != nil {
		e.log.WithError(err).Warn("employee name lookup failed", nil)
		return unknown
	}
	if !found {
		return unknown
	}
	full := strings.TrimSpace(emp.Name + " " + emp.LastName)
	if full == "" {
		return unknown
	}
	return full
}

func (e *Engine) productName(ctx context.Context, companyID, id primitive.ObjectID) string {
	if id.IsZero() {
		return unknown
	}
	var product models.Product
	found, err := e.store.FindOne(ctx, store.CollProducts, bson.M{"_id": id, "companyId": companyID}, &product)
	if err != nil {
		e.log.WithError(err).Warn("product name lookup failed", nil)
		return unknown
	}
	if !found {
		return unknown
	}
	return orUnknown(product.ProductName)
}

func (e *Engine) supplierName(ctx context.Context, companyID, id primitive.ObjectID) string {
	if id.IsZero() {
		return unknown
	}
	var supplier models.Supplier
	found, err := e.store.FindOne(ctx, store.CollSuppliers, bson.M{"_id": id, "companyId": companyID}, &supplier)
	if err != nil {
		e.log.WithError(err).Warn("supplier name lookup failed", nil)
		return unknown
	}
	if !found {
		return unknown
	}
	return orUnknown(supplier.SupplierName)
}

func (e *Engine) departmentName(ctx context.Context, companyID, id primitive.ObjectID) string {
	if id.IsZero() {
		return unknown
	}
	var dept models.Department
	found, err := e.store.FindOne(ctx, store.CollDepartments, bson.M{"_id": id, "companyId": companyID}, &dept)
	if err != nil {
		e.log.WithError(err).Warn("department name lookup failed", nil)
		return unknown
	}
	if !found {
		return unknown
	}
	return orUnknown(dept.Name)
}

func (e *Engine) projectName(ctx context.Context, companyID, id primitive.ObjectID) string {
	if id.IsZero() {
		return unknown
	}
	var project models.Project
	found, err := e.store.FindOne(ctx, store.CollProjects, bson.M{"_id": id, "companyId": companyID}, &project)
	if err != nil {
		e.log.WithError(err).Warn("project name lookup failed", nil)
		return unknown
	}
	if !found {
		return unknown
	}
	return orUnknown(project.Name)
}
