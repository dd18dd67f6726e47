package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Department groups employees, projects and budgets under one manager.
type Department struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID         primitive.ObjectID `bson:"companyId" json:"companyId"`
	Name              string             `bson:"name,omitempty" json:"name,omitempty"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	DepartmentManager primitive.ObjectID `bson:"departmentManager,omitempty" json:"departmentManager,omitempty"`
	TeamMembers       []TeamMemberRef    `bson:"teamMembers,omitempty" json:"teamMembers,omitempty"`
	Projects          []ProjectRef       `bson:"projects,omitempty" json:"projects,omitempty"`
	Budgets           []BudgetRef        `bson:"budgets,omitempty" json:"budgets,omitempty"`
}

type TeamMemberRef struct {
	EmployeeID primitive.ObjectID `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
}

type ProjectRef struct {
	ProjectID primitive.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
}

type BudgetRef struct {
	BudgetID primitive.ObjectID `bson:"budgetId,omitempty" json:"budgetId,omitempty"`
}
