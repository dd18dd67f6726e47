package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a work item, optionally tied to a project or a customer order.
type Task struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID    primitive.ObjectID   `bson:"companyId" json:"companyId"`
	Title        string               `bson:"title,omitempty" json:"title,omitempty"`
	Description  string               `bson:"description,omitempty" json:"description,omitempty"`
	Status       string               `bson:"status,omitempty" json:"status,omitempty"`
	Priority     string               `bson:"priority,omitempty" json:"priority,omitempty"`
	DueDate      time.Time            `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	AssignedTo   []primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	OrderID      primitive.ObjectID   `bson:"orderId,omitempty" json:"orderId,omitempty"`
	OrderItems   []TaskOrderItem      `bson:"orderItems,omitempty" json:"orderItems,omitempty"`
	ProjectID    primitive.ObjectID   `bson:"projectId,omitempty" json:"projectId,omitempty"`
	DepartmentID primitive.ObjectID   `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
}

type TaskOrderItem struct {
	ProductID   primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Quantity    float64            `bson:"quantity,omitempty" json:"quantity,omitempty"`
}
