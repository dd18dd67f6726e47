package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a managed project with team, tasks and a budget figure.
type Project struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID      primitive.ObjectID `bson:"companyId" json:"companyId"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	ProjectManager primitive.ObjectID `bson:"projectManager,omitempty" json:"projectManager,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	StartDate      time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	DepartmentID   primitive.ObjectID `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	TeamMembers    []TeamMemberRef    `bson:"teamMembers,omitempty" json:"teamMembers,omitempty"`
	Budget         float64            `bson:"budget,omitempty" json:"budget,omitempty"`
	Priority       string             `bson:"priority,omitempty" json:"priority,omitempty"`
	Tasks          []TaskRef          `bson:"tasks,omitempty" json:"tasks,omitempty"`
	Documents      []string           `bson:"documents,omitempty" json:"documents,omitempty"`
	Tags           []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Comments       []ProjectComment   `bson:"comments,omitempty" json:"comments,omitempty"`
	Progress       float64            `bson:"progress,omitempty" json:"progress,omitempty"`
}

type TaskRef struct {
	TaskID primitive.ObjectID `bson:"taskId,omitempty" json:"taskId,omitempty"`
}

type ProjectComment struct {
	User      primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Text      string             `bson:"text,omitempty" json:"text,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
