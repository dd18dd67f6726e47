package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is an HR employee record. Name and LastName are matched separately
// by the employees handler, so both stay top-level.
type Employee struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID          primitive.ObjectID  `bson:"companyId" json:"companyId"`
	Name               string              `bson:"name,omitempty" json:"name,omitempty"`
	LastName           string              `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Gender             string              `bson:"gender,omitempty" json:"gender,omitempty"`
	Identity           string              `bson:"identity,omitempty" json:"identity,omitempty"`
	Email              string              `bson:"email,omitempty" json:"email,omitempty"`
	Role               string              `bson:"role,omitempty" json:"role,omitempty"`
	Phone              string              `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage       string              `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Department         primitive.ObjectID  `bson:"department,omitempty" json:"department,omitempty"`
	Projects           []EmployeeProject   `bson:"projects,omitempty" json:"projects,omitempty"`
	Benefits           []string            `bson:"benefits,omitempty" json:"benefits,omitempty"`
	PerformanceReviews []PerformanceReview `bson:"performanceReviews,omitempty" json:"performanceReviews,omitempty"`
	Attendance         []AttendanceEntry   `bson:"attendance,omitempty" json:"attendance,omitempty"`
	Address            EmployeeAddress     `bson:"address,omitempty" json:"address,omitempty"`
	Status             string              `bson:"status,omitempty" json:"status,omitempty"`
	LastLogin          time.Time           `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

type EmployeeProject struct {
	ProjectID primitive.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
}

type PerformanceReview struct {
	ReviewID primitive.ObjectID `bson:"reviewId,omitempty" json:"reviewId,omitempty"`
	Score    float64            `bson:"score,omitempty" json:"score,omitempty"`
}

type AttendanceEntry struct {
	Date   time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Status string    `bson:"status,omitempty" json:"status,omitempty"`
}

type EmployeeAddress struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}
