package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a calendar event with internal and external participants.
type Event struct {
	ID                   primitive.ObjectID    `bson:"_id,omitempty" json:"_id,omitempty"`
	CompanyID            primitive.ObjectID    `bson:"companyId" json:"companyId"`
	Title                string                `bson:"title,omitempty" json:"title,omitempty"`
	Description          string                `bson:"description,omitempty" json:"description,omitempty"`
	StartDate            time.Time             `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate              time.Time             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	StartTime            string                `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime              string                `bson:"endTime,omitempty" json:"endTime,omitempty"`
	AllDay               bool                  `bson:"allDay,omitempty" json:"allDay,omitempty"`
	Location             string                `bson:"location,omitempty" json:"location,omitempty"`
	MeetingURL           string                `bson:"meetingUrl,omitempty" json:"meetingUrl,omitempty"`
	EventType            string                `bson:"eventType,omitempty" json:"eventType,omitempty"`
	Participants         []primitive.ObjectID  `bson:"participants,omitempty" json:"participants,omitempty"`
	ExternalParticipants []ExternalParticipant `bson:"externalParticipants,omitempty" json:"externalParticipants,omitempty"`
	Recurrence           string                `bson:"recurrence,omitempty" json:"recurrence,omitempty"`
	Attachments          []Attachment          `bson:"attachments,omitempty" json:"attachments,omitempty"`
	CreatedBy            primitive.ObjectID    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	Notes                string                `bson:"notes,omitempty" json:"notes,omitempty"`
}

type ExternalParticipant struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}
