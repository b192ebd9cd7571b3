package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportRecord is the audit entry stored for every generated spreadsheet.
type ExportRecord struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	Kind       string             `json:"kind" bson:"kind"`
	Filename   string             `json:"filename" bson:"filename"`
	EmployeeID string             `json:"employeeId" bson:"employeeId"`
	Project    string             `json:"project" bson:"project"`
	From       string             `json:"from" bson:"from"`
	To         string             `json:"to" bson:"to"`
	RowCount   int                `json:"rowCount" bson:"rowCount"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
