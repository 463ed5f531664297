package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the delivery address a user fills in before paying.
type Address struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID        string             `json:"-" bson:"userId"`
	RecipientName string             `json:"recipientName" bson:"recipientName"`
	StreetType    string             `json:"streetType" bson:"streetType"`
	StreetName    string             `json:"streetName" bson:"streetName"`
	StreetNumber  string             `json:"streetNumber" bson:"streetNumber"`
	Complement    string             `json:"complement,omitempty" bson:"complement,omitempty"`
	Neighborhood  string             `json:"neighborhood" bson:"neighborhood"`
	ZipCode       string             `json:"zipCode" bson:"zipCode"`
	City          string             `json:"city" bson:"city"`
	State         string             `json:"state" bson:"state"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
