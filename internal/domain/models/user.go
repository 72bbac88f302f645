package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id                 primitive.ObjectID `bson:"_id" json:"id"`
	Email              string             `bson:"email" json:"email"`
	PasswordHash       *string            `bson:"password_hash,omitempty" json:"-"`
	FullName           string             `bson:"full_name" json:"full_name"`
	GoogleId           string             `bson:"google_id,omitempty" json:"-"`
	Language           string             `bson:"language,omitempty" json:"language,omitempty"`
	Currency           string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Theme              string             `bson:"theme,omitempty" json:"theme,omitempty"`
	BlurValues         bool               `bson:"blur_values" json:"blurValues"`
	PriceAlerts        bool               `bson:"price_alerts" json:"priceAlerts"`
	WeeklyReports      bool               `bson:"weekly_reports" json:"weeklyReports"`
	EmailNotifications bool               `bson:"email_notifications" json:"emailNotifications"`
	LastLogin          *time.Time         `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// UserProfileInput carries the mutable profile fields accepted by PUT /auth/me.
// Pointer fields distinguish "not sent" from a zero value.
type UserProfileInput struct {
	FullName           *string `json:"full_name"`
	Language           *string `json:"language"`
	Currency           *string `json:"currency"`
	Theme              *string `json:"theme"`
	BlurValues         *bool   `json:"blurValues"`
	PriceAlerts        *bool   `json:"priceAlerts"`
	WeeklyReports      *bool   `json:"weeklyReports"`
	EmailNotifications *bool   `json:"emailNotifications"`
}
