package entities

import "time"

// UserAccessRecord is the per-user entitlement row. The record is
// created by the signup flow (outside this service); this service only
// ever flips IsPaid from false to true and assigns the access token,
// exactly once per user.
//
// Storage model (DynamoDB):
//   - PK: email (string)

type UserAccessRecord struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsPaid    bool      `json:"is_paid"`
	Token     string    `json:"token,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
