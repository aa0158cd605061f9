// Package models defines the client-local data types.
package models

import "time"

// Draft is a locally stored, not yet sent message. Drafts never leave the
// client until they are sent through the regular send endpoint.
type Draft struct {
	ID        string
	To        string
	Subject   string
	Body      string
	UpdatedAt time.Time
}
