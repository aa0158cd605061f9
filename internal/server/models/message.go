package models

import "time"

// Message is a delivered mail row. Addresses are free-text emails and are
// not required to reference a registered user. Rows are immutable once
// created; CreatedAt is the ordering key for mailbox listings.
type Message struct {
	ID        string
	FromEmail string
	ToEmail   string
	Subject   string
	Body      string
	CreatedAt time.Time
}
