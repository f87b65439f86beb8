package domain

// LeadDateFormat is the human-readable submission date shown to the admin.
// Fixed at registration time and never recomputed.
const LeadDateFormat = "02.01.2006"

// Client is a visitor's contact request (a lead). Immutable once stored.
type Client struct {
	ID    int64  `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
	Date  string `json:"date" bson:"date"`
}
