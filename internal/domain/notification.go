package domain

type NotificationType string

const (
	NotifJob         NotificationType = "job"
	NotifMessage     NotificationType = "message"
	NotifSystem      NotificationType = "system"
	NotifApplication NotificationType = "application"
)

// Notification is an inbox entry. Timestamp is a display string
// ("2 hours ago"), not a clock value. Entries are created only from
// seed data; the only mutations are mark-as-read and clear-all.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp string           `json:"timestamp"`
	Read      bool             `json:"read"`
	Avatar    string           `json:"avatar,omitempty"`
}
