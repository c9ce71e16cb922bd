package domain

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyInfo    NotificationType = "info"
)

// Notification is the transient message a store surfaces after a mutation.
// ID changes on every Show and guards the auto-hide timer.
type Notification struct {
	ID      string           `json:"id,omitempty"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Show    bool             `json:"show"`
}
