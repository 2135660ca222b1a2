package contact

import "github.com/google/uuid"

// SubmitRequest for POST /contact
type SubmitRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Message string `json:"message" validate:"required,max=5000"`
}

// SubmitResponse reports the saved message and whether the notification
// email went out. The message is kept even when the email fails.
type SubmitResponse struct {
	ID        uuid.UUID `json:"id"`
	EmailSent bool      `json:"email_sent"`
}
