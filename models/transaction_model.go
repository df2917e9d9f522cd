package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TxnTypeTopUp             = "TOP_UP"
	TxnTypeDebit             = "DEBIT"
	TxnTypeRecordedSession   = "RECORDED_SESSION"
	TxnTypeFaceToFaceSession = "FACE_TO_FACE_SESSION"

	TxnStatusPending  = "PENDING"
	TxnStatusApproved = "APPROVED"
	TxnStatusRejected = "REJECTED"
)

// Transaction is the append-only audit trail behind every balance change.
// A negative Amount marks a refund/credit reversal.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"not null;index" json:"user_id"`
	Type        string    `gorm:"size:30;not null" json:"type"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status      string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Description string    `gorm:"size:255" json:"description"`

	SenderWalletNumber *string `gorm:"size:20" json:"sender_wallet_number,omitempty"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
