package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionStatus is the disposition state of a queued transaction
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusDeclined TransactionStatus = "declined"
)

// TransactionQueue is a payment awaiting operator disposition. Rows are
// created by the payment intake (outside this service); this layer lists
// them and flips status to approved or declined.
type TransactionQueue struct {
	ID                  string            `gorm:"type:uuid;primaryKey" json:"id"`
	MerchantName        string            `json:"merchant_name"`
	SenderUpiID         string            `json:"sender_upi_id"`
	ReceiverUpiID       string            `json:"receiver_upi_id"`
	UTR                 string            `json:"utr"` // settlement reference, may be empty
	Status              TransactionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AmountPaise         int64             `json:"amount_paise"`
	MerchantCallbackURL string            `json:"merchant_callback_url"`
	CreatedAt           time.Time         `json:"created_at"`
}

func (TransactionQueue) TableName() string {
	return "transaction_queue"
}

func (t *TransactionQueue) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
