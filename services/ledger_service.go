package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edutrackhq/edutrack/apperrors"
	config "github.com/edutrackhq/edutrack/configs"
	"github.com/edutrackhq/edutrack/models"
)

// The ledger is the only place user balances are mutated. Every balance
// change is paired with exactly one transaction row inside the same
// database transaction, so the audit trail can never drift from the
// balance it explains.

// RequestTopUp records a PENDING top-up. The balance is untouched until an
// admin approves it.
func RequestTopUp(db *gorm.DB, userID uuid.UUID, amount float64, senderWalletNumber string) (*models.Transaction, error) {
	min, max := config.TopUpBounds()
	if amount < min || amount > max {
		return nil, apperrors.NewValidation(fmt.Sprintf("top-up amount must be between %.2f and %.2f", min, max))
	}

	txn := models.Transaction{
		UserID:             userID,
		Type:               models.TxnTypeTopUp,
		Amount:             amount,
		Status:             models.TxnStatusPending,
		Description:        "Wallet top-up request",
		SenderWalletNumber: &senderWalletNumber,
	}
	if err := db.Create(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

const (
	TopUpApprove = "APPROVE"
	TopUpReject  = "REJECT"
)

// ResolveTopUp settles a pending top-up exactly once. Approval credits the
// balance and the status flip happen in one transaction; resolving a
// non-pending transaction is a conflict, so double submissions of the same
// decision are harmless.
func ResolveTopUp(db *gorm.DB, transactionID uuid.UUID, decision string) (*models.Transaction, error) {
	var txn models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txn, "id = ?", transactionID).Error; err != nil {
			return apperrors.NewNotFound("transaction not found")
		}
		if txn.Type != models.TxnTypeTopUp {
			return apperrors.NewValidation("transaction is not a top-up")
		}
		if txn.Status != models.TxnStatusPending {
			return apperrors.NewConflict("top-up has already been resolved")
		}

		switch decision {
		case TopUpApprove:
			txn.Status = models.TxnStatusApproved
			if err := tx.Save(&txn).Error; err != nil {
				return err
			}
			return tx.Model(&models.User{}).
				Where("id = ?", txn.UserID).
				Update("balance", gorm.Expr("balance + ?", txn.Amount)).Error
		case TopUpReject:
			txn.Status = models.TxnStatusRejected
			return tx.Save(&txn).Error
		default:
			return apperrors.NewValidation("decision must be APPROVE or REJECT")
		}
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Charge debits amount from the user inside the caller's transaction. The
// sufficiency check and the decrement are a single guarded UPDATE, so two
// concurrent charges can never both pass a stale balance check.
func Charge(tx *gorm.DB, userID uuid.UUID, amount float64, txnType, description string) error {
	res := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.NewNotFound("user not found")
		}
		return apperrors.NewInsufficientBalance("insufficient balance, please top up your wallet first")
	}

	txn := models.Transaction{
		UserID:      userID,
		Type:        txnType,
		Amount:      amount,
		Status:      models.TxnStatusApproved,
		Description: description,
	}
	return tx.Create(&txn).Error
}

// Refund credits amount back to the user and appends a negative-amount
// transaction marking the reversal. Runs inside the caller's transaction.
func Refund(tx *gorm.DB, userID uuid.UUID, amount float64, txnType, description string) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("user not found")
	}

	txn := models.Transaction{
		UserID:      userID,
		Type:        txnType,
		Amount:      -amount,
		Status:      models.TxnStatusApproved,
		Description: description,
	}
	return tx.Create(&txn).Error
}

// ListTransactions returns a user's full audit trail, newest first.
func ListTransactions(db *gorm.DB, userID uuid.UUID) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txns).Error
	return txns, err
}

// ListPendingTopUps returns all top-ups awaiting an admin decision, oldest
// first so the queue is worked in order.
func ListPendingTopUps(db *gorm.DB) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := db.Preload("User").
		Where("type = ? AND status = ?", models.TxnTypeTopUp, models.TxnStatusPending).
		Order("created_at ASC").
		Find(&txns).Error
	return txns, err
}
