package entity

import "fmt"

// One typed enum per concept. The string values are the persisted and
// API-visible representations.

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type TransactionType string

const (
	TransactionTypeTollPayment     TransactionType = "toll payment"
	TransactionTypeAccountRecharge TransactionType = "account recharge"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeTollPayment, TransactionTypeAccountRecharge:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("unknown transaction type: %q", s)
}

type AccountTransactionType string

const (
	AccountTransactionDeposit    AccountTransactionType = "deposit"
	AccountTransactionWithdrawal AccountTransactionType = "withdrawal"
	AccountTransactionRefund     AccountTransactionType = "refund"
)

func ParseAccountTransactionType(s string) (AccountTransactionType, error) {
	switch AccountTransactionType(s) {
	case AccountTransactionDeposit, AccountTransactionWithdrawal, AccountTransactionRefund:
		return AccountTransactionType(s), nil
	}
	return "", fmt.Errorf("unknown account transaction type: %q", s)
}

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeBus        VehicleType = "bus"
	VehicleTypeOther      VehicleType = "other"
)

type BusyLevel string

const (
	BusyLevelLow    BusyLevel = "low"
	BusyLevelMedium BusyLevel = "medium"
	BusyLevelHigh   BusyLevel = "high"
)

type NotificationType string

const (
	NotificationBalanceLow           NotificationType = "balance_low"
	NotificationTransactionComplete  NotificationType = "transaction_complete"
	NotificationSubscriptionExpiring NotificationType = "subscription_expiring"
	NotificationGeneral              NotificationType = "general"
)
