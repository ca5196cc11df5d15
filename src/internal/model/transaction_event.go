package model

type TransactionEvent struct {
	ID      string              `json:"id,omitempty"`
	Message TransactionResponse `json:"message,omitempty"`
}

func (e *TransactionEvent) GetId() string {
	return e.ID
}

type BalanceAlertEvent struct {
	ID      string  `json:"id,omitempty"`
	UserID  int64   `json:"user_id"`
	Balance float64 `json:"balance"`
}

func (e *BalanceAlertEvent) GetId() string {
	return e.ID
}
