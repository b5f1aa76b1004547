package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a transaction was paid
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodDebitCard
	PaymentMethodCreditCard
	PaymentMethodQRIS
	PaymentMethodEWallet
)

var paymentMethodNames = [...]string{"CASH", "DEBIT_CARD", "CREDIT_CARD", "QRIS", "E_WALLET"}

func (m PaymentMethod) String() string {
	if m < 0 || int(m) >= len(paymentMethodNames) {
		return "CASH"
	}
	return paymentMethodNames[m]
}

// IsValid reports whether the method is one of the known payment methods
func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodEWallet
}

// IsCard reports whether the method requires bank/card details
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodDebitCard || m == PaymentMethodCreditCard
}

// IsEWallet reports whether the method requires provider/reference details
func (m PaymentMethod) IsEWallet() bool {
	return m == PaymentMethodQRIS || m == PaymentMethodEWallet
}

// ParsePaymentMethod converts a string name into a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for i, name := range paymentMethodNames {
		if name == s {
			return PaymentMethod(i), nil
		}
	}
	return PaymentMethodCash, fmt.Errorf("unknown payment method: %q", s)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
