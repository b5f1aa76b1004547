package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CashEntryType represents the direction of a manual cash movement
type CashEntryType int

const (
	CashEntryTypeIn  CashEntryType = 0
	CashEntryTypeOut CashEntryType = 1
)

func (t CashEntryType) String() string {
	if t == CashEntryTypeOut {
		return "OUT"
	}
	return "IN"
}

// ParseCashEntryType converts a string name into a CashEntryType
func ParseCashEntryType(s string) (CashEntryType, error) {
	switch s {
	case "IN":
		return CashEntryTypeIn, nil
	case "OUT":
		return CashEntryTypeOut, nil
	}
	return CashEntryTypeIn, fmt.Errorf("unknown cash entry type: %q", s)
}

func (t CashEntryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CashEntryType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CashEntryType(i)
		return nil
	}
	parsed, err := ParseCashEntryType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t CashEntryType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CashEntryType) Scan(value interface{}) error {
	if value == nil {
		*t = CashEntryTypeIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CashEntryType(v)
	case int:
		*t = CashEntryType(v)
	}
	return nil
}
