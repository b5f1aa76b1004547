package enum

import "encoding/json"

// StockStatus is the single health label shown for a product.
// Priority when several conditions hold: Expired > ExpiringSoon > LowStock > Safe.
type StockStatus int

const (
	StockStatusSafe StockStatus = iota
	StockStatusLowStock
	StockStatusExpiringSoon
	StockStatusExpired
)

func (s StockStatus) String() string {
	return [...]string{"Safe", "LowStock", "ExpiringSoon", "Expired"}[s]
}

func (s StockStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
