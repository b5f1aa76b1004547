package entity

import "time"

// BackupVersion tags exported documents so future imports can migrate
const BackupVersion = "1.0"

// BackupDocument bundles every collection into one exportable JSON
// document. On import, collections that are nil (absent from the JSON)
// are left untouched; present collections replace what is stored.
type BackupDocument struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Products     []Product      `json:"products,omitempty"`
	Transactions []Transaction  `json:"transactions,omitempty"`
	CashEntries  []CashEntry    `json:"cash_entries,omitempty"`
	Customers    []Customer     `json:"customers,omitempty"`
	Users        []User         `json:"users,omitempty"`
	Attendances  []Attendance   `json:"attendances,omitempty"`
	Settings     *StoreSettings `json:"settings,omitempty"`
}
