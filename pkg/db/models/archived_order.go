package models

import "time"

// ArchivedOrder mirrors one tracker order in the durable archive. The in-memory
// engine stays authoritative; these rows are replaced wholesale on every save.
type ArchivedOrder struct {
	ID           string     `gorm:"column:id;type:uuid;primaryKey"`
	CustomerName string     `gorm:"column:customer_name;not null;default:''"`
	Phone        string     `gorm:"column:phone;not null"`
	Details      string     `gorm:"column:details;not null;default:''"`
	DateReceived time.Time  `gorm:"column:date_received;not null"`
	Completed    bool       `gorm:"column:completed;not null;default:false"`
	PickedUp     bool       `gorm:"column:picked_up;not null;default:false"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
	PickedAt     *time.Time `gorm:"column:picked_at"`
}

// TableName pins the goose-managed table name.
func (ArchivedOrder) TableName() string {
	return "order_archive"
}
