package models

import "time"

// Status reservasi
const (
	BookingStatusActive   = "ACTIVE"
	BookingStatusCanceled = "CANCELED"
)

type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	TableID     *uint     `gorm:"index" json:"table_id"` // nil setelah booking dibatalkan
	Table       *Table    `gorm:"foreignKey:TableID" json:"table,omitempty"`
	BookingDate time.Time `gorm:"not null" json:"booking_date"`
	Status      string    `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
