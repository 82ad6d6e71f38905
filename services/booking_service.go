package services

import (
	"errors"
	"time"

	"github.com/tablebook/booking-app/models"
	"github.com/tablebook/booking-app/utils"
	"gorm.io/gorm"
)

// BookingService meng-orkestrasi alur reservasi:
// resolve user, validasi meja, aturan tanggal, dan flip status meja.
type BookingService struct {
	db     *gorm.DB
	users  *UserService
	tables *TableService
}

func NewBookingService(db *gorm.DB, users *UserService, tables *TableService) *BookingService {
	return &BookingService{
		db:     db,
		users:  users,
		tables: tables,
	}
}

// CreateBooking membuat reservasi baru untuk user yang terautentikasi.
// Flip status meja dan penyimpanan booking berjalan dalam satu transaksi;
// claim meja memakai compare-and-set supaya dua request yang balapan pada
// meja yang sama hanya menghasilkan satu pemenang.
func (s *BookingService) CreateBooking(userID uint, tableID uint, date time.Time) (*models.Booking, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	table, err := s.tables.FindTableByID(tableID)
	if err != nil {
		return nil, err
	}

	if err := s.tables.CheckTableAvailability(table); err != nil {
		return nil, err
	}

	if !checkValidBookingDate(date, time.Now()) {
		return nil, ErrInvalidBookingDate
	}

	booking := models.Booking{
		UserID:      user.ID,
		TableID:     &table.ID,
		BookingDate: date,
		Status:      models.BookingStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tables.claimTable(tx, table.ID); err != nil {
			return err
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	table.Status = models.TableStatusBooked
	booking.Table = table

	utils.InfoLogger.Printf("Booking %d created by user %d (table=%d)", booking.ID, user.ID, table.ID)
	return &booking, nil
}

// checkValidBookingDate memvalidasi window reservasi terhadap acuan now:
// tanggal harus setelah now dan paling jauh satu bulan ke depan,
// dengan batas atas inklusif.
func checkValidBookingDate(date, now time.Time) bool {
	supported := now.AddDate(0, 1, 0)

	return date.After(now) && !date.After(supported)
}

// GetBookingsForUser mengembalikan seluruh reservasi milik user,
// termasuk yang sudah dibatalkan. Slice kosong bukan error.
func (s *BookingService) GetBookingsForUser(userID uint) ([]models.Booking, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := s.db.Preload("Table").Where("user_id = ?", user.ID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// findBookingByID mencari reservasi berdasarkan id.
func (s *BookingService) findBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// CancelBooking membatalkan reservasi milik user (soft delete).
// Reservasi milik user lain dilaporkan sebagai not found, bukan forbidden,
// supaya keberadaan reservasi orang lain tidak bocor.
func (s *BookingService) CancelBooking(id uint, userID uint) (*models.Booking, error) {
	userBookings, err := s.GetBookingsForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(userBookings) == 0 {
		return nil, ErrNoBookings
	}

	booking, err := s.findBookingByID(id)
	if err != nil {
		return nil, err
	}

	owned := false
	for _, b := range userBookings {
		if b.ID == booking.ID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, ErrBookingNotFound
	}

	if booking.TableID == nil {
		return nil, ErrAlreadyCanceled
	}
	tableID := *booking.TableID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tables.releaseTable(tx, tableID); err != nil {
			return err
		}
		return tx.Model(booking).Updates(map[string]interface{}{
			"table_id": nil,
			"status":   models.BookingStatusCanceled,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	booking.TableID = nil
	booking.Table = nil
	booking.Status = models.BookingStatusCanceled

	utils.InfoLogger.Printf("Booking %d canceled by user %d (table %d released)", booking.ID, userID, tableID)
	return booking, nil
}
