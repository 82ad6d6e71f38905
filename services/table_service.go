package services

import (
	"errors"

	"github.com/tablebook/booking-app/models"
	"github.com/tablebook/booking-app/utils"
	"gorm.io/gorm"
)

// TableService menangani inventaris meja restoran.
// Status meja hanya boleh berubah lewat service ini.
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// TableUpdate berisi field opsional untuk partial update meja.
type TableUpdate struct {
	Name     *string
	Capacity *int
	Status   *string
}

// FindTableByID mencari meja berdasarkan id.
func (s *TableService) FindTableByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &table, nil
}

// GetAllTables mengembalikan seluruh meja, apapun statusnya.
func (s *TableService) GetAllTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// CreateTable membuat meja baru, default status AVAILABLE.
func (s *TableService) CreateTable(name string, capacity int, status string) (*models.Table, error) {
	table := models.Table{
		Name:     name,
		Capacity: capacity,
		Status:   models.TableStatusAvailable,
	}
	if status != "" {
		table.Status = status
	}

	if err := s.db.Create(&table).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New table created: %s (capacity=%d, status=%s)", table.Name, table.Capacity, table.Status)
	return &table, nil
}

// UpdateTable menerapkan partial update pada meja.
// Edit hanya diizinkan selama meja masih AVAILABLE.
func (s *TableService) UpdateTable(id uint, updates TableUpdate) (*models.Table, error) {
	table, err := s.FindTableByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.CheckTableAvailability(table); err != nil {
		return nil, err
	}

	if updates.Name != nil {
		table.Name = *updates.Name
	}
	if updates.Capacity != nil {
		table.Capacity = *updates.Capacity
	}
	if updates.Status != nil {
		table.Status = *updates.Status
	}

	if err := s.db.Save(table).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %d updated (status=%s)", table.ID, table.Status)
	return table, nil
}

// DeleteTable menghapus meja dari database.
// Meja yang sedang BOOKED atau INACTIVE tidak boleh dihapus.
func (s *TableService) DeleteTable(table *models.Table) error {
	if err := s.CheckTableAvailability(table); err != nil {
		return err
	}

	if err := s.db.Delete(table).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	return nil
}

// CheckTableAvailability memeriksa status meja tanpa side effect.
// Mengembalikan ErrInvalidTable jika meja BOOKED atau INACTIVE.
func (s *TableService) CheckTableAvailability(table *models.Table) error {
	if table.Status == models.TableStatusBooked || table.Status == models.TableStatusInactive {
		return ErrInvalidTable
	}
	return nil
}

// claimTable mem-flip status meja AVAILABLE -> BOOKED secara compare-and-set.
// Jika baris tidak ter-update berarti request lain sudah menang duluan.
// Hanya dipakai BookingService di dalam transaksi create.
func (s *TableService) claimTable(tx *gorm.DB, tableID uint) error {
	res := tx.Model(&models.Table{}).
		Where("id = ? AND status = ?", tableID, models.TableStatusAvailable).
		Update("status", models.TableStatusBooked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTable
	}
	return nil
}

// releaseTable mengembalikan status meja ke AVAILABLE saat booking dibatalkan.
func (s *TableService) releaseTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("status", models.TableStatusAvailable).Error
}
