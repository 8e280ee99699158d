package services

import (
	"errors"

	"hbs/dto"
	apperrors "hbs/errors"
	"hbs/models"

	"gorm.io/gorm"
)

// RoomService xử lý CRUD phòng khách sạn
type RoomService struct {
	db *gorm.DB
}

// NewRoomService tạo instance mới của RoomService
func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// Create tạo phòng mới, yêu cầu khách sạn phải tồn tại
func (s *RoomService) Create(req *dto.CreateRoomRequest) (*models.Room, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, req.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeHotelNotFound, "Không tìm thấy khách sạn", err)
		}
		return nil, err
	}

	room := models.Room{
		HotelID:     req.HotelID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Capacity:    req.Capacity,
	}
	if err := s.db.Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindAll trả về danh sách phòng có phân trang, lọc theo khách sạn nếu có
func (s *RoomService) FindAll(hotelID uint, page, limit int) ([]models.Room, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tx := s.db.Model(&models.Room{})
	if hotelID != 0 {
		tx = tx.Where("hotel_id = ?", hotelID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []models.Room
	if err := tx.
		Preload("Hotel").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// FindByID lấy phòng theo ID kèm thông tin khách sạn
func (s *RoomService) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("Hotel").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, err
	}
	return &room, nil
}

// Update cập nhật các trường có giá trị trong request
func (s *RoomService) Update(id uint, req *dto.UpdateRoomRequest) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, err
	}

	if req.Name != "" {
		room.Name = req.Name
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Price > 0 {
		room.Price = req.Price
	}
	if req.Capacity > 0 {
		room.Capacity = req.Capacity
	}

	if err := s.db.Save(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete xóa phòng theo ID
func (s *RoomService) Delete(id uint) error {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return err
	}
	return s.db.Delete(&room).Error
}
