package services

import (
	"errors"
	"math"
	"time"

	"hbs/constants"
	"hbs/dto"
	apperrors "hbs/errors"
	"hbs/models"
	"hbs/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const bookingDateLayout = "2006-01-02"

// ParseBookingDate chuyển chuỗi ngày yyyy-mm-dd thành time.Time
func ParseBookingDate(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse(bookingDateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

// BookingServiceOptions chứa các dependency của BookingService
type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// BookingService xử lý vòng đời booking: tạo, xem, cập nhật, hủy
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewBookingService tạo instance mới của BookingService
func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		logger: l,
	}
}

// Create tạo booking mới cho một phòng.
// Kiểm tra trùng lịch và ghi booking chạy trong cùng một transaction,
// khóa dòng phòng để hai request song song không thể cùng đặt một khoảng ngày.
func (s *BookingService) Create(req *dto.CreateBookingRequest, userID uint, role string) (*models.Booking, error) {
	start, err := ParseBookingDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
	}
	end, err := ParseBookingDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
	}
	if end.Before(start) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	// User thường luôn bị ép về trạng thái pending, chỉ admin được chọn trạng thái
	status := constants.BookingStatusPending
	if role == constants.RoleAdmin && req.Status != "" {
		if !constants.IsValidBookingStatus(req.Status) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ", nil)
		}
		status = req.Status
	}

	var booking *models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
			}
			return err
		}

		// Hai khoảng [start, end] giao nhau khi start_date <= newEnd và end_date >= newStart.
		// Booking đã hủy không giữ phòng.
		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status <> ? AND start_date <= ? AND end_date >= ?",
				room.ID, constants.BookingStatusCancelled, end, start).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.NewAppError(apperrors.ErrCodeRoomBooked, "Phòng đã được đặt trong khoảng thời gian này", nil)
		}

		booking = &models.Booking{
			UserID:    userID,
			RoomID:    room.ID,
			StartDate: start,
			EndDate:   end,
			Status:    status,
		}
		booking.TotalPrice = float64(booking.Nights()) * room.Price
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tạo booking %d cho phòng %d (%s - %s)", booking.ID, booking.RoomID, req.StartDate, req.EndDate)
	return booking, nil
}

// FindAll trả về danh sách booking có phân trang.
// User thường chỉ thấy booking của mình, admin có thể lọc theo userId bất kỳ.
func (s *BookingService) FindAll(q *dto.BookingListQuery, userID uint, role string) (*dto.BookingList, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	tx := s.db.Model(&models.Booking{})

	if role != constants.RoleAdmin {
		tx = tx.Where("user_id = ?", userID)
	} else if q.UserID != 0 {
		tx = tx.Where("user_id = ?", q.UserID)
	}

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := tx.
		Preload("User").
		Preload("Room").
		Preload("Room.Hotel").
		Order("start_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	lastPage := int(math.Ceil(float64(total) / float64(limit)))

	return &dto.BookingList{
		Total:    total,
		Page:     page,
		Limit:    limit,
		LastPage: lastPage,
		Data:     bookings,
	}, nil
}

// FindOne lấy booking theo ID, user thường chỉ xem được booking của mình
func (s *BookingService) FindOne(id uint, userID uint, role string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
		}
		return nil, err
	}

	if role != constants.RoleAdmin && booking.UserID != userID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Không có quyền truy cập booking này", nil)
	}

	return &booking, nil
}

// Update cập nhật ngày hoặc trạng thái booking.
// Đổi ngày sẽ kiểm tra lại trùng lịch và tính lại tổng giá theo giá phòng hiện có;
// mọi validation chạy xong mới ghi xuống database.
func (s *BookingService) Update(id uint, req *dto.UpdateBookingRequest, userID uint, role string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
		}
		return nil, err
	}

	if role != constants.RoleAdmin && booking.UserID != userID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Không có quyền cập nhật booking này", nil)
	}

	// Chỉ admin được đổi trạng thái qua update
	if req.Status != "" {
		if role != constants.RoleAdmin {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Không được phép thay đổi trạng thái booking", nil)
		}
		if !constants.IsValidBookingStatus(req.Status) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ", nil)
		}
	}

	if req.StartDate != "" && req.EndDate != "" {
		start, err := ParseBookingDate(req.StartDate)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
		}
		end, err := ParseBookingDate(req.EndDate)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
		}
		if end.Before(start) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
		}

		// Dời lịch dùng lại cơ chế của Create: khóa dòng phòng rồi mới kiểm tra
		// trùng và ghi, để một create/update song song không thể double-book.
		txErr := s.db.Transaction(func(tx *gorm.DB) error {
			var room models.Room
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, booking.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
				}
				return err
			}

			var count int64
			if err := tx.Model(&models.Booking{}).
				Where("room_id = ? AND id <> ? AND status <> ? AND start_date <= ? AND end_date >= ?",
					booking.RoomID, booking.ID, constants.BookingStatusCancelled, end, start).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return apperrors.NewAppError(apperrors.ErrCodeRoomBooked, "Phòng đã được đặt trong khoảng thời gian này", nil)
			}

			booking.StartDate = start
			booking.EndDate = end
			booking.TotalPrice = float64(booking.Nights()) * room.Price
			if req.Status != "" {
				booking.Status = req.Status
			}
			return tx.Save(&booking).Error
		})
		if txErr != nil {
			return nil, txErr
		}

		return &booking, nil
	}

	if req.Status != "" {
		booking.Status = req.Status
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// Cancel hủy booking, áp dụng cùng quy tắc sở hữu như update.
// Hủy một booking đã hủy không gây lỗi.
func (s *BookingService) Cancel(id uint, userID uint, role string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
		}
		return nil, err
	}

	if role != constants.RoleAdmin && booking.UserID != userID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Không có quyền hủy booking này", nil)
	}

	booking.Status = constants.BookingStatusCancelled
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Hủy booking %d", booking.ID)
	return &booking, nil
}
