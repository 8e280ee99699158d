package services

import (
	"errors"

	"hbs/constants"
	"hbs/dto"
	apperrors "hbs/errors"
	"hbs/models"

	"gorm.io/gorm"
)

// ReviewService xử lý đánh giá khách sạn
type ReviewService struct {
	db     *gorm.DB
	hotels *HotelService
}

// NewReviewService tạo instance mới của ReviewService
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db, hotels: NewHotelService(db)}
}

// Create tạo đánh giá mới cho khách sạn, mỗi user chỉ đánh giá một lần
func (s *ReviewService) Create(hotelID uint, req *dto.CreateReviewRequest, userID uint) (*models.Review, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeHotelNotFound, "Không tìm thấy khách sạn", err)
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Review{}).
		Where("hotel_id = ? AND user_id = ?", hotelID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeReviewExists, "Bạn đã đánh giá khách sạn này rồi", nil)
	}

	review := models.Review{
		UserID:  userID,
		HotelID: hotelID,
		Comment: req.Comment,
		Rating:  req.Rating,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	if err := s.hotels.RecalcRating(hotelID); err != nil {
		return nil, err
	}

	return &review, nil
}

// FindByHotel trả về danh sách đánh giá của một khách sạn có phân trang
func (s *ReviewService) FindByHotel(hotelID uint, page, limit int) ([]models.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tx := s.db.Model(&models.Review{}).Where("hotel_id = ?", hotelID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := tx.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// FindAll trả về toàn bộ đánh giá có phân trang, chỉ dành cho admin
func (s *ReviewService) FindAll(page, limit int) ([]models.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := s.db.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// Update cập nhật đánh giá, chỉ người tạo mới được sửa
func (s *ReviewService) Update(id uint, req *dto.UpdateReviewRequest, userID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeReviewNotFound, "Không tìm thấy đánh giá", err)
		}
		return nil, err
	}

	if review.UserID != userID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Bạn không có quyền sửa đánh giá này", nil)
	}

	if req.Comment != "" {
		review.Comment = req.Comment
	}
	if req.Rating != 0 {
		review.Rating = req.Rating
	}

	if err := s.db.Save(&review).Error; err != nil {
		return nil, err
	}

	if err := s.hotels.RecalcRating(review.HotelID); err != nil {
		return nil, err
	}

	return &review, nil
}

// Delete xóa đánh giá, người tạo hoặc admin mới được xóa
func (s *ReviewService) Delete(id uint, userID uint, role string) error {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeReviewNotFound, "Không tìm thấy đánh giá", err)
		}
		return err
	}

	if role != constants.RoleAdmin && review.UserID != userID {
		return apperrors.NewAppError(apperrors.ErrCodeForbidden, "Bạn không có quyền xóa đánh giá này", nil)
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return err
	}

	return s.hotels.RecalcRating(review.HotelID)
}
