package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"sync"

	"hbs/dto"
	apperrors "hbs/errors"
	"hbs/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// HotelService xử lý CRUD và tìm kiếm khách sạn
type HotelService struct {
	db *gorm.DB
}

// NewHotelService tạo instance mới của HotelService
func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{db: db}
}

// Create tạo khách sạn mới
func (s *HotelService) Create(hotel *models.Hotel) error {
	return s.db.Create(hotel).Error
}

// FindAll trả về danh sách khách sạn có phân trang,
// lọc theo chuỗi con của tên hoặc địa điểm
func (s *HotelService) FindAll(name, location string, page, limit int) ([]models.Hotel, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tx := s.db.Model(&models.Hotel{})
	if name != "" {
		tx = tx.Where("name ILIKE ?", "%"+name+"%")
	}
	if location != "" {
		tx = tx.Where("location ILIKE ?", "%"+location+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&hotels).Error; err != nil {
		return nil, 0, err
	}

	return hotels, total, nil
}

// FindByID lấy khách sạn theo ID kèm danh sách phòng
func (s *HotelService) FindByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.Preload("Rooms").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeHotelNotFound, "Không tìm thấy khách sạn", err)
		}
		return nil, err
	}
	return &hotel, nil
}

// Update cập nhật các trường có giá trị trong request
func (s *HotelService) Update(id uint, req *dto.UpdateHotelRequest) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeHotelNotFound, "Không tìm thấy khách sạn", err)
		}
		return nil, err
	}

	if req.Name != "" {
		hotel.Name = req.Name
	}
	if req.Location != "" {
		hotel.Location = req.Location
	}
	if req.Description != "" {
		hotel.Description = req.Description
	}
	if req.Avatar != "" {
		hotel.Avatar = req.Avatar
	}
	if len(req.Amenities) > 0 {
		hotel.Amenities = req.Amenities
	}

	if err := s.db.Save(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

// Delete xóa khách sạn, các phòng thuộc khách sạn bị xóa theo (ON DELETE CASCADE)
func (s *HotelService) Delete(id uint) error {
	var hotel models.Hotel
	if err := s.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeHotelNotFound, "Không tìm thấy khách sạn", err)
		}
		return err
	}
	return s.db.Delete(&hotel).Error
}

// RecalcRating tính lại điểm trung bình của khách sạn từ các đánh giá
func (s *HotelService) RecalcRating(hotelID uint) error {
	var avg float64
	if err := s.db.Model(&models.Review{}).
		Where("hotel_id = ?", hotelID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Hotel{}).Where("id = ?", hotelID).Update("rating", avg).Error
}

// Hàm chuẩn hóa chuỗi: bỏ dấu, chữ thường
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách địa điểm duy nhất từ các khách sạn cho closestmatch
func prepareLocationList(hotels []models.Hotel) []string {
	uniqueValues := make(map[string]bool)
	for _, h := range hotels {
		if h.Location != "" {
			uniqueValues[normalizeInput(h.Location)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp của một khách sạn với từ khóa tìm kiếm
func calculateScore(query string, hotel models.Hotel, cmLocation *closestmatch.ClosestMatch) int {
	score := 0

	name := normalizeInput(hotel.Name)
	if strings.Contains(name, query) {
		score += 20
	} else if calculateSimilarity(query, name) > 0.7 {
		score += 12
	}

	if cmLocation.Closest(query) == normalizeInput(hotel.Location) {
		score += 13
	} else if strings.Contains(normalizeInput(hotel.Location), query) {
		score += 8
	}

	score += calculateAmenityScore(query, hotel.Amenities)

	return score
}

func calculateAmenityScore(query string, amenities []string) int {
	maxAmenityScore := 12
	amenityScore := 0

	for _, amenity := range amenities {
		normalized := normalizeInput(amenity)
		similarity := calculateSimilarity(query, normalized)
		if similarity > 0.7 || strings.Contains(query, normalized) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	return amenityScore
}

// Search tìm kiếm mờ: chấm điểm song song từng khách sạn rồi xếp theo điểm giảm dần
func (s *HotelService) Search(query string) ([]dto.ScoredHotel, error) {
	var hotels []models.Hotel
	if err := s.db.Find(&hotels).Error; err != nil {
		return nil, err
	}

	normalizedQuery := normalizeInput(query)
	locations := prepareLocationList(hotels)
	if len(locations) == 0 {
		locations = []string{""}
	}
	cmLocation := createMatcher(locations)

	scoreCh := make(chan dto.ScoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := calculateScore(normalizedQuery, hotel, cmLocation)
			if score > 0 {
				scoreCh <- dto.ScoredHotel{
					Hotel: hotel,
					Score: score,
				}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []dto.ScoredHotel
	for sh := range scoreCh {
		scored = append(scored, sh)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}

// LastPage tính số trang cuối từ tổng số dòng và limit
func LastPage(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
