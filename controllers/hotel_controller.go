package controllers

import (
	"fmt"
	"time"

	"hbs/config"
	"hbs/dto"
	"hbs/models"
	"hbs/response"
	"hbs/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const hotelCacheTTL = 10 * time.Minute

// HotelController xử lý danh mục khách sạn
type HotelController struct {
	hotels *services.HotelService
	redis  *redis.Client
}

// NewHotelController tạo instance mới của HotelController
func NewHotelController(hotels *services.HotelService, rdb *redis.Client) *HotelController {
	return &HotelController{hotels: hotels, redis: rdb}
}

type cachedHotelList struct {
	Data  []models.Hotel `json:"data"`
	Total int64          `json:"total"`
}

// GetAll trả về danh sách khách sạn có phân trang, kết quả được cache 10 phút
func (ctrl *HotelController) GetAll(c *gin.Context) {
	var query dto.HotelListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, limit := normalizePage(query.Page, query.Limit)
	cacheKey := fmt.Sprintf("hotels:all:%s:%s:%d:%d", query.Name, query.Location, page, limit)

	// Thử lấy từ cache trước
	if ctrl.redis != nil {
		var cached cachedHotelList
		if err := services.GetFromRedis(config.Ctx, ctrl.redis, cacheKey, &cached); err == nil && len(cached.Data) > 0 {
			response.SuccessWithPagination(c, cached.Data, page, limit, services.LastPage(cached.Total, limit), cached.Total)
			return
		}
	}

	hotels, total, err := ctrl.hotels.FindAll(query.Name, query.Location, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.redis != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.redis, cacheKey, cachedHotelList{Data: hotels, Total: total}, hotelCacheTTL)
	}

	response.SuccessWithPagination(c, hotels, page, limit, services.LastPage(total, limit), total)
}

// Search tìm kiếm mờ khách sạn theo từ khóa
func (ctrl *HotelController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Cần từ khóa tìm kiếm q")
		return
	}

	results, err := ctrl.hotels.Search(query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithTotal(c, results, int64(len(results)))
}

// GetByID trả về một khách sạn kèm danh sách phòng
func (ctrl *HotelController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := ctrl.hotels.FindByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, hotel)
}

// Create tạo khách sạn mới (admin)
func (ctrl *HotelController) Create(c *gin.Context) {
	var input dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel := models.Hotel{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Avatar:      input.Avatar,
		Amenities:   pq.StringArray(input.Amenities),
	}
	if err := ctrl.hotels.Create(&hotel); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Created(c, hotel)
}

// Update cập nhật khách sạn (admin)
func (ctrl *HotelController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel, err := ctrl.hotels.Update(id, &input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, hotel)
}

// Delete xóa khách sạn (admin)
func (ctrl *HotelController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.hotels.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, nil)
}

// invalidateCache xóa toàn bộ cache danh sách khách sạn sau khi ghi
func (ctrl *HotelController) invalidateCache() {
	if ctrl.redis == nil {
		return
	}

	iter := ctrl.redis.Scan(config.Ctx, 0, "hotels:all:*", 0).Iterator()
	var keys []string
	for iter.Next(config.Ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		_ = services.DeleteFromRedis(config.Ctx, ctrl.redis, keys...)
	}
}
