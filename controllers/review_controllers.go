package controllers

import (
	"fmt"
	"time"

	"hbs/config"
	"hbs/dto"
	"hbs/models"
	"hbs/response"
	"hbs/services"
	"hbs/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const reviewCacheTTL = 10 * time.Minute

// ReviewController xử lý đánh giá khách sạn
type ReviewController struct {
	reviews *services.ReviewService
	redis   *redis.Client
}

// NewReviewController tạo instance mới của ReviewController
func NewReviewController(reviews *services.ReviewService, rdb *redis.Client) *ReviewController {
	return &ReviewController{reviews: reviews, redis: rdb}
}

type cachedReviewList struct {
	Data  []models.Review `json:"data"`
	Total int64           `json:"total"`
}

// Create tạo đánh giá mới cho khách sạn
func (ctrl *ReviewController) Create(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRating(input.Rating); err != nil {
		handleServiceError(c, err)
		return
	}

	userID, _ := currentUser(c)
	review, err := ctrl.reviews.Create(hotelID, &input, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Created(c, review)
}

// GetAll trả về toàn bộ đánh giá có phân trang (admin)
func (ctrl *ReviewController) GetAll(c *gin.Context) {
	var query dto.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, limit := normalizePage(query.Page, query.Limit)
	cacheKey := fmt.Sprintf("reviews:all:%d:%d", page, limit)

	if ctrl.redis != nil {
		var cached cachedReviewList
		if err := services.GetFromRedis(config.Ctx, ctrl.redis, cacheKey, &cached); err == nil && len(cached.Data) > 0 {
			response.SuccessWithPagination(c, cached.Data, page, limit, services.LastPage(cached.Total, limit), cached.Total)
			return
		}
	}

	reviews, total, err := ctrl.reviews.FindAll(page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.redis != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.redis, cacheKey, cachedReviewList{Data: reviews, Total: total}, reviewCacheTTL)
	}

	response.SuccessWithPagination(c, reviews, page, limit, services.LastPage(total, limit), total)
}

// invalidateCache xóa cache danh sách đánh giá sau khi ghi
func (ctrl *ReviewController) invalidateCache() {
	if ctrl.redis == nil {
		return
	}

	iter := ctrl.redis.Scan(config.Ctx, 0, "reviews:all:*", 0).Iterator()
	var keys []string
	for iter.Next(config.Ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		_ = services.DeleteFromRedis(config.Ctx, ctrl.redis, keys...)
	}
}

// GetByHotel trả về danh sách đánh giá của một khách sạn có phân trang
func (ctrl *ReviewController) GetByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var query dto.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, limit := normalizePage(query.Page, query.Limit)
	reviews, total, err := ctrl.reviews.FindByHotel(hotelID, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithPagination(c, reviews, page, limit, services.LastPage(total, limit), total)
}

// Update cập nhật đánh giá, chỉ người tạo
func (ctrl *ReviewController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Rating != 0 {
		if err := validator.ValidateRating(input.Rating); err != nil {
			handleServiceError(c, err)
			return
		}
	}

	userID, _ := currentUser(c)
	review, err := ctrl.reviews.Update(id, &input, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, review)
}

// Delete xóa đánh giá, người tạo hoặc admin
func (ctrl *ReviewController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, role := currentUser(c)
	if err := ctrl.reviews.Delete(id, userID, role); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, nil)
}
