package dto

// CreateReviewRequest dữ liệu tạo đánh giá mới
type CreateReviewRequest struct {
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateReviewRequest dữ liệu cập nhật đánh giá, các trường đều tùy chọn
type UpdateReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ReviewListQuery tham số truy vấn danh sách đánh giá
type ReviewListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
