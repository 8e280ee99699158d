package services

import (
	"context"
	"errors"
	"mime/multipart"

	"hbs/dto"
	apperrors "hbs/errors"
	"hbs/models"
	"hbs/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

// UserServiceOptions chứa các dependency của UserService
type UserServiceOptions struct {
	DB         *gorm.DB
	Cloudinary *cloudinary.Cloudinary
	Logger     logger.Logger
}

// UserService xử lý quản trị người dùng và hồ sơ cá nhân
type UserService struct {
	db     *gorm.DB
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

// NewUserService tạo instance mới của UserService
func NewUserService(opts UserServiceOptions) *UserService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{db: opts.DB, cld: opts.Cloudinary, logger: l}
}

// FindAll trả về danh sách người dùng có phân trang, lọc theo tên
func (s *UserService) FindAll(name string, page, limit int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tx := s.db.Model(&models.User{})
	if name != "" {
		tx = tx.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// FindByID lấy người dùng theo ID
func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
		}
		return nil, err
	}
	return &user, nil
}

// Update cập nhật thông tin người dùng
func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete xóa người dùng, booking và đánh giá của họ bị xóa theo
func (s *UserService) Delete(id uint) error {
	user, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}

// UpdateProfile cập nhật hồ sơ của chính người dùng đang đăng nhập
func (s *UserService) UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar upload ảnh đại diện lên Cloudinary và lưu URL vào hồ sơ
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (*models.User, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Không đọc được file upload", err)
	}
	defer src.Close()

	uploadResult, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: "hbs/avatars",
	})
	if err != nil {
		s.logger.Error("Upload ảnh đại diện thất bại: %v", err)
		return nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Upload ảnh thất bại", err)
	}

	user.Avatar = uploadResult.SecureURL
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveAvatar xóa URL ảnh đại diện khỏi hồ sơ
func (s *UserService) RemoveAvatar(userID uint) (*models.User, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Avatar = ""
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
