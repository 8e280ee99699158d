package services

import (
	"testing"

	"hbs/constants"
	"hbs/dto"
	apperrors "hbs/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func hotelRows(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "location", "rating"}).
		AddRow(id, "Grand Palace", "Hà Nội", 4.0)
}

func TestReviewServiceCreate(t *testing.T) {
	t.Run("tạo đánh giá và cập nhật rating khách sạn", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db)

		mock.ExpectQuery(`SELECT .* FROM "hotels"`).
			WillReturnRows(hotelRows(9))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"`).
			WillReturnRows(countRows(0))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "reviews"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM "reviews"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.5))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "hotels"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		review, err := svc.Create(9, &dto.CreateReviewRequest{Comment: "Rất tốt", Rating: 5}, 1)

		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, uint(9), review.HotelID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mỗi user chỉ đánh giá một lần", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db)

		mock.ExpectQuery(`SELECT .* FROM "hotels"`).
			WillReturnRows(hotelRows(9))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"`).
			WillReturnRows(countRows(1))

		_, err := svc.Create(9, &dto.CreateReviewRequest{Comment: "Lần hai", Rating: 4}, 1)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeReviewExists, appErr.Code)
	})

	t.Run("không tìm thấy khách sạn", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db)

		mock.ExpectQuery(`SELECT .* FROM "hotels"`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := svc.Create(99, &dto.CreateReviewRequest{Comment: "x", Rating: 3}, 1)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeHotelNotFound, appErr.Code)
	})
}

func reviewRows(id, userID, hotelID uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "hotel_id", "comment", "rating"}).
		AddRow(id, userID, hotelID, "Ổn", 4)
}

func TestReviewServiceDelete(t *testing.T) {
	t.Run("admin xóa được đánh giá của người khác", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db)

		mock.ExpectQuery(`SELECT .* FROM "reviews"`).
			WillReturnRows(reviewRows(1, 2, 9))
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "reviews"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM "reviews"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "hotels"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := svc.Delete(1, 99, constants.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("người ngoài không được xóa", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db)

		mock.ExpectQuery(`SELECT .* FROM "reviews"`).
			WillReturnRows(reviewRows(1, 2, 9))

		err := svc.Delete(1, 3, constants.RoleUser)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeForbidden, appErr.Code)
	})
}
