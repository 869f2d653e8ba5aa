package handlers

import (
	"errors"
	"net/http"

	"callcenter-gin/internal/dto"
	apperrors "callcenter-gin/internal/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Error Helper
// Map lỗi từ service/repository sang HTTP response chuẩn
// ===========================================================================

// respondError trả về error response theo taxonomy lỗi của ứng dụng
// AppError mang sẵn status code + error code
// Lỗi DB được phân loại qua error chain (service wrap bằng %w)
func respondError(c *gin.Context, logger *zap.Logger, requestID string, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
		}
		c.JSON(appErr.StatusCode, dto.Error(appErr.Code, appErr.Message))
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.Error(
			"NOT_FOUND",
			"Không tìm thấy dữ liệu yêu cầu",
		))
		return
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, dto.Error(
			"DUPLICATE",
			"Dữ liệu đã tồn tại",
		))
		return
	}

	logger.Error("unexpected error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, dto.Error("INTERNAL_ERROR", "Đã có lỗi xảy ra. Vui lòng thử lại sau."))
}
