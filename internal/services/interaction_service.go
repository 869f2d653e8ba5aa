package services

import (
	"context"

	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"

	"github.com/google/uuid"
)

// ===========================================================================
// Interaction Service Interface
// Ghi nhận một lần liên hệ: cập nhật snapshot assignment + append log
// ===========================================================================

// RecordInteractionInput input ghi nhận một lần liên hệ
type RecordInteractionInput struct {
	// Channel kênh liên hệ: call, sms, whatsapp
	Channel models.InteractionChannel

	// CallStatus trạng thái mới sau lần liên hệ
	CallStatus models.CallStatus

	// StatusNote ghi chú tự do (nullable)
	StatusNote *string

	// FollowUpDate + FollowUpTime lịch hẹn tiếp theo
	// Phải đặt CẢ HAI hoặc bỏ trống CẢ HAI; bỏ trống nghĩa là xóa lịch hẹn
	FollowUpDate *models.CalendarDate
	FollowUpTime *string // "HH:MM" 24h
}

// RecordInteractionResult assignment sau cập nhật + log vừa ghi
type RecordInteractionResult struct {
	Assignment *models.Assignment     `json:"assignment"`
	Log        *models.InteractionLog `json:"log"`
}

// InteractionService interface cho việc ghi nhận liên hệ
type InteractionService interface {
	// Record ghi nhận một lần liên hệ trên assignment
	// Gate theo thứ tự: quyền sở hữu, never_call (chỉ kênh voice),
	// target date đã qua, capability của kênh
	Record(ctx context.Context, employeeID, assignmentID uuid.UUID, input RecordInteractionInput) (*RecordInteractionResult, error)

	// History lịch sử liên hệ của một assignment, mới nhất trước
	History(ctx context.Context, employeeID, assignmentID uuid.UUID, opts repositories.FindOptions) ([]models.InteractionLog, int64, error)
}
