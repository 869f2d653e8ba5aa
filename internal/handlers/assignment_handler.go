package handlers

import (
	"net/http"

	"callcenter-gin/internal/dto"
	"callcenter-gin/internal/middleware"
	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"
	"callcenter-gin/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ===========================================================================
// Assignment Handler
// Workflow chính: gán khách hàng, "My Customers", ghi nhận liên hệ
// ===========================================================================

// AssignmentHandler xử lý các endpoint assignment
type AssignmentHandler struct {
	assignmentService  services.AssignmentService
	interactionService services.InteractionService
	logger             *zap.Logger
}

// NewAssignmentHandler tạo handler mới
func NewAssignmentHandler(
	assignmentService services.AssignmentService,
	interactionService services.InteractionService,
	logger *zap.Logger,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService:  assignmentService,
		interactionService: interactionService,
		logger:             logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// BulkAssignRequest body cho gán batch
type BulkAssignRequest struct {
	ProjectID      uuid.UUID   `json:"project_id" binding:"required"`
	EmployeeID     uuid.UUID   `json:"employee_id" binding:"required"`
	CustomerIDs    []uuid.UUID `json:"customer_ids" binding:"required"`
	CallTargetDate *string     `json:"call_target_date"`
	CallPriority   string      `json:"call_priority" binding:"omitempty,oneof=low medium high"`
}

// MyAssignmentsQuery query params cho màn "My Customers"
type MyAssignmentsQuery struct {
	Search       string  `form:"search"`
	CallStatus   *string `form:"call_status"`
	CallPriority *string `form:"call_priority" binding:"omitempty,oneof=low medium high"`
	ProjectID    *string `form:"project_id"`
	StartDate    *string `form:"start_date"`
	EndDate      *string `form:"end_date"`
	Page         int     `form:"page"`
	Limit        int     `form:"limit"`
}

// RecordInteractionRequest body cho ghi nhận liên hệ
type RecordInteractionRequest struct {
	Channel      string  `json:"channel" binding:"required,oneof=call sms whatsapp"`
	CallStatus   string  `json:"call_status" binding:"required"`
	StatusNote   *string `json:"status_note" binding:"omitempty,max=1000"`
	FollowUpDate *string `json:"follow_up_date"`
	FollowUpTime *string `json:"follow_up_time"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// ProjectData dữ liệu cho màn gán khách hàng của một dự án
// GET /api/v1/assignments/project-data?project_id=xxx
func (h *AssignmentHandler) ProjectData(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "project_id không hợp lệ"))
		return
	}

	result, err := h.assignmentService.ProjectRoster(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(result))
}

// BulkAssign gán N khách cho MỘT nhân viên, all-or-nothing
// POST /api/v1/assignments
func (h *AssignmentHandler) BulkAssign(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	targetDate, ok := parseDateParam(c, req.CallTargetDate, "call_target_date")
	if !ok {
		return
	}

	created, err := h.assignmentService.BulkAssign(c.Request.Context(), services.BulkAssignInput{
		ProjectID:      req.ProjectID,
		EmployeeID:     req.EmployeeID,
		CustomerIDs:    req.CustomerIDs,
		CallTargetDate: targetDate,
		CallPriority:   models.CallPriority(req.CallPriority),
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(gin.H{
		"assigned": len(created),
		"assignments": created,
	}))
}

// Mine danh sách khách hàng của nhân viên đang đăng nhập
// GET /api/v1/assignments/mine
// Không truyền start_date/end_date thì mặc định chỉ hiện khách đến hạn hôm nay
func (h *AssignmentHandler) Mine(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	employeeID, ok := middleware.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("UNAUTHORIZED", "Chưa đăng nhập"))
		return
	}

	var q MyAssignmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	query := services.MyAssignmentsQuery{
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	}

	if q.CallStatus != nil && *q.CallStatus != "" {
		status := models.CallStatus(*q.CallStatus)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", "call_status không hợp lệ"))
			return
		}
		query.CallStatus = &status
	}
	if q.CallPriority != nil && *q.CallPriority != "" {
		priority := models.CallPriority(*q.CallPriority)
		query.CallPriority = &priority
	}
	if q.ProjectID != nil && *q.ProjectID != "" {
		projectID, err := uuid.Parse(*q.ProjectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "project_id không hợp lệ"))
			return
		}
		query.ProjectID = &projectID
	}

	var ok2 bool
	if query.StartDate, ok2 = parseDateParam(c, q.StartDate, "start_date"); !ok2 {
		return
	}
	if query.EndDate, ok2 = parseDateParam(c, q.EndDate, "end_date"); !ok2 {
		return
	}

	result, err := h.assignmentService.MyAssignments(c.Request.Context(), employeeID, query)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessWithMeta(
		result.Assignments,
		dto.NewMeta(result.Page, result.Limit, result.Total),
	))
}

// RecordInteraction ghi nhận một lần liên hệ trên assignment
// PATCH /api/v1/assignments/:id/interaction
func (h *AssignmentHandler) RecordInteraction(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	employeeID, ok := middleware.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("UNAUTHORIZED", "Chưa đăng nhập"))
		return
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Assignment ID không hợp lệ"))
		return
	}

	var req RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	followUpDate, ok := parseDateParam(c, req.FollowUpDate, "follow_up_date")
	if !ok {
		return
	}

	result, err := h.interactionService.Record(c.Request.Context(), employeeID, assignmentID, services.RecordInteractionInput{
		Channel:      models.InteractionChannel(req.Channel),
		CallStatus:   models.CallStatus(req.CallStatus),
		StatusNote:   req.StatusNote,
		FollowUpDate: followUpDate,
		FollowUpTime: req.FollowUpTime,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(result))
}

// Interactions lịch sử liên hệ của một assignment, mới nhất trước
// GET /api/v1/assignments/:id/interactions
func (h *AssignmentHandler) Interactions(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	employeeID, ok := middleware.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("UNAUTHORIZED", "Chưa đăng nhập"))
		return
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Assignment ID không hợp lệ"))
		return
	}

	var pagination dto.PaginationRequest
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	pagination.Normalize(20, 100)

	logs, total, err := h.interactionService.History(c.Request.Context(), employeeID, assignmentID, repositories.FindOptions{
		Offset: pagination.Offset(),
		Limit:  pagination.Limit,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessWithMeta(
		logs,
		dto.NewMeta(pagination.Page, pagination.Limit, total),
	))
}

// parseDateParam parse chuỗi YYYY-MM-DD optional, trả về ok=false nếu sai format
// (đã trả response lỗi cho client)
func parseDateParam(c *gin.Context, value *string, field string) (*models.CalendarDate, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	date, err := models.ParseCalendarDate(*value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", field+" phải có dạng YYYY-MM-DD"))
		return nil, false
	}
	return &date, true
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes
// requireManager chặn các thao tác gán chỉ dành cho manager/admin
func (h *AssignmentHandler) RegisterRoutes(rg *gin.RouterGroup, requireManager gin.HandlerFunc) {
	assignments := rg.Group("/assignments")
	{
		assignments.GET("/project-data", requireManager, h.ProjectData)
		assignments.POST("", requireManager, h.BulkAssign)
		assignments.GET("/mine", h.Mine)
		assignments.PATCH("/:id/interaction", h.RecordInteraction)
		assignments.GET("/:id/interactions", h.Interactions)
	}
}
