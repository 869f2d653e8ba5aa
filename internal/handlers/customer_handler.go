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
// Customer Handler
// CRUD khách hàng + đánh dấu cấm gọi
// ===========================================================================

// CustomerHandler xử lý các endpoint customer
type CustomerHandler struct {
	directoryService services.DirectoryService
	logger           *zap.Logger
}

// NewCustomerHandler tạo handler mới
func NewCustomerHandler(directoryService services.DirectoryService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		directoryService: directoryService,
		logger:           logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateCustomerRequest body tạo khách hàng mới
type CreateCustomerRequest struct {
	Code      string              `json:"code" binding:"required,max=50"`
	Name      string              `json:"name" binding:"required,max=255"`
	Mobile    *string             `json:"mobile" binding:"omitempty,max=50"`
	Email     *string             `json:"email" binding:"omitempty,email"`
	Links     models.ContactLinks `json:"links"`
	ProjectID *uuid.UUID          `json:"project_id"`
}

// UpdateCustomerRequest body cập nhật khách hàng, field nil giữ nguyên
type UpdateCustomerRequest struct {
	Name      *string              `json:"name" binding:"omitempty,max=255"`
	Mobile    *string              `json:"mobile" binding:"omitempty,max=50"`
	Email     *string              `json:"email" binding:"omitempty,email"`
	Links     *models.ContactLinks `json:"links"`
	ProjectID *uuid.UUID           `json:"project_id"`
}

// NeverCallRequest body đánh dấu cấm gọi
type NeverCallRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// List lấy danh sách khách hàng
// GET /api/v1/customers?search=&project_id=&never_call=&page=&limit=
func (h *CustomerHandler) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var pagination dto.PaginationRequest
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	pagination.Normalize(20, 100)

	filters := map[string]interface{}{}
	if projectID := c.Query("project_id"); projectID != "" {
		id, err := uuid.Parse(projectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "project_id không hợp lệ"))
			return
		}
		filters["project_id"] = id
	}
	if neverCall := c.Query("never_call"); neverCall != "" {
		filters["never_call"] = neverCall == "true"
	}

	customers, total, err := h.directoryService.ListCustomers(c.Request.Context(), repositories.FindOptions{
		Offset:  pagination.Offset(),
		Limit:   pagination.Limit,
		Search:  c.Query("search"),
		Filters: filters,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessWithMeta(customers, dto.NewMeta(pagination.Page, pagination.Limit, total)))
}

// Get lấy chi tiết một khách hàng
// GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Customer ID không hợp lệ"))
		return
	}

	customer, err := h.directoryService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(customer))
}

// Create tạo khách hàng mới
// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	customer, err := h.directoryService.CreateCustomer(c.Request.Context(), services.CreateCustomerInput{
		Code:      req.Code,
		Name:      req.Name,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Links:     req.Links,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(customer))
}

// Update cập nhật khách hàng
// PATCH /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Customer ID không hợp lệ"))
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	customer, err := h.directoryService.UpdateCustomer(c.Request.Context(), id, services.UpdateCustomerInput{
		Name:      req.Name,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Links:     req.Links,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(customer))
}

// MarkNeverCall đánh dấu khách hàng cấm gọi vĩnh viễn
// POST /api/v1/customers/:id/never-call
// Một chiều: không có endpoint gỡ cờ
func (h *CustomerHandler) MarkNeverCall(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Customer ID không hợp lệ"))
		return
	}

	var req NeverCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	customer, err := h.directoryService.MarkNeverCall(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(customer))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes
// Mutation chỉ dành cho manager/admin
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup, requireManager gin.HandlerFunc) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.POST("", requireManager, h.Create)
		customers.PATCH("/:id", requireManager, h.Update)
		customers.POST("/:id/never-call", requireManager, h.MarkNeverCall)
	}
}
