package dto

// ===========================================================================
// Request DTOs (Data Transfer Objects)
// Các struct dùng để validate và parse request body/query
// DTO riêng của từng endpoint nằm trong handler tương ứng
// ===========================================================================

// PaginationRequest phân trang cho các API list
type PaginationRequest struct {
	// Page số trang hiện tại (bắt đầu từ 1)
	Page int `form:"page" binding:"min=0"`

	// Limit số record mỗi trang (tối đa 100)
	Limit int `form:"limit" binding:"min=0,max=100"`
}

// Normalize thiết lập giá trị mặc định cho phân trang
func (p *PaginationRequest) Normalize(defaultLimit, maxLimit int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > maxLimit {
		p.Limit = defaultLimit
	}
}

// Offset tính offset từ page và limit
func (p *PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
