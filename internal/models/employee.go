package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ===========================================================================
// Employee (Nhân viên)
// Vừa là người dùng hệ thống (đăng nhập) vừa là người được gán khách hàng
// KHÔNG phải khách hàng (khách hàng là Customer)
// ===========================================================================

// EmployeeRole các vai trò nhân viên
type EmployeeRole string

const (
	// RoleAdmin quản trị viên, có toàn quyền
	RoleAdmin EmployeeRole = "admin"

	// RoleManager quản lý, có thể gán khách hàng và quản lý team
	RoleManager EmployeeRole = "manager"

	// RoleAgent nhân viên gọi điện, chỉ thao tác trên khách của mình
	RoleAgent EmployeeRole = "agent"

	// RoleTrainee nhân viên thử việc, quyền như agent
	RoleTrainee EmployeeRole = "trainee"
)

// Employee đại diện cho nhân viên call center
type Employee struct {
	BaseModel

	// EmpNo mã nhân viên (unique, VD: "EMP-0042")
	EmpNo string `gorm:"size:50;not null;uniqueIndex" json:"emp_no"`

	// Name tên hiển thị
	Name string `gorm:"size:255;not null" json:"name"`

	// Email địa chỉ email đăng nhập (unique)
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`

	// PasswordHash mật khẩu đã hash (KHÔNG bao giờ trả về trong JSON)
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// RefreshTokenHash hash của refresh token hiện tại (KHÔNG trả về trong JSON)
	RefreshTokenHash *string `gorm:"size:255" json:"-"`

	// Role vai trò: admin, manager, agent, trainee
	Role EmployeeRole `gorm:"size:50;not null;default:'agent'" json:"role"`

	// Capacity số khách hàng tối đa nên gán (advisory, không enforce)
	Capacity int `gorm:"default:0" json:"capacity"`

	// IsActive tài khoản có active không
	IsActive bool `gorm:"default:true" json:"is_active"`

	// LastSeenAt lần cuối online
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`

	// Relations
	Teams       []Team       `gorm:"many2many:team_employees" json:"teams,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:EmployeeID" json:"assignments,omitempty"`
}

// TableName trả về tên bảng
func (Employee) TableName() string {
	return "employees"
}

// SetPassword hash và set password
// Sử dụng bcrypt với cost mặc định
func (e *Employee) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	return nil
}

// CheckPassword kiểm tra password có đúng không
func (e *Employee) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password))
	return err == nil
}

// IsAdmin kiểm tra có quyền admin không
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanManage kiểm tra có quyền quản lý (admin hoặc manager)
func (e *Employee) CanManage() bool {
	return e.Role == RoleAdmin || e.Role == RoleManager
}

// UpdateLastSeen cập nhật thời gian online gần nhất
func (e *Employee) UpdateLastSeen() {
	now := time.Now()
	e.LastSeenAt = &now
}
