package models

// ===========================================================================
// Models Index
// Cung cấp danh sách tất cả models cho GORM AutoMigrate
// ===========================================================================

// AllModels trả về danh sách tất cả models
// Dùng cho database.AutoMigrate() để tự động tạo/update tables
func AllModels() []interface{} {
	return []interface{}{
		&Project{},        // Dự án
		&Team{},           // Đội nhóm
		&TeamEmployee{},   // Liên kết team-employee
		&Employee{},       // Nhân viên
		&Customer{},       // Khách hàng
		&Assignment{},     // Phân công khách hàng
		&InteractionLog{}, // Nhật ký liên hệ
	}
}
