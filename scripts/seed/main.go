//go:build ignore

// ===========================================================================
// Script tạo seed data cho development/testing
// Chạy: go run scripts/seed/main.go
// ===========================================================================

package main

import (
	"fmt"
	"log"
	"time"

	"callcenter-gin/internal/config"
	"callcenter-gin/internal/database"
	"callcenter-gin/internal/models"
	"callcenter-gin/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	fmt.Println("🌱 Bắt đầu seed data...")

	// Load config
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Không thể load config: %v", err)
	}

	// Khởi tạo logger
	zapLog, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Không thể tạo logger: %v", err)
	}

	// Kết nối database
	db, err := database.NewConnection(&cfg.Database, zapLog)
	if err != nil {
		log.Fatalf("Không thể kết nối database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Không thể migrate: %v", err)
	}

	fmt.Println("✅ Đã kết nối database")

	// =========================================================================
	// 1. Tạo Projects
	// =========================================================================
	projects := []*models.Project{
		{Code: "PRJ-SOLAR", Name: "Điện mặt trời áp mái", Description: strPtr("Chiến dịch tư vấn lắp đặt điện mặt trời")},
		{Code: "PRJ-INSURE", Name: "Bảo hiểm sức khỏe", Description: strPtr("Chiến dịch bảo hiểm sức khỏe gia đình")},
	}

	for i, project := range projects {
		var existing models.Project
		if err := db.Where("code = ?", project.Code).First(&existing).Error; err == nil {
			fmt.Printf("⚠️  Project '%s' đã tồn tại\n", project.Code)
			projects[i] = &existing
			continue
		}
		if err := db.Create(project).Error; err != nil {
			log.Fatalf("Không thể tạo project: %v", err)
		}
		fmt.Printf("✅ Đã tạo Project: %s\n", project.Code)
	}

	// =========================================================================
	// 2. Tạo Employees
	// =========================================================================
	employees := []*models.Employee{
		{EmpNo: "EMP-0001", Name: "Quản Trị Viên", Email: "admin@callcenter.local", Role: models.RoleAdmin, Capacity: 0, IsActive: true},
		{EmpNo: "EMP-0002", Name: "Trần Quản Lý", Email: "manager@callcenter.local", Role: models.RoleManager, Capacity: 0, IsActive: true},
		{EmpNo: "EMP-0003", Name: "Nguyễn Văn An", Email: "an.nguyen@callcenter.local", Role: models.RoleAgent, Capacity: 50, IsActive: true},
		{EmpNo: "EMP-0004", Name: "Lê Thị Bình", Email: "binh.le@callcenter.local", Role: models.RoleAgent, Capacity: 50, IsActive: true},
		{EmpNo: "EMP-0005", Name: "Phạm Học Việc", Email: "trainee@callcenter.local", Role: models.RoleTrainee, Capacity: 20, IsActive: true},
	}

	for i, employee := range employees {
		if err := employee.SetPassword("Password123!"); err != nil {
			zapLog.Warn("Không thể set password", zap.Error(err))
		}

		var existing models.Employee
		if err := db.Where("emp_no = ?", employee.EmpNo).First(&existing).Error; err == nil {
			fmt.Printf("⚠️  Employee '%s' đã tồn tại\n", employee.EmpNo)
			employees[i] = &existing
			continue
		}
		if err := db.Create(employee).Error; err != nil {
			zapLog.Warn("Không thể tạo employee", zap.String("emp_no", employee.EmpNo), zap.Error(err))
		} else {
			fmt.Printf("✅ Đã tạo Employee: %s (%s)\n", employee.EmpNo, employee.Role)
		}
	}

	// =========================================================================
	// 3. Tạo Teams và gắn thành viên
	// =========================================================================
	teams := []*models.Team{
		{Code: "TEAM-SOLAR", Name: "Team Điện Mặt Trời", DefaultProjectID: &projects[0].ID},
		{Code: "TEAM-INSURE", Name: "Team Bảo Hiểm", DefaultProjectID: &projects[1].ID},
	}
	teamMembers := [][]*models.Employee{
		{employees[1], employees[2], employees[3]},
		{employees[1], employees[4]},
	}

	for i, team := range teams {
		var existing models.Team
		if err := db.Where("code = ?", team.Code).First(&existing).Error; err == nil {
			fmt.Printf("⚠️  Team '%s' đã tồn tại\n", team.Code)
			continue
		}
		if err := db.Create(team).Error; err != nil {
			log.Fatalf("Không thể tạo team: %v", err)
		}
		if err := db.Model(team).Association("Employees").Replace(teamMembers[i]); err != nil {
			zapLog.Warn("Không thể gắn thành viên team", zap.String("code", team.Code), zap.Error(err))
		}
		fmt.Printf("✅ Đã tạo Team: %s (%d thành viên)\n", team.Code, len(teamMembers[i]))
	}

	// =========================================================================
	// 4. Tạo Customers
	// =========================================================================
	customers := []*models.Customer{
		{Code: "CUS-10001", Name: "Hoàng Minh Tuấn", Mobile: strPtr("+84901234567"), Email: strPtr("tuan.hm@example.com"), ProjectID: &projects[0].ID},
		{Code: "CUS-10002", Name: "Vũ Thị Hạnh", Mobile: strPtr("+84912345678"), ProjectID: &projects[0].ID},
		{Code: "CUS-10003", Name: "Đặng Quốc Khánh", Mobile: strPtr("+84923456789"), ProjectID: &projects[0].ID,
			Links: models.ContactLinks{Facebook: "https://facebook.com/khanh.dq"}},
		{Code: "CUS-10004", Name: "Bùi Thu Trang", ProjectID: &projects[0].ID,
			Links: models.ContactLinks{LinkedIn: "https://linkedin.com/in/trangbt"}},
		{Code: "CUS-10005", Name: "Ngô Văn Dũng", Mobile: strPtr("+84934567890"), ProjectID: &projects[1].ID},
		{Code: "CUS-10006", Name: "Đỗ Thị Lan", Mobile: strPtr("+84945678901"), ProjectID: &projects[1].ID},
	}

	for _, customer := range customers {
		var existing models.Customer
		if err := db.Where("code = ?", customer.Code).First(&existing).Error; err == nil {
			fmt.Printf("⚠️  Customer '%s' đã tồn tại\n", customer.Code)
			continue
		}
		if err := db.Create(customer).Error; err != nil {
			zapLog.Warn("Không thể tạo customer", zap.String("code", customer.Code), zap.Error(err))
		} else {
			fmt.Printf("✅ Đã tạo Customer: %s\n", customer.Code)
		}
	}

	// Một khách demo nằm trong danh sách cấm gọi
	var neverCall models.Customer
	if err := db.Where("code = ?", "CUS-10002").First(&neverCall).Error; err == nil && !neverCall.NeverCall {
		neverCall.MarkNeverCall("Khách yêu cầu không gọi lại")
		if err := db.Save(&neverCall).Error; err == nil {
			fmt.Println("✅ Đã đánh dấu CUS-10002 là never_call")
		}
	}

	// =========================================================================
	// 5. Tạo một Assignment demo đến hạn hôm nay
	// =========================================================================
	var agent models.Employee
	var customer models.Customer
	if err := db.Where("emp_no = ?", "EMP-0003").First(&agent).Error; err == nil {
		if err := db.Where("code = ?", "CUS-10001").First(&customer).Error; err == nil {
			var existing models.Assignment
			err := db.Where("customer_id = ? AND project_id = ?", customer.ID, *customer.ProjectID).
				Where("call_status NOT IN ?", models.TerminalCallStatuses()).
				First(&existing).Error
			if err != nil {
				today := models.Today()
				assignment := &models.Assignment{
					CustomerID:     customer.ID,
					EmployeeID:     agent.ID,
					ProjectID:      *customer.ProjectID,
					AssignDate:     time.Now(),
					CallTargetDate: &today,
					CallPriority:   models.PriorityHigh,
					CallStatus:     models.CallStatusPending,
				}
				if err := db.Create(assignment).Error; err == nil {
					fmt.Println("✅ Đã gán CUS-10001 cho EMP-0003, hạn hôm nay")
				}
			}
		}
	}

	fmt.Println("🎉 Seed hoàn tất!")
	fmt.Println("   Đăng nhập: admin@callcenter.local / Password123!")
}

func strPtr(s string) *string {
	return &s
}
