package main

import (
	"fmt"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/config"
	appHTTP "github.com/emsuite/ems-backend-go/internal/handler/http"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/emsuite/ems-backend-go/internal/service/attendance"
	authService "github.com/emsuite/ems-backend-go/internal/service/auth"
	dashboardService "github.com/emsuite/ems-backend-go/internal/service/dashboard"
	departmentService "github.com/emsuite/ems-backend-go/internal/service/department"
	employeeService "github.com/emsuite/ems-backend-go/internal/service/employee"
	leaveService "github.com/emsuite/ems-backend-go/internal/service/leave"
	notificationService "github.com/emsuite/ems-backend-go/internal/service/notification"
	projectService "github.com/emsuite/ems-backend-go/internal/service/project"
	salaryService "github.com/emsuite/ems-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	readStateRepo := postgresql.NewReadStateRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewService(cfg.Admin, jwtService, employeeRepo)
	employeeSvc := employeeService.NewService(db, employeeRepo)
	departmentSvc := departmentService.NewService(departmentRepo)
	leaveSvc := leaveService.NewService(leaveRepo, employeeRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo)
	salarySvc := salaryService.NewService(salaryRepo, employeeRepo)
	projectSvc := projectService.NewService(projectRepo)
	notificationSvc := notificationService.NewService(readStateRepo, attendanceRepo, leaveRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Project:      appHTTP.NewProjectHandler(projectSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
