package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub-hr/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub-hr/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub-hr/staffhub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-hr/staffhub-backend-go/internal/service/attendance"
	employeeService "github.com/staffhub-hr/staffhub-backend-go/internal/service/employee"
	leaveService "github.com/staffhub-hr/staffhub-backend-go/internal/service/leave"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewTokenService(cfg.JWT.Secret)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Policy)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, cfg.Policy)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		jwtService,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
