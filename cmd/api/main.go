package main

import (
	"fmt"
	"net/http"

	"github.com/sistema-rh/planilla-backend-go/internal/config"
	appHTTP "github.com/sistema-rh/planilla-backend-go/internal/handler/http"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/database"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/jwt"
	"github.com/sistema-rh/planilla-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sistema-rh/planilla-backend-go/internal/service/attendance"
	employeeService "github.com/sistema-rh/planilla-backend-go/internal/service/employee"
	payrollService "github.com/sistema-rh/planilla-backend-go/internal/service/payroll"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	calculator := payrollService.NewCalculator(cfg.Statutory)
	payrollSvc := payrollService.NewPayrollService(db, calculator, payrollRepo, employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, cfg.App.KioskCompanyID)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(cfg, jwtService, attendanceHandler, payrollHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
