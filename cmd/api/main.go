package main

import (
	"fmt"
	"net/http"

	"github.com/gestionobras/obras-backend-go/internal/config"
	appHTTP "github.com/gestionobras/obras-backend-go/internal/handler/http"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/gestionobras/obras-backend-go/internal/pkg/jwt"
	"github.com/gestionobras/obras-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gestionobras/obras-backend-go/internal/service/attendance"
	authService "github.com/gestionobras/obras-backend-go/internal/service/auth"
	materialService "github.com/gestionobras/obras-backend-go/internal/service/material"
	payrollService "github.com/gestionobras/obras-backend-go/internal/service/payroll"
	projectService "github.com/gestionobras/obras-backend-go/internal/service/project"
	userService "github.com/gestionobras/obras-backend-go/internal/service/user"
	worksiteService "github.com/gestionobras/obras-backend-go/internal/service/worksite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	worksiteRepo := postgresql.NewWorksiteRepository(db)
	materialRepo := postgresql.NewMaterialRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, userRepo)
	projectSvc := projectService.NewProjectService(projectRepo, userRepo)
	worksiteSvc := worksiteService.NewWorksiteService(worksiteRepo, projectRepo, userRepo)
	materialSvc := materialService.NewMaterialService(materialRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	worksiteHandler := appHTTP.NewWorksiteHandler(worksiteSvc)
	materialHandler := appHTTP.NewMaterialHandler(materialSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		userHandler,
		payrollHandler,
		projectHandler,
		worksiteHandler,
		materialHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
