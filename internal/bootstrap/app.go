package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"smarthrms/internal/attendance"
	"smarthrms/internal/dashboard"
	"smarthrms/internal/directory"
	"smarthrms/internal/employees"
	"smarthrms/internal/leaves"
	"smarthrms/internal/services/health"
	"smarthrms/internal/shared/config"
	"smarthrms/internal/shared/server"
	"smarthrms/internal/shared/storage/db"
	"smarthrms/internal/shared/telemetry"
	"smarthrms/internal/staffing"
	"smarthrms/internal/tasks"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	EmployeesRepo  employees.Repo
	TasksRepo      tasks.Repo
	AttendanceRepo attendance.Repo
	LeavesRepo     leaves.Repo

	EmployeesService  *employees.Service
	TasksService      *tasks.Service
	AttendanceService *attendance.Service
	LeavesService     *leaves.Service
	StaffingSource    staffing.Source
	StaffingService   *staffing.Service
	DashboardService  *dashboard.Service
	HealthService     *health.Service
}

// Build prepares dependencies and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}

	app.Router = server.NewRouter(cfg,
		health.NewHandler(app.HealthService),
		employees.NewHandler(app.EmployeesService),
		tasks.NewHandler(app.TasksService),
		staffing.NewHandler(app.StaffingService),
		attendance.NewHandler(app.AttendanceService),
		leaves.NewHandler(app.LeavesService),
		dashboard.NewHandler(app.DashboardService),
	)
	return app, nil
}

// Close releases the database pool if one was opened.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required in %s", cfg.Env)
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.EmployeesRepo = &employees.PGRepo{DB: app.DB}
		app.TasksRepo = &tasks.PGRepo{DB: app.DB}
		app.AttendanceRepo = &attendance.PGRepo{DB: app.DB}
		app.LeavesRepo = &leaves.PGRepo{DB: app.DB}
	} else {
		app.EmployeesRepo = employees.NewMemoryRepo()
		app.TasksRepo = tasks.NewMemoryRepo()
		app.AttendanceRepo = attendance.NewMemoryRepo()
		app.LeavesRepo = leaves.NewMemoryRepo()
	}

	app.EmployeesService = employees.NewService(app.EmployeesRepo)
	app.TasksService = tasks.NewService(app.TasksRepo, app.EmployeesService)
	app.AttendanceService = attendance.NewService(app.AttendanceRepo, app.EmployeesService)
	app.LeavesService = leaves.NewService(app.LeavesRepo, app.EmployeesService)

	src, err := buildStaffingSource(app)
	if err != nil {
		return err
	}
	app.StaffingSource = src
	app.StaffingService = staffing.NewService(src, app.Config.DefaultTopN)

	app.DashboardService = &dashboard.Service{
		Employees:  app.EmployeesService,
		Tasks:      app.TasksService,
		Attendance: app.AttendanceService,
		Leaves:     app.LeavesService,
	}

	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}
	app.HealthService = health.NewService(pinger, app.Config.Env, sourceName(src))
	return nil
}

// buildStaffingSource prefers the hosted directory when configured and
// otherwise scores the records this service stores itself.
func buildStaffingSource(app *App) (staffing.Source, error) {
	if strings.TrimSpace(app.Config.DirectoryURL) == "" {
		return staffing.RepoSource{Employees: app.EmployeesRepo, Tasks: app.TasksRepo}, nil
	}
	client, err := directory.New(directory.Options{
		BaseURL: app.Config.DirectoryURL,
		APIKey:  app.Config.DirectoryAPIKey,
		Timeout: app.Config.DirectoryTimeout,
		Retries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("directory client: %w", err)
	}
	telemetry.Info("bootstrap.directory_source", map[string]any{"url": app.Config.DirectoryURL})
	return client, nil
}

func sourceName(src staffing.Source) string {
	switch src.(type) {
	case *directory.Client:
		return "directory"
	default:
		return "repository"
	}
}
