package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/wealthpath/finance-tracker/internal/logger"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Debts      *DebtHandler
	FixedBills *FixedBillHandler
	Incomes    *IncomeHandler
	Projects   *ProjectHandler
	Dashboard  *DashboardHandler
	Backup     *BackupHandler
	Reports    *ReportHandler
	// Rollover is reported by the health check when the scheduler runs.
	Rollover RolloverStatus
}

// RolloverStatus is the read side of the bill rollover scheduler.
type RolloverStatus interface {
	LastResult() (time.Time, int, error)
	GetNextRunTime() time.Time
}

type HealthResponse struct {
	Status   string                  `json:"status"`
	Rollover *RolloverHealthResponse `json:"rollover,omitempty"`
}

type RolloverHealthResponse struct {
	LastRun    *time.Time `json:"lastRun,omitempty"`
	BillsReset int        `json:"billsReset"`
	LastError  string     `json:"lastError,omitempty"`
	NextRun    *time.Time `json:"nextRun,omitempty"`
}

// RequestLogger tags the request context with the chi request ID so
// logger.FromContext includes it.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Health godoc
// @Summary Health check
// @Description Check if the API is running, with the last bill rollover when the scheduler is on
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(rollover RolloverStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok"}
		if rollover != nil {
			ran, n, err := rollover.LastResult()
			status := &RolloverHealthResponse{BillsReset: n}
			if !ran.IsZero() {
				status.LastRun = &ran
			}
			if err != nil {
				status.LastError = err.Error()
			}
			if next := rollover.GetNextRunTime(); !next.IsZero() {
				status.NextRun = &next
			}
			resp.Rollover = status
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// NewRouter builds the API router.
func NewRouter(h Handlers, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/api/health", Health(h.Rollover))

	// Debts
	r.Get("/api/debts", h.Debts.List)
	r.Post("/api/debts", h.Debts.Create)
	r.Post("/api/debts/quick-add", h.Debts.QuickAdd)
	r.Get("/api/debts/summary", h.Debts.Summary)
	r.Get("/api/debts/{id}", h.Debts.Get)
	r.Put("/api/debts/{id}", h.Debts.Update)
	r.Delete("/api/debts/{id}", h.Debts.Delete)
	r.Post("/api/debts/{id}/negotiate", h.Debts.Negotiate)
	r.Get("/api/debts/{id}/payoff", h.Debts.Payoff)

	// Fixed bills
	r.Get("/api/fixed-bills", h.FixedBills.List)
	r.Post("/api/fixed-bills", h.FixedBills.Create)
	r.Get("/api/fixed-bills/summary", h.FixedBills.Summary)
	r.Post("/api/fixed-bills/rollover", h.FixedBills.Rollover)
	r.Get("/api/fixed-bills/{id}", h.FixedBills.Get)
	r.Put("/api/fixed-bills/{id}", h.FixedBills.Update)
	r.Delete("/api/fixed-bills/{id}", h.FixedBills.Delete)
	r.Post("/api/fixed-bills/{id}/toggle-paid", h.FixedBills.TogglePaid)

	// Incomes
	r.Get("/api/incomes", h.Incomes.List)
	r.Post("/api/incomes", h.Incomes.Create)
	r.Get("/api/incomes/summary", h.Incomes.Summary)
	r.Get("/api/incomes/{id}", h.Incomes.Get)
	r.Put("/api/incomes/{id}", h.Incomes.Update)
	r.Delete("/api/incomes/{id}", h.Incomes.Delete)
	r.Post("/api/incomes/{id}/toggle-received", h.Incomes.ToggleReceived)

	// Projects
	r.Get("/api/projects", h.Projects.List)
	r.Post("/api/projects", h.Projects.Create)
	r.Get("/api/projects/summary", h.Projects.Summary)
	r.Get("/api/projects/{id}", h.Projects.Get)
	r.Put("/api/projects/{id}", h.Projects.Update)
	r.Delete("/api/projects/{id}", h.Projects.Delete)
	r.Post("/api/projects/{id}/costs", h.Projects.AddCost)
	r.Put("/api/projects/{id}/costs/{costId}", h.Projects.UpdateCost)
	r.Delete("/api/projects/{id}/costs/{costId}", h.Projects.DeleteCost)
	r.Post("/api/projects/{id}/costs/{costId}/toggle-paid", h.Projects.ToggleCostPaid)
	r.Post("/api/projects/{id}/revenues", h.Projects.AddRevenue)
	r.Put("/api/projects/{id}/revenues/{revenueId}", h.Projects.UpdateRevenue)
	r.Delete("/api/projects/{id}/revenues/{revenueId}", h.Projects.DeleteRevenue)
	r.Post("/api/projects/{id}/revenues/{revenueId}/toggle-received", h.Projects.ToggleRevenueReceived)

	// Overview
	r.Get("/api/overview", h.Dashboard.Overview)

	// Backup
	r.Get("/api/backup/export", h.Backup.Export)
	r.Post("/api/backup/import", h.Backup.Import)

	// Charts and reports
	r.Get("/api/charts/{kind}.png", h.Reports.Chart)
	r.Get("/api/reports/overview.pdf", h.Reports.OverviewPDF)

	return r
}
