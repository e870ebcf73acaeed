package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/apperror"
	"github.com/wealthpath/finance-tracker/internal/finance"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/internal/repository"
)

var (
	ErrCostNotFound    = apperror.NotFound("project cost")
	ErrRevenueNotFound = apperror.NotFound("project revenue")
)

// ProjectService handles projects and the cost and revenue lines they own.
// Line items are only reachable through their project.
type ProjectService struct {
	repo repository.ProjectRepositoryInterface
}

func NewProjectService(repo repository.ProjectRepositoryInterface) *ProjectService {
	return &ProjectService{repo: repo}
}

type ProjectInput struct {
	Name             string                `json:"name"`
	Description      string                `json:"description,omitempty"`
	Category         model.ProjectCategory `json:"category"`
	Status           model.ProjectStatus   `json:"status"`
	StartDate        time.Time             `json:"startDate"`
	EndDate          *time.Time            `json:"endDate,omitempty"`
	EstimatedEndDate *time.Time            `json:"estimatedEndDate,omitempty"`
	Client           string                `json:"client,omitempty"`
	TotalBudget      *decimal.Decimal      `json:"totalBudget,omitempty"`
}

type ProjectCostInput struct {
	Name        string             `json:"name"`
	Category    model.CostCategory `json:"category"`
	Amount      decimal.Decimal    `json:"amount"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description,omitempty"`
	IsPaid      bool               `json:"isPaid"`
}

type ProjectRevenueInput struct {
	Name         string                    `json:"name"`
	Amount       decimal.Decimal           `json:"amount"`
	Date         time.Time                 `json:"date"`
	ExpectedDate *time.Time                `json:"expectedDate,omitempty"`
	Description  string                    `json:"description,omitempty"`
	IsReceived   bool                      `json:"isReceived"`
	Installment  *model.RevenueInstallment `json:"installment,omitempty"`
}

func (in ProjectInput) apply(p *model.Project) {
	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Status = in.Status
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.EstimatedEndDate = in.EstimatedEndDate
	p.Client = in.Client
	p.TotalBudget = in.TotalBudget
}

func (in ProjectCostInput) apply(c *model.ProjectCost) {
	c.Name = in.Name
	c.Category = in.Category
	c.Amount = in.Amount
	c.Date = in.Date
	c.Description = in.Description
	c.IsPaid = in.IsPaid
}

func (in ProjectRevenueInput) apply(r *model.ProjectRevenue) {
	r.Name = in.Name
	r.Amount = in.Amount
	r.Date = in.Date
	r.ExpectedDate = in.ExpectedDate
	r.Description = in.Description
	r.IsReceived = in.IsReceived
	r.Installment = in.Installment
}

// Create stores a new project with no line items. Status defaults to planning.
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*model.ProjectView, error) {
	project := &model.Project{
		Costs:    []model.ProjectCost{},
		Revenues: []model.ProjectRevenue{},
	}
	input.apply(project)
	if project.Status == "" {
		project.Status = model.ProjectStatusPlanning
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return view(project), nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*model.ProjectView, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}
	return view(project), nil
}

func (s *ProjectService) List(ctx context.Context) ([]model.ProjectView, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	views := make([]model.ProjectView, len(projects))
	for i, p := range projects {
		views[i] = finance.ProjectView(p)
	}
	return finance.SortProjects(views), nil
}

// Update replaces the project's own fields; its line items are untouched.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (*model.ProjectView, error) {
	project, err := s.repo.Modify(ctx, id, func(p *model.Project) error {
		input.apply(p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}
	return view(project), nil
}

// Delete removes a project together with its costs and revenues.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}

func (s *ProjectService) AddCost(ctx context.Context, projectID string, input ProjectCostInput) (*model.ProjectView, error) {
	project, err := s.repo.Modify(ctx, projectID, func(p *model.Project) error {
		cost := model.ProjectCost{ID: uuid.NewString(), ProjectID: p.ID}
		input.apply(&cost)
		p.Costs = append(p.Costs, cost)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding cost to project %s: %w", projectID, err)
	}
	return view(project), nil
}

func (s *ProjectService) UpdateCost(ctx context.Context, projectID, costID string, input ProjectCostInput) (*model.ProjectView, error) {
	return s.modifyCost(ctx, projectID, costID, "updating", func(c *model.ProjectCost) {
		input.apply(c)
	})
}

func (s *ProjectService) ToggleCostPaid(ctx context.Context, projectID, costID string) (*model.ProjectView, error) {
	return s.modifyCost(ctx, projectID, costID, "toggling", func(c *model.ProjectCost) {
		c.IsPaid = !c.IsPaid
	})
}

func (s *ProjectService) DeleteCost(ctx context.Context, projectID, costID string) (*model.ProjectView, error) {
	project, err := s.repo.Modify(ctx, projectID, func(p *model.Project) error {
		i := costIndex(p.Costs, costID)
		if i < 0 {
			return ErrCostNotFound
		}
		p.Costs = append(p.Costs[:i], p.Costs[i+1:]...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deleting cost %s of project %s: %w", costID, projectID, err)
	}
	return view(project), nil
}

func (s *ProjectService) AddRevenue(ctx context.Context, projectID string, input ProjectRevenueInput) (*model.ProjectView, error) {
	project, err := s.repo.Modify(ctx, projectID, func(p *model.Project) error {
		revenue := model.ProjectRevenue{ID: uuid.NewString(), ProjectID: p.ID}
		input.apply(&revenue)
		p.Revenues = append(p.Revenues, revenue)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding revenue to project %s: %w", projectID, err)
	}
	return view(project), nil
}

func (s *ProjectService) UpdateRevenue(ctx context.Context, projectID, revenueID string, input ProjectRevenueInput) (*model.ProjectView, error) {
	return s.modifyRevenue(ctx, projectID, revenueID, "updating", func(r *model.ProjectRevenue) {
		input.apply(r)
	})
}

func (s *ProjectService) ToggleRevenueReceived(ctx context.Context, projectID, revenueID string) (*model.ProjectView, error) {
	return s.modifyRevenue(ctx, projectID, revenueID, "toggling", func(r *model.ProjectRevenue) {
		r.IsReceived = !r.IsReceived
	})
}

func (s *ProjectService) DeleteRevenue(ctx context.Context, projectID, revenueID string) (*model.ProjectView, error) {
	project, err := s.repo.Modify(ctx, projectID, func(p *model.Project) error {
		i := revenueIndex(p.Revenues, revenueID)
		if i < 0 {
			return ErrRevenueNotFound
		}
		p.Revenues = append(p.Revenues[:i], p.Revenues[i+1:]...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deleting revenue %s of project %s: %w", revenueID, projectID, err)
	}
	return view(project), nil
}

func (s *ProjectService) Summary(ctx context.Context) (*model.ProjectSummary, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects for summary: %w", err)
	}
	summary := finance.SummarizeProjects(projects)
	return &summary, nil
}

func (s *ProjectService) modifyCost(ctx context.Context, projectID, costID, verb string, fn func(*model.ProjectCost)) (*model.ProjectView, error) {
	project, err := s.repo.Modify(ctx, projectID, func(p *model.Project) error {
		i := costIndex(p.Costs, costID)
		if i < 0 {
			return ErrCostNotFound
		}
		fn(&p.Costs[i])
		p.Costs[i].ID = costID
		p.Costs[i].ProjectID = p.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s cost %s of project %s: %w", verb, costID, projectID, err)
	}
	return view(project), nil
}

func (s *ProjectService) modifyRevenue(ctx context.Context, projectID, revenueID, verb string, fn func(*model.ProjectRevenue)) (*model.ProjectView, error) {
	project, err := s.repo.Modify(ctx, projectID, func(p *model.Project) error {
		i := revenueIndex(p.Revenues, revenueID)
		if i < 0 {
			return ErrRevenueNotFound
		}
		fn(&p.Revenues[i])
		p.Revenues[i].ID = revenueID
		p.Revenues[i].ProjectID = p.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s revenue %s of project %s: %w", verb, revenueID, projectID, err)
	}
	return view(project), nil
}

func costIndex(costs []model.ProjectCost, id string) int {
	for i := range costs {
		if costs[i].ID == id {
			return i
		}
	}
	return -1
}

func revenueIndex(revenues []model.ProjectRevenue, id string) int {
	for i := range revenues {
		if revenues[i].ID == id {
			return i
		}
	}
	return -1
}

func view(p *model.Project) *model.ProjectView {
	v := finance.ProjectView(*p)
	return &v
}
