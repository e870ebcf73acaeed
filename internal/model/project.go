package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectCategory string

const (
	ProjectCategoryDevelopment ProjectCategory = "development"
	ProjectCategoryDesign      ProjectCategory = "design"
	ProjectCategoryConsulting  ProjectCategory = "consulting"
	ProjectCategoryMarketing   ProjectCategory = "marketing"
	ProjectCategorySales       ProjectCategory = "sales"
	ProjectCategoryOther       ProjectCategory = "other"
)

// ProjectStatus is set by the user; unlike the other statuses it is not derived.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
	ProjectStatusPaused     ProjectStatus = "paused"
)

type CostCategory string

const (
	CostCategoryMaterial  CostCategory = "material"
	CostCategoryService   CostCategory = "service"
	CostCategorySoftware  CostCategory = "software"
	CostCategoryEquipment CostCategory = "equipment"
	CostCategoryTransport CostCategory = "transport"
	CostCategoryOther     CostCategory = "other"
)

// Project owns its cost and revenue lines; they are deleted with it.
type Project struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Category         ProjectCategory  `json:"category"`
	Status           ProjectStatus    `json:"status"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          *time.Time       `json:"endDate,omitempty"`
	EstimatedEndDate *time.Time       `json:"estimatedEndDate,omitempty"`
	Client           string           `json:"client,omitempty"`
	TotalBudget      *decimal.Decimal `json:"totalBudget,omitempty"`
	Costs            []ProjectCost    `json:"costs"`
	Revenues         []ProjectRevenue `json:"revenues"`
}

type ProjectCost struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"projectId"`
	Name        string          `json:"name"`
	Category    CostCategory    `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	IsPaid      bool            `json:"isPaid"`
}

type RevenueInstallment struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type ProjectRevenue struct {
	ID           string              `json:"id"`
	ProjectID    string              `json:"projectId"`
	Name         string              `json:"name"`
	Amount       decimal.Decimal     `json:"amount"`
	Date         time.Time           `json:"date"`
	ExpectedDate *time.Time          `json:"expectedDate,omitempty"`
	Description  string              `json:"description,omitempty"`
	IsReceived   bool                `json:"isReceived"`
	Installment  *RevenueInstallment `json:"installment,omitempty"`
}

// ProjectView is a project with its derived progress and money roll-ups.
type ProjectView struct {
	Project
	Progress       int             `json:"progress"` // percent, 0-100
	TotalCosts     decimal.Decimal `json:"totalCosts"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	Profit         decimal.Decimal `json:"profit"`
	PendingRevenue decimal.Decimal `json:"pendingRevenue"`
	PendingCosts   decimal.Decimal `json:"pendingCosts"`
}

var ProjectCategories = []ProjectCategory{
	ProjectCategoryDevelopment,
	ProjectCategoryDesign,
	ProjectCategoryConsulting,
	ProjectCategoryMarketing,
	ProjectCategorySales,
	ProjectCategoryOther,
}

var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
	ProjectStatusPaused,
}

var CostCategories = []CostCategory{
	CostCategoryMaterial,
	CostCategoryService,
	CostCategorySoftware,
	CostCategoryEquipment,
	CostCategoryTransport,
	CostCategoryOther,
}
