package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted and exported as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type DebtCategory string

const (
	DebtCategoryCard      DebtCategory = "card"
	DebtCategoryFinancing DebtCategory = "financing"
	DebtCategoryLoan      DebtCategory = "loan"
	DebtCategoryBill      DebtCategory = "bill"
	DebtCategoryOther     DebtCategory = "other"
)

// DebtStatus is derived from the due date on every read and never stored.
type DebtStatus string

const (
	DebtStatusCurrent DebtStatus = "current"
	DebtStatusDueSoon DebtStatus = "due-soon"
	DebtStatusOverdue DebtStatus = "overdue"
)

// UnsetCreditor marks a quick-added debt whose terms have not been negotiated yet.
const UnsetCreditor = "unset"

type Installments struct {
	Total int `json:"total"`
	Paid  int `json:"paid"`
}

type Debt struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        DebtCategory    `json:"category"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	InterestRate    decimal.Decimal `json:"interestRate"` // annual, as percentage
	DueDate         time.Time       `json:"dueDate"`
	Installments    Installments    `json:"installments"`
	MinimumPayment  decimal.Decimal `json:"minimumPayment"`
	Creditor        string          `json:"creditor"`
}

type DebtView struct {
	Debt
	Status DebtStatus `json:"status"`
}

type FixedBillCategory string

const (
	FixedBillCategoryWater     FixedBillCategory = "water"
	FixedBillCategoryPower     FixedBillCategory = "power"
	FixedBillCategoryGas       FixedBillCategory = "gas"
	FixedBillCategoryInternet  FixedBillCategory = "internet"
	FixedBillCategoryPhone     FixedBillCategory = "phone"
	FixedBillCategoryStreaming FixedBillCategory = "streaming"
	FixedBillCategoryGym       FixedBillCategory = "gym"
	FixedBillCategoryInsurance FixedBillCategory = "insurance"
	FixedBillCategoryCondo     FixedBillCategory = "condo"
	FixedBillCategoryOther     FixedBillCategory = "other"
)

type FixedBillStatus string

const (
	FixedBillStatusPaid    FixedBillStatus = "paid"
	FixedBillStatusPending FixedBillStatus = "pending"
	FixedBillStatusOverdue FixedBillStatus = "overdue"
)

type FixedBill struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     FixedBillCategory `json:"category"`
	Amount       decimal.Decimal   `json:"amount"`
	DueDay       int               `json:"dueDay"` // day of month, 1-31
	IsPaid       bool              `json:"isPaid"`
	LastPaidDate *time.Time        `json:"lastPaidDate,omitempty"`
	Provider     string            `json:"provider"`
	Description  string            `json:"description,omitempty"`
	IsRecurring  bool              `json:"isRecurring"`
}

type FixedBillView struct {
	FixedBill
	Status       FixedBillStatus `json:"status"`
	NextDueDate  time.Time       `json:"nextDueDate"`
	DaysUntilDue int             `json:"daysUntilDue"`
}

type IncomeCategory string

const (
	IncomeCategorySalary     IncomeCategory = "salary"
	IncomeCategoryFreelance  IncomeCategory = "freelance"
	IncomeCategoryInvestment IncomeCategory = "investment"
	IncomeCategoryRent       IncomeCategory = "rent"
	IncomeCategorySales      IncomeCategory = "sales"
	IncomeCategoryBonus      IncomeCategory = "bonus"
	IncomeCategoryOther      IncomeCategory = "other"
)

type IncomeFrequency string

const (
	FrequencyOnce       IncomeFrequency = "once"
	FrequencyMonthly    IncomeFrequency = "monthly"
	FrequencyQuarterly  IncomeFrequency = "quarterly"
	FrequencySemiannual IncomeFrequency = "semiannual"
	FrequencyAnnual     IncomeFrequency = "annual"
)

type IncomeStatus string

const (
	IncomeStatusReceived IncomeStatus = "received"
	IncomeStatusPending  IncomeStatus = "pending"
	IncomeStatusOverdue  IncomeStatus = "overdue"
)

type Income struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     IncomeCategory  `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    IncomeFrequency `json:"frequency"`
	ReceivedDate time.Time       `json:"receivedDate"`
	ExpectedDate *time.Time      `json:"expectedDate,omitempty"`
	IsReceived   bool            `json:"isReceived"`
	Source       string          `json:"source"`
	Description  string          `json:"description,omitempty"`
	IsRecurring  bool            `json:"isRecurring"`
}

type IncomeView struct {
	Income
	Status            IncomeStatus `json:"status"`
	NextExpectedDate  *time.Time   `json:"nextExpectedDate,omitempty"`
	DaysUntilExpected *int         `json:"daysUntilExpected,omitempty"` // set only with an expected date
}

// Categories
var DebtCategories = []DebtCategory{
	DebtCategoryCard,
	DebtCategoryFinancing,
	DebtCategoryLoan,
	DebtCategoryBill,
	DebtCategoryOther,
}

var FixedBillCategories = []FixedBillCategory{
	FixedBillCategoryWater,
	FixedBillCategoryPower,
	FixedBillCategoryGas,
	FixedBillCategoryInternet,
	FixedBillCategoryPhone,
	FixedBillCategoryStreaming,
	FixedBillCategoryGym,
	FixedBillCategoryInsurance,
	FixedBillCategoryCondo,
	FixedBillCategoryOther,
}

var IncomeCategories = []IncomeCategory{
	IncomeCategorySalary,
	IncomeCategoryFreelance,
	IncomeCategoryInvestment,
	IncomeCategoryRent,
	IncomeCategorySales,
	IncomeCategoryBonus,
	IncomeCategoryOther,
}

var IncomeFrequencies = []IncomeFrequency{
	FrequencyOnce,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencySemiannual,
	FrequencyAnnual,
}
