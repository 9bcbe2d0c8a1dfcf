package http

import (
	"sehrimilan/internal/plan"
	"sehrimilan/pkg/response"
)

const defaultCuisine = "Indian Desi"

// --- Request DTOs ---

type generateReq struct {
	Days        int    `json:"days"         binding:"required,min=1"`
	FamilySize  int    `json:"family_size"  binding:"min=0,max=50"`
	DailyBudget int    `json:"daily_budget" binding:"min=0"`
	CuisineType string `json:"cuisine_type" binding:"max=100"`
	AgeGroups   string `json:"age_groups"   binding:"max=200"`
	Equipment   string `json:"equipment"    binding:"max=200"`
	FoodItems   string `json:"food_items"   binding:"max=500"`
}

func (r generateReq) toInput() plan.GenerateInput {
	cuisine := r.CuisineType
	if cuisine == "" {
		cuisine = defaultCuisine
	}
	return plan.GenerateInput{
		Days:        r.Days,
		FamilySize:  r.FamilySize,
		DailyBudget: r.DailyBudget,
		CuisineType: cuisine,
		AgeGroups:   r.AgeGroups,
		Equipment:   r.Equipment,
		FoodItems:   r.FoodItems,
	}
}

// ---

type getReq struct {
	Cached bool `form:"cached"`
}

func (r getReq) toInput() plan.GetInput {
	return plan.GetInput{Cached: r.Cached}
}

// ---

type getDayReq struct {
	Index  int  `uri:"index" form:"-" binding:"required,min=1"`
	Cached bool `form:"cached"`
}

func (r getDayReq) toInput() plan.GetDayInput {
	return plan.GetDayInput{Index: r.Index, Cached: r.Cached}
}

// --- Response DTOs ---

type dayResp struct {
	Index   int    `json:"index"`
	Heading string `json:"heading"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

func newDayResp(d plan.Day) dayResp {
	return dayResp{
		Index:   d.Index,
		Heading: d.Heading,
		Text:    d.Text,
		HTML:    d.HTML,
	}
}

type generateResp struct {
	PlanDays  int               `json:"plan_days"`
	DayCount  int               `json:"day_count"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func (h *handler) newGenerateResp(out plan.GenerateOutput) generateResp {
	return generateResp{
		PlanDays:  out.Plan.PlanDays,
		DayCount:  out.DayCount,
		UpdatedAt: response.DateTime(out.Plan.UpdatedAt),
	}
}

type planResp struct {
	PlanDays  int               `json:"plan_days"`
	FullPlan  string            `json:"full_plan"`
	Source    string            `json:"source"`
	UpdatedAt response.DateTime `json:"updated_at"`
	Days      []dayResp         `json:"days"`
}

func (h *handler) newPlanResp(out plan.GetOutput) planResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = newDayResp(d)
	}
	return planResp{
		PlanDays:  out.Plan.PlanDays,
		FullPlan:  out.Plan.FullPlan,
		Source:    string(out.Source),
		UpdatedAt: response.DateTime(out.Plan.UpdatedAt),
		Days:      days,
	}
}

type getDayResp struct {
	Day      dayResp `json:"day"`
	DayCount int     `json:"day_count"`
}

func (h *handler) newGetDayResp(out plan.GetDayOutput) getDayResp {
	return getDayResp{Day: newDayResp(out.Day), DayCount: out.DayCount}
}
