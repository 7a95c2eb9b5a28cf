package http

import (
	"strings"

	"trip-planner/internal/model"
	"trip-planner/internal/place"
)

// --- Request DTOs ---

type resolveReq struct {
	Name        string `json:"name"        binding:"required,max=300"`
	Destination string `json:"destination" binding:"max=200"`
}

func (r resolveReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return place.ErrEmptyName
	}
	return nil
}

func (r resolveReq) toInput() place.ResolveInput {
	return place.ResolveInput{Name: r.Name, Destination: r.Destination}
}

// ---

type searchReq struct {
	Query       string `form:"q"           binding:"required,max=300"`
	Destination string `form:"destination" binding:"max=200"`
	Limit       int    `form:"limit"       binding:"omitempty,min=1,max=10"`
}

func (r searchReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return place.ErrEmptyQuery
	}
	return nil
}

func (r searchReq) toInput(clientKey string) place.SearchInput {
	return place.SearchInput{
		ClientKey:   clientKey,
		Query:       r.Query,
		Destination: r.Destination,
		Limit:       r.Limit,
	}
}

// ---

type resolveBatchReq struct {
	Names       []string `json:"names"       binding:"required"`
	Destination string   `json:"destination" binding:"max=200"`
}

func (r resolveBatchReq) validate() error {
	if len(r.Names) == 0 {
		return place.ErrNoNames
	}
	if len(r.Names) > place.MaxBatchNames {
		return place.ErrTooManyNames
	}
	return nil
}

func (r resolveBatchReq) toInput() place.ResolveBatchInput {
	return place.ResolveBatchInput{Names: r.Names, Destination: r.Destination}
}

// --- Response DTOs ---

type searchResp struct {
	Candidates []model.PlaceCandidate `json:"candidates"`
	Count      int                    `json:"count"`
}

func (h *handler) newSearchResp(candidates []model.PlaceCandidate) searchResp {
	if candidates == nil {
		candidates = []model.PlaceCandidate{}
	}
	return searchResp{Candidates: candidates, Count: len(candidates)}
}

type resolveBatchItemResp struct {
	Index      int                   `json:"index"`
	Name       string                `json:"name"`
	Candidate  *model.PlaceCandidate `json:"candidate"`
	Error      *string               `json:"error"`
	StatusCode int                   `json:"statusCode"`
}

type resolveBatchResp struct {
	Status         model.BatchStatus      `json:"status"`
	ProcessedCount int                    `json:"processedCount"`
	FailedCount    int                    `json:"failedCount"`
	ResolvedCount  int                    `json:"resolvedCount"`
	Cancelled      bool                   `json:"cancelled"`
	Items          []resolveBatchItemResp `json:"items"`
}

func (h *handler) newResolveBatchResp(out place.ResolveBatchOutput) resolveBatchResp {
	items := make([]resolveBatchItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = resolveBatchItemResp{
			Index:      item.Index,
			Name:       item.Name,
			Candidate:  item.Candidate,
			StatusCode: item.StatusCode,
		}
		if item.Error != "" {
			msg := item.Error
			items[i].Error = &msg
		}
	}
	return resolveBatchResp{
		Status:         out.Status,
		ProcessedCount: out.ProcessedCount,
		FailedCount:    out.FailedCount,
		ResolvedCount:  out.ResolvedCount,
		Cancelled:      out.Cancelled,
		Items:          items,
	}
}
