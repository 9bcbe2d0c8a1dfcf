package http

import (
	"strings"

	"sehrimilan/internal/shopping"
)

// --- Request DTOs ---

type getReq struct {
	Refresh bool `form:"refresh"`
	Cached  bool `form:"cached"`
}

func (r getReq) toInput() shopping.GetInput {
	return shopping.GetInput{Refresh: r.Refresh, Cached: r.Cached}
}

type addReq struct {
	Name string `json:"name" binding:"required,max=200"`
}

func (r addReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return shopping.ErrEmptyName
	}
	return nil
}

func (r addReq) toInput() shopping.AddInput {
	return shopping.AddInput{Name: r.Name}
}

type itemReq struct {
	ID string `uri:"id" binding:"required"`
}

// --- Response DTOs ---

type entryResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Day       string `json:"day"`
	Category  string `json:"category"`
}

type listResp struct {
	Items  []entryResp `json:"items"`
	Total  int         `json:"total"`
	Done   int         `json:"done"`
	Source string      `json:"source"`
}

func (h *handler) newListResp(entries []shopping.Entry, source shopping.Source) listResp {
	items := make([]entryResp, len(entries))
	done := 0
	for i, e := range entries {
		items[i] = entryResp{
			ID:        e.ID,
			Name:      e.Name,
			Completed: e.Completed,
			Day:       e.Day,
			Category:  string(e.Category),
		}
		if e.Completed {
			done++
		}
	}
	return listResp{
		Items:  items,
		Total:  len(entries),
		Done:   done,
		Source: string(source),
	}
}

type shareResp struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

func (h *handler) newShareResp(out shopping.ShareOutput) shareResp {
	return shareResp{Text: out.Text, URL: out.URL}
}
