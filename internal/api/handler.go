package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"lifehub/internal/config"
	"lifehub/internal/query"
	"lifehub/internal/store"
)

// Handler holds dependencies for the record API. Now is injectable so tests
// can pin the reference instant the date windows anchor to.
type Handler struct {
	Store *store.Store
	Cfg   config.Config
	Now   func() time.Time
}

// listResponse is the envelope for GET /api/{domain}.
type listResponse struct {
	Entries    []query.Record `json:"entries"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// HandleList handles GET /api/{domain}: fetch the domain snapshot, then run
// it through the window/filter/sort/paginate pipeline driven by query params.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	domain, ok := h.domainFromPath(w, r)
	if !ok {
		return
	}

	records, err := h.Store.List(domain)
	if err != nil {
		http.Error(w, fmt.Sprintf("list failed: %v", err), http.StatusInternalServerError)
		return
	}

	crit, loc := h.criteriaFromQuery(r)
	now := h.Now().In(loc)

	win, winOK := query.ResolveWindow(crit.Range, now, loc, crit.CustomStart, crit.CustomEnd)
	filtered, warnings := query.Filter(records, crit, win, winOK)

	key, order, pinnedFirst := sortFromQuery(r, domain)
	sorted := query.Sort(filtered, key, order, pinnedFirst)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, p := query.Paginate(sorted, page, limit)

	writeJSON(w, http.StatusOK, listResponse{
		Entries:    entries,
		Total:      p.Total,
		Page:       p.Current,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
		Warnings:   warnings,
	})
}

// HandleCreate handles POST /api/{domain}.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	domain, ok := h.domainFromPath(w, r)
	if !ok {
		return
	}

	var rec query.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rec.Domain = domain

	saved, err := h.Store.Insert(rec)
	if err != nil {
		http.Error(w, fmt.Sprintf("create failed: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]query.Record{"entry": saved})
}

// HandleUpdate handles PUT /api/{domain}/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	domain, ok := h.domainFromPath(w, r)
	if !ok {
		return
	}

	var rec query.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rec.Domain = domain
	rec.ID = r.PathValue("id")

	saved, err := h.Store.Update(rec)
	if err == store.ErrNotFound {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("update failed: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]query.Record{"entry": saved})
}

// HandleDelete handles DELETE /api/{domain}/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	domain, ok := h.domainFromPath(w, r)
	if !ok {
		return
	}

	err := h.Store.Delete(domain, r.PathValue("id"))
	if err == store.ErrNotFound {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("delete failed: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// HandleSummary handles GET /api/{domain}/summary: aggregate the filtered
// collection instead of paging it.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	domain, ok := h.domainFromPath(w, r)
	if !ok {
		return
	}

	records, err := h.Store.List(domain)
	if err != nil {
		http.Error(w, fmt.Sprintf("list failed: %v", err), http.StatusInternalServerError)
		return
	}

	crit, loc := h.criteriaFromQuery(r)
	now := h.Now().In(loc)

	win, winOK := query.ResolveWindow(crit.Range, now, loc, crit.CustomStart, crit.CustomEnd)
	filtered, warnings := query.Filter(records, crit, win, winOK)

	agg := query.Summarize(filtered, domain, now, loc)
	agg.Warnings = append(agg.Warnings, warnings...)
	writeJSON(w, http.StatusOK, agg)
}

func (h *Handler) domainFromPath(w http.ResponseWriter, r *http.Request) (query.Domain, bool) {
	domain, err := query.ParseDomain(r.PathValue("domain"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return "", false
	}
	return domain, true
}

// criteriaFromQuery maps request parameters onto filter criteria. A `days=N`
// parameter is shorthand for a custom trailing window ending today; an
// explicit start_date/end_date pair wins over it.
func (h *Handler) criteriaFromQuery(r *http.Request) (query.Criteria, *time.Location) {
	q := r.URL.Query()

	loc := h.Cfg.Location()
	if tz := q.Get("timezone"); tz != "" {
		if parsed, err := time.LoadLocation(tz); err == nil {
			loc = parsed
		}
	}

	crit := query.Criteria{
		Search:      q.Get("q"),
		Type:        q.Get("type"),
		Category:    q.Get("category"),
		Status:      q.Get("status"),
		Priority:    q.Get("priority"),
		Tag:         q.Get("tag"),
		Range:       query.RangeKind(q.Get("range")),
		CustomStart: q.Get("start_date"),
		CustomEnd:   q.Get("end_date"),
		View:        query.ViewMode(q.Get("view")),
	}
	if crit.Range == "" {
		crit.Range = query.RangeAll
	}
	if crit.CustomStart != "" || crit.CustomEnd != "" {
		crit.Range = query.RangeCustom
	} else if days, err := strconv.Atoi(q.Get("days")); err == nil && days > 0 {
		now := h.Now().In(loc)
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		crit.Range = query.RangeCustom
		crit.CustomStart = end.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
		crit.CustomEnd = end.Format("2006-01-02")
	}
	return crit, loc
}

func sortFromQuery(r *http.Request, domain query.Domain) (query.SortKey, query.SortOrder, bool) {
	q := r.URL.Query()

	key := query.SortKey(q.Get("sort"))
	if key == "" {
		if domain == query.DomainNotes {
			key = query.SortByUpdated
		} else {
			key = query.SortByDate
		}
	}

	order := query.SortOrder(q.Get("order"))
	if order == "" {
		order = query.Desc
	}

	// Pinning only exists for tasks and notes.
	pinnedFirst := domain == query.DomainTasks || domain == query.DomainNotes
	return key, order, pinnedFirst
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
