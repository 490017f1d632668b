package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"lifehub/internal/query"
)

// OutputFormat selects how record lists are printed.
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig configures output rendering.
type RenderConfig struct {
	Format   OutputFormat
	Width    int
	Color    bool
	Location *time.Location
}

// DefaultRenderConfig returns the baseline render configuration.
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{
		Format:   FormatDefault,
		Width:    width,
		Color:    true,
		Location: time.Local,
	}
}

// RecordList is a page of records plus the metadata printed around it.
type RecordList struct {
	Records  []query.Record   `json:"entries"`
	Page     query.Pagination `json:"-"`
	Warnings []string         `json:"warnings,omitempty"`
}

// Renderer formats record lists for the terminal.
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles holds the lipgloss styles used by list output.
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Category  lipgloss.Style
	Tags      lipgloss.Style
	Pinned    lipgloss.Style
	Warning   lipgloss.Style
	Amount    lipgloss.Style
}

// NewRenderer creates a renderer with the given config.
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	s := &Styles{}
	if color {
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		s.Meta = lipgloss.NewStyle().Faint(true)
		s.Category = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		s.Tags = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7"))
		s.Pinned = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
		s.Amount = lipgloss.NewStyle().Bold(true)
	} else {
		s.Title = lipgloss.NewStyle().Bold(true)
		s.Separator = lipgloss.NewStyle()
		s.Meta = lipgloss.NewStyle()
		s.Category = lipgloss.NewStyle()
		s.Tags = lipgloss.NewStyle()
		s.Pinned = lipgloss.NewStyle().Bold(true)
		s.Warning = lipgloss.NewStyle()
		s.Amount = lipgloss.NewStyle().Bold(true)
	}
	return s
}

// RenderRecordList renders a page of records in the configured format.
func (r *Renderer) RenderRecordList(list *RecordList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(list)
	case FormatTable:
		return r.renderTable(list), nil
	case FormatQuiet:
		return r.renderQuiet(list), nil
	default:
		return r.renderDefault(list), nil
	}
}

func (r *Renderer) renderJSON(list *RecordList) (string, error) {
	payload := struct {
		Entries    []query.Record `json:"entries"`
		Total      int            `json:"total"`
		Page       int            `json:"page"`
		PerPage    int            `json:"per_page"`
		TotalPages int            `json:"total_pages"`
		Warnings   []string       `json:"warnings,omitempty"`
	}{
		Entries:    list.Records,
		Total:      list.Page.Total,
		Page:       list.Page.Current,
		PerPage:    list.Page.PerPage,
		TotalPages: list.Page.TotalPages,
		Warnings:   list.Warnings,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

func (r *Renderer) renderDefault(list *RecordList) string {
	var b strings.Builder
	sepWidth := min(r.config.Width, 120)

	for _, rec := range list.Records {
		line := r.styles.Meta.Render(rec.Date)
		if rec.Pinned {
			line += "  " + r.styles.Pinned.Render("pinned")
		}
		if rec.Category != "" {
			line += "  " + r.styles.Category.Render("["+rec.Category+"]")
		}
		if len(rec.Tags) > 0 {
			line += "  " + r.styles.Tags.Render("#"+strings.Join(rec.Tags, " #"))
		}
		b.WriteString(line + "\n")
		b.WriteString("  " + recordHeadline(rec) + "\n")
		b.WriteString(r.styles.Separator.Render(strings.Repeat("─", sepWidth)) + "\n")
	}

	for _, w := range list.Warnings {
		b.WriteString(r.styles.Warning.Render("warning: "+w) + "\n")
	}
	b.WriteString(r.styles.Meta.Render(list.Page.Summary()) + "\n")
	return b.String()
}

func (r *Renderer) renderTable(list *RecordList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s  %-32s  %-12s  %10s\n", "DATE", "TITLE", "CATEGORY", "VALUE")
	for _, rec := range list.Records {
		fmt.Fprintf(&b, "%-10s  %-32s  %-12s  %10s\n",
			rec.Date, truncate(recordHeadline(rec), 32), truncate(rec.Category, 12), recordValue(rec))
	}
	b.WriteString(list.Page.Summary() + "\n")
	return b.String()
}

func (r *Renderer) renderQuiet(list *RecordList) string {
	var b strings.Builder
	for _, rec := range list.Records {
		b.WriteString(rec.ID + "\n")
	}
	return b.String()
}

// recordHeadline picks the text a list line leads with.
func recordHeadline(rec query.Record) string {
	if rec.Title != "" {
		return rec.Title
	}
	if rec.Notes != "" {
		return truncate(rec.Notes, 60)
	}
	return "(untitled)"
}

// recordValue renders the domain's value field, if it has one.
func recordValue(rec query.Record) string {
	switch rec.Domain {
	case query.DomainFinance:
		return strconv.FormatFloat(rec.Amount, 'f', 2, 64)
	case query.DomainMood:
		return strconv.Itoa(rec.Score)
	case query.DomainTasks:
		return rec.Status
	}
	return ""
}

// truncate shortens s to n runes, keeping multibyte text valid.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
