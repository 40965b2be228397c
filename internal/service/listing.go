package service

import (
	"strings"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// FilterAll disables a filter.
const FilterAll = "all"

// PageSize is the number of cards shown per page.
const PageSize = 6

// ViewState is the dashboard selection owned by the rendering layer.
type ViewState struct {
	Status            string `json:"status"`
	Owner             string `json:"owner"`
	Channel           string `json:"channel"`
	Page              int    `json:"page"`
	BreakdownExpanded bool   `json:"breakdown_expanded"`
}

// DefaultViewState selects every campaign on the first page.
func DefaultViewState() ViewState {
	return ViewState{Status: FilterAll, Owner: FilterAll, Channel: FilterAll, Page: 1}
}

// normalized treats empty filters as "all".
func (s ViewState) normalized() ViewState {
	if s.Status == "" {
		s.Status = FilterAll
	}
	if s.Owner == "" {
		s.Owner = FilterAll
	}
	if s.Channel == "" {
		s.Channel = FilterAll
	}
	return s
}

func ToggleBreakdown(s ViewState) ViewState {
	s.BreakdownExpanded = !s.BreakdownExpanded
	return s
}

// Matches reports whether a campaign passes every filter of the state.
func (s ViewState) Matches(c *model.Campaign) bool {
	s = s.normalized()
	if s.Status != FilterAll && string(c.Status) != s.Status {
		return false
	}
	if s.Owner != FilterAll && (c.Owner == nil || c.Owner.Name != s.Owner) {
		return false
	}
	if s.Channel != FilterAll && string(c.Channel) != s.Channel {
		return false
	}
	return true
}

// FilterCampaigns keeps the campaigns matching state, preserving order.
func FilterCampaigns(campaigns []model.Campaign, state ViewState) []model.Campaign {
	out := make([]model.Campaign, 0, len(campaigns))
	for i := range campaigns {
		if state.Matches(&campaigns[i]) {
			out = append(out, campaigns[i])
		}
	}
	return out
}

func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage keeps page within [1, totalPages]; with no pages it is 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

func NextPage(page, totalPages int) int { return ClampPage(page+1, totalPages) }
func PrevPage(page, totalPages int) int { return ClampPage(page-1, totalPages) }

// Paginate returns the 1-based page window of rows.
func Paginate[T any](rows []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return []T{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// statusTabs is the order of the status selector.
var statusTabs = []model.Status{model.StatusIdeas, model.StatusDraft, model.StatusOnHold, model.StatusInProgress}

// CountByStatus counts the whole collection per tab, ignoring any filter.
// The trailing "all" tab carries the collection size.
func CountByStatus(campaigns []model.Campaign) []StatusCount {
	counts := make(map[model.Status]int, len(statusTabs))
	for i := range campaigns {
		counts[campaigns[i].Status]++
	}
	out := make([]StatusCount, 0, len(statusTabs)+1)
	for _, s := range statusTabs {
		out = append(out, StatusCount{Status: string(s), Label: tabLabel(string(s)), Count: counts[s]})
	}
	out = append(out, StatusCount{Status: FilterAll, Label: tabLabel(FilterAll), Count: len(campaigns)})
	return out
}

// tabLabel turns "in-progress" into "In Progress".
func tabLabel(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type FilterOptionSet struct {
	Owners   []string        `json:"owners"`
	Channels []model.Channel `json:"channels"`
}

// FilterOptions lists distinct owner names and channels in first-seen order.
func FilterOptions(campaigns []model.Campaign) FilterOptionSet {
	opts := FilterOptionSet{Owners: []string{}, Channels: []model.Channel{}}
	seenOwner := map[string]bool{}
	seenChannel := map[model.Channel]bool{}
	for i := range campaigns {
		c := &campaigns[i]
		if c.Owner != nil && !seenOwner[c.Owner.Name] {
			seenOwner[c.Owner.Name] = true
			opts.Owners = append(opts.Owners, c.Owner.Name)
		}
		if !seenChannel[c.Channel] {
			seenChannel[c.Channel] = true
			opts.Channels = append(opts.Channels, c.Channel)
		}
	}
	return opts
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// CampaignListView is everything the campaign grid needs for one render.
type CampaignListView struct {
	State        ViewState       `json:"state"`
	Cards        []CampaignCard  `json:"cards"`
	Pagination   Pagination      `json:"pagination"`
	StatusCounts []StatusCount   `json:"status_counts"`
	Options      FilterOptionSet `json:"options"`
}

// BuildCampaignList filters, clamps the page and builds the cards of the page window.
func BuildCampaignList(campaigns []model.Campaign, state ViewState, table *CardConfigTable) CampaignListView {
	state = state.normalized()
	filtered := FilterCampaigns(campaigns, state)
	total := TotalPages(len(filtered), PageSize)
	state.Page = ClampPage(state.Page, total)

	window := Paginate(filtered, state.Page, PageSize)
	cards := make([]CampaignCard, 0, len(window))
	for _, c := range window {
		cards = append(cards, BuildCard(c, table))
	}

	return CampaignListView{
		State: state,
		Cards: cards,
		Pagination: Pagination{
			Page:       state.Page,
			PageSize:   PageSize,
			TotalCount: len(filtered),
			TotalPages: total,
		},
		StatusCounts: CountByStatus(campaigns),
		Options:      FilterOptions(campaigns),
	}
}
