package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/repository"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func manyCampaigns(n int) []model.Campaign {
	out := make([]model.Campaign, 0, n)
	statuses := []model.Status{model.StatusInProgress, model.StatusDraft, model.StatusOnHold}
	for i := 1; i <= n; i++ {
		out = append(out, campaign(fmt.Sprint(i), statuses[i%len(statuses)], model.ChannelEmail))
	}
	return out
}

func ids(campaigns []model.Campaign) []string {
	out := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.ID)
	}
	return out
}

func TestDefaultViewState(t *testing.T) {
	s := service.DefaultViewState()
	assert.Equal(t, service.FilterAll, s.Status)
	assert.Equal(t, service.FilterAll, s.Owner)
	assert.Equal(t, service.FilterAll, s.Channel)
	assert.Equal(t, 1, s.Page)
	assert.False(t, s.BreakdownExpanded)

	assert.True(t, service.ToggleBreakdown(s).BreakdownExpanded)
	assert.Equal(t, s, service.ToggleBreakdown(service.ToggleBreakdown(s)))
}

func TestFilterCampaigns(t *testing.T) {
	seed := repository.SeedCampaigns()

	tests := []struct {
		name  string
		state service.ViewState
		want  []string
	}{
		{"all", service.DefaultViewState(), []string{"1", "2", "3", "4", "5"}},
		{"empty filters mean all", service.ViewState{}, []string{"1", "2", "3", "4", "5"}},
		{"status", service.ViewState{Status: "in-progress", Owner: "all", Channel: "all"}, []string{"1", "5"}},
		{"owner", service.ViewState{Status: "all", Owner: "Sarah Chen", Channel: "all"}, []string{"1"}},
		{"channel", service.ViewState{Status: "all", Owner: "all", Channel: "phone"}, []string{"3"}},
		{"conjunction", service.ViewState{Status: "in-progress", Owner: "Emma Davis", Channel: "email"}, []string{"5"}},
		{"no match", service.ViewState{Status: "draft", Owner: "all", Channel: "email"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(service.FilterCampaigns(seed, tt.state)))
		})
	}
}

func TestFilterCampaigns_OwnerFilterSkipsOwnerless(t *testing.T) {
	seed := repository.SeedCampaigns()
	for _, owner := range service.FilterOptions(seed).Owners {
		for _, c := range service.FilterCampaigns(seed, service.ViewState{Owner: owner}) {
			assert.NotEqual(t, "4", c.ID)
		}
	}
}

func TestFilterCampaigns_Idempotent(t *testing.T) {
	seed := repository.SeedCampaigns()
	state := service.ViewState{Status: "in-progress", Owner: "all", Channel: "email"}
	once := service.FilterCampaigns(seed, state)
	assert.Equal(t, once, service.FilterCampaigns(once, state))
}

func TestPaginate_CoversEveryRowOnce(t *testing.T) {
	rows := manyCampaigns(14)
	total := service.TotalPages(len(rows), service.PageSize)
	require.Equal(t, 3, total)

	var seen []string
	for p := 1; p <= total; p++ {
		page := service.Paginate(rows, p, service.PageSize)
		assert.LessOrEqual(t, len(page), service.PageSize)
		seen = append(seen, ids(page)...)
	}
	assert.Equal(t, ids(rows), seen)
	assert.Len(t, service.Paginate(rows, 3, service.PageSize), 2)
	assert.Empty(t, service.Paginate(rows, 4, service.PageSize))
	assert.Empty(t, service.Paginate(rows, 0, service.PageSize))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, service.TotalPages(0, 6))
	assert.Equal(t, 1, service.TotalPages(6, 6))
	assert.Equal(t, 2, service.TotalPages(7, 6))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, service.ClampPage(0, 3))
	assert.Equal(t, 3, service.ClampPage(5, 3))
	assert.Equal(t, 2, service.ClampPage(2, 3))
	assert.Equal(t, 1, service.ClampPage(2, 0))

	assert.Equal(t, 3, service.NextPage(3, 3))
	assert.Equal(t, 2, service.NextPage(1, 3))
	assert.Equal(t, 1, service.PrevPage(1, 3))
	assert.Equal(t, 2, service.PrevPage(3, 3))
}

func TestCountByStatus(t *testing.T) {
	counts := service.CountByStatus(repository.SeedCampaigns())
	assert.Equal(t, []service.StatusCount{
		{Status: "ideas", Label: "Ideas", Count: 1},
		{Status: "draft", Label: "Draft", Count: 1},
		{Status: "on-hold", Label: "On Hold", Count: 1},
		{Status: "in-progress", Label: "In Progress", Count: 2},
		{Status: "all", Label: "All", Count: 5},
	}, counts)
}

func TestFilterOptions(t *testing.T) {
	opts := service.FilterOptions(repository.SeedCampaigns())
	assert.Equal(t, []string{"Sarah Chen", "Mike Johnson", "Alex Rivera", "Emma Davis"}, opts.Owners)
	assert.Equal(t, []model.Channel{model.ChannelEmail, model.ChannelPhone}, opts.Channels)
}

func TestBuildCampaignList_CountsIgnoreFilters(t *testing.T) {
	seed := repository.SeedCampaigns()
	all := service.BuildCampaignList(seed, service.DefaultViewState(), nil)
	drafts := service.BuildCampaignList(seed, service.ViewState{Status: "draft"}, nil)

	assert.Equal(t, all.StatusCounts, drafts.StatusCounts)
	assert.Equal(t, all.Options, drafts.Options)
	require.Len(t, drafts.Cards, 1)
	assert.Equal(t, "3", drafts.Cards[0].ID)
	assert.Equal(t, service.FilterAll, drafts.State.Owner)
}

func TestBuildCampaignList_ClampsPage(t *testing.T) {
	state := service.DefaultViewState()
	state.Page = 9

	view := service.BuildCampaignList(repository.SeedCampaigns(), state, nil)
	assert.Equal(t, 1, view.State.Page)
	assert.Equal(t, service.Pagination{Page: 1, PageSize: 6, TotalCount: 5, TotalPages: 1}, view.Pagination)
	assert.Len(t, view.Cards, 5)

	state.Page = 3
	view = service.BuildCampaignList(manyCampaigns(14), state, nil)
	assert.Equal(t, 3, view.Pagination.Page)
	assert.Len(t, view.Cards, 2)
	assert.Equal(t, "13", view.Cards[0].ID)
}

func TestBuildCampaignList_NoMatches(t *testing.T) {
	view := service.BuildCampaignList(repository.SeedCampaigns(), service.ViewState{Owner: "Nobody", Page: 4}, nil)
	assert.Equal(t, 1, view.Pagination.Page)
	assert.Equal(t, 0, view.Pagination.TotalPages)
	assert.Empty(t, view.Cards)
	assert.NotNil(t, view.Cards)
}
