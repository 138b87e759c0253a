package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numbuy/internal/config"
	"numbuy/internal/models"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"list", "search", "buy", "bulk"} {
		assert.True(t, names[want], "subcommand %s not registered", want)
	}
}

func TestSearchCriteriaFromFlags(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{
			Country:        "US",
			SearchPageSize: 20,
		},
	}

	tests := []struct {
		name     string
		areaCode string
		country  string
		voice    bool
		sms      bool
		mms      bool
		limit    int
		want     models.SearchCriteria
	}{
		{
			name:     "area code with defaults",
			areaCode: "415",
			want: models.SearchCriteria{
				Country:  "US",
				AreaCode: "415",
				Limit:    20,
			},
		},
		{
			name:    "explicit country overrides default",
			country: "GB",
			limit:   50,
			want: models.SearchCriteria{
				Country: "GB",
				Limit:   50,
			},
		},
		{
			name:     "capability flags carried through",
			areaCode: "212",
			voice:    true,
			sms:      true,
			mms:      true,
			want: models.SearchCriteria{
				Country:  "US",
				AreaCode: "212",
				Voice:    true,
				SMS:      true,
				MMS:      true,
				Limit:    20,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searchAreaCode = tt.areaCode
			searchCountry = tt.country
			searchVoice = tt.voice
			searchSMS = tt.sms
			searchMMS = tt.mms
			searchLimit = tt.limit
			t.Cleanup(func() {
				searchAreaCode = ""
				searchCountry = ""
				searchVoice = false
				searchSMS = false
				searchMMS = false
				searchLimit = 0
			})

			got := searchCriteriaFromFlags(cfg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectCandidates(t *testing.T) {
	candidates := []models.CandidateNumber{
		{PhoneNumber: "+14155550100"},
		{PhoneNumber: "+14155550101"},
		{PhoneNumber: "+14155550102"},
	}

	selected := selectCandidates(candidates, []int{0, 2})
	require.Len(t, selected, 2)
	assert.Equal(t, "+14155550100", selected[0].PhoneNumber)
	assert.Equal(t, "+14155550102", selected[1].PhoneNumber)
}

func TestSelectCandidatesKeepsOrder(t *testing.T) {
	candidates := []models.CandidateNumber{
		{PhoneNumber: "+14155550100"},
		{PhoneNumber: "+14155550101"},
		{PhoneNumber: "+14155550102"},
	}

	selected := selectCandidates(candidates, []int{1, 0, 2})
	require.Len(t, selected, 3)
	assert.Equal(t, "+14155550101", selected[0].PhoneNumber)
	assert.Equal(t, "+14155550100", selected[1].PhoneNumber)
	assert.Equal(t, "+14155550102", selected[2].PhoneNumber)
}

func TestSelectCandidatesSkipsOutOfRange(t *testing.T) {
	candidates := []models.CandidateNumber{
		{PhoneNumber: "+14155550100"},
	}

	selected := selectCandidates(candidates, []int{-1, 0, 5})
	require.Len(t, selected, 1)
	assert.Equal(t, "+14155550100", selected[0].PhoneNumber)
}

func TestSelectCandidatesEmptySelection(t *testing.T) {
	candidates := []models.CandidateNumber{
		{PhoneNumber: "+14155550100"},
	}

	selected := selectCandidates(candidates, nil)
	assert.Empty(t, selected)
}
