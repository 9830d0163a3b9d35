package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogcities/drzone/internal/domain"
)

func sampleSummary() domain.Summary {
	return domain.Summary{
		Timestamp: "2026-08-30T00:00:00Z",
		User:      "drzo",
		Counts: domain.SummaryCounts{
			Organizations: 2,
			Repositories:  3,
			Followers:     40,
			Following:     15,
			StarredRepos:  90,
			Gists:         5,
		},
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 60)

	cut := truncate(long, 50)

	assert.Len(t, cut, 50)
	assert.Equal(t, long[:50], cut)
	assert.NotContains(t, cut, "…")

	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "", truncate("", 50))
}

func TestBuildReport_Overview(t *testing.T) {
	report := BuildReport(sampleSummary(), nil, nil, nil, time.Now())

	assert.Contains(t, report, "# DrZone - Ecosystem Dashboard")
	assert.Contains(t, report, "**Last Updated:** 2026-08-30T00:00:00Z")
	assert.Contains(t, report, "| Organizations | 2 |")
	assert.Contains(t, report, "| Starred Repos | 90 |")
	assert.Contains(t, report, "| Gists | 5 |")
	assert.Contains(t, report, "*No enterprise data available*")
}

func TestBuildReport_CategoriesAndTruncation(t *testing.T) {
	longDesc := strings.Repeat("d", 60)
	orgs := []domain.Organization{
		{Login: "cogcities", Description: longDesc, Repositories: domain.Count{TotalCount: 12}},
		{Login: "regima-uk", Repositories: domain.Count{TotalCount: 3}},
	}

	report := BuildReport(sampleSummary(), nil, orgs, nil, time.Now())

	assert.Contains(t, report, "### Core Cognitive")
	assert.Contains(t, report, "### RegimA Network")
	assert.NotContains(t, report, "### Zone Network", "empty categories are omitted")
	assert.NotContains(t, report, "### Other")

	// Description is cut to exactly 50 characters, no ellipsis.
	assert.Contains(t, report, "| "+longDesc[:50]+" |")
	assert.NotContains(t, report, longDesc[:51])
	// Missing descriptions render as the fixed placeholder.
	assert.Contains(t, report, "| No description |")
}

func TestBuildReport_CategoryTopTen(t *testing.T) {
	var orgs []domain.Organization
	for i := 0; i < 12; i++ {
		orgs = append(orgs, domain.Organization{
			Login:        "zone-" + string(rune('a'+i)),
			Repositories: domain.Count{TotalCount: i},
		})
	}

	report := BuildReport(sampleSummary(), nil, orgs, nil, time.Now())

	// Highest repo counts survive the top-10 cut; the two lowest do not.
	assert.Contains(t, report, "[zone-l]")
	assert.Contains(t, report, "[zone-c]")
	assert.NotContains(t, report, "[zone-a]")
	assert.NotContains(t, report, "[zone-b]")
}

func TestBuildReport_Enterprises(t *testing.T) {
	enterprises := []domain.Enterprise{
		{
			Name:          "Cognitive Cities",
			Slug:          "cogcities",
			Members:       domain.Count{TotalCount: 9},
			ViewerIsAdmin: true,
			Organizations: domain.EnterpriseOrgs{
				TotalCount: 2,
				Nodes: []domain.Organization{
					{Login: "small-org", Repositories: domain.Count{TotalCount: 1}},
					{Login: "big-org", Repositories: domain.Count{TotalCount: 50}},
				},
			},
		},
	}

	report := BuildReport(sampleSummary(), enterprises, nil, nil, time.Now())

	assert.Contains(t, report, "| [Cognitive Cities](https://github.com/enterprises/cogcities) | `cogcities` | 2 | 9 | ✅ |")
	assert.Contains(t, report, "#### Cognitive Cities (`cogcities`)")

	// Nested org tables are sorted by repository count descending.
	big := strings.Index(report, "[big-org]")
	small := strings.Index(report, "[small-org]")
	require.Greater(t, big, 0)
	require.Greater(t, small, 0)
	assert.Less(t, big, small)
}

func TestBuildReport_LanguagesAndRecent(t *testing.T) {
	repos := []domain.Repository{
		{NameWithOwner: "drzo/a", PrimaryLanguage: &domain.Language{Name: "Go"}, StargazerCount: 4, UpdatedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)},
		{NameWithOwner: "drzo/b", PrimaryLanguage: &domain.Language{Name: "Go"}},
		{NameWithOwner: "drzo/c", PrimaryLanguage: &domain.Language{Name: "Python"}},
		{NameWithOwner: "drzo/d"},
	}

	report := BuildReport(sampleSummary(), nil, nil, repos, time.Now())

	// Percentages are of language-tagged repositories only.
	assert.Contains(t, report, "| Go | 2 | 66.7% |")
	assert.Contains(t, report, "| Python | 1 | 33.3% |")

	assert.Contains(t, report, "| [drzo/a](https://github.com/drzo/a) | Go | 4 | 2026-08-20 |")
	assert.Contains(t, report, "| [drzo/d](https://github.com/drzo/d) | Unknown | 0 |  |")
}

func TestBuildReport_RecentReposCappedAtFifteen(t *testing.T) {
	var repos []domain.Repository
	for i := 0; i < 20; i++ {
		repos = append(repos, domain.Repository{
			NameWithOwner: "drzo/repo-" + string(rune('a'+i)),
		})
	}

	report := BuildReport(sampleSummary(), nil, nil, repos, time.Now())

	// First fifteen entries in snapshot order, no re-sorting.
	assert.Contains(t, report, "[drzo/repo-a]")
	assert.Contains(t, report, "[drzo/repo-o]")
	assert.NotContains(t, report, "[drzo/repo-p]")
}

func TestBuildReport_Deterministic(t *testing.T) {
	orgs := []domain.Organization{
		orgWithRepoCount("cogcities", 12),
		orgWithRepoCount("zoneworks", 12),
		orgWithRepoCount("plainco", 1),
	}
	repos := []domain.Repository{
		{NameWithOwner: "drzo/a", PrimaryLanguage: &domain.Language{Name: "Go"}},
		{NameWithOwner: "drzo/b", PrimaryLanguage: &domain.Language{Name: "Rust"}},
	}

	stripGenerated := func(report string) string {
		var kept []string
		for _, line := range strings.Split(report, "\n") {
			if strings.HasPrefix(line, "**Report Generated:**") {
				continue
			}
			kept = append(kept, line)
		}
		return strings.Join(kept, "\n")
	}

	first := BuildReport(sampleSummary(), nil, orgs, repos, time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC))
	second := BuildReport(sampleSummary(), nil, orgs, repos, time.Date(2026, 8, 31, 2, 0, 0, 0, time.UTC))

	assert.NotEqual(t, first, second)
	assert.Equal(t, stripGenerated(first), stripGenerated(second))
}

func TestBuildReport_TieBreakIsStable(t *testing.T) {
	// Equal repository counts keep snapshot order in the category table.
	orgs := []domain.Organization{
		orgWithRepoCount("zone-first", 5),
		orgWithRepoCount("zone-second", 5),
	}

	report := BuildReport(sampleSummary(), nil, orgs, nil, time.Now())

	first := strings.Index(report, "[zone-first]")
	second := strings.Index(report, "[zone-second]")
	require.Greater(t, first, 0)
	require.Greater(t, second, 0)
	assert.Less(t, first, second)
}
