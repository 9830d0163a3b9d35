package usecase

import (
	"strings"

	mstats "github.com/montanaflynn/stats"

	"github.com/cogcities/drzone/internal/domain"
)

// CategoryOrder lists the organization categories in rendering order. The
// catch-all category comes last.
var CategoryOrder = []string{
	"Core Cognitive",
	"Zone Network",
	"RegimA Network",
	"O9 Network",
	"Echo Mirrors",
	"Special Purpose",
	"Other",
}

const catchAllCategory = "Other"

// categoryRule pairs a category label with its login predicate. Rules are
// evaluated in order and the first match wins.
type categoryRule struct {
	label string
	match func(login string) bool
}

func containsAny(login string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(login, sub) {
			return true
		}
	}
	return false
}

// The O9 rule mixes prefix and substring matching. That asymmetry is the
// recorded product rule; do not "fix" it without confirming intent.
var categoryRules = []categoryRule{
	{"Core Cognitive", func(l string) bool { return containsAny(l, "cog", "oz", "echo") }},
	{"Zone Network", func(l string) bool { return containsAny(l, "zone", "rez", "rzone") }},
	{"RegimA Network", func(l string) bool { return strings.Contains(l, "regima") }},
	{"O9 Network", func(l string) bool {
		return strings.HasPrefix(l, "o9") || strings.HasPrefix(l, "o6") || strings.Contains(l, "e9")
	}},
	{"Echo Mirrors", func(l string) bool { return strings.Contains(l, "org-echo") }},
	{"Special Purpose", func(l string) bool {
		return containsAny(l, "unicorn", "cosmic", "kaw", "hyper", "marduk", "gnn")
	}},
}

// CategorizeOrganizations assigns each organization to exactly one category
// based on its lowercased login. Organizations matching no rule land in the
// catch-all; categories with no members are absent from the result.
func CategorizeOrganizations(orgs []domain.Organization) map[string][]domain.Organization {
	categories := make(map[string][]domain.Organization)
	for _, org := range orgs {
		login := strings.ToLower(org.Login)
		label := catchAllCategory
		for _, rule := range categoryRules {
			if rule.match(login) {
				label = rule.label
				break
			}
		}
		categories[label] = append(categories[label], org)
	}
	return categories
}

// EnterpriseRef names the enterprise owning an organization.
type EnterpriseRef struct {
	Name string
	Slug string
}

// MapOrgsToEnterprises flattens each enterprise's nested organization list
// into a login-to-enterprise mapping. An organization listed under more than
// one enterprise resolves to whichever was processed last.
func MapOrgsToEnterprises(enterprises []domain.Enterprise) map[string]EnterpriseRef {
	mapping := make(map[string]EnterpriseRef)
	for _, ent := range enterprises {
		for _, org := range ent.Organizations.Nodes {
			mapping[org.Login] = EnterpriseRef{Name: ent.Name, Slug: ent.Slug}
		}
	}
	return mapping
}

// RepoStats holds the aggregate repository statistics rendered in the report.
type RepoStats struct {
	Public     int
	Private    int
	Forks      int
	Original   int
	Archived   int
	Languages  map[string]int
	ByOwner    map[string]int
	StarMean   float64
	StarMedian float64
}

// AnalyzeRepositories tallies repository statistics in a single pass.
// Repositories without a detected primary language stay out of the language
// histogram but are counted in every other bucket.
func AnalyzeRepositories(repos []domain.Repository) RepoStats {
	stats := RepoStats{
		Languages: make(map[string]int),
		ByOwner:   make(map[string]int),
	}

	starCounts := make([]float64, 0, len(repos))
	for _, repo := range repos {
		if repo.IsPrivate {
			stats.Private++
		} else {
			stats.Public++
		}
		if repo.IsFork {
			stats.Forks++
		} else {
			stats.Original++
		}
		if repo.IsArchived {
			stats.Archived++
		}
		if repo.PrimaryLanguage != nil {
			stats.Languages[repo.PrimaryLanguage.Name]++
		}
		owner := repo.Owner.Login
		if owner == "" {
			owner = "Unknown"
		}
		stats.ByOwner[owner]++
		starCounts = append(starCounts, float64(repo.StargazerCount))
	}

	if len(starCounts) > 0 {
		if mean, err := mstats.Mean(starCounts); err == nil {
			stats.StarMean = mean
		}
		if median, err := mstats.Median(starCounts); err == nil {
			stats.StarMedian = median
		}
	}
	return stats
}
