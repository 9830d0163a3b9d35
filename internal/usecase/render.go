package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cogcities/drzone/internal/domain"
)

const (
	enterpriseDescLimit = 40
	categoryDescLimit   = 50
	topOrgsPerCategory  = 10
	topLanguages        = 10
	recentRepos         = 15
)

// truncate hard-cuts s to at most n characters. No ellipsis is added.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// sortedByRepoCount returns orgs ordered by repository count descending.
// The sort is stable so ties keep their input order.
func sortedByRepoCount(orgs []domain.Organization) []domain.Organization {
	sorted := make([]domain.Organization, len(orgs))
	copy(sorted, orgs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Repositories.TotalCount > sorted[j].Repositories.TotalCount
	})
	return sorted
}

// BuildReport renders the ecosystem dashboard from the four snapshot inputs.
// Given identical inputs the output differs only in the generatedAt header
// line.
func BuildReport(summary domain.Summary, enterprises []domain.Enterprise, orgs []domain.Organization, repos []domain.Repository, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# DrZone - Ecosystem Dashboard\n\n")
	fmt.Fprintf(&b, "> Automated ecosystem tracking for the %s GitHub network\n\n", orDefault(summary.User, "drzo"))
	fmt.Fprintf(&b, "**Last Updated:** %s\n", orDefault(summary.Timestamp, "Unknown"))
	fmt.Fprintf(&b, "**Report Generated:** %s\n\n", generatedAt.UTC().Format(time.RFC3339))

	writeOverview(&b, summary, len(enterprises))
	writeEnterprises(&b, enterprises)
	writeCategories(&b, orgs)
	writeRepositoryStats(&b, repos)
	writeRecentRepos(&b, repos)
	writeFooter(&b)

	return b.String()
}

func writeOverview(b *strings.Builder, summary domain.Summary, enterpriseCount int) {
	fmt.Fprintf(b, "## 📊 Overview\n\n")
	fmt.Fprintf(b, "| Metric | Count |\n")
	fmt.Fprintf(b, "|--------|-------|\n")
	fmt.Fprintf(b, "| Enterprises | %d |\n", enterpriseCount)
	fmt.Fprintf(b, "| Organizations | %d |\n", summary.Counts.Organizations)
	fmt.Fprintf(b, "| Repositories | %d |\n", summary.Counts.Repositories)
	fmt.Fprintf(b, "| Followers | %d |\n", summary.Counts.Followers)
	fmt.Fprintf(b, "| Following | %d |\n", summary.Counts.Following)
	fmt.Fprintf(b, "| Starred Repos | %d |\n", summary.Counts.StarredRepos)
	fmt.Fprintf(b, "| Gists | %d |\n\n", summary.Counts.Gists)
}

func writeEnterprises(b *strings.Builder, enterprises []domain.Enterprise) {
	fmt.Fprintf(b, "## 🏛️ Enterprises\n\n")
	if len(enterprises) == 0 {
		fmt.Fprintf(b, "*No enterprise data available*\n\n")
		return
	}

	fmt.Fprintf(b, "| Enterprise | Slug | Organizations | Members | Admin |\n")
	fmt.Fprintf(b, "|------------|------|---------------|---------|-------|\n")
	for _, ent := range enterprises {
		name := orDefault(ent.Name, "Unknown")
		url := ent.URL
		if url == "" {
			url = "https://github.com/enterprises/" + ent.Slug
		}
		admin := "❌"
		if ent.ViewerIsAdmin {
			admin = "✅"
		}
		fmt.Fprintf(b, "| [%s](%s) | `%s` | %d | %d | %s |\n",
			name, url, ent.Slug, ent.Organizations.TotalCount, ent.Members.TotalCount, admin)
	}

	fmt.Fprintf(b, "\n### Enterprise → Organization Mapping\n\n")
	for _, ent := range enterprises {
		if len(ent.Organizations.Nodes) == 0 {
			continue
		}
		fmt.Fprintf(b, "#### %s (`%s`)\n\n", orDefault(ent.Name, "Unknown"), ent.Slug)
		fmt.Fprintf(b, "| Organization | Repos | Members | Description |\n")
		fmt.Fprintf(b, "|--------------|-------|---------|-------------|\n")
		for _, org := range sortedByRepoCount(ent.Organizations.Nodes) {
			login := orDefault(org.Login, "Unknown")
			desc := truncate(orDefault(org.Description, "No description"), enterpriseDescLimit)
			fmt.Fprintf(b, "| [%s](https://github.com/%s) | %d | %d | %s |\n",
				login, login, org.Repositories.TotalCount, org.MembersWithRole.TotalCount, desc)
		}
		fmt.Fprintf(b, "\n")
	}
}

func writeCategories(b *strings.Builder, orgs []domain.Organization) {
	fmt.Fprintf(b, "## 🏢 Organization Categories\n\n")
	categories := CategorizeOrganizations(orgs)
	for _, category := range CategoryOrder {
		members := categories[category]
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n\n", category)
		fmt.Fprintf(b, "| Organization | Repos | Members | Description |\n")
		fmt.Fprintf(b, "|--------------|-------|---------|-------------|\n")
		sorted := sortedByRepoCount(members)
		if len(sorted) > topOrgsPerCategory {
			sorted = sorted[:topOrgsPerCategory]
		}
		for _, org := range sorted {
			login := orDefault(org.Login, "Unknown")
			desc := truncate(orDefault(org.Description, "No description"), categoryDescLimit)
			fmt.Fprintf(b, "| [%s](https://github.com/%s) | %d | %d | %s |\n",
				login, login, org.Repositories.TotalCount, org.MembersWithRole.TotalCount, desc)
		}
		fmt.Fprintf(b, "\n")
	}
}

func writeRepositoryStats(b *strings.Builder, repos []domain.Repository) {
	stats := AnalyzeRepositories(repos)

	fmt.Fprintf(b, "## 💻 Repository Statistics\n\n")
	fmt.Fprintf(b, "| Metric | Value |\n")
	fmt.Fprintf(b, "|--------|-------|\n")
	fmt.Fprintf(b, "| Total Repositories | %d |\n", len(repos))
	fmt.Fprintf(b, "| Public | %d |\n", stats.Public)
	fmt.Fprintf(b, "| Private | %d |\n", stats.Private)
	fmt.Fprintf(b, "| Forks | %d |\n", stats.Forks)
	fmt.Fprintf(b, "| Original | %d |\n", stats.Original)
	fmt.Fprintf(b, "| Archived | %d |\n", stats.Archived)
	fmt.Fprintf(b, "| Average Stars | %.1f |\n", stats.StarMean)
	fmt.Fprintf(b, "| Median Stars | %.1f |\n\n", stats.StarMedian)

	fmt.Fprintf(b, "### Top Languages\n\n")
	fmt.Fprintf(b, "| Language | Count | Percentage |\n")
	fmt.Fprintf(b, "|----------|-------|------------|\n")

	type langCount struct {
		name  string
		count int
	}
	langs := make([]langCount, 0, len(stats.Languages))
	totalWithLang := 0
	for name, count := range stats.Languages {
		langs = append(langs, langCount{name, count})
		totalWithLang += count
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].count != langs[j].count {
			return langs[i].count > langs[j].count
		}
		return langs[i].name < langs[j].name
	})
	if len(langs) > topLanguages {
		langs = langs[:topLanguages]
	}
	for _, lc := range langs {
		pct := 0.0
		if totalWithLang > 0 {
			pct = float64(lc.count) / float64(totalWithLang) * 100
		}
		fmt.Fprintf(b, "| %s | %d | %.1f%% |\n", lc.name, lc.count, pct)
	}
	fmt.Fprintf(b, "\n")
}

func writeRecentRepos(b *strings.Builder, repos []domain.Repository) {
	fmt.Fprintf(b, "### Recently Updated Repositories\n\n")
	fmt.Fprintf(b, "| Repository | Language | Stars | Updated |\n")
	fmt.Fprintf(b, "|------------|----------|-------|---------|\n")

	// The snapshot is already ordered most recently updated first.
	recent := repos
	if len(recent) > recentRepos {
		recent = recent[:recentRepos]
	}
	for _, repo := range recent {
		name := orDefault(repo.NameWithOwner, "Unknown")
		lang := "Unknown"
		if repo.PrimaryLanguage != nil {
			lang = repo.PrimaryLanguage.Name
		}
		updated := ""
		if !repo.UpdatedAt.IsZero() {
			updated = repo.UpdatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(b, "| [%s](https://github.com/%s) | %s | %d | %s |\n",
			name, name, lang, repo.StargazerCount, updated)
	}

	fmt.Fprintf(b, "\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(`## 📁 Data Files

The following data files are automatically updated:

- [`+"`data/summary.json`"+`](data/summary.json) - Overview statistics
- [`+"`data/enterprises.json`"+`](data/enterprises.json) - Enterprise details
- [`+"`data/organizations.json`"+`](data/organizations.json) - Organization details
- [`+"`data/repositories.json`"+`](data/repositories.json) - Repository listings
- [`+"`data/followers.json`"+`](data/followers.json) - Follower information
- [`+"`data/following.json`"+`](data/following.json) - Following information
- [`+"`data/starred_repos.json`"+`](data/starred_repos.json) - Starred repositories
- [`+"`data/gists.json`"+`](data/gists.json) - Gist information

## 🔄 Update Schedule

This dashboard is automatically updated every **Sunday at 00:00 UTC** via GitHub Actions.

You can also trigger a manual update from the [Actions tab](../../actions/workflows/update-ecosystem.yml).

---

*Generated by [DrZone Ecosystem Tracker](https://github.com/cogcities/drzone)*
`)
}
