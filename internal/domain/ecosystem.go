// Package domain contains the core data structures for the ecosystem tracker.
package domain

import "time"

// Count wraps a GraphQL connection that is only queried for its totalCount.
type Count struct {
	TotalCount int `json:"totalCount"`
}

// Language is a repository's primary language node. It is nil on the
// repository when GitHub detects no language.
type Language struct {
	Name string `json:"name"`
}

// BranchRef names a repository's default branch. Nil for empty repositories.
type BranchRef struct {
	Name string `json:"name"`
}

// UserInfo is the authenticated user's profile plus the total counts of the
// collections the collector pages through.
type UserInfo struct {
	Login               string    `json:"login"`
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Bio                 string    `json:"bio"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	Email               string    `json:"email"`
	WebsiteURL          string    `json:"websiteUrl"`
	AvatarURL           string    `json:"avatarUrl"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
	Followers           Count     `json:"followers"`
	Following           Count     `json:"following"`
	Repositories        Count     `json:"repositories"`
	StarredRepositories Count     `json:"starredRepositories"`
	Organizations       Count     `json:"organizations"`
	Gists               Count     `json:"gists"`
}

// Organization is one organization the user belongs to.
type Organization struct {
	Login           string    `json:"login"`
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	AvatarURL       string    `json:"avatarUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	MembersWithRole Count     `json:"membersWithRole"`
	Repositories    Count     `json:"repositories"`
	Teams           Count     `json:"teams"`
}

// RepositoryOwner identifies the user or organization owning a repository.
type RepositoryOwner struct {
	Login string `json:"login"`
	ID    string `json:"id"`
}

// Repository is one repository accessible to the user. The collector stores
// repositories most-recently-updated first, as returned by the API.
type Repository struct {
	NameWithOwner    string          `json:"nameWithOwner"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	URL              string          `json:"url"`
	IsPrivate        bool            `json:"isPrivate"`
	IsFork           bool            `json:"isFork"`
	IsArchived       bool            `json:"isArchived"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	PushedAt         time.Time       `json:"pushedAt"`
	PrimaryLanguage  *Language       `json:"primaryLanguage"`
	StargazerCount   int             `json:"stargazerCount"`
	ForkCount        int             `json:"forkCount"`
	Issues           Count           `json:"issues"`
	PullRequests     Count           `json:"pullRequests"`
	DefaultBranchRef *BranchRef      `json:"defaultBranchRef"`
	Owner            RepositoryOwner `json:"owner"`
}

// Account is a follower or followed user. Followers and following share the
// same shape and are stored as two parallel snapshots.
type Account struct {
	Login        string `json:"login"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	AvatarURL    string `json:"avatarUrl"`
	Bio          string `json:"bio"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Followers    Count  `json:"followers"`
	Following    Count  `json:"following"`
	Repositories Count  `json:"repositories"`
}

// StarredRepo is one starred repository, stored most-recently-starred first.
type StarredRepo struct {
	NameWithOwner   string    `json:"nameWithOwner"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	StargazerCount  int       `json:"stargazerCount"`
	ForkCount       int       `json:"forkCount"`
	PrimaryLanguage *Language `json:"primaryLanguage"`
}

// GistFile names a single file inside a gist.
type GistFile struct {
	Name string `json:"name"`
}

// Gist is one gist owned by the user.
type Gist struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	IsPublic    bool       `json:"isPublic"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Files       []GistFile `json:"files"`
}

// EnterpriseOrgs is an enterprise's nested organization connection.
type EnterpriseOrgs struct {
	TotalCount int            `json:"totalCount"`
	Nodes      []Organization `json:"nodes"`
}

// Enterprise is one GitHub enterprise account. The enterprise snapshot is
// maintained out of band; the reporter tolerates its absence.
type Enterprise struct {
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	URL           string         `json:"url"`
	Organizations EnterpriseOrgs `json:"organizations"`
	Members       Count          `json:"members"`
	ViewerIsAdmin bool           `json:"viewerIsAdmin"`
}

// SummaryCounts holds the size of each collected list. Enterprises are
// tracked separately and intentionally not part of these counts.
type SummaryCounts struct {
	Organizations int `json:"organizations"`
	Repositories  int `json:"repositories"`
	Followers     int `json:"followers"`
	Following     int `json:"following"`
	StarredRepos  int `json:"starred_repos"`
	Gists         int `json:"gists"`
}

// Summary is derived after a collect run completes and is the reporter's
// required input.
type Summary struct {
	Timestamp string        `json:"timestamp"`
	User      string        `json:"user"`
	Counts    SummaryCounts `json:"counts"`
}
