// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
	"github.com/rs/zerolog"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/cogcities/drzone/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching the authenticated
// user's ecosystem data from GitHub.
type Fetcher interface {
	VerifyCredentials(ctx context.Context) (string, error)
	FetchUserInfo(ctx context.Context) (domain.UserInfo, error)
	FetchOrganizations(ctx context.Context) ([]domain.Organization, error)
	FetchRepositories(ctx context.Context, limit int) ([]domain.Repository, error)
	FetchFollowers(ctx context.Context) ([]domain.Account, error)
	FetchFollowing(ctx context.Context) ([]domain.Account, error)
	FetchStarredRepos(ctx context.Context, limit int) ([]domain.StarredRepo, error)
	FetchGists(ctx context.Context) ([]domain.Gist, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        zerolog.Logger
}

// NewGitHubGateway creates a gateway whose REST and GraphQL clients share a
// single oauth2 transport authenticated with the given token.
func NewGitHubGateway(token string, logger zerolog.Logger) *GitHubGateway {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: ts},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}
}

type pageInfo struct {
	HasNextPage bool
	EndCursor   githubv4.String
}

type countNode struct {
	TotalCount int
}

type organizationNode struct {
	Login           string
	ID              string
	Name            string
	Description     string
	URL             string
	AvatarURL       string
	CreatedAt       githubv4.DateTime
	MembersWithRole countNode
	Repositories    countNode
	Teams           countNode
}

func (n organizationNode) toDomain() domain.Organization {
	return domain.Organization{
		Login:           n.Login,
		ID:              n.ID,
		Name:            n.Name,
		Description:     n.Description,
		URL:             n.URL,
		AvatarURL:       n.AvatarURL,
		CreatedAt:       n.CreatedAt.Time,
		MembersWithRole: domain.Count{TotalCount: n.MembersWithRole.TotalCount},
		Repositories:    domain.Count{TotalCount: n.Repositories.TotalCount},
		Teams:           domain.Count{TotalCount: n.Teams.TotalCount},
	}
}

type languageNode struct {
	Name string
}

type repositoryNode struct {
	NameWithOwner    string
	Name             string
	Description      string
	URL              string
	IsPrivate        bool
	IsFork           bool
	IsArchived       bool
	CreatedAt        githubv4.DateTime
	UpdatedAt        githubv4.DateTime
	PushedAt         githubv4.DateTime
	PrimaryLanguage  *languageNode
	StargazerCount   int
	ForkCount        int
	Issues           countNode
	PullRequests     countNode
	DefaultBranchRef *struct{ Name string }
	Owner            struct {
		Login        string
		Organization struct{ ID string } `graphql:"... on Organization"`
		User         struct{ ID string } `graphql:"... on User"`
	}
}

func (n repositoryNode) toDomain() domain.Repository {
	repo := domain.Repository{
		NameWithOwner:  n.NameWithOwner,
		Name:           n.Name,
		Description:    n.Description,
		URL:            n.URL,
		IsPrivate:      n.IsPrivate,
		IsFork:         n.IsFork,
		IsArchived:     n.IsArchived,
		CreatedAt:      n.CreatedAt.Time,
		UpdatedAt:      n.UpdatedAt.Time,
		PushedAt:       n.PushedAt.Time,
		StargazerCount: n.StargazerCount,
		ForkCount:      n.ForkCount,
		Issues:         domain.Count{TotalCount: n.Issues.TotalCount},
		PullRequests:   domain.Count{TotalCount: n.PullRequests.TotalCount},
		Owner:          domain.RepositoryOwner{Login: n.Owner.Login},
	}
	if n.PrimaryLanguage != nil {
		repo.PrimaryLanguage = &domain.Language{Name: n.PrimaryLanguage.Name}
	}
	if n.DefaultBranchRef != nil {
		repo.DefaultBranchRef = &domain.BranchRef{Name: n.DefaultBranchRef.Name}
	}
	if n.Owner.Organization.ID != "" {
		repo.Owner.ID = n.Owner.Organization.ID
	} else {
		repo.Owner.ID = n.Owner.User.ID
	}
	return repo
}

type accountNode struct {
	Login        string
	ID           string
	Name         string
	AvatarURL    string
	Bio          string
	Company      string
	Location     string
	Followers    countNode
	Following    countNode
	Repositories countNode
}

func (n accountNode) toDomain() domain.Account {
	return domain.Account{
		Login:        n.Login,
		ID:           n.ID,
		Name:         n.Name,
		AvatarURL:    n.AvatarURL,
		Bio:          n.Bio,
		Company:      n.Company,
		Location:     n.Location,
		Followers:    domain.Count{TotalCount: n.Followers.TotalCount},
		Following:    domain.Count{TotalCount: n.Following.TotalCount},
		Repositories: domain.Count{TotalCount: n.Repositories.TotalCount},
	}
}

type starredRepoNode struct {
	NameWithOwner   string
	Name            string
	Description     string
	URL             string
	StargazerCount  int
	ForkCount       int
	PrimaryLanguage *languageNode
}

func (n starredRepoNode) toDomain() domain.StarredRepo {
	starred := domain.StarredRepo{
		NameWithOwner:  n.NameWithOwner,
		Name:           n.Name,
		Description:    n.Description,
		URL:            n.URL,
		StargazerCount: n.StargazerCount,
		ForkCount:      n.ForkCount,
	}
	if n.PrimaryLanguage != nil {
		starred.PrimaryLanguage = &domain.Language{Name: n.PrimaryLanguage.Name}
	}
	return starred
}

type gistNode struct {
	Name        string
	Description string
	URL         string
	IsPublic    bool
	CreatedAt   githubv4.DateTime
	UpdatedAt   githubv4.DateTime
	Files       []struct{ Name string }
}

func (n gistNode) toDomain() domain.Gist {
	gist := domain.Gist{
		Name:        n.Name,
		Description: n.Description,
		URL:         n.URL,
		IsPublic:    n.IsPublic,
		CreatedAt:   n.CreatedAt.Time,
		UpdatedAt:   n.UpdatedAt.Time,
	}
	for _, f := range n.Files {
		gist.Files = append(gist.Files, domain.GistFile{Name: f.Name})
	}
	return gist
}

type viewerInfoQuery struct {
	Viewer struct {
		Login               string
		ID                  string
		Name                string
		Bio                 string
		Company             string
		Location            string
		Email               string
		WebsiteURL          string
		AvatarURL           string
		CreatedAt           githubv4.DateTime
		UpdatedAt           githubv4.DateTime
		Followers           countNode
		Following           countNode
		Repositories        countNode
		StarredRepositories countNode
		Organizations       countNode
		Gists               countNode
	}
}

type viewerOrganizationsQuery struct {
	Viewer struct {
		Organizations struct {
			PageInfo pageInfo
			Nodes    []organizationNode
		} `graphql:"organizations(first: 100, after: $cursor)"`
	}
}

type viewerRepositoriesQuery struct {
	Viewer struct {
		Repositories struct {
			PageInfo pageInfo
			Nodes    []repositoryNode
		} `graphql:"repositories(first: 100, after: $cursor, orderBy: {field: UPDATED_AT, direction: DESC})"`
	}
}

type viewerFollowersQuery struct {
	Viewer struct {
		Followers struct {
			PageInfo pageInfo
			Nodes    []accountNode
		} `graphql:"followers(first: 100, after: $cursor)"`
	}
}

type viewerFollowingQuery struct {
	Viewer struct {
		Following struct {
			PageInfo pageInfo
			Nodes    []accountNode
		} `graphql:"following(first: 100, after: $cursor)"`
	}
}

type viewerStarredQuery struct {
	Viewer struct {
		StarredRepositories struct {
			PageInfo pageInfo
			Nodes    []starredRepoNode
		} `graphql:"starredRepositories(first: 100, after: $cursor, orderBy: {field: STARRED_AT, direction: DESC})"`
	}
}

type viewerGistsQuery struct {
	Viewer struct {
		Gists struct {
			PageInfo pageInfo
			Nodes    []gistNode
		} `graphql:"gists(first: 100, after: $cursor, orderBy: {field: UPDATED_AT, direction: DESC})"`
	}
}

// VerifyCredentials resolves the token to its authenticated user via the REST
// API before any GraphQL traffic is issued. It returns the user's login.
func (g *GitHubGateway) VerifyCredentials(ctx context.Context) (string, error) {
	user, _, err := g.restClient.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to verify GitHub credentials: %w", err)
	}
	g.logger.Debug().Str("login", user.GetLogin()).Msg("credentials verified")
	return user.GetLogin(), nil
}

// FetchUserInfo retrieves the authenticated user's profile in a single
// non-paginated query.
func (g *GitHubGateway) FetchUserInfo(ctx context.Context) (domain.UserInfo, error) {
	g.logger.Info().Msg("fetching user info")
	var q viewerInfoQuery
	if err := g.graphqlClient.Query(ctx, &q, nil); err != nil {
		return domain.UserInfo{}, fmt.Errorf("failed to fetch user info: %w", err)
	}
	v := q.Viewer
	return domain.UserInfo{
		Login:               v.Login,
		ID:                  v.ID,
		Name:                v.Name,
		Bio:                 v.Bio,
		Company:             v.Company,
		Location:            v.Location,
		Email:               v.Email,
		WebsiteURL:          v.WebsiteURL,
		AvatarURL:           v.AvatarURL,
		CreatedAt:           v.CreatedAt.Time,
		UpdatedAt:           v.UpdatedAt.Time,
		Followers:           domain.Count{TotalCount: v.Followers.TotalCount},
		Following:           domain.Count{TotalCount: v.Following.TotalCount},
		Repositories:        domain.Count{TotalCount: v.Repositories.TotalCount},
		StarredRepositories: domain.Count{TotalCount: v.StarredRepositories.TotalCount},
		Organizations:       domain.Count{TotalCount: v.Organizations.TotalCount},
		Gists:               domain.Count{TotalCount: v.Gists.TotalCount},
	}, nil
}

// FetchOrganizations pages through all of the user's organizations.
func (g *GitHubGateway) FetchOrganizations(ctx context.Context) ([]domain.Organization, error) {
	g.logger.Info().Msg("fetching organizations")
	variables := map[string]interface{}{"cursor": (*githubv4.String)(nil)}
	var orgs []domain.Organization
	for {
		var q viewerOrganizationsQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch organizations: %w", err)
		}
		for _, node := range q.Viewer.Organizations.Nodes {
			orgs = append(orgs, node.toDomain())
		}
		if !q.Viewer.Organizations.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Viewer.Organizations.PageInfo.EndCursor)
		g.logger.Debug().Int("collected", len(orgs)).Msg("fetching next page of organizations")
	}
	return orgs, nil
}

// FetchRepositories pages through the user's repositories, most recently
// updated first, stopping once limit entries have been accumulated. The
// result is truncated to exactly limit entries, preserving page order.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, limit int) ([]domain.Repository, error) {
	g.logger.Info().Int("limit", limit).Msg("fetching repositories")
	variables := map[string]interface{}{"cursor": (*githubv4.String)(nil)}
	var repos []domain.Repository
	for len(repos) < limit {
		var q viewerRepositoriesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch repositories: %w", err)
		}
		for _, node := range q.Viewer.Repositories.Nodes {
			repos = append(repos, node.toDomain())
		}
		if !q.Viewer.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Viewer.Repositories.PageInfo.EndCursor)
		g.logger.Debug().Int("collected", len(repos)).Msg("fetching next page of repositories")
	}
	if len(repos) > limit {
		repos = repos[:limit]
	}
	return repos, nil
}

// FetchFollowers pages through all of the user's followers.
func (g *GitHubGateway) FetchFollowers(ctx context.Context) ([]domain.Account, error) {
	g.logger.Info().Msg("fetching followers")
	variables := map[string]interface{}{"cursor": (*githubv4.String)(nil)}
	var followers []domain.Account
	for {
		var q viewerFollowersQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch followers: %w", err)
		}
		for _, node := range q.Viewer.Followers.Nodes {
			followers = append(followers, node.toDomain())
		}
		if !q.Viewer.Followers.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Viewer.Followers.PageInfo.EndCursor)
		g.logger.Debug().Int("collected", len(followers)).Msg("fetching next page of followers")
	}
	return followers, nil
}

// FetchFollowing pages through all users the authenticated user follows.
func (g *GitHubGateway) FetchFollowing(ctx context.Context) ([]domain.Account, error) {
	g.logger.Info().Msg("fetching following")
	variables := map[string]interface{}{"cursor": (*githubv4.String)(nil)}
	var following []domain.Account
	for {
		var q viewerFollowingQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch following: %w", err)
		}
		for _, node := range q.Viewer.Following.Nodes {
			following = append(following, node.toDomain())
		}
		if !q.Viewer.Following.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Viewer.Following.PageInfo.EndCursor)
		g.logger.Debug().Int("collected", len(following)).Msg("fetching next page of following")
	}
	return following, nil
}

// FetchStarredRepos pages through the user's starred repositories, most
// recently starred first, bounded by limit the same way FetchRepositories is.
func (g *GitHubGateway) FetchStarredRepos(ctx context.Context, limit int) ([]domain.StarredRepo, error) {
	g.logger.Info().Int("limit", limit).Msg("fetching starred repositories")
	variables := map[string]interface{}{"cursor": (*githubv4.String)(nil)}
	var starred []domain.StarredRepo
	for len(starred) < limit {
		var q viewerStarredQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch starred repositories: %w", err)
		}
		for _, node := range q.Viewer.StarredRepositories.Nodes {
			starred = append(starred, node.toDomain())
		}
		if !q.Viewer.StarredRepositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Viewer.StarredRepositories.PageInfo.EndCursor)
		g.logger.Debug().Int("collected", len(starred)).Msg("fetching next page of starred repositories")
	}
	if len(starred) > limit {
		starred = starred[:limit]
	}
	return starred, nil
}

// FetchGists pages through all of the user's gists.
func (g *GitHubGateway) FetchGists(ctx context.Context) ([]domain.Gist, error) {
	g.logger.Info().Msg("fetching gists")
	variables := map[string]interface{}{"cursor": (*githubv4.String)(nil)}
	var gists []domain.Gist
	for {
		var q viewerGistsQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to fetch gists: %w", err)
		}
		for _, node := range q.Viewer.Gists.Nodes {
			gists = append(gists, node.toDomain())
		}
		if !q.Viewer.Gists.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Viewer.Gists.PageInfo.EndCursor)
		g.logger.Debug().Int("collected", len(gists)).Msg("fetching next page of gists")
	}
	return gists, nil
}
