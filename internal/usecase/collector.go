// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cogcities/drzone/internal/domain"
	"github.com/cogcities/drzone/internal/gateway"
	"github.com/cogcities/drzone/internal/snapshot"
)

// Collector is the use case for the collect stage. It walks the seven entity
// categories sequentially, persisting each as a snapshot, then derives and
// persists the summary record.
type Collector struct {
	fetcher      gateway.Fetcher
	store        *snapshot.Store
	logger       zerolog.Logger
	repoLimit    int
	starredLimit int
	now          func() time.Time
}

// NewCollector creates a new Collector instance.
func NewCollector(fetcher gateway.Fetcher, store *snapshot.Store, logger zerolog.Logger, repoLimit, starredLimit int) *Collector {
	return &Collector{
		fetcher:      fetcher,
		store:        store,
		logger:       logger,
		repoLimit:    repoLimit,
		starredLimit: starredLimit,
		now:          time.Now,
	}
}

// Run executes one full collection. Fetches happen strictly one after
// another; the first fetch or write error aborts the run. Snapshots already
// written before a failure are left in place.
func (c *Collector) Run(ctx context.Context) (domain.Summary, error) {
	c.logger.Info().Msg("starting ecosystem collection")

	login, err := c.fetcher.VerifyCredentials(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	c.logger.Info().Str("login", login).Msg("authenticated")

	userInfo, err := c.fetcher.FetchUserInfo(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	if err := c.store.Write(snapshot.UserInfoFile, userInfo); err != nil {
		return domain.Summary{}, err
	}

	orgs, err := c.fetcher.FetchOrganizations(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	c.logger.Info().Int("count", len(orgs)).Msg("collected organizations")
	if err := c.store.Write(snapshot.OrganizationsFile, orgs); err != nil {
		return domain.Summary{}, err
	}

	repos, err := c.fetcher.FetchRepositories(ctx, c.repoLimit)
	if err != nil {
		return domain.Summary{}, err
	}
	c.logger.Info().Int("count", len(repos)).Msg("collected repositories")
	if err := c.store.Write(snapshot.RepositoriesFile, repos); err != nil {
		return domain.Summary{}, err
	}

	followers, err := c.fetcher.FetchFollowers(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	c.logger.Info().Int("count", len(followers)).Msg("collected followers")
	if err := c.store.Write(snapshot.FollowersFile, followers); err != nil {
		return domain.Summary{}, err
	}

	following, err := c.fetcher.FetchFollowing(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	c.logger.Info().Int("count", len(following)).Msg("collected following")
	if err := c.store.Write(snapshot.FollowingFile, following); err != nil {
		return domain.Summary{}, err
	}

	starred, err := c.fetcher.FetchStarredRepos(ctx, c.starredLimit)
	if err != nil {
		return domain.Summary{}, err
	}
	c.logger.Info().Int("count", len(starred)).Msg("collected starred repositories")
	if err := c.store.Write(snapshot.StarredReposFile, starred); err != nil {
		return domain.Summary{}, err
	}

	gists, err := c.fetcher.FetchGists(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	c.logger.Info().Int("count", len(gists)).Msg("collected gists")
	if err := c.store.Write(snapshot.GistsFile, gists); err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{
		Timestamp: c.now().UTC().Format(time.RFC3339),
		User:      userInfo.Login,
		Counts: domain.SummaryCounts{
			Organizations: len(orgs),
			Repositories:  len(repos),
			Followers:     len(followers),
			Following:     len(following),
			StarredRepos:  len(starred),
			Gists:         len(gists),
		},
	}
	if err := c.store.Write(snapshot.SummaryFile, summary); err != nil {
		return domain.Summary{}, fmt.Errorf("persisting summary: %w", err)
	}

	c.logger.Info().Msg("ecosystem collection complete")
	return summary, nil
}
