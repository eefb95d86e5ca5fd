package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-dev/herald/pkg/domain/interfaces"
	"github.com/herald-dev/herald/pkg/domain/model"
)

type releaseUseCase struct {
	githubClient interfaces.GitHubClient
	owner        string
	repo         string
}

// NewRelease creates a new instance of ReleaseUseCase for the given
// repository
func NewRelease(githubClient interfaces.GitHubClient, owner, repo string) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		githubClient: githubClient,
		owner:        owner,
		repo:         repo,
	}
}

// Published reports whether a tag for version already exists. The rest
// of the pipeline must be skipped when it does.
func (uc *releaseUseCase) Published(ctx context.Context, version string) (bool, error) {
	exists, err := uc.githubClient.TagExists(ctx, uc.owner, uc.repo, version)
	if err != nil {
		return false, goerr.Wrap(err, "failed to check existing tag",
			goerr.V("owner", uc.owner), goerr.V("repo", uc.repo), goerr.V("tag", version))
	}
	return exists, nil
}

// Publish creates a published release for the entry, tagged with the
// bare version and named v<version>. Failures are surfaced without
// retry: a duplicate attempt could create a second release for the
// same version.
func (uc *releaseUseCase) Publish(ctx context.Context, entry *model.ChangelogEntry) (*model.ReleaseRecord, error) {
	logger := ctxlog.From(ctx)

	tag := entry.Version
	name := "v" + entry.Version

	logger.Info("Creating release",
		"owner", uc.owner,
		"repo", uc.repo,
		"tag", tag,
		"name", name,
		"body_length", len(entry.Body),
	)

	rec, err := uc.githubClient.CreateRelease(ctx, uc.owner, uc.repo, tag, name, entry.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.V("owner", uc.owner), goerr.V("repo", uc.repo), goerr.V("tag", tag))
	}

	logger.Info("Release created", "name", rec.Name, "url", rec.URL)

	return rec, nil
}
