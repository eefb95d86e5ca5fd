package github

import (
	"context"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-dev/herald/pkg/domain/interfaces"
	"github.com/herald-dev/herald/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a GitHub client authenticated with a personal
// access or workflow token
func NewClient(token string) (interfaces.GitHubClient, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is required")
	}

	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
	}, nil
}

// NewAppClient creates a GitHub client authenticated as a GitHub App
// installation
func NewAppClient(appID, installationID int64, privateKey []byte) (interfaces.GitHubClient, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport")
	}

	return &client{
		githubClient: github.NewClient(&http.Client{Transport: itr}),
	}, nil
}

// TagExists reports whether the tag is already present in the
// repository. A 404 from the ref lookup means the tag does not exist;
// any other failure is returned as an error.
func (c *client) TagExists(ctx context.Context, owner, repo, tag string) (bool, error) {
	_, resp, err := c.githubClient.Git.GetRef(ctx, owner, repo, "tags/"+tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to look up tag",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("tag", tag))
	}

	return true, nil
}

// CreateRelease creates a published, non-draft, non-prerelease release.
// GitHub creates the tag from the repository default branch as part of
// the call.
func (c *client) CreateRelease(ctx context.Context, owner, repo, tag, name, body string) (*model.ReleaseRecord, error) {
	release := &github.RepositoryRelease{
		TagName:    github.Ptr(tag),
		Name:       github.Ptr(name),
		Body:       github.Ptr(body),
		Draft:      github.Ptr(false),
		Prerelease: github.Ptr(false),
	}

	created, _, err := c.githubClient.Repositories.CreateRelease(ctx, owner, repo, release)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("tag", tag))
	}

	return &model.ReleaseRecord{
		Version: tag,
		Name:    created.GetName(),
		Body:    created.GetBody(),
		URL:     created.GetHTMLURL(),
	}, nil
}
