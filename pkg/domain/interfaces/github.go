package interfaces

import (
	"context"

	"github.com/herald-dev/herald/pkg/domain/model"
)

// GitHubClient defines the hosting API operations used by the pipeline
type GitHubClient interface {
	// TagExists reports whether the tag already exists in the repository
	TagExists(ctx context.Context, owner, repo, tag string) (bool, error)

	// CreateRelease creates a published (non-draft, non-prerelease)
	// release. GitHub creates the tag as part of the call.
	CreateRelease(ctx context.Context, owner, repo, tag, name, body string) (*model.ReleaseRecord, error)
}
