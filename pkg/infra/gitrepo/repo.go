package gitrepo

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cutter/pkg/domain/interfaces"
)

type repo struct {
	repo *git.Repository
}

// Open opens a local git checkout for read-only inspection.
func Open(path string) (interfaces.GitRepo, error) {
	r, err := git.PlainOpen(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}

	return &repo{repo: r}, nil
}

// HeadSHA returns the commit SHA the checkout currently points at. It is
// used as the release target commitish.
func (r *repo) HeadSHA(ctx context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve HEAD")
	}

	return head.Hash().String(), nil
}

// TagExists reports whether the tag is already present in the checkout.
func (r *repo) TagExists(ctx context.Context, name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewTagReferenceName(name), true)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}

	return false, goerr.Wrap(err, "failed to look up tag", goerr.V("tag", name))
}

// CommitsSinceTag counts commits reachable from HEAD that are newer than
// the tagged commit. If the tag does not exist, every commit reachable
// from HEAD is counted.
func (r *repo) CommitsSinceTag(ctx context.Context, tag string) (int, error) {
	head, err := r.repo.Head()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to resolve HEAD")
	}

	var boundary plumbing.Hash
	if hash, err := r.repo.ResolveRevision(plumbing.Revision(tag)); err == nil {
		boundary = *hash
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read commit log")
	}
	defer iter.Close()

	count := 0
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == boundary {
			return storer.ErrStop
		}
		count++
		return nil
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to iterate commit log")
	}

	return count, nil
}
