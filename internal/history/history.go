package history

import (
	"fmt"
	"strings"

	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
	"gopkg.in/src-d/go-git.v4/plumbing/storer"
)

// Collect returns the subject lines of commits reachable from HEAD,
// newest first, for use as changelog entries. The walk stops before
// sinceRef when one is given, otherwise before the nearest tagged
// commit; with neither, the whole history is returned. Merge commits
// and commits without a subject are skipped.
func Collect(repoPath string, sinceRef string) ([]string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	var since plumbing.Hash
	tagged := map[plumbing.Hash]bool{}
	if sinceRef != "" {
		hash, err := repo.ResolveRevision(plumbing.Revision(sinceRef))
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", sinceRef, err)
		}
		since = *hash
	} else {
		tagged, err = taggedCommits(repo)
		if err != nil {
			return nil, err
		}
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("walk history: %w", err)
	}
	defer iter.Close()

	var subjects []string
	err = iter.ForEach(func(commit *object.Commit) error {
		if commit.Hash == since || tagged[commit.Hash] {
			return storer.ErrStop
		}
		if commit.NumParents() > 1 {
			return nil
		}
		subject := strings.TrimSpace(strings.SplitN(commit.Message, "\n", 2)[0])
		if subject == "" {
			return nil
		}
		subjects = append(subjects, subject)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk history: %w", err)
	}

	return subjects, nil
}

// taggedCommits maps every commit that carries a tag, following
// annotated tags through to their target.
func taggedCommits(repo *git.Repository) (map[plumbing.Hash]bool, error) {
	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer tags.Close()

	tagged := make(map[plumbing.Hash]bool)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if tag, err := repo.TagObject(hash); err == nil {
			hash = tag.Target
		}
		tagged[hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tagged, nil
}
