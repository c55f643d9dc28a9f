package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	assert.NoError(t, err)
	return dir, repo
}

func commitFile(t *testing.T, repo *git.Repository, dir string, name string, message string) plumbing.Hash {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(message+"\n"), 0644)
	assert.NoError(t, err)

	worktree, err := repo.Worktree()
	assert.NoError(t, err)
	_, err = worktree.Add(name)
	assert.NoError(t, err)

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			When:  time.Now(),
		},
	})
	assert.NoError(t, err)
	return hash
}

func TestCollectWholeHistory(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "a", "add parser")
	commitFile(t, repo, dir, "b", "fix lexer")
	commitFile(t, repo, dir, "c", "bump deps")

	subjects, err := Collect(dir, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bump deps", "fix lexer", "add parser"}, subjects)
}

func TestCollectStopsAtLightweightTag(t *testing.T) {
	dir, repo := initRepo(t)
	tagMe := commitFile(t, repo, dir, "a", "add parser")
	_, err := repo.CreateTag("v1.0.0", tagMe, nil)
	assert.NoError(t, err)
	commitFile(t, repo, dir, "b", "fix lexer")
	commitFile(t, repo, dir, "c", "bump deps")

	subjects, err := Collect(dir, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bump deps", "fix lexer"}, subjects)
}

func TestCollectStopsAtAnnotatedTag(t *testing.T) {
	dir, repo := initRepo(t)
	tagMe := commitFile(t, repo, dir, "a", "add parser")
	_, err := repo.CreateTag("v1.0.0", tagMe, &git.CreateTagOptions{
		Tagger: &object.Signature{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			When:  time.Now(),
		},
		Message: "release v1.0.0",
	})
	assert.NoError(t, err)
	commitFile(t, repo, dir, "b", "fix lexer")

	subjects, err := Collect(dir, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"fix lexer"}, subjects)
}

func TestCollectSinceRef(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "a", "add parser")
	second := commitFile(t, repo, dir, "b", "fix lexer")
	commitFile(t, repo, dir, "c", "bump deps")

	subjects, err := Collect(dir, second.String())
	assert.NoError(t, err)
	assert.Equal(t, []string{"bump deps"}, subjects)
}

func TestCollectSkipsEmptySubjects(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "a", "add parser")
	commitFile(t, repo, dir, "b", "")

	subjects, err := Collect(dir, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"add parser"}, subjects)
}

func TestCollectTaggedHead(t *testing.T) {
	dir, repo := initRepo(t)
	head := commitFile(t, repo, dir, "a", "add parser")
	_, err := repo.CreateTag("v1.0.0", head, nil)
	assert.NoError(t, err)

	subjects, err := Collect(dir, "")
	assert.NoError(t, err)
	assert.Empty(t, subjects)
}

func TestCollectNotARepository(t *testing.T) {
	_, err := Collect(t.TempDir(), "")
	assert.Error(t, err)
}

func TestCollectUnknownSinceRef(t *testing.T) {
	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "a", "add parser")

	_, err := Collect(dir, "does-not-exist")
	assert.Error(t, err)
}
