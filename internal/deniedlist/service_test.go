package deniedlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	calls   int
	names   []string
	authors []string
	denied  int64
	err     error
}

func (r *fakeRepo) BulkDenyByNameOrAuthor(_ context.Context, names, authors []string) (int64, error) {
	r.calls++
	r.names = names
	r.authors = authors
	return r.denied, r.err
}

func TestImportAndApply(t *testing.T) {
	repo := &fakeRepo{denied: 2}
	svc := NewService(repo)

	raw := buildWorkbook(t, []string{"Dead Souls"}, []string{"Nikolai Gogol"})

	denied, err := svc.ImportAndApply(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, int64(2), denied)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, []string{"Dead Souls"}, repo.names)
	assert.Equal(t, []string{"Nikolai Gogol"}, repo.authors)
}

func TestImportAndApply_ParseFailureSkipsStorage(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.ImportAndApply(context.Background(), []byte("garbage"))
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, 0, repo.calls, "storage must not be touched on parse failure")
}

func TestImportAndApply_EmptySheetsAreNoOp(t *testing.T) {
	repo := &fakeRepo{denied: 0}
	svc := NewService(repo)

	raw := buildWorkbook(t, []string{}, []string{})

	denied, err := svc.ImportAndApply(context.Background(), raw)
	require.NoError(t, err)
	assert.Zero(t, denied)
	assert.Equal(t, 1, repo.calls)
	assert.Empty(t, repo.names)
	assert.Empty(t, repo.authors)
}

func TestImportAndApply_RepoError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	svc := NewService(repo)

	raw := buildWorkbook(t, []string{"Dead Souls"}, []string{})

	_, err := svc.ImportAndApply(context.Background(), raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrParse)
}
