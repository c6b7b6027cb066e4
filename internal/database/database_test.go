package database

import (
	"context"
	"testing"

	"kekstagram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testPictures() []models.Picture {
	return []models.Picture{
		{
			ID: 1, URL: "photos/1.jpg", Description: "Закат", Likes: 15,
			Comments: []models.Comment{
				{ID: 1, Avatar: "img/avatar-1.svg", Message: "Всё отлично!", Name: "Артём"},
				{ID: 2, Avatar: "img/avatar-6.svg", Message: "Всё отлично!", Name: "Мария"},
			},
		},
		{ID: 2, URL: "photos/2.jpg", Description: "Кот", Likes: 200, Comments: []models.Comment{}},
	}
}

func TestSeedAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Seed(ctx, testPictures()))

	got, err := s.ListPictures(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPictures(), got)

	n, err := s.CountPictures(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGetPicture(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Seed(ctx, testPictures()))

	p, err := s.GetPicture(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, testPictures()[0], *p)
	assert.Equal(t, 2, p.CommentsCount())

	p, err = s.GetPicture(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, p.Comments)

	p, err = s.GetPicture(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSeedRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Seed(ctx, testPictures()))

	err := s.Seed(ctx, testPictures()[:1])
	assert.ErrorContains(t, err, "уже существует")

	// Неудачная транзакция откатывается целиком.
	n, err := s.CountPictures(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := openTestStore(t)
	b := openTestStore(t)
	require.NoError(t, a.Seed(ctx, testPictures()))

	n, err := b.CountPictures(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
