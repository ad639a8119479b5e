package repository

import (
	"testing"
	"time"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) *ProfileCardRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ProfileCard{}))
	return NewProfileCardRepository(db)
}

func newCard(name string) *model.ProfileCard {
	now := time.Now().UTC()
	return &model.ProfileCard{
		ID:        uuid.New(),
		Name:      name,
		Bio:       "a short bio",
		Skills:    `["go","sql"]`,
		Theme:     "blue",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	repo := setupRepo(t)
	card := newCard("Alice")
	require.NoError(t, repo.Create(card))

	got, err := repo.FindByID(card.ID.String())
	require.NoError(t, err)
	assert.Equal(t, card.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, `["go","sql"]`, got.Skills)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.FindByID(uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateFieldsPartial(t *testing.T) {
	repo := setupRepo(t)
	card := newCard("Alice")
	require.NoError(t, repo.Create(card))

	err := repo.UpdateFields(card.ID.String(), map[string]any{
		"name":       "Alicia",
		"updated_at": time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := repo.FindByID(card.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	// Untouched columns keep their stored values.
	assert.Equal(t, "a short bio", got.Bio)
	assert.Equal(t, "blue", got.Theme)
}

func TestUpdateFieldsNotFound(t *testing.T) {
	repo := setupRepo(t)

	err := repo.UpdateFields(uuid.NewString(), map[string]any{"name": "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	card := newCard("Alice")
	require.NoError(t, repo.Create(card))

	require.NoError(t, repo.Delete(card.ID.String()))

	_, err := repo.FindByID(card.ID.String())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(card.ID.String()), apperr.ErrNotFound)
}

func TestListAndCount(t *testing.T) {
	repo := setupRepo(t)
	base := time.Now().UTC().Add(-time.Hour)
	for i, name := range []string{"first", "second", "third"} {
		card := newCard(name)
		card.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(card))
	}

	cards, err := repo.List(10, 0)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "first", cards[0].Name)
	assert.Equal(t, "third", cards[2].Name)

	page, err := repo.List(2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "second", page[0].Name)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
