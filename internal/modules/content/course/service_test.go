package course

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/upload"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CourseModel{}))

	store := upload.NewStore(t.TempDir(), nil, zap.NewNop())
	return NewService(db, store)
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc := newTestService(t)

	course, err := svc.Create(&CreateInput{Title: "ACLS Provider", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "acls-provider", course.Slug)
	assert.NotEmpty(t, course.ID)
}

func TestCreateBacksOffOnSlugCollision(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Create(&CreateInput{Title: "ACLS"})
	require.NoError(t, err)
	require.Equal(t, "acls", first.Slug)

	second, err := svc.Create(&CreateInput{Title: "ACLS"})
	require.NoError(t, err)
	assert.Equal(t, "acls-1", second.Slug)
}

func TestCreateRejectsTakenExplicitSlug(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateInput{Title: "ACLS", Slug: "acls"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateInput{Title: "Another", Slug: "ACLS"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestDeleteFreesSlugForReuse(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Create(&CreateInput{Title: "ACLS"})
	require.NoError(t, err)
	require.Equal(t, "acls", first.Slug)

	deleted, err := svc.Delete(context.Background(), first.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	// the unique index must no longer hold the removed slug
	second, err := svc.Create(&CreateInput{Title: "ACLS"})
	require.NoError(t, err)
	assert.Equal(t, "acls", second.Slug)

	again, err := svc.GetByID(first.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestDeleteUnknownIDReturnsNil(t *testing.T) {
	svc := newTestService(t)

	course, err := svc.Delete(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, course)
}
