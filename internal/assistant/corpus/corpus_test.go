package corpus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/models"
)

func TestDocumentsLoadsOncePerTenant(t *testing.T) {
	companyID := primitive.NewObjectID()
	fake := store.NewFake()
	fake.Add(store.CollProducts, models.Product{
		ID:          primitive.NewObjectID(),
		CompanyID:   companyID,
		ProductName: "מדפסת לייזר",
	})

	cache := NewCache(fake, logger.NewTestLogger(t))

	docs, err := cache.Documents(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0], "מדפסת לייזר")

	queriesAfterFirst := fake.Queries
	_, err = cache.Documents(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, queriesAfterFirst, fake.Queries, "second read must come from the snapshot")
}

func TestDocumentsIsolatedPerTenant(t *testing.T) {
	companyA := primitive.NewObjectID()
	companyB := primitive.NewObjectID()
	fake := store.NewFake()
	fake.Add(store.CollCustomers,
		models.Customer{ID: primitive.NewObjectID(), CompanyID: companyA, Name: "אורן סחר"},
		models.Customer{ID: primitive.NewObjectID(), CompanyID: companyB, Name: "גלובל שיווק"},
	)

	cache := NewCache(fake, logger.NewNoOpLogger())

	docsA, err := cache.Documents(context.Background(), companyA)
	require.NoError(t, err)
	require.Len(t, docsA, 1)
	assert.Contains(t, docsA[0], "אורן סחר")
	assert.NotContains(t, docsA[0], "גלובל שיווק")

	docsB, err := cache.Documents(context.Background(), companyB)
	require.NoError(t, err)
	require.Len(t, docsB, 1)
	assert.Contains(t, docsB[0], "גלובל שיווק")
}

func TestDocumentsNormalizesDriverValues(t *testing.T) {
	companyID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	fake := store.NewFake()
	fake.Add(store.CollProjects, models.Project{
		ID:        projectID,
		CompanyID: companyID,
		Name:      "הקמת מחסן",
		StartDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	cache := NewCache(fake, logger.NewNoOpLogger())

	docs, err := cache.Documents(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0], projectID.Hex())
	assert.Contains(t, docs[0], "2024-03-15")
	assert.NotContains(t, docs[0], "companyId")
}

func TestDocumentsStoreFailure(t *testing.T) {
	fake := store.NewFake()
	fake.FailWith(errors.New("connection reset"))

	cache := NewCache(fake, logger.NewNoOpLogger())

	_, err := cache.Documents(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
}

func TestInvalidateForcesReload(t *testing.T) {
	companyID := primitive.NewObjectID()
	fake := store.NewFake()
	cache := NewCache(fake, logger.NewNoOpLogger())

	docs, err := cache.Documents(context.Background(), companyID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	fake.Add(store.CollTasks, models.Task{
		ID:        primitive.NewObjectID(),
		CompanyID: companyID,
		Title:     "בדיקת מלאי",
	})

	cache.Invalidate(companyID)
	docs, err = cache.Documents(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0], "בדיקת מלאי")
}
