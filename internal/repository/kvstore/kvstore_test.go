package kvstore

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_EmptyCollection(t *testing.T) {
	repo := NewEmployeeRepository(database.NewMemoryKV())

	employees, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestEmployeeRepository_RoundTripKeepsOrder(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryKV()
	repo := NewEmployeeRepository(kv)

	in := []employee.Employee{
		{ID: "20", Name: "Second", UnitCode: "TVM"},
		{ID: "10", Name: "First", UnitCode: "EKM", CustomFields: map[string]string{"staffCategory": "Driver"}},
	}
	require.NoError(t, repo.SaveAll(ctx, in))

	out, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	raw, found, err := kv.Get(ctx, EmployeesKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(raw), `"customFields":{"staffCategory":"Driver"}`)
	assert.Contains(t, string(raw), `"unitCode":"TVM"`)
}

func TestEmployeeRepository_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryKV()
	require.NoError(t, kv.Put(ctx, EmployeesKey, []byte("{not json")))

	_, err := NewEmployeeRepository(kv).LoadAll(ctx)
	assert.Error(t, err)
}

func TestSettingsRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(database.NewMemoryKV())

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, settings.Defaults()))
	raw, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, string(raw), `"allowUnitEdit":true`)
}
