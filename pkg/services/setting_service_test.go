package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/globalsetting"
	"github.com/deepsoc/deepsoc/pkg/models"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestSettingService_DrivingMode(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSettingService(client.Client)
	ctx := context.Background()

	t.Run("defaults to auto without a row", func(t *testing.T) {
		mode, err := service.GetDrivingMode(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DrivingModeAuto, mode)
	})

	t.Run("round-trips manual", func(t *testing.T) {
		require.NoError(t, service.SetDrivingMode(ctx, models.DrivingModeManual))

		mode, err := service.GetDrivingMode(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DrivingModeManual, mode)
	})

	t.Run("updates the existing row", func(t *testing.T) {
		require.NoError(t, service.SetDrivingMode(ctx, models.DrivingModeAuto))

		mode, err := service.GetDrivingMode(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DrivingModeAuto, mode)

		count, err := client.GlobalSetting.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		err := service.SetDrivingMode(ctx, models.DrivingMode("turbo"))
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "mode", validErr.Field)
	})

	t.Run("falls back to auto on a corrupt row", func(t *testing.T) {
		_, err := client.GlobalSetting.Update().
			Where(globalsetting.KeyEQ(models.SettingDrivingMode)).
			SetValue("garbage").
			Save(ctx)
		require.NoError(t, err)

		mode, err := service.GetDrivingMode(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DrivingModeAuto, mode)
	})
}
