package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "shop.db?_foreign_keys=1", sqliteDSN("shop.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=1", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "file:x?_fk=0", sqliteDSN("file:x?_fk=0"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "", &gorm.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestConnectDatabase_SQLite(t *testing.T) {
	db, err := ConnectDatabase("sqlite", "file:connect_test?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable("files"))
	assert.True(t, db.Migrator().HasTable("folders"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
