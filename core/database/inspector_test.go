package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGetTableColumns(t *testing.T) {
	db, sqlMock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "INT(11)", "NO", "PRI", nil, "").
		AddRow("name", "VARCHAR(100)", "YES", "", nil, "").
		AddRow("commands", "TEXT", "YES", "", nil, "")
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `genie_units`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "genie_units")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	// Fields and types come back lowercased.
	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "int(11)", colMap["id"])
	assert.Equal(t, "varchar(100)", colMap["name"])
	assert.Equal(t, "text", colMap["commands"])

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGetTableColumnsQueryError(t *testing.T) {
	db, sqlMock := setupMockDB(t)

	sqlMock.ExpectQuery("SHOW COLUMNS FROM `missing`").
		WillReturnError(errors.New("table not found"))

	_, err := GetTableColumns(db, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get columns for table missing")
}
