package demo

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/entities"
)

func openSeeded(t *testing.T, dbPath string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestGenerate(t *testing.T) {
	dbPath := "./test_demo_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	require.NoError(t, Generate(dbPath))

	db := openSeeded(t, dbPath)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	var authorCount, bookCount int64
	require.NoError(t, db.Model(&entities.Author{}).Count(&authorCount).Error)
	require.NoError(t, db.Model(&entities.Book{}).Count(&bookCount).Error)

	expectedBooks := 0
	for _, entry := range Catalog() {
		expectedBooks += len(entry.Books)
	}
	assert.EqualValues(t, len(Catalog()), authorCount)
	assert.EqualValues(t, expectedBooks, bookCount)

	var book entities.Book
	require.NoError(t, db.Preload("Author").First(&book, "isbn = ?", "9780141439518").Error)
	assert.Equal(t, "Pride and Prejudice", book.Title)
	assert.Equal(t, 1813, book.PublicationYear)
	assert.Equal(t, "Jane Austen", book.Author.Name)
}

func TestGenerate_ReplacesExistingDatabase(t *testing.T) {
	dbPath := "./test_demo_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	require.NoError(t, Generate(dbPath))
	// A second run starts from scratch instead of tripping over the unique
	// ISBN index.
	require.NoError(t, Generate(dbPath))

	db := openSeeded(t, dbPath)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	var authorCount int64
	require.NoError(t, db.Model(&entities.Author{}).Count(&authorCount).Error)
	assert.EqualValues(t, len(Catalog()), authorCount)
}
