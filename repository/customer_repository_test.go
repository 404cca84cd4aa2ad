package repository

import (
	"testing"

	"coffeeshop-backend/configs"
	"coffeeshop-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func TestFindOrCreateByPhoneKeepsOneRowPerShop(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	first := entity.Customer{Name: "alice", PhoneNo: "555-0101", CoffeeShopID: 1}
	require.NoError(t, repo.FindOrCreateByPhone(db, &first))
	require.NotZero(t, first.ID)

	// a second insert for the same (phone, shop) loads the winner back
	// instead of erroring, even with a stale name
	second := entity.Customer{Name: "al", PhoneNo: "555-0101", CoffeeShopID: 1}
	require.NoError(t, repo.FindOrCreateByPhone(db, &second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice", second.Name)

	// the same phone at another shop is its own row
	other := entity.Customer{Name: "alice b", PhoneNo: "555-0101", CoffeeShopID: 2}
	require.NoError(t, repo.FindOrCreateByPhone(db, &other))
	assert.NotEqual(t, first.ID, other.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
