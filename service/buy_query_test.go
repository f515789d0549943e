package service

import (
	"testing"

	"arkan22/cloth-api/model"
	"arkan22/cloth-api/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBuysPagination(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db, "lister1")
	cloth, _ := seedCloth(t, db, 100)

	for i := 0; i < 23; i++ {
		seedBuy(t, db, user.ID, cloth.ID, 1, 0, 0)
	}

	page, err := ListBuys(db, &BuyFilter{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Buys, 10)
	assert.EqualValues(t, 23, page.Total)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, 10, page.PerPage)

	page, err = ListBuys(db, &BuyFilter{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page.Buys, 3)
	assert.EqualValues(t, 23, page.Total)

	// Past the end is an empty page, not an error
	page, err = ListBuys(db, &BuyFilter{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, page.Buys)
}

func TestListBuysInsertionOrder(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db, "lister2")
	cloth, _ := seedCloth(t, db, 100)

	first := seedBuy(t, db, user.ID, cloth.ID, 1, 0, 0)
	second := seedBuy(t, db, user.ID, cloth.ID, 2, 0, 0)

	page, err := ListBuys(db, &BuyFilter{Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Buys, 2)
	assert.Equal(t, first.ID, page.Buys[0].ID)
	assert.Equal(t, second.ID, page.Buys[1].ID)
}

func TestListBuysFilters(t *testing.T) {
	db := setupDB(t)
	alice := seedUser(t, db, "lister3a")
	bob := seedUser(t, db, "lister3b")
	cloth, _ := seedCloth(t, db, 100)

	seedBuy(t, db, alice.ID, cloth.ID, 1, model.PaymentPaid, model.ConfirmationAccepted)
	seedBuy(t, db, alice.ID, cloth.ID, 1, model.PaymentUnpaid, model.ConfirmationPending)
	seedBuy(t, db, bob.ID, cloth.ID, 1, model.PaymentPaid, model.ConfirmationPending)

	paid := model.PaymentPaid
	page, err := ListBuys(db, &BuyFilter{PaymentStatus: &paid, Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Buys, 2)
	assert.EqualValues(t, 2, page.Total)
	for _, b := range page.Buys {
		assert.Equal(t, model.PaymentPaid, b.PaymentStatus)
	}

	page, err = ListBuys(db, &BuyFilter{UserID: alice.ID, PaymentStatus: &paid, Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Buys, 1)
	assert.Equal(t, alice.ID, page.Buys[0].UserID)

	accepted := model.ConfirmationAccepted
	method := "transfer"
	page, err = ListBuys(db, &BuyFilter{
		PaymentMethod:      &method,
		ConfirmationStatus: &accepted,
		Page:               1,
	})
	require.NoError(t, err)
	assert.Len(t, page.Buys, 1)
}

func TestListBuysRejectsBadStatuses(t *testing.T) {
	db := setupDB(t)

	bad := 7
	_, err := ListBuys(db, &BuyFilter{PaymentStatus: &bad, Page: 1})
	require.ErrorIs(t, err, validators.ErrPaymentStatusInvalid)

	_, err = ListBuys(db, &BuyFilter{ConfirmationStatus: &bad, Page: 1})
	require.ErrorIs(t, err, validators.ErrConfirmationStatusInvalid)
}
