package api

import (
	"net/http"
	"testing"
	"time"

	"arkan22/cloth-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUnverifiedUser(t *testing.T, db *gorm.DB, id string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           id,
		Name:         "Pending",
		Email:        id + "@example.com",
		Number:       "0812",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedToken(t *testing.T, db *gorm.DB, userID, purpose string, expiresAt time.Time, used bool) *model.VerificationToken {
	t.Helper()

	token := &model.VerificationToken{
		UserID:    userID,
		Token:     "tok-" + userID + "-" + purpose,
		Purpose:   purpose,
		ExpiresAt: expiresAt,
		Used:      used,
	}
	require.NoError(t, db.Create(token).Error)
	return token
}

func TestUserVerifyEndpoint(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	user := seedUnverifiedUser(t, a.DB, "pending")
	token := seedToken(t, a.DB, user.ID, model.TokenPurposeEmailVerify, time.Now().Add(time.Minute), false)

	w := jsonReq(r, http.MethodGet, "/api/users/verify?user_id="+user.ID+"&token="+token.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var u model.User
	require.NoError(t, a.DB.First(&u, "id = ?", user.ID).Error)
	assert.NotNil(t, u.VerifiedAt)

	var tok model.VerificationToken
	require.NoError(t, a.DB.First(&tok, token.ID).Error)
	assert.True(t, tok.Used)
	assert.NotNil(t, tok.UsedAt)
}

func TestUserVerifyEndpointExpiredLink(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	user := seedUnverifiedUser(t, a.DB, "pending")
	token := seedToken(t, a.DB, user.ID, model.TokenPurposeEmailVerify, time.Now().Add(-time.Minute), false)

	w := jsonReq(r, http.MethodGet, "/api/users/verify?user_id="+user.ID+"&token="+token.Token, nil)
	assert.Equal(t, http.StatusGone, w.Code)

	// An expired link must not flip the account to verified
	var u model.User
	require.NoError(t, a.DB.First(&u, "id = ?", user.ID).Error)
	assert.Nil(t, u.VerifiedAt)
}

func TestUserVerifyEndpointUsedLink(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	user := seedUnverifiedUser(t, a.DB, "pending")
	token := seedToken(t, a.DB, user.ID, model.TokenPurposeEmailVerify, time.Now().Add(time.Minute), true)

	w := jsonReq(r, http.MethodGet, "/api/users/verify?user_id="+user.ID+"&token="+token.Token, nil)
	assert.Equal(t, http.StatusGone, w.Code)

	var u model.User
	require.NoError(t, a.DB.First(&u, "id = ?", user.ID).Error)
	assert.Nil(t, u.VerifiedAt)
}

func TestUserPasswordResetEndpoint(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	user, _, _ := seedShop(t, a.DB, 1)
	token := seedToken(t, a.DB, user.ID, model.TokenPurposePasswordReset, time.Now().Add(time.Minute), false)

	w := jsonReq(r, http.MethodPost, "/api/users/password/reset", gin.H{
		"user_id":  user.ID,
		"token":    token.Token,
		"password": "brand-new-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var u model.User
	require.NoError(t, a.DB.First(&u, "id = ?", user.ID).Error)
	assert.NotEqual(t, user.PasswordHash, u.PasswordHash)

	ok, err := a.Argon.VerifyPasswd("brand-new-password", u.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	var tok model.VerificationToken
	require.NoError(t, a.DB.First(&tok, token.ID).Error)
	assert.True(t, tok.Used)
}

func TestUserPasswordResetEndpointExpiredLink(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	user, _, _ := seedShop(t, a.DB, 1)
	token := seedToken(t, a.DB, user.ID, model.TokenPurposePasswordReset, time.Now().Add(-time.Minute), false)

	w := jsonReq(r, http.MethodPost, "/api/users/password/reset", gin.H{
		"user_id":  user.ID,
		"token":    token.Token,
		"password": "brand-new-password",
	})
	assert.Equal(t, http.StatusGone, w.Code)

	var u model.User
	require.NoError(t, a.DB.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, user.PasswordHash, u.PasswordHash)
}

func TestUserPasswordResetEndpointUsedLink(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	user, _, _ := seedShop(t, a.DB, 1)
	token := seedToken(t, a.DB, user.ID, model.TokenPurposePasswordReset, time.Now().Add(time.Minute), true)

	w := jsonReq(r, http.MethodPost, "/api/users/password/reset", gin.H{
		"user_id":  user.ID,
		"token":    token.Token,
		"password": "brand-new-password",
	})
	assert.Equal(t, http.StatusGone, w.Code)

	var u model.User
	require.NoError(t, a.DB.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, user.PasswordHash, u.PasswordHash)
}

func TestUserLoginEndpointCorruptHash(t *testing.T) {
	a, r := testAPI(t, "", model.RoleCustomer)
	// seedShop stores a hash that isn't valid PHC output, so verification
	// errors instead of returning a mismatch
	user, _, _ := seedShop(t, a.DB, 1)

	w := jsonReq(r, http.MethodPost, "/api/users/login", gin.H{
		"email":    user.Email,
		"password": "whatever-password",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "Invalid credentials")
}
