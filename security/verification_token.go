package security

import (
	"arkan22/cloth-api/model"
	"arkan22/cloth-api/util"
	"errors"
	"time"
)

const tokenSize = 32

// TokenTTL is how long a signed verification/reset link stays valid.
const TokenTTL = 10 * time.Minute

type VerificationTokenOpts struct {
	UserID    string
	Purpose   string
	ExpiresAt time.Time
}

func MakeVerificationToken(o *VerificationTokenOpts) (*model.VerificationToken, error) {
	if o == nil {
		return nil, errors.New("no token options provided")
	}

	if o.UserID == "" {
		return nil, errors.New("no user ID provided")
	}

	if o.Purpose == "" {
		return nil, errors.New("no token purpose provided")
	}

	if o.ExpiresAt.IsZero() {
		return nil, errors.New("no expiry provided")
	}

	token, err := util.GenerateToken(tokenSize)
	if err != nil {
		return nil, err
	}

	return &model.VerificationToken{
		UserID:    o.UserID,
		Token:     token,
		Purpose:   o.Purpose,
		ExpiresAt: o.ExpiresAt,
		CreatedAt: time.Now(),
		Used:      false,
	}, nil
}
