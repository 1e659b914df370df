package auth

import (
	"context"
	"fmt"

	"github.com/amazons/backend/lib/myerrors"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/myvalidation"
)

func (s *service) signup(c context.Context, req SignupRequest) (SignupResponse, error) {
	err := myvalidation.Check(req)
	if err != nil {
		return SignupResponse{}, myerrors.NewInvalidInputError(err)
	}

	s.logger.Log(c, req.Username, mylog.SeverityInfo, "Signup attempt for username %s", req.Username)

	_, exists, err := s.userStore.FindOne(c, existingAccountQuery(req))
	if err != nil {
		return SignupResponse{}, myerrors.NewInternalError(err)
	}
	if exists {
		return SignupResponse{}, myerrors.NewConflictError(fmt.Errorf("account already exists"))
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return SignupResponse{}, myerrors.NewInternalError(err)
	}

	user := User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		Name:         req.Name,
		IsActive:     true,
		IsAdmin:      false,
		CreatedAt:    s.nower.Now(),
	}

	// Not atomic with the existence check above: two concurrent signups for
	// the same username can both pass the check and both insert.
	id, err := s.userStore.Insert(c, user)
	if err != nil {
		return SignupResponse{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, req.Username, mylog.SeverityInfo, "Created user %s with uid %s", req.Username, id)

	return SignupResponse{ID: id, Username: user.Username}, nil
}

func (s *service) login(c context.Context, req LoginRequest) (LoginResponse, error) {
	err := myvalidation.Check(req)
	if err != nil {
		return LoginResponse{}, myerrors.NewInvalidInputError(err)
	}

	doc, found, err := s.userStore.FindOne(c, loginQuery(req))
	if err != nil {
		return LoginResponse{}, myerrors.NewInternalError(err)
	}

	// One generic failure for both an unknown account and a wrong password
	if !found || !s.hasher.Verify(req.Password, doc.Data.PasswordHash) {
		return LoginResponse{}, myerrors.NewAuthenticationError(fmt.Errorf("invalid credentials"))
	}

	s.logger.Log(c, doc.Data.Username, mylog.SeverityInfo, "User %s logged in", doc.Data.Username)

	return LoginResponse{
		ID:       doc.ID,
		Username: doc.Data.Username,
		Name:     doc.Data.Name,
	}, nil
}
