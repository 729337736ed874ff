package user

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/omartarek/e-commerce-api/cmd/config"
	"github.com/omartarek/e-commerce-api/constant"
	"github.com/omartarek/e-commerce-api/model"
	txrepo "github.com/omartarek/e-commerce-api/repository/tx"
	userrepo "github.com/omartarek/e-commerce-api/repository/user"
	"github.com/omartarek/e-commerce-api/thirdparty/rabbitmq"
	"github.com/omartarek/e-commerce-api/utils/errors"
	"github.com/omartarek/e-commerce-api/utils/logger"
)

type UserApp interface {
	SignUp(ctx context.Context, req *model.SignUpRequest) (*model.TokenResponse, error)
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.TokenResponse, error)
	CheckAuthorization(ctx context.Context, tokenString string) bool
	UpdateUser(ctx context.Context, req *model.UpdateUserRequest) (*model.TokenResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type UserAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	userRepo  userrepo.UserRepository
	publisher *rabbitmq.Publisher
}

func NewUserApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, publisher *rabbitmq.Publisher) UserApp {
	return &UserAppImpl{
		config:    config,
		txRepo:    txRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *UserAppImpl) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.TokenResponse, error) {
	// existence check and insert share one transaction so two concurrent
	// sign-ups with the same email cannot both pass the check
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SignUp] err begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existingUser, err := s.userRepo.GetTx(ctx, tx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[SignUp] err userRepo.GetTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		logger.Error("[SignUp] err hashPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Email:       req.Email,
		Username:    req.Username,
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}

	userEntity, err = s.userRepo.CreateTx(ctx, tx, userEntity)
	if err != nil {
		logger.Error("[SignUp] err userRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if userEntity == nil || userEntity.ID == 0 {
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SignUp] err commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	token, err := s.signToken(jwt.MapClaims{
		"id":    userEntity.ID,
		"email": userEntity.Email,
	})
	if err != nil {
		logger.Error("[SignUp] err signToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// best effort, a lost event never fails the sign-up
	if s.publisher != nil {
		msg := rabbitmq.UserRegisteredMessage{
			UserID:   userEntity.ID,
			Email:    userEntity.Email,
			Username: userEntity.Username,
		}
		if err := s.publisher.PublishUserRegistered(msg); err != nil {
			logger.Error("[SignUp] err publish user registered", zap.String("error", err.Error()))
		}
	}

	return &model.TokenResponse{AuthenticationToken: token}, nil
}

func (s *UserAppImpl) SignIn(ctx context.Context, req *model.SignInRequest) (*model.TokenResponse, error) {
	databaseUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[SignIn] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if databaseUser == nil {
		return nil, errors.SetCustomError(constant.ErrEmailNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(databaseUser.Password), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrWrongPassword)
	}

	token, err := s.signToken(jwt.MapClaims{
		"id":       databaseUser.ID,
		"username": databaseUser.Username,
	})
	if err != nil {
		logger.Error("[SignIn] err signToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.TokenResponse{AuthenticationToken: token}, nil
}

// CheckAuthorization reports token validity only. Every verification
// failure collapses to false; callers cannot tell a tampered token from
// a garbage string.
func (s *UserAppImpl) CheckAuthorization(ctx context.Context, tokenString string) bool {
	token, err := s.parseToken(tokenString)
	if err != nil {
		return false
	}
	return token.Valid
}

func (s *UserAppImpl) UpdateUser(ctx context.Context, req *model.UpdateUserRequest) (*model.TokenResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateUser] err begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// conflict only when a different user owns the target email
	existingUser, err := s.userRepo.GetTx(ctx, tx, &model.UserFilter{Email: req.Email, ExcludeID: req.UserID})
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.GetTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	// every field is overwritten as supplied, the password included
	userEntity := &model.UserEntity{
		ID:          req.UserID,
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}

	if err := s.userRepo.UpdateTx(ctx, tx, userEntity); err != nil {
		logger.Error("[UpdateUser] err userRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateUser] err commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	token, err := s.signToken(jwt.MapClaims{
		"id":    req.UserID,
		"email": req.Email,
	})
	if err != nil {
		logger.Error("[UpdateUser] err signToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.TokenResponse{AuthenticationToken: token}, nil
}

// ValidateToken verifies a token and extracts the user id claim. Used by
// the auth middleware, which needs the caller identity and not just a
// boolean.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := s.parseToken(tokenString)
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("invalid user id in token")
	}

	return uint64(id), nil
}

func (s *UserAppImpl) hashPassword(password string) (string, error) {
	cost := s.config.Auth.BcryptCost
	if cost == 0 {
		cost = 12
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// signToken signs claims with HS256. No issued-at or expiry claim is
// embedded, so a token stays valid until the secret rotates.
func (s *UserAppImpl) signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
}
