package address

import (
	"context"

	"go.uber.org/zap"

	"github.com/omartarek/e-commerce-api/constant"
	"github.com/omartarek/e-commerce-api/model"
	addressrepo "github.com/omartarek/e-commerce-api/repository/address"
	"github.com/omartarek/e-commerce-api/utils/errors"
	"github.com/omartarek/e-commerce-api/utils/logger"
)

type AddressApp interface {
	CreateAddress(ctx context.Context, userID uint64, req *model.CreateAddressRequest) (*model.AddressEntity, error)
	UpdateAddress(ctx context.Context, userID uint64, req *model.UpdateAddressRequest) error
	ListAddresses(ctx context.Context, userID uint64) ([]model.AddressEntity, error)
}

type addressAppImpl struct {
	addressRepo addressrepo.AddressRepository
}

func NewAddressApp(addressRepo addressrepo.AddressRepository) AddressApp {
	return &addressAppImpl{addressRepo: addressRepo}
}

func (s *addressAppImpl) CreateAddress(ctx context.Context, userID uint64, req *model.CreateAddressRequest) (*model.AddressEntity, error) {
	entity := &model.AddressEntity{
		UserID:        userID,
		GovernorateID: req.GovernorateID,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		PostalCode:    req.PostalCode,
	}

	entity, err := s.addressRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateAddress] err addressRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return entity, nil
}

func (s *addressAppImpl) UpdateAddress(ctx context.Context, userID uint64, req *model.UpdateAddressRequest) error {
	entity := &model.AddressEntity{
		ID:            req.AddressID,
		UserID:        userID,
		GovernorateID: req.GovernorateID,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		PostalCode:    req.PostalCode,
	}

	affected, err := s.addressRepo.Update(ctx, entity)
	if err != nil {
		logger.Error("[UpdateAddress] err addressRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		// missing address or owned by someone else, indistinguishable on purpose
		return errors.SetCustomError(constant.ErrNotFound)
	}

	return nil
}

func (s *addressAppImpl) ListAddresses(ctx context.Context, userID uint64) ([]model.AddressEntity, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListAddresses] err addressRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return addresses, nil
}
