package address_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	appaddress "github.com/omartarek/e-commerce-api/application/address"
	"github.com/omartarek/e-commerce-api/constant"
	addressmocks "github.com/omartarek/e-commerce-api/mocks/repository/address"
	"github.com/omartarek/e-commerce-api/model"
	cerr "github.com/omartarek/e-commerce-api/utils/errors"
)

func strPtr(s string) *string { return &s }

func TestAddressApp_CreateAddress(t *testing.T) {
	repo := addressmocks.NewAddressRepository(t)
	app := appaddress.NewAddressApp(repo)

	req := &model.CreateAddressRequest{
		GovernorateID: 12,
		AddressLine1:  "14 Tahrir St",
		AddressLine2:  strPtr("Apt 3"),
		PostalCode:    "11311",
	}

	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(ent *model.AddressEntity) bool {
			return ent.UserID == 5 &&
				ent.GovernorateID == 12 &&
				ent.AddressLine1 == "14 Tahrir St" &&
				ent.PostalCode == "11311"
		})).
		Return(&model.AddressEntity{
			ID:            1,
			UserID:        5,
			GovernorateID: 12,
			AddressLine1:  "14 Tahrir St",
			AddressLine2:  strPtr("Apt 3"),
			PostalCode:    "11311",
		}, nil).
		Once()

	got, err := app.CreateAddress(context.Background(), 5, req)
	if err != nil {
		t.Fatalf("CreateAddress() error = %v", err)
	}
	if got.ID != 1 || got.UserID != 5 {
		t.Fatalf("CreateAddress() = %+v", got)
	}
}

func TestAddressApp_UpdateAddress(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint64
		req      *model.UpdateAddressRequest
		mockCall func(repo *addressmocks.AddressRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: own address updated",
			userID: 5,
			req: &model.UpdateAddressRequest{
				AddressID:     1,
				GovernorateID: 12,
				AddressLine1:  "14 Tahrir St",
				PostalCode:    "11311",
			},
			mockCall: func(repo *addressmocks.AddressRepository) {
				repo.
					On("Update", mock.Anything, mock.MatchedBy(func(ent *model.AddressEntity) bool {
						return ent.ID == 1 && ent.UserID == 5
					})).
					Return(int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:   "error: address missing or owned by someone else",
			userID: 5,
			req: &model.UpdateAddressRequest{
				AddressID:     99,
				GovernorateID: 12,
				AddressLine1:  "14 Tahrir St",
				PostalCode:    "11311",
			},
			mockCall: func(repo *addressmocks.AddressRepository) {
				repo.
					On("Update", mock.Anything, mock.Anything).
					Return(int64(0), nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: repository failure",
			userID: 5,
			req: &model.UpdateAddressRequest{
				AddressID:     1,
				GovernorateID: 12,
				AddressLine1:  "14 Tahrir St",
				PostalCode:    "11311",
			},
			mockCall: func(repo *addressmocks.AddressRepository) {
				repo.
					On("Update", mock.Anything, mock.Anything).
					Return(int64(0), errors.New("db gone")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := addressmocks.NewAddressRepository(t)
			tt.mockCall(repo)

			app := appaddress.NewAddressApp(repo)

			err := app.UpdateAddress(context.Background(), tt.userID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateAddress() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Error() != cerr.SetCustomError(tt.errCode).Error() {
				t.Fatalf("UpdateAddress() error = %v, want %v", err, cerr.SetCustomError(tt.errCode))
			}
		})
	}
}

func TestAddressApp_ListAddresses(t *testing.T) {
	repo := addressmocks.NewAddressRepository(t)
	app := appaddress.NewAddressApp(repo)

	want := []model.AddressEntity{
		{ID: 1, UserID: 5, GovernorateID: 12, AddressLine1: "14 Tahrir St", PostalCode: "11311"},
		{ID: 2, UserID: 5, GovernorateID: 3, AddressLine1: "9 Corniche Rd", PostalCode: "21500"},
	}

	repo.
		On("ListByUser", mock.Anything, uint64(5)).
		Return(want, nil).
		Once()

	got, err := app.ListAddresses(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListAddresses() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListAddresses() = %+v, want %+v", got, want)
	}
}
