package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	addressapp "github.com/omartarek/e-commerce-api/application/address"
	productapp "github.com/omartarek/e-commerce-api/application/product"
	"github.com/omartarek/e-commerce-api/constant"
	"github.com/omartarek/e-commerce-api/model"
	"github.com/omartarek/e-commerce-api/transport"
	cerr "github.com/omartarek/e-commerce-api/utils/errors"
)

// fakeUserApp drives the handlers without real crypto or storage
type fakeUserApp struct {
	signUpErr  error
	signInErr  error
	updateErr  error
	authorized bool
	userID     uint64
	tokenErr   error
}

func (f *fakeUserApp) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.TokenResponse, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &model.TokenResponse{AuthenticationToken: "token"}, nil
}

func (f *fakeUserApp) SignIn(ctx context.Context, req *model.SignInRequest) (*model.TokenResponse, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &model.TokenResponse{AuthenticationToken: "token"}, nil
}

func (f *fakeUserApp) CheckAuthorization(ctx context.Context, tokenString string) bool {
	return f.authorized
}

func (f *fakeUserApp) UpdateUser(ctx context.Context, req *model.UpdateUserRequest) (*model.TokenResponse, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &model.TokenResponse{AuthenticationToken: "token"}, nil
}

func (f *fakeUserApp) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	if f.tokenErr != nil {
		return 0, f.tokenErr
	}
	return f.userID, nil
}

type fakeAddressApp struct{}

func (f *fakeAddressApp) CreateAddress(ctx context.Context, userID uint64, req *model.CreateAddressRequest) (*model.AddressEntity, error) {
	return &model.AddressEntity{ID: 1, UserID: userID}, nil
}

func (f *fakeAddressApp) UpdateAddress(ctx context.Context, userID uint64, req *model.UpdateAddressRequest) error {
	return nil
}

func (f *fakeAddressApp) ListAddresses(ctx context.Context, userID uint64) ([]model.AddressEntity, error) {
	return []model.AddressEntity{}, nil
}

type fakeProductApp struct{}

func (f *fakeProductApp) ListProducts(ctx context.Context, queries *model.FilterQueries) (*model.ProductListResponse, error) {
	return &model.ProductListResponse{Items: []model.ProductListItem{}, Page: 1, PerPage: 10}, nil
}

var _ addressapp.AddressApp = (*fakeAddressApp)(nil)
var _ productapp.ProductApp = (*fakeProductApp)(nil)

func newServer(userApp *fakeUserApp) http.Handler {
	return transport.NewTransport(userApp, &fakeAddressApp{}, &fakeProductApp{})
}

const signUpBody = `{"email":"test@example.com","username":"testuser","password":"password123","first_name":"Test","last_name":"User","phone_number":"081234567890"}`

func TestSignUp_DuplicateEmailConflict(t *testing.T) {
	handler := newServer(&fakeUserApp{signUpErr: cerr.SetCustomError(constant.ErrEmailExists)})

	req := httptest.NewRequest(http.MethodPost, "/user/sign-up", strings.NewReader(signUpBody))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestSignUp_ValidationViolations(t *testing.T) {
	handler := newServer(&fakeUserApp{})

	req := httptest.NewRequest(http.MethodPost, "/user/sign-up", strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp struct {
		Violations []string `json:"violations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	// email format plus five missing required fields
	if len(resp.Violations) != 6 {
		t.Fatalf("violations = %d, want 6: %v", len(resp.Violations), resp.Violations)
	}
}

func TestSignUp_Success(t *testing.T) {
	handler := newServer(&fakeUserApp{})

	req := httptest.NewRequest(http.MethodPost, "/user/sign-up", strings.NewReader(signUpBody))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data model.TokenResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.AuthenticationToken == "" {
		t.Fatalf("missing authentication token in response")
	}
}

func TestSignIn_UnknownEmailUnauthorized(t *testing.T) {
	handler := newServer(&fakeUserApp{signInErr: cerr.SetCustomError(constant.ErrEmailNotFound)})

	body := `{"email":"unknown@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/user/sign-in", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCheckAuthorization_AlwaysOKWithBoolean(t *testing.T) {
	for _, authorized := range []bool{true, false} {
		handler := newServer(&fakeUserApp{authorized: authorized})

		req := httptest.NewRequest(http.MethodGet, "/user/authorization", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var resp struct {
			Data model.AuthorizationResponse `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Data.Authorized != authorized {
			t.Fatalf("authorized = %v, want %v", resp.Data.Authorized, authorized)
		}
	}
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	handler := newServer(&fakeUserApp{userID: 5})

	req := httptest.NewRequest(http.MethodGet, "/user/address", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestProtectedRoute_WithToken(t *testing.T) {
	handler := newServer(&fakeUserApp{userID: 5})

	req := httptest.NewRequest(http.MethodGet, "/user/address", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestListProducts_InvalidPriceFormat(t *testing.T) {
	handler := newServer(&fakeUserApp{})

	req := httptest.NewRequest(http.MethodGet, "/products?minimum_price=0.00", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListProducts_QuirkZeroPriceAccepted(t *testing.T) {
	handler := newServer(&fakeUserApp{})

	// 0.01 slips through the zero branch of the price format
	req := httptest.NewRequest(http.MethodGet, "/products?minimum_price=0.01", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
