package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	addressapp "github.com/omartarek/e-commerce-api/application/address"
	productapp "github.com/omartarek/e-commerce-api/application/product"
	userapp "github.com/omartarek/e-commerce-api/application/user"
	"github.com/omartarek/e-commerce-api/constant"
	"github.com/omartarek/e-commerce-api/model"
	utilsContext "github.com/omartarek/e-commerce-api/utils/context"
	"github.com/omartarek/e-commerce-api/utils/errors"
	validatorx "github.com/omartarek/e-commerce-api/utils/validator"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	AddressApp addressapp.AddressApp
	ProductApp productapp.ProductApp
}

func NewTransport(UserApp userapp.UserApp, AddressApp addressapp.AddressApp, ProductApp productapp.ProductApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		AddressApp: AddressApp,
		ProductApp: ProductApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/user/sign-up", rh.SignUp).Methods(http.MethodPost)
	mux.HandleFunc("/user/sign-in", rh.SignIn).Methods(http.MethodPost)
	mux.HandleFunc("/user/authorization", rh.CheckAuthorization).Methods(http.MethodGet)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/user", rh.UpdateUser).Methods(http.MethodPut)
	mux.HandleFunc("/user/address", rh.CreateAddress).Methods(http.MethodPost)
	mux.HandleFunc("/user/address", rh.UpdateAddress).Methods(http.MethodPut)
	mux.HandleFunc("/user/address", rh.ListAddresses).Methods(http.MethodGet)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// SignUp handler
// @Summary Sign up
// @Description Register a new user and receive an authentication token
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.SignUpRequest true "Sign Up Request"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /user/sign-up [post]
func (s *RestHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Violations(err)))
		return
	}

	res, err := s.UserApp.SignUp(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SignIn handler
// @Summary Sign in
// @Description Sign in with email and password and receive an authentication token
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.SignInRequest true "Sign In Request"
// @Success 200 {object} model.TokenResponse
// @Failure 401 {object} errors.CustomError
// @Router /user/sign-in [post]
func (s *RestHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Violations(err)))
		return
	}

	res, err := s.UserApp.SignIn(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CheckAuthorization handler
// @Summary Check authorization
// @Description Report whether the bearer token is valid. Invalid tokens all look the same.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AuthorizationResponse
// @Router /user/authorization [get]
func (s *RestHandler) CheckAuthorization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := bearerToken(r)
	res := &model.AuthorizationResponse{
		Authorized: s.UserApp.CheckAuthorization(ctx, token),
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update user data
// @Description Overwrite every profile field of the given user. The password is stored as supplied; send a pre-hashed value.
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateUserRequest true "Update User Request"
// @Success 200 {object} model.TokenResponse
// @Failure 409 {object} errors.CustomError
// @Router /user [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Violations(err)))
		return
	}

	res, err := s.UserApp.UpdateUser(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateAddress handler
// @Summary Create address
// @Description Add a postal address to the calling user
// @Tags Address
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateAddressRequest true "Create Address Request"
// @Success 200 {object} model.AddressEntity
// @Failure 400 {object} errors.CustomError
// @Router /user/address [post]
func (s *RestHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Violations(err)))
		return
	}

	res, err := s.AddressApp.CreateAddress(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAddress handler
// @Summary Update address
// @Description Update an address owned by the calling user
// @Tags Address
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateAddressRequest true "Update Address Request"
// @Success 200
// @Failure 400 {object} errors.CustomError
// @Router /user/address [put]
func (s *RestHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Violations(err)))
		return
	}

	if err := s.AddressApp.UpdateAddress(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListAddresses handler
// @Summary List addresses
// @Description List the calling user's addresses
// @Tags Address
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AddressEntity
// @Router /user/address [get]
func (s *RestHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AddressApp.ListAddresses(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List products
// @Description Filtered product listing. All parameters optional. Prices use a two-decimal format.
// @Tags Product
// @Produce json
// @Param query query string false "Free-text search"
// @Param category_id query string false "Category id"
// @Param type_id query string false "Type id"
// @Param minimum_price query string false "Minimum price, two decimal places"
// @Param maximum_price query string false "Maximum price, two decimal places"
// @Param page query string false "Page, default 1"
// @Param size query string false "Page size, default 10"
// @Success 200 {object} model.ProductListResponse
// @Failure 400 {object} errors.CustomError
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	req := model.FilterQueries{
		Query:        q.Get("query"),
		CategoryID:   q.Get("category_id"),
		TypeID:       q.Get("type_id"),
		MinimumPrice: q.Get("minimum_price"),
		MaximumPrice: q.Get("maximum_price"),
		Page:         q.Get("page"),
		Size:         q.Get("size"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Violations(err)))
		return
	}

	res, err := s.ProductApp.ListProducts(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}
