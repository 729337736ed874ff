package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	appproduct "github.com/omartarek/e-commerce-api/application/product"
	"github.com/omartarek/e-commerce-api/cmd/config"
	productmocks "github.com/omartarek/e-commerce-api/mocks/repository/product"
	redismocks "github.com/omartarek/e-commerce-api/mocks/repository/redis"
	"github.com/omartarek/e-commerce-api/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{ProductListTTL: 30 * time.Second},
	}
}

func TestProductApp_ListProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx     context.Context
		queries *model.FilterQueries
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ProductListResponse
		wantErr  bool
	}{
		{
			name: "success: defaults applied on empty filter",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				queries: &model.FilterQueries{},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetProductList", mock.Anything, mock.AnythingOfType("string")).
					Return(nil, nil).
					Once()

				f.productRepo.
					On("List", mock.Anything, &model.ProductFilter{Page: 1, PerPage: 10}).
					Return([]model.ProductListItem{
						{ID: 1, Name: "Leash", CategoryID: 2, TypeID: 3, Price: 19.99},
					}, int64(1), nil).
					Once()

				f.redisRepo.
					On("SetProductList", mock.Anything, mock.AnythingOfType("string"), mock.Anything, 30*time.Second).
					Return(nil).
					Once()
			},
			want: &model.ProductListResponse{
				Items: []model.ProductListItem{
					{ID: 1, Name: "Leash", CategoryID: 2, TypeID: 3, Price: 19.99},
				},
				TotalCount: 1,
				Page:       1,
				PerPage:    10,
			},
			wantErr: false,
		},
		{
			name: "success: full filter parsed into repository types",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				queries: &model.FilterQueries{
					Query:        "collar",
					CategoryID:   "4",
					TypeID:       "7",
					MinimumPrice: "10.00",
					MaximumPrice: "99.99",
					Page:         "2",
					Size:         "5",
				},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetProductList", mock.Anything, mock.AnythingOfType("string")).
					Return(nil, nil).
					Once()

				f.productRepo.
					On("List", mock.Anything, &model.ProductFilter{
						Query:      "collar",
						CategoryID: 4,
						TypeID:     7,
						MinPrice:   "10.00",
						MaxPrice:   "99.99",
						Page:       2,
						PerPage:    5,
					}).
					Return([]model.ProductListItem{}, int64(0), nil).
					Once()

				f.redisRepo.
					On("SetProductList", mock.Anything, mock.AnythingOfType("string"), mock.Anything, 30*time.Second).
					Return(nil).
					Once()
			},
			want: &model.ProductListResponse{
				Items:      []model.ProductListItem{},
				TotalCount: 0,
				Page:       2,
				PerPage:    5,
			},
			wantErr: false,
		},
		{
			name: "success: served from cache without touching the database",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				queries: &model.FilterQueries{},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetProductList", mock.Anything, mock.AnythingOfType("string")).
					Return(&model.ProductListResponse{
						Items:      []model.ProductListItem{{ID: 9, Name: "Bowl"}},
						TotalCount: 1,
						Page:       1,
						PerPage:    10,
					}, nil).
					Once()
			},
			want: &model.ProductListResponse{
				Items:      []model.ProductListItem{{ID: 9, Name: "Bowl"}},
				TotalCount: 1,
				Page:       1,
				PerPage:    10,
			},
			wantErr: false,
		},
		{
			name: "error: repository failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				queries: &model.FilterQueries{},
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetProductList", mock.Anything, mock.AnythingOfType("string")).
					Return(nil, nil).
					Once()

				f.productRepo.
					On("List", mock.Anything, mock.Anything).
					Return(nil, int64(0), errors.New("db gone")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}

			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			got, err := app.ListProducts(tt.args.ctx, tt.args.queries)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
