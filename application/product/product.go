package product

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/omartarek/e-commerce-api/cmd/config"
	"github.com/omartarek/e-commerce-api/constant"
	"github.com/omartarek/e-commerce-api/model"
	productrepo "github.com/omartarek/e-commerce-api/repository/product"
	redisrepo "github.com/omartarek/e-commerce-api/repository/redis"
	"github.com/omartarek/e-commerce-api/utils/errors"
	"github.com/omartarek/e-commerce-api/utils/logger"
)

type ProductApp interface {
	ListProducts(ctx context.Context, queries *model.FilterQueries) (*model.ProductListResponse, error)
}

type productAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewProductApp(config *config.Config, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) ProductApp {
	return &productAppImpl{config: config, productRepo: productRepo, redisRepo: redisRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, queries *model.FilterQueries) (*model.ProductListResponse, error) {
	filter, err := buildFilter(queries)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cacheKey := cacheKeyFor(filter)
	if cached, err := s.redisRepo.GetProductList(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}

	if err := s.redisRepo.SetProductList(ctx, cacheKey, resp, s.config.Cache.ProductListTTL); err != nil {
		logger.Warn("[ListProducts] err cache set", zap.String("error", err.Error()))
	}

	return resp, nil
}

// buildFilter parses the validated query strings into repository types
// and applies pagination defaults.
func buildFilter(queries *model.FilterQueries) (*model.ProductFilter, error) {
	filter := &model.ProductFilter{
		Query:    queries.Query,
		MinPrice: queries.MinimumPrice,
		MaxPrice: queries.MaximumPrice,
		Page:     1,
		PerPage:  10,
	}

	if queries.CategoryID != "" {
		id, err := strconv.ParseUint(queries.CategoryID, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = id
	}
	if queries.TypeID != "" {
		id, err := strconv.ParseUint(queries.TypeID, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.TypeID = id
	}
	if queries.Page != "" {
		page, err := strconv.Atoi(queries.Page)
		if err != nil {
			return nil, err
		}
		if page > 0 {
			filter.Page = page
		}
	}
	if queries.Size != "" {
		size, err := strconv.Atoi(queries.Size)
		if err != nil {
			return nil, err
		}
		if size > 0 {
			filter.PerPage = size
		}
	}

	return filter, nil
}

func cacheKeyFor(filter *model.ProductFilter) string {
	return fmt.Sprintf("%s:%d:%d:%s:%s:%d:%d",
		filter.Query, filter.CategoryID, filter.TypeID, filter.MinPrice, filter.MaxPrice, filter.Page, filter.PerPage)
}
