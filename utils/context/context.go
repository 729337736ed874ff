package context

import (
	"context"

	"github.com/omartarek/e-commerce-api/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRequestID(ctx context.Context) string {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return ""
	}
	id, _ := v.(string)
	return id
}
