// Package requests parses query strings shared by the handlers.
package requests

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// ListQuery carries the ordering and paging parameters of conversation listings.
type ListQuery struct {
	Limit          int
	Offset         int
	OrderBy        string
	OrderDirection string
}

// GetListQuery reads limit, offset, order_by and order_direction.
func GetListQuery(reqCtx *gin.Context) (ListQuery, error) {
	limit, err := GetIntQuery(reqCtx, "limit")
	if err != nil {
		return ListQuery{}, err
	}
	offset, err := GetIntQuery(reqCtx, "offset")
	if err != nil {
		return ListQuery{}, err
	}
	return ListQuery{
		Limit:          limit,
		Offset:         offset,
		OrderBy:        reqCtx.Query("order_by"),
		OrderDirection: reqCtx.Query("order_direction"),
	}, nil
}

// GetIntQuery parses a non-negative integer parameter. A missing parameter is zero.
func GetIntQuery(reqCtx *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(reqCtx.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("invalid %s: must be a non-negative integer", name), err, "b0e5c7a1-4f2d-4c8e-9a6b-1d3f5e7a9c20")
	}
	return n, nil
}

// GetOptionalIntQuery is GetIntQuery that tells a missing parameter (nil) from an explicit zero.
func GetOptionalIntQuery(reqCtx *gin.Context, name string) (*int, error) {
	if strings.TrimSpace(reqCtx.Query(name)) == "" {
		return nil, nil
	}
	n, err := GetIntQuery(reqCtx, name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetTimeQuery parses an RFC 3339 timestamp parameter. A missing parameter is nil.
func GetTimeQuery(reqCtx *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(reqCtx.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("invalid %s: expected an RFC 3339 timestamp", name), err, "c1f6d8b2-5a3e-4d9f-8b7c-2e4a6f8b0d31")
	}
	return &t, nil
}

// GetListValues collects a parameter given repeatedly or as a comma separated list.
func GetListValues(reqCtx *gin.Context, name string) []string {
	var out []string
	for _, raw := range reqCtx.QueryArray(name) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// RequireQuery returns the trimmed parameter or a validation error when it is empty.
func RequireQuery(reqCtx *gin.Context, name string) (string, error) {
	v := strings.TrimSpace(reqCtx.Query(name))
	if v == "" {
		return "", platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, platformerrors.ErrorTypeValidation,
			name+" is required", nil, "d2a7e9c3-6b4f-4eaf-9c8d-3f5b7a9c1e42")
	}
	return v, nil
}

// BindError wraps a body decoding failure as a validation error.
func BindError(reqCtx *gin.Context, err error) error {
	return platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, platformerrors.ErrorTypeValidation,
		"invalid request body", err, "e3b8fad4-7c5a-4fb0-8d9e-4a6c8b0d2f53")
}
