// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package catalog

import (
	"context"

	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/font"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListCategoriesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListCategoriesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListCategoriesLogic {
	return &ListCategoriesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListCategoriesLogic) ListCategories() (resp *types.ListCategoriesResponse, err error) {
	categories := font.Categories()

	items := make([]types.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, types.CategoryItem{
			Name:  c.Name,
			Count: len(c.Fonts),
		})
	}

	return &types.ListCategoriesResponse{
		Categories: items,
		Count:      len(items),
	}, nil
}
