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

type CategoryFontsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCategoryFontsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CategoryFontsLogic {
	return &CategoryFontsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CategoryFonts answers an unknown category with an empty list, not a 404,
// matching the catalog accessor.
func (l *CategoryFontsLogic) CategoryFonts(req *types.CategoryFontsRequest) (resp *types.CategoryFontsResponse, err error) {
	fonts := font.FontsByCategory(req.Name)

	items := make([]types.FontItem, 0, len(fonts))
	for _, f := range fonts {
		items = append(items, toFontItem(f))
	}

	return &types.CategoryFontsResponse{
		Category: req.Name,
		Fonts:    items,
		Count:    len(items),
	}, nil
}
