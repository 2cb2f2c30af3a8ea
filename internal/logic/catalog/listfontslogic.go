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

type ListFontsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListFontsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListFontsLogic {
	return &ListFontsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListFontsLogic) ListFonts() (resp *types.ListFontsResponse, err error) {
	families := font.AllFamilies()

	return &types.ListFontsResponse{
		Families: families,
		Count:    len(families),
	}, nil
}
