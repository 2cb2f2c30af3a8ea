// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package catalog

import (
	"context"

	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/joeblew999/plat-fonts/pkg/usage"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetFontLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetFontLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetFontLogic {
	return &GetFontLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetFontLogic) GetFont(req *types.GetFontRequest) (resp *types.FontItem, err error) {
	f, ok := font.FontByFamily(req.Family)
	l.svcCtx.Usage.Lookup(req.Family, usage.SourceAPI, ok)
	if !ok {
		return nil, errorx.ErrFontNotFound(req.Family)
	}

	item := toFontItem(f)
	return &item, nil
}
