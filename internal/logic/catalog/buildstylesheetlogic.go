// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package catalog

import (
	"context"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/joeblew999/plat-fonts/pkg/usage"

	"github.com/zeromicro/go-zero/core/logx"
)

type BuildStylesheetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewBuildStylesheetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BuildStylesheetLogic {
	return &BuildStylesheetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// BuildStylesheet does not require families to be in the catalog; any
// Google Fonts family can be requested.
func (l *BuildStylesheetLogic) BuildStylesheet(req *types.BuildStylesheetRequest) (resp *types.BuildStylesheetResponse, err error) {
	if len(req.Fonts) == 0 {
		return nil, errorx.ErrBadRequest("fonts is required")
	}

	reqs := make([]font.FontRequest, 0, len(req.Fonts))
	for _, f := range req.Fonts {
		if strings.TrimSpace(f.Family) == "" {
			return nil, errorx.ErrBadRequest("family is required")
		}
		reqs = append(reqs, font.FontRequest{Family: f.Family, Variants: f.Variants})
		l.svcCtx.Usage.Record(f.Family, usage.EventBuildURL, usage.SourceAPI)
	}

	url := font.BuildGoogleFontsURL(reqs)
	l.Debugf("built stylesheet url for %d fonts", len(reqs))

	return &types.BuildStylesheetResponse{Url: url}, nil
}
