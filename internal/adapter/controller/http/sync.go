package httpctrl

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	refdatauc "github.com/berezovskyivalerii/refdatasvc/internal/usecase/refdata"
)

type SyncRunner interface {
	Run(ctx context.Context) (refdatauc.Summary, error)
}

type SyncController struct {
	UC SyncRunner
}

func NewSyncController(uc SyncRunner) *SyncController { return &SyncController{UC: uc} }

func (c *SyncController) Register(r *gin.Engine, mw ...gin.HandlerFunc) {
	handlers := append(mw, c.sync)
	r.POST("/sync", handlers...)
}

func (c *SyncController) sync(ctx *gin.Context) {
	sum, err := c.UC.Run(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, sum)
}
