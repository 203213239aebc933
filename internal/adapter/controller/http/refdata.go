package httpctrl

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
)

type RefDataController struct {
	Repo refdata.Repo
}

func NewRefDataController(repo refdata.Repo) *RefDataController {
	return &RefDataController{Repo: repo}
}

func (c *RefDataController) Register(r *gin.Engine) {
	r.GET("/refdata", c.list)
}

type refDataRow struct {
	ProductType string `json:"product_type"`
	Exchange    string `json:"exchange"`
	Symbol      string `json:"symbol"`
	TickSize    string `json:"tick_size"`
	LotSize     string `json:"lot_size"`
	UpdatedAt   string `json:"updated_at"`
}

// list serves the stored rows; ?exchange= and ?product= narrow the set.
func (c *RefDataController) list(ctx *gin.Context) {
	rows, err := c.Repo.LoadAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ex := ctx.Query("exchange")
	product := ctx.Query("product")

	out := make([]refDataRow, 0, len(rows))
	for _, r := range rows {
		if ex != "" && string(r.Exchange) != ex {
			continue
		}
		if product != "" && string(r.Product) != product {
			continue
		}
		out = append(out, refDataRow{
			ProductType: string(r.Product),
			Exchange:    string(r.Exchange),
			Symbol:      r.Symbol,
			TickSize:    r.TickSize,
			LotSize:     r.LotSize,
			UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"refdata": out})
}
