package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/httpresp"
	"github.com/edog39/FindMyFade-sub000/internal/middleware"
	usecase "github.com/edog39/FindMyFade-sub000/internal/usecase/wallet"
)

type RewardHandler struct {
	repo     domain.Repository
	redeemUC *usecase.RedeemReward

	refresh *MirrorRefresher
}

func NewRewardHandler(
	repo domain.Repository,
	redeemUC *usecase.RedeemReward,
	refresh *MirrorRefresher,
) *RewardHandler {
	return &RewardHandler{
		repo:     repo,
		redeemUC: redeemUC,
		refresh:  refresh,
	}
}

// GET /rewards
func (h *RewardHandler) ListCatalog(c *gin.Context) {
	rewards, err := h.repo.ListActiveRewards(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, rewards)
}

// GET /rewards/mine
func (h *RewardHandler) ListRedeemed(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	rewards, err := h.repo.ListRedeemedRewards(ctx, userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	h.refresh.mirror.StoreRedeemedRewards(ctx, userID, rewards)

	httpresp.List(c, rewards)
}

// POST /rewards/:id/redeem
func (h *RewardHandler) Redeem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rewardID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ctx := c.Request.Context()

	redeemed, acct, err := h.redeemUC.Execute(ctx, userID, rewardID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	h.refresh.refreshWallet(ctx, userID)
	h.refresh.refreshRewards(ctx, userID)

	httpresp.Created(c, gin.H{
		"redeemed_reward": redeemed,
		"wallet":          acct,
	})
}
