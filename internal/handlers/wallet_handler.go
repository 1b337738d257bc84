package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/httperr"
	"github.com/edog39/FindMyFade-sub000/internal/httpresp"
	"github.com/edog39/FindMyFade-sub000/internal/middleware"
	usecase "github.com/edog39/FindMyFade-sub000/internal/usecase/wallet"
)

type WalletHandler struct {
	repo       domain.Repository
	topUpUC    *usecase.TopUpWallet
	referralUC *usecase.ClaimReferral

	refresh *MirrorRefresher
}

func NewWalletHandler(
	repo domain.Repository,
	topUpUC *usecase.TopUpWallet,
	referralUC *usecase.ClaimReferral,
	refresh *MirrorRefresher,
) *WalletHandler {
	return &WalletHandler{
		repo:       repo,
		topUpUC:    topUpUC,
		referralUC: referralUC,
		refresh:    refresh,
	}
}

// --------- Requests ---------

type TopUpRequest struct {
	Amount float64 `json:"amount" binding:"required"`

	CardToken       string `json:"card_token" binding:"required"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
	PayerEmail      string `json:"payer_email" binding:"required,email"`
}

type ClaimReferralRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
}

// --------- Handlers ---------

// GET /wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	acct, err := h.repo.GetAccount(ctx, userID)
	if err != nil {
		// Postgres fora: serve o último espelho conhecido
		if cached, cerr := h.refresh.mirror.GetAccount(ctx, userID); cerr == nil {
			httpresp.OK(c, cached)
			return
		}
		httperr.Handle(c, err)
		return
	}

	h.refresh.mirror.StoreAccount(ctx, acct)

	httpresp.OK(c, acct)
}

// GET /wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	txs, err := h.repo.ListTransactions(ctx, userID)
	if err != nil {
		if cached, cerr := h.refresh.mirror.GetTransactions(ctx, userID); cerr == nil {
			httpresp.List(c, cached)
			return
		}
		httperr.Handle(c, err)
		return
	}

	h.refresh.mirror.StoreTransactions(ctx, userID, txs)

	httpresp.List(c, txs)
}

// POST /wallet/topup
func (h *WalletHandler) TopUp(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	acct, err := h.topUpUC.Execute(ctx, usecase.TopUpInput{
		UserID:          userID,
		Amount:          req.Amount,
		CardToken:       req.CardToken,
		PaymentMethodID: req.PaymentMethodID,
		PayerEmail:      req.PayerEmail,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	h.refresh.refreshWallet(ctx, userID)

	httpresp.OK(c, acct)
}

// POST /wallet/referral
func (h *WalletHandler) ClaimReferral(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ClaimReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	acct, err := h.referralUC.Execute(ctx, userID, req.ReferralCode)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	h.refresh.refreshWallet(ctx, userID)

	httpresp.OK(c, acct)
}
