package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"stayhub/config"
	"stayhub/cron"
	"stayhub/database/repository"
	"stayhub/models"
	"stayhub/services/payment"
	"stayhub/utils"
)

// PaymentHandler serves bill creation and gateway callbacks.
type PaymentHandler struct {
	gateway  *payment.Client
	queue    *asynq.Client
	payments repository.PaymentRepository
	logger   *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(gateway *payment.Client, queue *asynq.Client, payments repository.PaymentRepository, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, queue: queue, payments: payments, logger: logger}
}

// CreateBill handles POST /api/payments/bill.
func (h *PaymentHandler) CreateBill(c *gin.Context) {
	var input struct {
		Amount      int    `json:"amount" binding:"required,gt=0"`
		PayerName   string `json:"payerName" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	bill, err := h.gateway.CreateBill(c.Request.Context(), models.BillRequest{
		Amount:      input.Amount,
		Description: input.Description,
		PayerName:   input.PayerName,
		Email:       input.Email,
		CallbackURL: config.AppConfig.PaymentCallbackURL,
		RedirectURL: config.AppConfig.PaymentRedirectURL,
	})
	if err != nil {
		h.logger.Error("create bill failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create bill")
		return
	}

	if err := h.payments.RecordStatus(c.Request.Context(), bill.ID, models.BillStatusPending, bill.Amount); err != nil {
		h.logger.Error("record pending bill failed", zap.String("billId", bill.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bill": gin.H{"id": bill.ID, "url": bill.URL}})
}

// Callback handles POST /api/payments/callback, the server-to-server
// webhook. The signature is verified inline; persisting the status is
// handed to the async worker so the gateway gets a fast 200.
func (h *PaymentHandler) Callback(c *gin.Context) {
	cb, err := callbackFromForm(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	paid, err := h.gateway.VerifyPayment(cb)
	if err != nil {
		h.logger.Warn("callback rejected", zap.String("billId", cb.BillID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "signature verification failed")
		return
	}

	status := models.BillStatusFailed
	if paid {
		status = models.BillStatusPaid
	}
	task, err := cron.NewPaymentRecordTask(cron.PaymentRecordPayload{
		BillID: cb.BillID,
		Status: status,
		Amount: cb.Amount,
	})
	if err == nil {
		_, err = h.queue.Enqueue(task)
	}
	if err != nil {
		// Queue trouble must not make the gateway retry a verified
		// callback forever; record synchronously instead.
		h.logger.Error("enqueue payment record failed, recording inline", zap.Error(err))
		if err := h.payments.RecordStatus(c.Request.Context(), cb.BillID, status, cb.Amount); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to record payment")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Redirect handles GET /api/payments/redirect, the browser return leg.
func (h *PaymentHandler) Redirect(c *gin.Context) {
	params := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	cb := models.PaymentCallback{
		BillID:    params["id"],
		Paid:      params["paid"] == "true",
		Params:    params,
		Signature: params["x_signature"],
	}

	paid, err := h.gateway.VerifyPayment(cb)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "signature verification failed")
		return
	}
	if !paid {
		utils.JSONError(c, http.StatusPaymentRequired, "payment not completed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "billId": cb.BillID})
}

// Status handles GET /api/payments/:billId.
func (h *PaymentHandler) Status(c *gin.Context) {
	bill, err := h.payments.GetBill(c.Request.Context(), c.Param("billId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "bill not found")
			return
		}
		h.logger.Error("get bill failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bill": bill})
}

func callbackFromForm(c *gin.Context) (models.PaymentCallback, error) {
	if err := c.Request.ParseForm(); err != nil {
		return models.PaymentCallback{}, errors.New("invalid form payload")
	}
	params := map[string]string{}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	billID := params["id"]
	if billID == "" {
		return models.PaymentCallback{}, errors.New("callback carried no bill id")
	}
	// Gateway sends the amount in cents.
	amount, _ := strconv.Atoi(params["amount"])
	return models.PaymentCallback{
		BillID:    billID,
		Paid:      params["paid"] == "true",
		Amount:    amount,
		Params:    params,
		Signature: params["x_signature"],
	}, nil
}
