package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MBARUDI/menthorhub-backend/internal/adapter/http/handlers/mocks"
	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleMercadoPago(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("acknowledges and processes after the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/webhooks/mercadopago", h.HandleMercadoPago)

		processed := make(chan entities.WebhookNotification, 1)
		uc.EXPECT().ProcessNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.WebhookNotification) (usecase.WebhookOutcome, error) {
				processed <- n
				return usecase.WebhookOutcomeGranted, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "OK" {
			t.Fatalf("expected plain OK body, got %q", w.Body.String())
		}

		select {
		case n := <-processed:
			if n.Type != "payment" || n.Data.ID != "123" {
				t.Fatalf("unexpected notification: %+v", n)
			}
		case <-time.After(time.Second):
			t.Fatal("notification was never processed")
		}
	})

	t.Run("processing errors never reach the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/webhooks/mercadopago", h.HandleMercadoPago)

		processed := make(chan struct{})
		uc.EXPECT().ProcessNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, entities.WebhookNotification) (usecase.WebhookOutcome, error) {
				defer close(processed)
				return usecase.WebhookOutcomeFailed, errors.New("provider down")
			})

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "OK" {
			t.Fatalf("expected 200 OK regardless of outcome, got %d %q", w.Code, w.Body.String())
		}

		select {
		case <-processed:
		case <-time.After(time.Second):
			t.Fatal("notification was never processed")
		}
	})

	t.Run("malformed body is acked and dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/webhooks/mercadopago", h.HandleMercadoPago)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago", bytes.NewBufferString("{not-json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "OK" {
			t.Fatalf("expected 200 OK, got %d %q", w.Code, w.Body.String())
		}
	})
}
