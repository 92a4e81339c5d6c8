package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase/interfaces"
	"github.com/MBARUDI/menthorhub-backend/pkg"
)

var ErrInvalidNotification = errors.New("invalid webhook notification")

// WebhookOutcome is the terminal state of processing one delivery.

type WebhookOutcome string

const (
	// WebhookOutcomeIgnored: the notification is not about a payment.
	WebhookOutcomeIgnored WebhookOutcome = "ignored"
	// WebhookOutcomeSkipped: checked and deliberately not granted
	// (status gate, already paid, missing record, or a concurrent
	// delivery won the grant).
	WebhookOutcomeSkipped WebhookOutcome = "skipped"
	// WebhookOutcomeGranted: this delivery performed the grant.
	WebhookOutcomeGranted WebhookOutcome = "granted"
	// WebhookOutcomeFailed: a provider or store call failed; recovery
	// is Mercado Pago's own redelivery schedule.
	WebhookOutcomeFailed WebhookOutcome = "failed"
)

type IWebhookUseCase interface {
	ProcessNotification(ctx context.Context, n entities.WebhookNotification) (WebhookOutcome, error)
}

// WebhookUseCase confirms payment notifications and grants access.
//
// The notification body is never trusted for status or payer identity:
// the payment is always re-fetched from the provider by id, and only
// the re-fetched status gates the grant. The grant itself is delegated
// to the repository's conditional write, which is what makes duplicate
// and concurrent deliveries for the same email converge on exactly one
// token.

type WebhookUseCase struct {
	gateway interfaces.IPaymentGateway
	users   interfaces.IUserAccessRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(gateway interfaces.IPaymentGateway, users interfaces.IUserAccessRepository) *WebhookUseCase {
	return &WebhookUseCase{gateway: gateway, users: users}
}

func (u *WebhookUseCase) ProcessNotification(ctx context.Context, n entities.WebhookNotification) (WebhookOutcome, error) {
	log.Printf("[webhook][usecase] notification received type=%s payment_id=%s", n.Type, n.Data.ID)

	if n.Type != "payment" {
		log.Printf("[webhook][usecase] non-payment notification ignored type=%s", n.Type)
		return WebhookOutcomeIgnored, nil
	}

	paymentID := strings.TrimSpace(n.Data.ID)
	if paymentID == "" {
		log.Printf("[webhook][usecase] payment notification without data.id")
		return WebhookOutcomeIgnored, ErrInvalidNotification
	}

	if u.gateway == nil {
		log.Printf("[webhook][usecase] gateway not configured")
		return WebhookOutcomeFailed, errors.New("payment gateway not configured")
	}
	if u.users == nil {
		log.Printf("[webhook][usecase] user access repository not configured")
		return WebhookOutcomeFailed, errors.New("user access repository not configured")
	}

	// Re-fetch the authoritative payment; nothing in the notification
	// body beyond the id is used.
	pp, err := u.gateway.GetPaymentByID(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] status re-check failed payment_id=%s err=%v", paymentID, err)
		return WebhookOutcomeFailed, err
	}

	if pp.Status != entities.PaymentStatusApproved {
		log.Printf("[webhook][usecase] payment not approved payment_id=%s status=%s", paymentID, pp.Status)
		return WebhookOutcomeSkipped, nil
	}

	email := strings.TrimSpace(pp.PayerEmail)
	if email == "" {
		log.Printf("[webhook][usecase] approved payment without payer email payment_id=%s", paymentID)
		return WebhookOutcomeSkipped, nil
	}

	rec, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("[webhook][usecase] user lookup failed payment_id=%s payer_email=%s err=%v", paymentID, email, err)
		return WebhookOutcomeFailed, err
	}
	if rec.Email == "" {
		// The record is provisioned at signup; without it there is
		// nothing to grant against.
		log.Printf("[webhook][usecase] no user access record payment_id=%s payer_email=%s", paymentID, email)
		return WebhookOutcomeSkipped, nil
	}
	if rec.IsPaid {
		log.Printf("[webhook][usecase] duplicate delivery, access already granted payment_id=%s payer_email=%s", paymentID, email)
		return WebhookOutcomeSkipped, nil
	}

	token := pkg.NewAccessToken()
	applied, err := u.users.GrantIfUnpaid(ctx, email, token)
	if err != nil {
		// No local retry: the user stays unpaid until Mercado Pago
		// redelivers or reconciliation picks it up.
		log.Printf("[webhook][usecase] grant failed payment_id=%s payer_email=%s err=%v", paymentID, email, err)
		return WebhookOutcomeFailed, err
	}
	if !applied {
		log.Printf("[webhook][usecase] grant not applied, concurrent delivery won payment_id=%s payer_email=%s", paymentID, email)
		return WebhookOutcomeSkipped, nil
	}

	log.Printf("[webhook][usecase] access granted payment_id=%s payer_email=%s", paymentID, email)
	return WebhookOutcomeGranted, nil
}
