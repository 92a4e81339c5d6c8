package interfaces

import (
	"context"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
)

// IUserAccessRepository abstracts persistence for UserAccessRecord.
//
// FindByEmail returns a zero-value record (empty Email) when no row
// exists for the email.
//
// GrantIfUnpaid must be a single conditional write scoped to "email = X
// and not yet paid": it sets is_paid and the token only when the row
// exists and is still unpaid, and reports applied=false otherwise.
// This is the compare-and-swap that keeps concurrent or duplicated
// webhook deliveries from granting twice.
type IUserAccessRepository interface {
	FindByEmail(ctx context.Context, email string) (entities.UserAccessRecord, error)
	GrantIfUnpaid(ctx context.Context, email string, token string) (applied bool, err error)
}
