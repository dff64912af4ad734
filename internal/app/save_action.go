package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

var _ domain.Action = (*saveRangeAction)(nil)

// saveRangeAction writes one range and restores the previous one on
// rollback.
type saveRangeAction struct {
	client ports.PlatformClient
	ref    schedule.Ref
	prev   schedule.DateRange
	next   schedule.DateRange
}

func newSaveRangeAction(client ports.PlatformClient, ref schedule.Ref, prev, next schedule.DateRange) *saveRangeAction {
	return &saveRangeAction{client: client, ref: ref, prev: prev, next: next}
}

func (a *saveRangeAction) Execute(ctx context.Context) error {
	return a.client.SaveRange(ctx, a.ref, a.next)
}

func (a *saveRangeAction) Rollback(ctx context.Context) error {
	return a.client.SaveRange(ctx, a.ref, a.prev)
}

func (a *saveRangeAction) Description() string {
	return fmt.Sprintf("save %s %d dates for company %d", a.ref.Level, a.ref.EntityID, a.ref.CompanyID)
}
