// Package reconcile executes user-directed conflict resolutions between the
// local store and the remote service.
//
// The placeholder id scheme is single-device: two devices creating records
// offline can allocate the same negative id. Cross-device allocation is an
// accepted limitation.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/draftsync/internal/client/diff"
)

// Reconciliation errors
var (
	// ErrNoDiff indicates both sides are absent: nothing to resolve
	ErrNoDiff = errors.New("no diff to resolve")

	// ErrEmptyCreateResponse indicates the remote create reported success
	// but returned no record
	ErrEmptyCreateResponse = errors.New("remote create returned no record")
)

// Record is the constraint for reconcilable record kinds
type Record interface {
	RecordID() int64
}

// LocalStore is the subset of the local store adapter the reconciler needs
type LocalStore[T Record] interface {
	MaybeGet(ctx context.Context, id int64) (*T, error)
	Insert(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id int64) error
	ChangeID(ctx context.Context, oldID, newID int64) error
}

// RemoteService is the subset of the remote service adapter the reconciler needs
type RemoteService[T Record] interface {
	GetOne(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec T) (*T, error)
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, rec T) error
}

// Cascade rewrites references held by dependent records when an id is
// remapped from a local placeholder to a server-assigned id. Cascades must be
// idempotent: a retry after a partial failure re-runs them with the same pair.
type Cascade func(ctx context.Context, oldID, newID int64) error

// Reconciler resolves conflicts for one record kind.
//
// Resolutions for the same id are serialized: at most one resolution per id
// is in flight at a time, so a retry after failure cannot interleave with a
// cascade rewrite still in progress.
type Reconciler[T Record] struct {
	local    LocalStore[T]
	remote   RemoteService[T]
	logger   *slog.Logger
	cascades []Cascade
	locks    *idLocks
}

// New creates a reconciler for one record kind. The cascades are invoked
// after a successful remote create remaps a placeholder id.
func New[T Record](local LocalStore[T], remote RemoteService[T], logger *slog.Logger, cascades ...Cascade) *Reconciler[T] {
	return &Reconciler[T]{
		local:    local,
		remote:   remote,
		logger:   logger,
		cascades: cascades,
		locks:    newIDLocks(),
	}
}

// Snapshot fetches both sides for one logical entity id.
// Either side may be nil; both nil classifies as diff.None.
func (r *Reconciler[T]) Snapshot(ctx context.Context, id int64) (local, remote *T, err error) {
	local, err = r.local.MaybeGet(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read local record: %w", err)
	}

	// Placeholder id никогда не существует на сервере, не ходим в сеть
	if id <= 0 {
		return local, nil, nil
	}

	remote, err = r.remote.GetOne(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read remote record: %w", err)
	}

	return local, remote, nil
}

// ApplyLocalWins pushes the local state to the remote service and reflects
// the outcome locally:
//
//   - LocalOnly: create remotely, then remap the local placeholder id to the
//     server-assigned id and cascade-rewrite dependent bindings. If the remote
//     create fails nothing is mutated locally and the operation can be retried.
//   - RemoteOnly: delete the remote record.
//   - DataDiff: overwrite the remote record with the local content.
func (r *Reconciler[T]) ApplyLocalWins(ctx context.Context, local, remote *T) error {
	category := diff.Classify(local, remote)
	if !category.Actionable() {
		return ErrNoDiff
	}

	unlock := r.lockFor(local, remote)
	defer unlock()

	switch category {
	case diff.LocalOnly:
		return r.pushLocalOnly(ctx, *local)

	case diff.RemoteOnly:
		if err := r.remote.Delete(ctx, *remote); err != nil {
			return fmt.Errorf("remote delete failed: %w", err)
		}
		r.logger.Info("deleted remote record", "id", (*remote).RecordID())
		return nil

	default: // diff.DataDiff
		if err := r.remote.Update(ctx, *local); err != nil {
			return fmt.Errorf("remote update failed: %w", err)
		}
		r.logger.Info("pushed local content to remote", "id", (*local).RecordID())
		return nil
	}
}

// pushLocalOnly creates the record remotely and adopts the assigned id.
// The cascade only runs after the create is confirmed: on failure the local
// placeholder record stays untouched for retry.
func (r *Reconciler[T]) pushLocalOnly(ctx context.Context, local T) error {
	created, err := r.remote.Create(ctx, local)
	if err != nil {
		return fmt.Errorf("remote create failed: %w", err)
	}
	if created == nil {
		return ErrEmptyCreateResponse
	}

	oldID := local.RecordID()
	newID := (*created).RecordID()

	if err := r.local.ChangeID(ctx, oldID, newID); err != nil {
		// Запись уже создана на сервере; повторный diff по новому id
		// даст DataDiff и позволит восстановиться
		return fmt.Errorf("failed to adopt server id %d for %d: %w", newID, oldID, err)
	}

	for _, cascade := range r.cascades {
		if err := cascade(ctx, oldID, newID); err != nil {
			return fmt.Errorf("failed to cascade id remap %d -> %d: %w", oldID, newID, err)
		}
	}

	r.logger.Info("adopted server id", "old_id", oldID, "new_id", newID)
	return nil
}

// ApplyRemoteWins overwrites local state with the remote state:
//
//   - LocalOnly: delete the local record.
//   - RemoteOnly: insert the remote record locally, preserving its id.
//   - DataDiff: overwrite the local record with the remote content.
//
// Only the local store is mutated; a failure here is a local storage fault,
// not a retryable network condition.
func (r *Reconciler[T]) ApplyRemoteWins(ctx context.Context, local, remote *T) error {
	category := diff.Classify(local, remote)
	if !category.Actionable() {
		return ErrNoDiff
	}

	unlock := r.lockFor(local, remote)
	defer unlock()

	switch category {
	case diff.LocalOnly:
		if err := r.local.Delete(ctx, (*local).RecordID()); err != nil {
			return fmt.Errorf("failed to delete local record: %w", err)
		}
		r.logger.Info("discarded local record", "id", (*local).RecordID())
		return nil

	case diff.RemoteOnly:
		if err := r.local.Insert(ctx, *remote); err != nil {
			return fmt.Errorf("failed to insert remote record locally: %w", err)
		}
		r.logger.Info("fetched remote record", "id", (*remote).RecordID())
		return nil

	default: // diff.DataDiff
		if err := r.local.Update(ctx, *remote); err != nil {
			return fmt.Errorf("failed to overwrite local record: %w", err)
		}
		r.logger.Info("overwrote local content from remote", "id", (*remote).RecordID())
		return nil
	}
}

// lockFor serializes resolutions on the entity's id. The local id is
// preferred: for LocalOnly it is the placeholder being remapped.
func (r *Reconciler[T]) lockFor(local, remote *T) func() {
	var id int64
	if local != nil {
		id = (*local).RecordID()
	} else {
		id = (*remote).RecordID()
	}

	lock := r.locks.forID(id)
	lock.Lock()
	return lock.Unlock
}
