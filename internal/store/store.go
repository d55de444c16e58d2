package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/orderedcode"
	dbm "github.com/tendermint/tm-db"

	"github.com/replicanet/induction/internal/state/queues"
	"github.com/replicanet/induction/types"
)

// ErrNotFound is returned when no snapshot exists for a canister at, or
// below, the requested height.
var ErrNotFound = errors.New("snapshot not found")

/*
QueueStore is a simple low level store for CanisterQueues snapshots.

Snapshots are keyed by (canister, height) and hold the proto encoding of the
canister's queues at the end of that height. Heights for a canister need not
be contiguous; the latest one is what a restarting node resumes from.

// NOTE: Load methods return an error if they encounter a snapshot that
// cannot be decoded, indicating probable corruption on disk.
*/
type QueueStore struct {
	db dbm.DB

	// Options applied to every decoded CanisterQueues.
	options []queues.Option
}

// NewQueueStore returns a new QueueStore with the given DB. The options are
// passed on to queues.Unmarshal when loading.
func NewQueueStore(db dbm.DB, options ...queues.Option) *QueueStore {
	return &QueueStore{db: db, options: options}
}

// Save persists the queues of canisterID at height.
func (qs *QueueStore) Save(canisterID types.CanisterID, height int64, cq *queues.CanisterQueues) error {
	if height <= 0 {
		return fmt.Errorf("height must be greater than 0, got %d", height)
	}
	bz, err := cq.Marshal()
	if err != nil {
		return fmt.Errorf("marshal queues of %v: %w", canisterID, err)
	}
	return qs.db.SetSync(snapshotKey(canisterID, height), bz)
}

// Load returns the queues of canisterID saved at exactly height.
func (qs *QueueStore) Load(canisterID types.CanisterID, height int64) (*queues.CanisterQueues, error) {
	bz, err := qs.db.Get(snapshotKey(canisterID, height))
	if err != nil {
		return nil, err
	}
	if len(bz) == 0 {
		return nil, ErrNotFound
	}
	cq, err := queues.Unmarshal(bz, qs.options...)
	if err != nil {
		return nil, fmt.Errorf("snapshot of %v at height %d: %w", canisterID, height, err)
	}
	return cq, nil
}

// LatestHeight returns the last height a snapshot of canisterID was saved
// at, or 0 if there is none.
func (qs *QueueStore) LatestHeight(canisterID types.CanisterID) (int64, error) {
	iter, err := qs.db.ReverseIterator(
		snapshotKey(canisterID, 1),
		snapshotKey(canisterID, 1<<63-1),
	)
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	if iter.Valid() {
		id, height, err := decodeSnapshotKey(iter.Key())
		if err != nil {
			return 0, err
		}
		if id != canisterID {
			return 0, fmt.Errorf("snapshot key of %v in range of %v", id, canisterID)
		}
		return height, nil
	}
	return 0, iter.Error()
}

// LoadLatest returns the latest snapshot of canisterID and its height.
func (qs *QueueStore) LoadLatest(canisterID types.CanisterID) (*queues.CanisterQueues, int64, error) {
	height, err := qs.LatestHeight(canisterID)
	if err != nil {
		return nil, 0, err
	}
	if height == 0 {
		return nil, 0, ErrNotFound
	}
	cq, err := qs.Load(canisterID, height)
	if err != nil {
		return nil, 0, err
	}
	return cq, height, nil
}

// Canisters returns the ids of all canisters with at least one snapshot, in
// ascending order.
func (qs *QueueStore) Canisters() ([]types.CanisterID, error) {
	iter, err := qs.db.Iterator(snapshotKey(0, 0), snapshotKey(1<<64-1, 1<<63-1))
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ids []types.CanisterID
	for ; iter.Valid(); iter.Next() {
		id, _, err := decodeSnapshotKey(iter.Key())
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 || ids[len(ids)-1] != id {
			ids = append(ids, id)
		}
	}
	return ids, iter.Error()
}

// Prune removes the snapshots of canisterID below (but not including)
// height. It returns the number of snapshots pruned.
func (qs *QueueStore) Prune(canisterID types.CanisterID, height int64) (uint64, error) {
	if height <= 0 {
		return 0, fmt.Errorf("height must be greater than 0")
	}
	latest, err := qs.LatestHeight(canisterID)
	if err != nil {
		return 0, err
	}
	if height > latest {
		return 0, fmt.Errorf("height must be equal to or less than the latest height %d", latest)
	}
	return qs.pruneRange(snapshotKey(canisterID, 0), snapshotKey(canisterID, height))
}

// pruneRange deletes all keys in [start, end), in batches of at most 1000
// keys.
func (qs *QueueStore) pruneRange(start, end []byte) (uint64, error) {
	var (
		err         error
		pruned      uint64
		totalPruned uint64
	)

	batch := qs.db.NewBatch()
	defer batch.Close()

	pruned, start, err = qs.batchDelete(batch, start, end)
	if err != nil {
		return totalPruned, err
	}

	for !bytes.Equal(start, end) {
		if err := batch.Write(); err != nil {
			return totalPruned, err
		}

		totalPruned += pruned

		if err := batch.Close(); err != nil {
			return totalPruned, err
		}

		batch = qs.db.NewBatch()

		pruned, start, err = qs.batchDelete(batch, start, end)
		if err != nil {
			return totalPruned, err
		}
	}

	if err := batch.WriteSync(); err != nil {
		return totalPruned, err
	}
	totalPruned += pruned
	return totalPruned, nil
}

// batchDelete adds up to 1000 keys of [start, end) to batch. It returns the
// number of keys added and the key to resume from.
func (qs *QueueStore) batchDelete(batch dbm.Batch, start, end []byte) (uint64, []byte, error) {
	var pruned uint64
	iter, err := qs.db.Iterator(start, end)
	if err != nil {
		return pruned, start, err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		if err := batch.Delete(iter.Key()); err != nil {
			return 0, start, fmt.Errorf("pruning error at key %X: %w", iter.Key(), err)
		}

		pruned++
		if pruned == 1000 {
			iter.Next()
			if !iter.Valid() {
				return pruned, end, iter.Error()
			}
			return pruned, iter.Key(), iter.Error()
		}
	}

	return pruned, end, iter.Error()
}

// Close closes the underlying db.
func (qs *QueueStore) Close() error {
	return qs.db.Close()
}

//---------------------------------- KEY ENCODING -----------------------------------------

const (
	prefixSnapshot = int64(0)
)

func snapshotKey(canisterID types.CanisterID, height int64) []byte {
	key, err := orderedcode.Append(nil, prefixSnapshot, uint64(canisterID), height)
	if err != nil {
		panic(err)
	}
	return key
}

func decodeSnapshotKey(key []byte) (canisterID types.CanisterID, height int64, err error) {
	var (
		prefix int64
		id     uint64
	)
	remaining, err := orderedcode.Parse(string(key), &prefix, &id, &height)
	if err != nil {
		return 0, -1, err
	}
	if len(remaining) != 0 {
		return 0, -1, fmt.Errorf("expected complete key but got remainder: %s", remaining)
	}
	if prefix != prefixSnapshot {
		return 0, -1, fmt.Errorf("incorrect prefix. Expected %v, got %v", prefixSnapshot, prefix)
	}
	return types.CanisterID(id), height, nil
}
