package database

import (
	"encoding/json"
	"log"

	bolt "go.etcd.io/bbolt"

	"github.com/legionoffools/lofbot/approval"
)

const pendingBucket = "pending_requests"

// PendingStore is a bolt-backed approval.Store. Unlike the default
// in-memory store, open requests survive a process restart. Bolt's
// serialized update transactions give PutIfAbsent and Remove the required
// check-and-act atomicity.
type PendingStore struct{}

// NewPendingStore - bolt-backed pending request store over the shared db
func NewPendingStore() *PendingStore {
	return &PendingStore{}
}

func pendingKey(kind approval.Kind, principalID string) []byte {
	return []byte(string(kind) + "/" + principalID)
}

// Get returns the open request for (kind, principal), if any.
func (s *PendingStore) Get(kind approval.Kind, principalID string) (req approval.Request, ok bool) {
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(pendingBucket))
		if b == nil {
			return nil
		}
		v := b.Get(pendingKey(kind, principalID))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &req); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		log.Printf("pending store get failed: %v", err)
		return approval.Request{}, false
	}
	return req, ok
}

// PutIfAbsent stores req unless an open request of the same kind already
// exists for the principal.
func (s *PendingStore) PutIfAbsent(req approval.Request) bool {
	stored := false
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(pendingBucket))
		if err != nil {
			return err
		}
		k := pendingKey(req.Kind, req.PrincipalID)
		if b.Get(k) != nil {
			return nil
		}
		bts, err := json.Marshal(req)
		if err != nil {
			return err
		}
		if err := b.Put(k, bts); err != nil {
			return err
		}
		stored = true
		return nil
	})
	if err != nil {
		log.Printf("pending store put failed: %v", err)
		return false
	}
	return stored
}

// Remove deletes and returns the open request for (kind, principal).
func (s *PendingStore) Remove(kind approval.Kind, principalID string) (req approval.Request, ok bool) {
	err := db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(pendingBucket))
		if b == nil {
			return nil
		}
		k := pendingKey(kind, principalID)
		v := b.Get(k)
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &req); err != nil {
			return err
		}
		if err := b.Delete(k); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		log.Printf("pending store remove failed: %v", err)
		return approval.Request{}, false
	}
	return req, ok
}
