package database

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// db - bolt db connection
var db *bolt.DB

// Connect - open the bolt database file. Closed via CloseDB in main.go defer.
func Connect(path string) error {
	var err error
	db, err = bolt.Open(path, 0600, &bolt.Options{Timeout: 10 * time.Second})
	return err
}

// GetGuildSettings - Get the provisioning record for a guild. A zero record
// means setup never ran for this guild.
func GetGuildSettings(gid string) (gs GuildSettings, err error) {
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("guilds"))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(gid))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &gs)
	})
	return gs, err
}

// UpdateGuildSettings - Update the provisioning record for a guild
func UpdateGuildSettings(gs GuildSettings) error {
	if gs.ID == "" {
		return fmt.Errorf("guild settings without a guild id")
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("guilds"))
		if err != nil {
			return err
		}
		bts, err := json.Marshal(gs)
		if err != nil {
			return err
		}
		return b.Put([]byte(gs.ID), bts)
	})
}

// CloseDB - Close DB connection
func CloseDB() {
	db.Close()
}
