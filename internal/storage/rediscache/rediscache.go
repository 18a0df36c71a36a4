// Package rediscache puts a read-through TTL cache in front of the
// room/space directory. Rooms and spaces never change once created, so a
// stale entry can only appear within the configured TTL after an
// administrative change, and any cache failure falls through to the
// underlying directory.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"spaceBooker/internal/booking"
	"spaceBooker/internal/config"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/models"
)

func NewClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

type Directory struct {
	log    *slog.Logger
	inner  booking.Directory
	client *redis.Client
	ttl    time.Duration
}

func New(log *slog.Logger, inner booking.Directory, client *redis.Client, ttl time.Duration) *Directory {
	return &Directory{log: log, inner: inner, client: client, ttl: ttl}
}

type spaceWithRoom struct {
	Space models.Space `json:"space"`
	Room  models.Room  `json:"room"`
}

func (d *Directory) FindRoomWithSpaces(roomID int64) (*models.Room, error) {
	key := fmt.Sprintf("room:%d", roomID)

	var room models.Room
	if d.get(key, &room) {
		return &room, nil
	}

	found, err := d.inner.FindRoomWithSpaces(roomID)
	if err != nil {
		return nil, err
	}

	d.set(key, found)

	return found, nil
}

func (d *Directory) FindSpaceWithRoomAndSiblings(spaceID int64) (*models.Space, *models.Room, error) {
	key := fmt.Sprintf("space:%d", spaceID)

	var cached spaceWithRoom
	if d.get(key, &cached) {
		return &cached.Space, &cached.Room, nil
	}

	space, room, err := d.inner.FindSpaceWithRoomAndSiblings(spaceID)
	if err != nil {
		return nil, nil, err
	}

	d.set(key, spaceWithRoom{Space: *space, Room: *room})

	return space, room, nil
}

func (d *Directory) get(key string, dst any) bool {
	raw, err := d.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if err != redis.Nil {
			d.log.Debug("redis get failed", slog.String("key", key), sl.Err(err))
		}
		return false
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		d.log.Debug("failed to decode cached entry", slog.String("key", key), sl.Err(err))
		return false
	}

	return true
}

func (d *Directory) set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err = d.client.Set(context.Background(), key, raw, d.ttl).Err(); err != nil {
		d.log.Debug("redis set failed", slog.String("key", key), sl.Err(err))
	}
}
