// Package redisstore adapta un cliente de Redis al contrato fiber.Storage,
// usado como backend de las sesiones HTTP.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*Store)(nil)

// Store implementa fiber.Storage sobre Redis.
type Store struct {
	client *redis.Client
}

// New crea el store y verifica la conexión con un ping.
func New(addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

// Get devuelve nil, nil cuando la clave no existe (contrato de fiber.Storage).
func (s *Store) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set guarda el valor con la expiración dada; exp cero significa sin expiración.
func (s *Store) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp).Err()
}

// Delete elimina la clave; no es error que no exista.
func (s *Store) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

// Reset vacía la base completa de sesiones.
func (s *Store) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	return s.client.Close()
}
