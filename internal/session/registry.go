// Package session implementa el registro de sesiones sobre Redis y el estado
// reactivo de sesión del proceso. Cada login persiste la sesión con TTL y
// publica un evento en un canal pub/sub; cada logout la revoca y publica el
// evento. El Store en memoria se alimenta exclusivamente de esos eventos.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tipos de evento de cambio de sesión.
const (
	EventLogin  = "login"
	EventLogout = "logout"
)

// Event es el payload publicado en el canal de eventos de sesión.
type Event struct {
	Kind      string    `json:"kind"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	At        time.Time `json:"at"`
}

// Data es lo que se persiste por sesión emitida.
type Data struct {
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	RoleID    string    `json:"role_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Registry registro de sesiones respaldado por Redis.
type Registry struct {
	client  *redis.Client
	prefix  string
	channel string
}

// NewRegistry conecta a Redis a partir de la URL de configuración.
func NewRegistry(redisURL, channel string) (*Registry, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conexión a redis: %w", err)
	}
	return NewRegistryWithClient(client, channel), nil
}

// NewRegistryWithClient construye el registro sobre un cliente existente (tests).
func NewRegistryWithClient(client *redis.Client, channel string) *Registry {
	return &Registry{client: client, prefix: "session:", channel: channel}
}

func (r *Registry) key(sessionID string) string {
	return r.prefix + sessionID
}

// Save persiste la sesión con TTL y publica el evento de login.
func (r *Registry) Save(ctx context.Context, sessionID string, d Data, ttl time.Duration) error {
	d.CreatedAt = time.Now()
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal sesión: %w", err)
	}
	if err := r.client.Set(ctx, r.key(sessionID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return r.publish(ctx, Event{
		Kind: EventLogin, SessionID: sessionID, UserID: d.UserID, TenantID: d.TenantID, At: time.Now(),
	})
}

// Lookup recupera los datos de una sesión activa. Devuelve nil si no existe o expiró.
func (r *Registry) Lookup(ctx context.Context, sessionID string) (*Data, error) {
	payload, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar sesión: %w", err)
	}
	var d Data
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, fmt.Errorf("unmarshal sesión: %w", err)
	}
	return &d, nil
}

// Revoke elimina la sesión y publica el evento de logout.
func (r *Registry) Revoke(ctx context.Context, sessionID string) error {
	d, err := r.Lookup(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("revocar sesión: %w", err)
	}
	ev := Event{Kind: EventLogout, SessionID: sessionID, At: time.Now()}
	if d != nil {
		ev.UserID = d.UserID
		ev.TenantID = d.TenantID
	}
	return r.publish(ctx, ev)
}

func (r *Registry) publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal evento: %w", err)
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publicar evento de sesión: %w", err)
	}
	return nil
}

// Listen suscribe el Store al canal de eventos por la vida del proceso.
// La goroutine interna es el ÚNICO escritor del Store; se detiene al
// cancelar el contexto.
func (r *Registry) Listen(ctx context.Context, store *Store) {
	sub := r.client.Subscribe(ctx, r.channel)
	ch := sub.Channel()
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue // payload ajeno al canal, se ignora
				}
				store.apply(ev)
			}
		}
	}()
}

// Ping verifica la conexión a Redis.
func (r *Registry) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close cierra la conexión a Redis.
func (r *Registry) Close() error {
	return r.client.Close()
}
