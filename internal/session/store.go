package session

import "sync"

// Listener recibe cada evento de cambio de sesión en orden de llegada.
type Listener func(Event)

// Store es el estado reactivo de sesiones del proceso: un snapshot en memoria
// con exactamente un escritor (la suscripción de Registry.Listen) y muchos
// lectores. Los consumidores nunca lo mutan directamente; el login/logout
// pasa por el Registry y el evento actualiza el Store.
type Store struct {
	mu        sync.RWMutex
	revoked   map[string]struct{}
	listeners []Listener
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{revoked: make(map[string]struct{})}
}

// Revoked indica si la sesión fue revocada por un evento de logout.
// Es la consulta del middleware de auth: rechaza tokens con sesión revocada
// aunque el JWT todavía no haya expirado.
func (s *Store) Revoked(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[sessionID]
	return ok
}

// Subscribe registra un listener que será invocado por cada evento.
// Los listeners corren en la goroutine de la suscripción; deben ser rápidos.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// MarkRevoked marca una sesión como revocada sin pasar por el bus de eventos.
// Lo usa el logout local para que la revocación sea inmediata en este proceso;
// los demás procesos la reciben vía el evento publicado.
func (s *Store) MarkRevoked(sessionID string) {
	s.apply(Event{Kind: EventLogout, SessionID: sessionID})
}

// apply incorpora un evento al snapshot. Solo la llama la goroutine de Listen.
func (s *Store) apply(ev Event) {
	s.mu.Lock()
	switch ev.Kind {
	case EventLogout:
		s.revoked[ev.SessionID] = struct{}{}
	case EventLogin:
		delete(s.revoked, ev.SessionID)
	}
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}
