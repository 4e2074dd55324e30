package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// AuthState is the resolved authentication state of the local session store
type AuthState int

const (
	// Unknown means the store could not be read
	Unknown AuthState = iota
	// Anonymous means no role has stored credentials
	Anonymous
	// Authenticated means exactly one role was resolved as active
	Authenticated
)

func (s AuthState) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Credentials is one role's stored bearer token plus the display-only profile
// snapshot captured at login time. The snapshot is never refreshed except by
// re-login.
type Credentials struct {
	Token   string        `yaml:"token"`
	Profile model.Profile `yaml:"profile,omitempty"`
	SavedAt time.Time     `yaml:"savedAt,omitempty"`
}

// Session is the result of resolving the store against the role precedence
// order. Token and Profile are only set when State is Authenticated.
type Session struct {
	State   AuthState
	Role    model.Role
	Token   string
	Profile model.Profile
}

// Store persists role credentials to a single yaml file. Credentials for
// several roles can coexist; resolution picks a single winner by fixed
// precedence (company > supervisor > employee > moderator).
type Store struct {
	path string
	mu   sync.Mutex
}

type storeFile struct {
	Roles map[model.Role]Credentials `yaml:"roles"`
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Resolve reads the store and returns the active session. An unreadable
// store yields Unknown; an empty store yields Anonymous.
func (s *Store) Resolve() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return Session{State: Unknown}
	}

	for _, role := range model.RolePrecedence {
		if creds, ok := data.Roles[role]; ok && creds.Token != "" {
			return Session{
				State:   Authenticated,
				Role:    role,
				Token:   creds.Token,
				Profile: creds.Profile,
			}
		}
	}

	return Session{State: Anonymous}
}

// Get returns the stored credentials for one role
func (s *Store) Get(role model.Role) (Credentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return Credentials{}, false, err
	}
	creds, ok := data.Roles[role]
	return creds, ok && creds.Token != "", nil
}

// Save stores credentials for a role, keeping other roles' entries intact
func (s *Store) Save(role model.Role, creds Credentials) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if data.Roles == nil {
		data.Roles = make(map[model.Role]Credentials)
	}
	if creds.SavedAt.IsZero() {
		creds.SavedAt = time.Now()
	}
	data.Roles[role] = creds

	return s.write(data)
}

// Clear removes one role's credentials. Clearing a role that has no entry is
// not an error.
func (s *Store) Clear(role model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data.Roles[role]; !ok {
		return nil
	}
	delete(data.Roles, role)

	return s.write(data)
}

// ClearAll removes every role's credentials
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(&storeFile{Roles: map[model.Role]Credentials{}})
}

func (s *Store) read() (*storeFile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeFile{Roles: map[model.Role]Credentials{}}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var data storeFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if data.Roles == nil {
		data.Roles = map[model.Role]Credentials{}
	}
	return &data, nil
}

func (s *Store) write(data *storeFile) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	// Tokens live in this file, keep it owner-only
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".swapdesk", "session.yaml"), nil
}
