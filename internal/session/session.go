// ABOUTME: Durable session record persisted between runs
// ABOUTME: Stores {userId, role} as JSON in the XDG config directory

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Role is the account kind determining the post-auth destination.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// DashboardRoute returns the web route the role lands on after signing in.
// Students go to the student dashboard; everything else is a teacher.
func (r Role) DashboardRoute() string {
	if r == RoleStudent {
		return "/student-dashboard"
	}
	return "/teacher-dashboard"
}

// Display returns the role's human-readable name.
func (r Role) Display() string {
	if r == RoleStudent {
		return "Student"
	}
	return "Teacher"
}

// Session is the persisted record of a locally authenticated identity.
type Session struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// Store is the narrow persistence contract shared by the auth screens and the
// logout action owned by the dashboards. Implementations are injected rather
// than accessed ambiently so the contract stays testable.
type Store interface {
	// Get returns the stored session, or nil when none exists.
	Get() (*Session, error)
	Put(Session) error
	Clear() error
}

// FileStore persists the session as a single JSON file in a config directory.
type FileStore struct {
	configDir string
}

// NewFileStore creates a FileStore rooted at the given config directory.
func NewFileStore(configDir string) *FileStore {
	return &FileStore{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG conventions.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "classroom")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "classroom")
}

func (fs *FileStore) file() string {
	return filepath.Join(fs.configDir, "user.json")
}

// Get reads the stored session. A missing file, unreadable JSON, or an
// unknown role all count as "no session" so a corrupt record never skips the
// sign-in screen.
func (fs *FileStore) Get() (*Session, error) {
	data, err := os.ReadFile(fs.file())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, nil
	}
	if sess.UserID == "" || !sess.Role.Valid() {
		return nil, nil
	}
	return &sess, nil
}

// Put writes the session to disk, creating the config directory if needed.
func (fs *FileStore) Put(sess Session) error {
	if err := os.MkdirAll(fs.configDir, 0700); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(fs.file(), data, 0600)
}

// Clear removes the stored session. Clearing an absent session is not an
// error; logout must be idempotent.
func (fs *FileStore) Clear() error {
	err := os.Remove(fs.file())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
