package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/olivierh59500/dotted-glow-go/internal/field"
)

const presetObject = "presets"

// Store keeps named field presets. Only options are stored, never particle state.
type Store struct {
	gdataManager *gdata.Manager   // nil means memory only
	memory       map[string][]byte
}

// OpenStore opens the preset store for appName. When the platform data
// directory is unavailable the store falls back to memory and the error
// is logged, not returned.
func OpenStore(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Presets] Warning: no data directory: %v (presets kept in memory)", err)
		return NewStore(nil)
	}
	return NewStore(m)
}

// NewStore wraps a gdata manager, which may be nil
func NewStore(m *gdata.Manager) *Store {
	return &Store{gdataManager: m, memory: make(map[string][]byte)}
}

// Persistent reports whether presets survive a restart
func (s *Store) Persistent() bool { return s.gdataManager != nil }

// Save writes cfg under name
func (s *Store) Save(name string, cfg field.Config) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if s.gdataManager == nil {
		s.memory[name] = data
		return nil
	}
	if err := s.gdataManager.SaveObjectProp(presetObject, name, data); err != nil {
		return fmt.Errorf("failed to save preset %q: %w", name, err)
	}
	log.Printf("[Presets] Saved %q", name)
	return nil
}

// Load reads the preset stored under name. ok is false if there is none.
func (s *Store) Load(name string) (cfg field.Config, ok bool, err error) {
	if err := checkName(name); err != nil {
		return field.Config{}, false, err
	}
	var data []byte
	if s.gdataManager == nil {
		data, ok = s.memory[name]
		if !ok {
			return field.Config{}, false, nil
		}
	} else {
		if !s.gdataManager.ObjectPropExists(presetObject, name) {
			return field.Config{}, false, nil
		}
		data, err = s.gdataManager.LoadObjectProp(presetObject, name)
		if err != nil {
			return field.Config{}, false, fmt.Errorf("failed to load preset %q: %w", name, err)
		}
	}
	cfg, err = Decode(data)
	if err != nil {
		return field.Config{}, false, fmt.Errorf("preset %q: %w", name, err)
	}
	return cfg, true, nil
}

// checkName keeps preset names usable as file names on every platform
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty preset name")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("preset name %q: invalid character %q", name, r)
		}
	}
	return nil
}
