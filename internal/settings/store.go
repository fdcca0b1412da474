package settings

import (
	"strconv"
	"strings"
)

// Store is a string key-value settings backend. Get returns ok=false
// for missing keys; missing keys fall back to defaults in Load.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Load reads the full settings set from the store, substituting
// defaults for missing or malformed values. A read error from the
// backend is surfaced; a bad value is not.
func Load(store Store) (Settings, error) {
	s := Default()

	read := func(key string) (string, bool, error) {
		v, ok, err := store.Get(key)
		if err != nil {
			return "", false, err
		}
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != "", nil
	}

	var err error
	var v string
	var ok bool

	if v, ok, err = read(KeyFullName); err != nil {
		return s, err
	} else if ok {
		s.FullName = v
	}
	if v, ok, err = read(KeyEmail); err != nil {
		return s, err
	} else if ok {
		s.Email = v
	}
	if v, ok, err = read(KeyStudentID); err != nil {
		return s, err
	} else if ok {
		s.StudentID = v
	}
	if v, ok, err = read(KeyLanguage); err != nil {
		return s, err
	} else if ok && (v == LanguageEN || v == LanguageVI) {
		s.Language = v
	}
	if v, ok, err = read(KeyCurrency); err != nil {
		return s, err
	} else if ok && (v == CurrencyVND || v == CurrencyUSD) {
		s.Currency = v
	}
	if v, ok, err = read(KeyCalorieGoal); err != nil {
		return s, err
	} else if ok {
		if n, convErr := strconv.Atoi(v); convErr == nil && n > 0 {
			s.CalorieGoal = n
		}
	}
	if v, ok, err = read(KeyCalorieThreshold); err != nil {
		return s, err
	} else if ok {
		if n, convErr := strconv.Atoi(v); convErr == nil && n >= 0 && n <= 100 {
			s.CalorieThreshold = n
		}
	}

	return s, nil
}

// Save writes the full settings set back to the store.
func Save(store Store, s Settings) error {
	pairs := []struct{ key, value string }{
		{KeyFullName, s.FullName},
		{KeyEmail, s.Email},
		{KeyStudentID, s.StudentID},
		{KeyLanguage, s.Language},
		{KeyCurrency, s.Currency},
		{KeyCalorieGoal, strconv.Itoa(s.CalorieGoal)},
		{KeyCalorieThreshold, strconv.Itoa(s.CalorieThreshold)},
	}
	for _, p := range pairs {
		if err := store.Set(p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}

// MemoryStore is a map-backed Store for tests and ephemeral sessions.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}
