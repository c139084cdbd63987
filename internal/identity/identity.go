package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Freeeeeet/meetpoll/internal/slug"
)

// Ключ, под которым хранится идентификатор устройства
const deviceIDKey = "meetpoll_device_id"

// Storage долговременное key-value хранилище, привязанное к устройству
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Provider выдаёт псевдоидентификатор устройства. Это корреляционный
// идентификатор, а не credential: он ничего не разрешает и сервером
// не проверяется. Создаётся лениво при первом обращении и живёт
// до конца жизни устройства.
type Provider struct {
	storage Storage

	mu     sync.Mutex
	cached string
}

// NewProvider создаёт провайдер поверх указанного хранилища
func NewProvider(storage Storage) *Provider {
	return &Provider{storage: storage}
}

// EnsureDeviceID возвращает идентификатор устройства, создавая его
// при первом вызове. Повторные вызовы возвращают то же значение.
func (p *Provider) EnsureDeviceID() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached, nil
	}

	value, ok, err := p.storage.Get(deviceIDKey)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if ok && value != "" {
		p.cached = value
		return value, nil
	}

	value = slug.NewDeviceID()
	if err := p.storage.Set(deviceIDKey, value); err != nil {
		return "", fmt.Errorf("store device id: %w", err)
	}

	p.cached = value
	return value, nil
}

// FileStorage хранит значения в файлах внутри каталога.
// Один ключ - один файл.
type FileStorage struct {
	dir string
}

// NewFileStorage создаёт файловое хранилище в указанном каталоге
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get читает значение ключа; отсутствие файла не является ошибкой
func (s *FileStorage) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read key %s: %w", key, err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Set записывает значение ключа, создавая каталог при необходимости
func (s *FileStorage) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}
