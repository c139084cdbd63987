package slug

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Алфавит идентификаторов: 36 символов, URL-safe
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	meetingSlugLength    = 10
	meetingSlugAttempts  = 7
	fallbackRandomLength = 8
	responseIDLength     = 12
	deviceIDLength       = 14
)

// ExistsFunc проверяет, занят ли slug в хранилище
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Байты выше этого порога отбрасываются: 252 это наибольшее кратное
// len(alphabet) в диапазоне байта, остаток дал бы перекос к началу алфавита
const byteLimit = 252

// Generate генерирует случайную строку указанной длины из алфавита,
// символы распределены равномерно. Использует криптографический
// источник, при его недоступности откатывается на math/rand:
// slug это идентификатор, а не секрет.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	result := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(result) < length {
		if _, err := crand.Read(buf); err != nil {
			for len(result) < length {
				result = append(result, alphabet[rand.Intn(len(alphabet))])
			}
			break
		}
		for _, b := range buf {
			if b >= byteLimit {
				continue
			}
			result = append(result, alphabet[int(b)%len(alphabet)])
			if len(result) == length {
				break
			}
		}
	}
	return string(result)
}

// CreateUniqueMeetingSlug подбирает свободный slug для новой встречи.
// До 7 попыток с проверкой через хранилище; если все коллизии -
// собирает запасной slug из случайной строки и base-36 от текущего
// времени, без повторной проверки.
func CreateUniqueMeetingSlug(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < meetingSlugAttempts; attempt++ {
		candidate := Generate(meetingSlugLength)

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug exists: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	fallback := Generate(fallbackRandomLength) + strconv.FormatInt(time.Now().UnixMilli(), 36)
	return fallback, nil
}

// NewResponseID генерирует идентификатор ответа участника.
// Коллизии не проверяются: при длине 12 риск пренебрежимо мал.
func NewResponseID() string {
	return Generate(responseIDLength)
}

// NewDeviceID генерирует псевдоидентификатор устройства
func NewDeviceID() string {
	return Generate(deviceIDLength)
}
