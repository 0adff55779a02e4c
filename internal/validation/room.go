package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/chipsync/internal/models"
)

// RoomIDPattern определяет допустимый формат идентификатора комнаты
// Латинские буквы, цифры, дефис и подчеркивание, 4-64 символа
var RoomIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{4,64}$`)

const (
	// MaxParticipantNameLen максимальная длина имени участника в символах
	MaxParticipantNameLen = 40
)

// ValidateRoomID проверяет идентификатор комнаты
func ValidateRoomID(roomID string) error {
	if roomID == "" {
		return fmt.Errorf("room id cannot be empty")
	}

	if !RoomIDPattern.MatchString(roomID) {
		return fmt.Errorf("room id must be 4-64 characters of letters, numbers, '-' or '_'")
	}

	return nil
}

// ValidateParticipantName проверяет отображаемое имя участника.
// Имена не уникальны, допускается любой язык.
func ValidateParticipantName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("participant name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return fmt.Errorf("participant name must be valid UTF-8")
	}

	if utf8.RuneCountInString(name) > MaxParticipantNameLen {
		return fmt.Errorf("participant name must not exceed %d characters", MaxParticipantNameLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("participant name cannot contain control characters")
		}
	}

	return nil
}

// ValidateDataType проверяет, что тип данных относится к известным коллекциям
func ValidateDataType(dataType string) error {
	if !models.DataType(dataType).Valid() {
		return fmt.Errorf("unknown data type %q", dataType)
	}
	return nil
}
