package types

import (
	"fmt"
	"strconv"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
)

// EntityID - 64-битный дескриптор сущности в арене мира.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Generation (24) | Index (32) ]
//
// Где:
//   - Kind - грубый тип сущности (enums.EntityKind)
//   - Generation - версия слота арены; растёт при каждом освобождении слота
//   - Index - номер слота в арене
//
// Дескриптор с устаревшим поколением считается мёртвым, даже если слот
// уже переиспользован другой сущностью.
type EntityID uint64

// NilEntityID - нулевой дескриптор. Живые сущности всегда имеют Generation >= 1.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 24
	bitsKind  = 8

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1

	// MaxGeneration - после него поколение слота заворачивается на 1.
	MaxGeneration = maskGen
)

// PackEntityID собирает EntityID из составных частей.
// Лишние старшие биты gen отбрасываются.
func PackEntityID(kind enums.EntityKind, gen uint32, index uint32) EntityID {
	return EntityID(
		(uint64(kind)&maskKind)<<shiftKind |
			(uint64(gen)&maskGen)<<shiftGen |
			uint64(index),
	)
}

// Index возвращает номер слота в арене.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGen) & maskGen)
}

// Kind возвращает тип сущности.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли дескриптор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String возвращает представление для логов.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s gen=%d idx=%d]", id.Kind(), id.Generation(), id.Index())
}

// MarshalJSON сериализует EntityID строкой, чтобы JS-клиенты зрителей
// не теряли точность на uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строковое, так и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entity id %q: %w", s, err)
	}

	*id = EntityID(v)
	return nil
}
