package domain

import "github.com/p5d/RustyRougelike/internal/core/types"

// Store - разреженное хранилище одного типа компонента.
//
// entities хранит порядок вставки: по нему идёт итерация во всех системах,
// поэтому порядок обхода детерминирован при одинаковом сиде.
// Мьютексов нет: симуляция однопоточная.
type Store[T any] struct {
	components map[types.EntityID]T
	entities   []types.EntityID
}

// NewStore создает пустое хранилище для типа T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[types.EntityID]T),
		entities:   make([]types.EntityID, 0, 64),
	}
}

// Set вставляет или заменяет компонент.
func (s *Store[T]) Set(e types.EntityID, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get возвращает компонент и флаг наличия.
func (s *Store[T]) Get(e types.EntityID) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has проверяет наличие компонента.
func (s *Store[T]) Has(e types.EntityID) bool {
	_, ok := s.components[e]
	return ok
}

// Remove удаляет компонент, сохраняя порядок остальных.
func (s *Store[T]) Remove(e types.EntityID) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities возвращает копию списка владельцев в порядке вставки.
// Копия позволяет удалять компоненты прямо во время обхода.
func (s *Store[T]) Entities() []types.EntityID {
	result := make([]types.EntityID, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len возвращает количество компонентов.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear удаляет все компоненты.
func (s *Store[T]) Clear() {
	clear(s.components)
	s.entities = s.entities[:0]
}

// presence - то, что нужно Query от хранилища независимо от типа компонента.
type presence interface {
	Has(e types.EntityID) bool
	Len() int
	Entities() []types.EntityID
}

// Query возвращает сущности, у которых есть компоненты во всех хранилищах.
// Обход начинается с самого маленького хранилища; порядок - порядок вставки в нём.
func Query(stores ...presence) []types.EntityID {
	if len(stores) == 0 {
		return nil
	}

	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	var result []types.EntityID
	for _, e := range smallest.Entities() {
		matched := true
		for _, s := range stores {
			if !s.Has(e) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, e)
		}
	}
	return result
}
