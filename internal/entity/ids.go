// internal/entity/ids.go
package entity

import "go-survivors/internal/types"

// IDSource выдаёт идентификаторы сущностям одного забега.
type IDSource struct {
	next types.EntityID
}

func NewIDSource() *IDSource {
	return &IDSource{next: 1}
}

// Next возвращает новый уникальный ID (никогда не NoEntity).
func (s *IDSource) Next() types.EntityID {
	if s.next == types.NoEntity {
		s.next = 1
	}
	id := s.next
	s.next++
	return id
}
