package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cardeval/internal/flyer/models"
	"cardeval/pkg/platform/sentinel"
)

// InMemory is a directory of frequent flyer members held in a map.
type InMemory struct {
	mu      sync.RWMutex
	members map[string]models.Member
}

// NewInMemory creates a directory pre-loaded with members.
func NewInMemory(members ...models.Member) *InMemory {
	s := &InMemory{members: make(map[string]models.Member, len(members))}
	for _, m := range members {
		s.members[strings.TrimSpace(m.Number)] = m
	}
	return s
}

// Save inserts or replaces a member.
func (s *InMemory) Save(_ context.Context, member models.Member) error {
	number := strings.TrimSpace(member.Number)
	if number == "" {
		return fmt.Errorf("save member: number is required")
	}
	member.Number = number

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[number] = member
	return nil
}

func (s *InMemory) FindMember(_ context.Context, number string) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	member, ok := s.members[number]
	if !ok {
		return nil, fmt.Errorf("member %q: %w", number, sentinel.ErrNotFound)
	}
	return &member, nil
}

// Len returns the number of members.
func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// DemoMembers seeds development environments.
func DemoMembers() []models.Member {
	return []models.Member{
		{Number: "FF-1001", Active: true, Tier: models.TierGold},
		{Number: "FF-1002", Active: true, Tier: models.TierSilver},
		{Number: "FF-1003", Active: false, Tier: models.TierBlue},
	}
}
