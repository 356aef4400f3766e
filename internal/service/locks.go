package service

import (
	"sync"

	"github.com/google/uuid"
)

// AgentLocks serializes updates to a single agent's affect state. Services
// that read-modify-write the same agent must share one AgentLocks.
type AgentLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewAgentLocks() *AgentLocks {
	return &AgentLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock blocks until the agent is free and returns the unlock func.
func (l *AgentLocks) Lock(agentID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[agentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[agentID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
