package usecase

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// Session managers hand out per-session controllers to the delivery layer.
// Sessions live in memory for the lifetime of the process; there is no
// persistence and no sharing between the two workflows.

type ConsultationManager struct {
	mu        sync.RWMutex
	assistant AssistantGateway
	log       *logrus.Logger
	sessions  map[string]*ConsultationSession
}

func NewConsultationManager(assistant AssistantGateway, log *logrus.Logger) *ConsultationManager {
	return &ConsultationManager{
		assistant: assistant,
		log:       log,
		sessions:  make(map[string]*ConsultationSession),
	}
}

// Create starts a fresh consultation session and returns its ID.
func (m *ConsultationManager) Create() (string, *ConsultationSession) {
	id := uuid.NewString()
	sess := NewConsultationSession(m.assistant, m.log)

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return id, sess
}

func (m *ConsultationManager) Get(id string) (*ConsultationSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

type SchedulingManager struct {
	mu        sync.RWMutex
	slotGW    SlotGateway
	booker    Booker
	directory *DirectoryLoader
	log       *logrus.Logger
	sessions  map[string]*SchedulingSession
}

func NewSchedulingManager(slotGW SlotGateway, booker Booker, directory *DirectoryLoader, log *logrus.Logger) *SchedulingManager {
	return &SchedulingManager{
		slotGW:    slotGW,
		booker:    booker,
		directory: directory,
		log:       log,
		sessions:  make(map[string]*SchedulingSession),
	}
}

// Create starts a fresh scheduling session and returns its ID.
func (m *SchedulingManager) Create() (string, *SchedulingSession) {
	id := uuid.NewString()
	sess := NewSchedulingSession(m.slotGW, m.booker, m.directory, m.log)

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return id, sess
}

func (m *SchedulingManager) Get(id string) (*SchedulingSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
