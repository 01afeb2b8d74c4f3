package usecase

import (
	"context"
	"sync"

	"ai-medical-assistant/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const msgDirectoryFailed = "Failed to fetch initial data"

type DirectoryState string

const (
	DirectoryIdle    DirectoryState = "idle"
	DirectoryLoading DirectoryState = "loading"
	DirectoryLoaded  DirectoryState = "loaded"
	DirectoryFailed  DirectoryState = "failed"
)

// DirectoryLoader fetches the doctor and patient reference lists once and
// holds them read-only for the lifetime of the process. The two fetches run
// concurrently and stand or fall together: either failing discards both, so
// the default pre-selection never works off half-loaded data.
type DirectoryLoader struct {
	mu  sync.Mutex
	gw  DirectoryGateway
	log *logrus.Logger

	state            DirectoryState
	doctors          []entity.Doctor
	patients         []entity.Patient
	defaultDoctorID  string
	defaultPatientID string
	userErr          string
}

func NewDirectoryLoader(gw DirectoryGateway, log *logrus.Logger) *DirectoryLoader {
	return &DirectoryLoader{
		gw:    gw,
		log:   log,
		state: DirectoryIdle,
	}
}

// Load populates both lists and pre-selects the first doctor and patient as
// defaults. Loading is idempotent once it has succeeded; a failed load may
// be retried by calling Load again (never automatically).
func (l *DirectoryLoader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.state == DirectoryLoading {
		l.mu.Unlock()
		return ErrRequestInFlight
	}
	if l.state == DirectoryLoaded {
		l.mu.Unlock()
		return nil
	}
	l.state = DirectoryLoading
	l.mu.Unlock()

	var (
		doctors  []entity.Doctor
		patients []entity.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctors, err = l.gw.ListDoctors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		patients, err = l.gw.ListPatients(gctx)
		return err
	})
	err := g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.log.Warnf("Directory load failed: %+v", err)
		l.state = DirectoryFailed
		l.userErr = msgDirectoryFailed
		l.doctors = nil
		l.patients = nil
		l.defaultDoctorID = ""
		l.defaultPatientID = ""
		return err
	}

	l.state = DirectoryLoaded
	l.userErr = ""
	l.doctors = doctors
	l.patients = patients
	if len(doctors) > 0 {
		l.defaultDoctorID = doctors[0].ID
	}
	if len(patients) > 0 {
		l.defaultPatientID = patients[0].ID
	}
	return nil
}

// HasDoctor reports whether id is present in the loaded doctor list.
func (l *DirectoryLoader) HasDoctor(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, d := range l.doctors {
		if d.ID == id {
			return true
		}
	}
	return false
}

// HasPatient reports whether id is present in the loaded patient list.
func (l *DirectoryLoader) HasPatient(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.patients {
		if p.ID == id {
			return true
		}
	}
	return false
}

// DirectorySnapshot is a point-in-time copy of the loader for rendering.
type DirectorySnapshot struct {
	State            DirectoryState
	Doctors          []entity.Doctor
	Patients         []entity.Patient
	DefaultDoctorID  string
	DefaultPatientID string
	Error            string
}

func (l *DirectoryLoader) Snapshot() DirectorySnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	doctors := make([]entity.Doctor, len(l.doctors))
	copy(doctors, l.doctors)
	patients := make([]entity.Patient, len(l.patients))
	copy(patients, l.patients)

	return DirectorySnapshot{
		State:            l.state,
		Doctors:          doctors,
		Patients:         patients,
		DefaultDoctorID:  l.defaultDoctorID,
		DefaultPatientID: l.defaultPatientID,
		Error:            l.userErr,
	}
}
