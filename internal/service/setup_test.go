package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/healthbot/internal/db"
	"github.com/alexanderramin/healthbot/internal/repository"
	"github.com/alexanderramin/healthbot/internal/testutil"
)

type services struct {
	profiles    repository.ProfileRepo
	logs        repository.LogRepo
	uow         db.UnitOfWork
	profileSvc  ProfileService
	logSvc      LogService
	progressSvc ProgressService
	weather     *fakeWeather
	observer    *recordingObserver
}

func setupServices(t *testing.T) *services {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := &services{
		profiles: repository.NewSQLiteProfileRepo(database),
		logs:     repository.NewSQLiteLogRepo(database),
		uow:      testutil.NewTestUoW(database),
		weather:  &fakeWeather{err: errors.New("offline")},
		observer: &recordingObserver{},
	}
	s.profileSvc = NewProfileService(s.profiles, s.observer)
	s.logSvc = NewLogService(s.logs, s.uow, s.observer)
	s.progressSvc = NewProgressService(s.profiles, s.logs, s.weather, s.observer)
	return s
}

type fakeWeather struct {
	temp  float64
	err   error
	calls int
}

func (f *fakeWeather) CurrentTemperature(_ context.Context, _ string) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.temp, nil
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}
