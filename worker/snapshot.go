package worker

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/aidancornelius/murmur-api/schema"
	"github.com/aidancornelius/murmur-api/score"
	"github.com/aidancornelius/murmur-api/store"
	"github.com/aidancornelius/murmur-api/utils"
)

var log = logrus.WithField("prefix", "worker")

// snapshotSchedule runs shortly after midnight so yesterday's events
// are complete when the snapshot is taken.
const snapshotSchedule = "10 0 * * *"

// SnapshotWorker persists every account's score for the previous day,
// keeping the load-history collection warm so day seeds and history
// queries never need recomputation.
type SnapshotWorker struct {
	mongoStore store.MurmurStore
	location   *time.Location
	cron       *cron.Cron
}

func NewSnapshotWorker(mongoStore store.MurmurStore, location *time.Location) *SnapshotWorker {
	if location == nil {
		location = time.Local
	}

	return &SnapshotWorker{
		mongoStore: mongoStore,
		location:   location,
		cron:       cron.New(cron.WithLocation(location)),
	}
}

func (w *SnapshotWorker) Start() error {
	if _, err := w.cron.AddFunc(snapshotSchedule, w.SnapshotYesterday); err != nil {
		return err
	}
	w.cron.Start()
	log.WithField("schedule", snapshotSchedule).Info("snapshot worker started")
	return nil
}

func (w *SnapshotWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

// SnapshotYesterday scores the previous calendar day for every
// registered account. Per-account failures are logged and skipped so
// one account cannot block the run.
func (w *SnapshotWorker) SnapshotYesterday() {
	now := time.Now().In(w.location)
	day := utils.StartOfDay(now).AddDate(0, 0, -1)

	accountNumbers, err := w.mongoStore.ListAccountNumbers()
	if err != nil {
		log.WithError(err).Error("fail to list accounts")
		return
	}

	for _, accountNumber := range accountNumbers {
		if err := w.snapshotDay(accountNumber, day); err != nil {
			log.WithError(err).WithField("account", accountNumber).Error("fail to snapshot account")
		}
	}

	log.WithField("date", utils.DayKey(day)).WithField("accounts", len(accountNumbers)).Info("snapshot run finished")
}

func (w *SnapshotWorker) snapshotDay(accountNumber string, day time.Time) error {
	start := day.Unix()
	end := day.AddDate(0, 0, 1).Unix()

	activities, err := w.mongoStore.ListActivities(accountNumber, start, end)
	if err != nil {
		return err
	}
	meals, err := w.mongoStore.ListMeals(accountNumber, start, end)
	if err != nil {
		return err
	}
	sleeps, err := w.mongoStore.ListSleeps(accountNumber, start, end)
	if err != nil {
		return err
	}
	symptoms, err := w.mongoStore.ListSymptoms(accountNumber, start, end)
	if err != nil {
		return err
	}

	cfg, err := w.accountConfiguration(accountNumber)
	if err != nil {
		return err
	}

	previous := 0.0
	record, err := w.mongoStore.GetLoadRecord(accountNumber, utils.DayKey(day.AddDate(0, 0, -1)))
	if err != nil {
		return err
	}
	if record != nil {
		previous = record.DecayedLoad
	}

	loadScore := score.CalculateDailyLoadFromEvents(day, activities, meals, sleeps, symptoms, previous, cfg)

	return w.mongoStore.AddLoadRecord(accountNumber, loadScore)
}

func (w *SnapshotWorker) accountConfiguration(accountNumber string) (schema.LoadConfiguration, error) {
	profile, err := w.mongoStore.GetProfile(accountNumber)
	if err != nil {
		return schema.LoadConfiguration{}, err
	}
	if profile.Configuration != nil {
		return *profile.Configuration, nil
	}
	return schema.DefaultLoadConfiguration, nil
}
