package services

import (
	"log"
	"sync"
	"time"

	"interviewprep/api/internal/repositories"
)

// Janitor periodically deletes scored submissions whose parent
// interview is gone. Cascade deletes run transactionally against a
// single store, so in normal operation the sweep finds nothing; it
// exists as compensation for records orphaned by out-of-band writes.
type Janitor interface {
	Start()
	Stop()
}

type janitor struct {
	answerRepo    repositories.UserAnswerRepository
	sweepInterval time.Duration
	batchSize     int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewJanitor(answerRepo repositories.UserAnswerRepository, sweepInterval time.Duration, batchSize int) Janitor {
	return &janitor{
		answerRepo:    answerRepo,
		sweepInterval: sweepInterval,
		batchSize:     batchSize,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Janitor.
func (j *janitor) Start() {
	j.wg.Add(1)
	go j.run()
	log.Printf("🧹 Orphan sweep started (every %s)\n", j.sweepInterval)
}

// Stop implements Janitor.
func (j *janitor) Stop() {
	close(j.stopChan)
	j.wg.Wait()
	log.Println("🧹 Orphan sweep stopped")
}

func (j *janitor) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *janitor) sweep() {
	for {
		deleted, err := j.answerRepo.DeleteOrphans(j.batchSize)
		if err != nil {
			log.Printf("⚠️  Orphan sweep failed: %v\n", err)
			return
		}
		if deleted > 0 {
			log.Printf("🧹 Orphan sweep removed %d user answers\n", deleted)
		}
		if deleted < int64(j.batchSize) {
			return
		}
	}
}
