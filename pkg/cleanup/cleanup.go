package cleanup

import (
	"sync"

	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse registration order and forgets them.
func CleanUp() {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		log := logger.L().With(zap.String("job", j.Name))
		log.Info("cleanup job started")
		if err := j.F(); err != nil {
			log.Error("cleanup job finished with error", zap.Error(err))
		} else {
			log.Info("cleaned")
		}
	}
}
