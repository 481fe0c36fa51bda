package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/accountd/internal/middleware"
)

// ThrottlePruneJob keeps the login throttle's last-seen map bounded by
// dropping entries idle for longer than maxAge.
type ThrottlePruneJob struct {
	throttle *middleware.Throttle
	maxAge   time.Duration
}

func NewThrottlePruneJob(throttle *middleware.Throttle, maxAge time.Duration) *ThrottlePruneJob {
	return &ThrottlePruneJob{throttle: throttle, maxAge: maxAge}
}

func (j *ThrottlePruneJob) Name() string {
	return "login_throttle_prune"
}

func (j *ThrottlePruneJob) Run(ctx context.Context) error {
	if j.throttle == nil {
		return nil
	}
	removed := j.throttle.Prune(j.maxAge)
	logutil.GetLogger(ctx).Info("throttle entries pruned", zap.Int("removed", removed))
	return nil
}
