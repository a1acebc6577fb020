package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"bboard-api/internal/metrics"
	"bboard-api/internal/repository"
)

// StatsJob periodically refreshes the board's business gauges
type StatsJob struct {
	announcementRepo repository.AnnouncementRepository
	commentRepo      repository.CommentRepository
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(
	announcementRepo repository.AnnouncementRepository,
	commentRepo repository.CommentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StatsJob {
	return &StatsJob{
		announcementRepo: announcementRepo,
		commentRepo:      commentRepo,
		metrics:          m,
		logger:           logger,
	}
}

// Run executes one refresh of the announcement and comment totals
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	announcementCount, err := j.announcementRepo.Count(ctx)
	if err != nil {
		j.logger.Error("Failed to count announcements", zap.Error(err))
	} else {
		j.metrics.SetAnnouncementsTotal(announcementCount)
	}

	commentCount, err := j.commentRepo.Count(ctx)
	if err != nil {
		j.logger.Error("Failed to count comments", zap.Error(err))
	} else {
		j.metrics.SetCommentsTotal(commentCount)
	}

	j.logger.Debug("Board stats refreshed",
		zap.Int64("announcements", announcementCount),
		zap.Int64("comments", commentCount),
	)
}

// Schedule registers the job on the given cron runner. The job also
// runs once immediately so the gauges are populated at startup
func (j *StatsJob) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddJob(spec, j)
	if err != nil {
		return 0, err
	}
	j.Run()
	return id, nil
}
