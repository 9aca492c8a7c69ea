package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"nxorax_backend/internal/chat"
	"nxorax_backend/internal/config"
)

// ChatRetentionJob periodically prunes chat messages beyond the history
// window. The live feed only ever reads the latest window, so older messages
// are dead weight in the store.
type ChatRetentionJob struct {
	chatRepo      chat.Repository
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewChatRetentionJob creates a new ChatRetentionJob.
func NewChatRetentionJob(
	chatRepo chat.Repository,
	logger *zap.Logger,
	cfg *config.Config,
) *ChatRetentionJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &ChatRetentionJob{
		chatRepo:      chatRepo,
		logger:        logger.Named("ChatRetentionJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *ChatRetentionJob) SetupAndStart() error {
	jobSpec := j.cfg.ChatRetentionJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Chat retention job schedule not defined (CHAT_RETENTION_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule chat retention job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Chat retention job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *ChatRetentionJob) runJob() {
	j.logger.Info("Starting chat retention job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	deleted, err := j.chatRepo.DeleteBeyondLatest(ctx, j.cfg.ChatHistoryLimit)
	if err != nil {
		j.logger.Error("Chat retention job run failed", zap.Error(err))
	} else {
		j.logger.Info("Chat retention job run completed", zap.Int("messages_deleted", deleted))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *ChatRetentionJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping chat retention job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Chat retention job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Chat retention job scheduler stop timed out.")
		}
	}
}

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
